package filter

import (
	"time"

	"github.com/buzzbyte/animethemes-go/animethemes"
)

// AnimeInfo is the flattened view of an anime record that filter
// expressions evaluate against. The slices carry display strings pulled
// out of the hydrated relation graph; absent values flatten to zero
// values so expressions never deal with pointers.
type AnimeInfo struct {
	Name     string
	Slug     string
	Year     int
	Season   string
	Synopsis string

	Synonyms   []string
	Series     []string
	ThemeSlugs []string
	SongTitles []string
	Artists    []string
	Sites      []string

	ThemeCount int
	VideoCount int

	CreatedAt time.Time
	UpdatedAt time.Time

	source *animethemes.Anime
}

// NewAnimeInfo flattens a hydrated anime for filter evaluation.
func NewAnimeInfo(a *animethemes.Anime) AnimeInfo {
	info := AnimeInfo{source: a}
	if a == nil {
		return info
	}

	info.Name = deref(a.Name)
	info.Slug = deref(a.Slug)
	info.Season = deref(a.Season)
	info.Synopsis = deref(a.Synopsis)
	if a.Year != nil {
		info.Year = *a.Year
	}
	if a.CreatedAt != nil {
		info.CreatedAt = *a.CreatedAt
	}
	if a.UpdatedAt != nil {
		info.UpdatedAt = *a.UpdatedAt
	}

	for _, syn := range a.Synonyms {
		if syn.Text != nil {
			info.Synonyms = append(info.Synonyms, *syn.Text)
		}
	}
	for _, s := range a.Series {
		if s.Name != nil {
			info.Series = append(info.Series, *s.Name)
		}
	}
	for _, res := range a.Resources {
		if res.Site != nil {
			info.Sites = append(info.Sites, *res.Site)
		}
	}

	info.ThemeCount = len(a.Themes)
	for _, theme := range a.Themes {
		if theme.Slug != nil {
			info.ThemeSlugs = append(info.ThemeSlugs, *theme.Slug)
		}
		if theme.Song != nil {
			if theme.Song.Title != nil {
				info.SongTitles = append(info.SongTitles, *theme.Song.Title)
			}
			for _, artist := range theme.Song.Artists {
				if artist.Name != nil {
					info.Artists = append(info.Artists, *artist.Name)
				}
			}
		}
		for _, entry := range theme.Entries {
			info.VideoCount += len(entry.Videos)
		}
	}

	return info
}

// ExternalID looks up the anime's numeric id on an external tracking
// site, empty when the record carries no usable link.
func (i AnimeInfo) ExternalID(site string) string {
	if i.source == nil {
		return ""
	}
	id, _ := i.source.ExternalID(site)
	return id
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
