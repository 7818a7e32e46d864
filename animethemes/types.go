package animethemes

import (
	"time"
)

// Kind identifies a resource kind served by the AnimeThemes API.
type Kind string

const (
	// KindAnime identifies an anime record
	KindAnime Kind = "anime"
	// KindAnnouncement identifies a site announcement
	KindAnnouncement Kind = "announcement"
	// KindArtist identifies a performing artist
	KindArtist Kind = "artist"
	// KindEntry identifies a theme entry (a versioned use of a theme)
	KindEntry Kind = "entry"
	// KindExternalLink identifies an external site resource ("resource" on the wire)
	KindExternalLink Kind = "resource"
	// KindSeries identifies a series grouping related anime
	KindSeries Kind = "series"
	// KindSong identifies a song
	KindSong Kind = "song"
	// KindSynonym identifies an alternate anime title
	KindSynonym Kind = "synonym"
	// KindTheme identifies an opening or ending theme
	KindTheme Kind = "theme"
	// KindVideo identifies an encoded theme video
	KindVideo Kind = "video"
)

// Timestamps holds the audit timestamps every API record carries.
// A nil field means the service omitted the value or sent it empty.
type Timestamps struct {
	CreatedAt *time.Time
	UpdatedAt *time.Time
}

// Relations holds the related records a payload may nest under a record.
// Singular fields populate only when the key holds a JSON object, list
// fields only when it holds a JSON array; everything else stays nil.
//
// The "anime" key is the one key the API uses in both shapes: an object
// (the owning anime of a theme or synonym) binds to Anime, an array (the
// anime of a series or song) binds to AnimeList.
type Relations struct {
	Anime *Anime
	Theme *Theme
	Song  *Song

	AnimeList     []*Anime
	Announcements []*Announcement
	Artists       []*Artist
	Entries       []*Entry
	Resources     []*ExternalLink
	Series        []*Series
	Songs         []*Song
	Synonyms      []*Synonym
	Themes        []*Theme
	Videos        []*Video
}

// Anime represents an anime record.
type Anime struct {
	ID       *int
	Name     *string
	Slug     *string
	Year     *int
	Season   *string
	Synopsis *string
	Cover    *string

	Timestamps
	Relations

	// Raw is the decoded JSON object the record was built from.
	Raw map[string]any
}

// DisplayTitle returns the best available human-readable title.
func (a *Anime) DisplayTitle() string {
	if a.Name != nil && *a.Name != "" {
		return *a.Name
	}
	if a.Slug != nil {
		return *a.Slug
	}
	return ""
}

// Announcement represents a site announcement.
type Announcement struct {
	ID      *int
	Content *string

	Timestamps
	Relations

	// Raw is the decoded JSON object the record was built from.
	Raw map[string]any
}

// Artist represents a performing artist.
type Artist struct {
	ID   *int
	Name *string
	Slug *string

	// Members and Groups carry the artist-membership payloads as the
	// service sent them; their shape is not part of this package's model.
	Members []any
	Groups  []any

	Timestamps
	Relations

	// Raw is the decoded JSON object the record was built from.
	Raw map[string]any
}

// Entry represents a versioned use of a theme across episodes.
type Entry struct {
	ID       *int
	Version  *int
	Episodes *string
	NSFW     *bool
	Spoiler  *bool
	Notes    *string

	Timestamps
	Relations

	// Raw is the decoded JSON object the record was built from.
	Raw map[string]any
}

// ExternalLink represents a "resource": a link from an anime or artist to
// an external site such as MyAnimeList, AniList or AniDB.
type ExternalLink struct {
	ID         *int
	ExternalID *int
	Link       *string
	Site       *string
	As         *string

	Timestamps
	Relations

	// Raw is the decoded JSON object the record was built from.
	Raw map[string]any
}

// Series represents a series grouping related anime.
type Series struct {
	ID   *int
	Name *string
	Slug *string

	Timestamps
	Relations

	// Raw is the decoded JSON object the record was built from.
	Raw map[string]any
}

// Song represents a song used by one or more themes.
type Song struct {
	ID    *int
	Title *string

	Timestamps
	Relations

	// Raw is the decoded JSON object the record was built from.
	Raw map[string]any
}

// Synonym represents an alternate title of an anime.
type Synonym struct {
	ID   *int
	Text *string

	Timestamps
	Relations

	// Raw is the decoded JSON object the record was built from.
	Raw map[string]any
}

// Theme represents an opening or ending theme of an anime.
type Theme struct {
	ID       *int
	Type     *string
	Sequence *int
	Group    *string
	Slug     *string

	Timestamps
	Relations

	// Raw is the decoded JSON object the record was built from.
	Raw map[string]any
}

// Video represents an encoded video of a theme entry.
type Video struct {
	ID         *int
	Basename   *string
	Filename   *string
	Path       *string
	Resolution *int
	NC         *bool
	Subbed     *bool
	Lyrics     *bool
	Uncen      *bool
	Source     *string
	Overlap    *string
	Link       *string

	Timestamps
	Relations

	// Raw is the decoded JSON object the record was built from.
	Raw map[string]any
}

// SearchResult groups the records a global search matched, one list per
// resource kind the search endpoint covers.
type SearchResult struct {
	Anime    []*Anime
	Artists  []*Artist
	Entries  []*Entry
	Series   []*Series
	Songs    []*Song
	Synonyms []*Synonym
	Themes   []*Theme
	Videos   []*Video

	// Raw is the decoded search object the groups were built from.
	Raw map[string]any
}

// SeasonResult buckets the anime of one year by airing season. Records
// the service could not place in a season land in NoSeason (the payload
// keys that bucket under an empty string).
type SeasonResult struct {
	Winter []*Anime
	Spring []*Anime
	Summer []*Anime
	Fall   []*Anime

	NoSeason []*Anime

	// Raw is the decoded year object the buckets were built from.
	Raw map[string]any
}

// All returns every anime of the year in season order, unspecified last.
func (sr *SeasonResult) All() []*Anime {
	out := make([]*Anime, 0, len(sr.Winter)+len(sr.Spring)+len(sr.Summer)+len(sr.Fall)+len(sr.NoSeason))
	out = append(out, sr.Winter...)
	out = append(out, sr.Spring...)
	out = append(out, sr.Summer...)
	out = append(out, sr.Fall...)
	out = append(out, sr.NoSeason...)
	return out
}
