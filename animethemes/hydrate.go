package animethemes

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
)

// Hydrate builds a typed record of the given kind from a decoded JSON
// object. It is the entry point for callers holding raw payloads; the
// endpoint methods dispatch to the same per-kind constructors directly.
func Hydrate(kind Kind, raw map[string]any) (any, error) {
	switch kind {
	case KindAnime:
		return hydrateAnime(raw)
	case KindAnnouncement:
		return hydrateAnnouncement(raw)
	case KindArtist:
		return hydrateArtist(raw)
	case KindEntry:
		return hydrateEntry(raw)
	case KindExternalLink:
		return hydrateExternalLink(raw)
	case KindSeries:
		return hydrateSeries(raw)
	case KindSong:
		return hydrateSong(raw)
	case KindSynonym:
		return hydrateSynonym(raw)
	case KindTheme:
		return hydrateTheme(raw)
	case KindVideo:
		return hydrateVideo(raw)
	default:
		return nil, fmt.Errorf("animethemes: unknown resource kind %q", kind)
	}
}

// hydrateAnime builds an Anime from a decoded JSON object.
func hydrateAnime(raw map[string]any) (*Anime, error) {
	a := &Anime{
		ID:       intField(raw, "id"),
		Name:     stringField(raw, "name"),
		Slug:     stringField(raw, "slug"),
		Year:     intField(raw, "year"),
		Season:   stringField(raw, "season"),
		Synopsis: stringField(raw, "synopsis"),
		Cover:    stringField(raw, "cover"),
		Raw:      raw,
	}
	return a, hydrateCommon(raw, &a.Timestamps, &a.Relations)
}

// hydrateAnnouncement builds an Announcement from a decoded JSON object.
func hydrateAnnouncement(raw map[string]any) (*Announcement, error) {
	an := &Announcement{
		ID:      intField(raw, "id"),
		Content: stringField(raw, "content"),
		Raw:     raw,
	}
	return an, hydrateCommon(raw, &an.Timestamps, &an.Relations)
}

// hydrateArtist builds an Artist from a decoded JSON object.
func hydrateArtist(raw map[string]any) (*Artist, error) {
	ar := &Artist{
		ID:   intField(raw, "id"),
		Name: stringField(raw, "name"),
		Slug: stringField(raw, "slug"),
		Raw:  raw,
	}
	if arr, ok := raw["members"].([]any); ok {
		ar.Members = arr
	}
	if arr, ok := raw["groups"].([]any); ok {
		ar.Groups = arr
	}
	return ar, hydrateCommon(raw, &ar.Timestamps, &ar.Relations)
}

// hydrateEntry builds an Entry from a decoded JSON object.
func hydrateEntry(raw map[string]any) (*Entry, error) {
	e := &Entry{
		ID:       intField(raw, "id"),
		Version:  intField(raw, "version"),
		Episodes: stringField(raw, "episodes"),
		NSFW:     boolField(raw, "nsfw"),
		Spoiler:  boolField(raw, "spoiler"),
		Notes:    stringField(raw, "notes"),
		Raw:      raw,
	}
	return e, hydrateCommon(raw, &e.Timestamps, &e.Relations)
}

// hydrateExternalLink builds an ExternalLink from a decoded JSON object.
func hydrateExternalLink(raw map[string]any) (*ExternalLink, error) {
	el := &ExternalLink{
		ID:         intField(raw, "id"),
		ExternalID: intField(raw, "external_id"),
		Link:       stringField(raw, "link"),
		Site:       stringField(raw, "site"),
		As:         stringField(raw, "as"),
		Raw:        raw,
	}
	return el, hydrateCommon(raw, &el.Timestamps, &el.Relations)
}

// hydrateSeries builds a Series from a decoded JSON object.
func hydrateSeries(raw map[string]any) (*Series, error) {
	s := &Series{
		ID:   intField(raw, "id"),
		Name: stringField(raw, "name"),
		Slug: stringField(raw, "slug"),
		Raw:  raw,
	}
	return s, hydrateCommon(raw, &s.Timestamps, &s.Relations)
}

// hydrateSong builds a Song from a decoded JSON object.
func hydrateSong(raw map[string]any) (*Song, error) {
	s := &Song{
		ID:    intField(raw, "id"),
		Title: stringField(raw, "title"),
		Raw:   raw,
	}
	return s, hydrateCommon(raw, &s.Timestamps, &s.Relations)
}

// hydrateSynonym builds a Synonym from a decoded JSON object.
func hydrateSynonym(raw map[string]any) (*Synonym, error) {
	s := &Synonym{
		ID:   intField(raw, "id"),
		Text: stringField(raw, "text"),
		Raw:  raw,
	}
	return s, hydrateCommon(raw, &s.Timestamps, &s.Relations)
}

// hydrateTheme builds a Theme from a decoded JSON object.
func hydrateTheme(raw map[string]any) (*Theme, error) {
	t := &Theme{
		ID:       intField(raw, "id"),
		Type:     stringField(raw, "type"),
		Sequence: intField(raw, "sequence"),
		Group:    stringField(raw, "group"),
		Slug:     stringField(raw, "slug"),
		Raw:      raw,
	}
	return t, hydrateCommon(raw, &t.Timestamps, &t.Relations)
}

// hydrateVideo builds a Video from a decoded JSON object.
func hydrateVideo(raw map[string]any) (*Video, error) {
	v := &Video{
		ID:         intField(raw, "id"),
		Basename:   stringField(raw, "basename"),
		Filename:   stringField(raw, "filename"),
		Path:       stringField(raw, "path"),
		Resolution: intField(raw, "resolution"),
		NC:         boolField(raw, "nc"),
		Subbed:     boolField(raw, "subbed"),
		Lyrics:     boolField(raw, "lyrics"),
		Uncen:      boolField(raw, "uncen"),
		Source:     stringField(raw, "source"),
		Overlap:    stringField(raw, "overlap"),
		Link:       stringField(raw, "link"),
		Raw:        raw,
	}
	return v, hydrateCommon(raw, &v.Timestamps, &v.Relations)
}

// hydrateCommon fills the timestamp and relation fields shared by every
// resource kind.
func hydrateCommon(raw map[string]any, ts *Timestamps, rel *Relations) error {
	var err error
	if *ts, err = hydrateTimestamps(raw); err != nil {
		return err
	}
	*rel, err = hydrateRelations(raw)
	return err
}

// hydrateTimestamps extracts the audit timestamps of a record. Missing,
// null and empty-string values leave the field unset; anything else that
// cannot be read as a point in time is a TimestampError.
func hydrateTimestamps(raw map[string]any) (Timestamps, error) {
	var ts Timestamps
	var err error
	if ts.CreatedAt, err = timeField(raw, "created_at"); err != nil {
		return ts, err
	}
	ts.UpdatedAt, err = timeField(raw, "updated_at")
	return ts, err
}

// hydrateRelations extracts the nested related records of a payload. Each
// known key binds only when it holds the expected JSON shape; the "anime"
// key is shape-dispatched between the singular slot and the list slot.
func hydrateRelations(raw map[string]any) (Relations, error) {
	var rel Relations
	var err error

	switch v := raw["anime"].(type) {
	case map[string]any:
		if rel.Anime, err = hydrateAnime(v); err != nil {
			return rel, err
		}
	case []any:
		if rel.AnimeList, err = hydrateList(v, hydrateAnime); err != nil {
			return rel, err
		}
	}
	if obj, ok := raw["theme"].(map[string]any); ok {
		if rel.Theme, err = hydrateTheme(obj); err != nil {
			return rel, err
		}
	}
	if obj, ok := raw["song"].(map[string]any); ok {
		if rel.Song, err = hydrateSong(obj); err != nil {
			return rel, err
		}
	}

	if arr, ok := raw["announcements"].([]any); ok {
		if rel.Announcements, err = hydrateList(arr, hydrateAnnouncement); err != nil {
			return rel, err
		}
	}
	if arr, ok := raw["artists"].([]any); ok {
		if rel.Artists, err = hydrateList(arr, hydrateArtist); err != nil {
			return rel, err
		}
	}
	if arr, ok := raw["entries"].([]any); ok {
		if rel.Entries, err = hydrateList(arr, hydrateEntry); err != nil {
			return rel, err
		}
	}
	if arr, ok := raw["resources"].([]any); ok {
		if rel.Resources, err = hydrateList(arr, hydrateExternalLink); err != nil {
			return rel, err
		}
	}
	if arr, ok := raw["series"].([]any); ok {
		if rel.Series, err = hydrateList(arr, hydrateSeries); err != nil {
			return rel, err
		}
	}
	if arr, ok := raw["songs"].([]any); ok {
		if rel.Songs, err = hydrateList(arr, hydrateSong); err != nil {
			return rel, err
		}
	}
	if arr, ok := raw["synonyms"].([]any); ok {
		if rel.Synonyms, err = hydrateList(arr, hydrateSynonym); err != nil {
			return rel, err
		}
	}
	if arr, ok := raw["themes"].([]any); ok {
		if rel.Themes, err = hydrateList(arr, hydrateTheme); err != nil {
			return rel, err
		}
	}
	if arr, ok := raw["videos"].([]any); ok {
		if rel.Videos, err = hydrateList(arr, hydrateVideo); err != nil {
			return rel, err
		}
	}
	return rel, nil
}

// hydrateSearch builds a SearchResult from a decoded search object.
func hydrateSearch(raw map[string]any) (*SearchResult, error) {
	sr := &SearchResult{Raw: raw}
	var err error

	if arr, ok := raw["anime"].([]any); ok {
		if sr.Anime, err = hydrateList(arr, hydrateAnime); err != nil {
			return nil, err
		}
	}
	if arr, ok := raw["artists"].([]any); ok {
		if sr.Artists, err = hydrateList(arr, hydrateArtist); err != nil {
			return nil, err
		}
	}
	if arr, ok := raw["entries"].([]any); ok {
		if sr.Entries, err = hydrateList(arr, hydrateEntry); err != nil {
			return nil, err
		}
	}
	if arr, ok := raw["series"].([]any); ok {
		if sr.Series, err = hydrateList(arr, hydrateSeries); err != nil {
			return nil, err
		}
	}
	if arr, ok := raw["songs"].([]any); ok {
		if sr.Songs, err = hydrateList(arr, hydrateSong); err != nil {
			return nil, err
		}
	}
	if arr, ok := raw["synonyms"].([]any); ok {
		if sr.Synonyms, err = hydrateList(arr, hydrateSynonym); err != nil {
			return nil, err
		}
	}
	if arr, ok := raw["themes"].([]any); ok {
		if sr.Themes, err = hydrateList(arr, hydrateTheme); err != nil {
			return nil, err
		}
	}
	if arr, ok := raw["videos"].([]any); ok {
		if sr.Videos, err = hydrateList(arr, hydrateVideo); err != nil {
			return nil, err
		}
	}
	return sr, nil
}

// hydrateSeasons builds a SeasonResult from a decoded year object. Anime
// the service could not place in a season arrive under an empty-string key.
func hydrateSeasons(raw map[string]any) (*SeasonResult, error) {
	sr := &SeasonResult{Raw: raw}
	var err error
	if sr.Winter, err = seasonBucket(raw, "winter"); err != nil {
		return nil, err
	}
	if sr.Spring, err = seasonBucket(raw, "spring"); err != nil {
		return nil, err
	}
	if sr.Summer, err = seasonBucket(raw, "summer"); err != nil {
		return nil, err
	}
	if sr.Fall, err = seasonBucket(raw, "fall"); err != nil {
		return nil, err
	}
	sr.NoSeason, err = seasonBucket(raw, "")
	if err != nil {
		return nil, err
	}
	return sr, nil
}

// seasonBucket hydrates one season's anime array, nil when absent.
func seasonBucket(raw map[string]any, key string) ([]*Anime, error) {
	arr, ok := raw[key].([]any)
	if !ok {
		return nil, nil
	}
	return hydrateList(arr, hydrateAnime)
}

// hydrateList builds each object element of a JSON array with the given
// constructor, preserving order. Elements that are not objects are
// skipped so one malformed entry does not sink the surrounding payload.
func hydrateList[T any](arr []any, build func(map[string]any) (*T, error)) ([]*T, error) {
	out := make([]*T, 0, len(arr))
	for _, el := range arr {
		obj, ok := el.(map[string]any)
		if !ok {
			continue
		}
		v, err := build(obj)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// intField reads a declared integer field, nil when missing or not a number.
func intField(raw map[string]any, key string) *int {
	f, ok := raw[key].(float64)
	if !ok {
		return nil
	}
	n := int(f)
	return &n
}

// stringField reads a declared string field, nil when missing or not a string.
func stringField(raw map[string]any, key string) *string {
	s, ok := raw[key].(string)
	if !ok {
		return nil
	}
	return &s
}

// boolField reads a declared boolean field, nil when missing or not a boolean.
func boolField(raw map[string]any, key string) *bool {
	b, ok := raw[key].(bool)
	if !ok {
		return nil
	}
	return &b
}

// timeField reads a declared timestamp field. The API sends RFC 3339, but
// older records have drifted through other formats, so parsing is lenient.
func timeField(raw map[string]any, key string) (*time.Time, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, &TimestampError{Field: key, Value: v}
	}
	if s == "" {
		return nil, nil
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return nil, &TimestampError{Field: key, Value: s, Err: err}
	}
	return &t, nil
}
