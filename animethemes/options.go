package animethemes

import (
	"net/url"
	"strings"

	"github.com/google/go-querystring/query"
)

// FieldSet selects sparse fieldsets per resource type, encoded as
// fields[type]=a,b per the API's nested parameter convention.
type FieldSet map[string][]string

// EncodeValues implements query.Encoder.
func (fs FieldSet) EncodeValues(key string, v *url.Values) error {
	for typ, fields := range fs {
		if len(fields) == 0 {
			continue
		}
		v.Set(key+"["+typ+"]", strings.Join(fields, ","))
	}
	return nil
}

// GetOptions carries the controls single-record endpoints accept.
type GetOptions struct {
	// Include names related resources to nest into the record. Dotted
	// paths reach deeper, for example "themes.entries.videos".
	Include []string `url:"include,comma,omitempty"`
	// Fields trims each resource type to the named fields.
	Fields FieldSet `url:"fields,omitempty"`
}

// ListOptions carries the controls every list endpoint accepts.
type ListOptions struct {
	// Page selects the page number within the listing.
	Page int `url:"page[number],omitempty"`
	// PerPage bounds how many records one page holds.
	PerPage int `url:"page[size],omitempty"`
	// Include names related resources to nest into each record.
	Include []string `url:"include,comma,omitempty"`
	// Sort orders the listing by the named record fields.
	Sort string `url:"sort,omitempty"`
	// Fields trims each resource type to the named fields.
	Fields FieldSet `url:"fields,omitempty"`
}

// AnimeListOptions filters the anime listing.
type AnimeListOptions struct {
	// Year keeps only anime that premiered in the given year.
	Year int `url:"filter[year],omitempty"`
	// Season keeps only anime of one season: Winter, Spring, Summer, Fall.
	Season string `url:"filter[season],omitempty"`

	ListOptions
}

// EntryListOptions filters the entry listing.
type EntryListOptions struct {
	Version int `url:"filter[version],omitempty"`
	// NSFW and Spoiler are tri-state: nil leaves the filter off.
	NSFW    *bool `url:"filter[nsfw],omitempty"`
	Spoiler *bool `url:"filter[spoiler],omitempty"`

	ListOptions
}

// ResourceListOptions filters the external resource listing.
type ResourceListOptions struct {
	// Type keeps only links of one external site, such as "mal",
	// "anilist", "anidb", "twitter" or "official_site".
	Type string `url:"filter[type],omitempty"`

	ListOptions
}

// ThemeListOptions filters the theme listing.
type ThemeListOptions struct {
	// Type keeps only themes of one kind: OP or ED.
	Type     string `url:"filter[type],omitempty"`
	Sequence int    `url:"filter[sequence],omitempty"`
	Group    string `url:"filter[group],omitempty"`

	ListOptions
}

// VideoListOptions filters the video listing.
type VideoListOptions struct {
	Resolution int `url:"filter[resolution],omitempty"`
	// NC, Subbed and Lyrics are tri-state: nil leaves the filter off.
	NC     *bool `url:"filter[nc],omitempty"`
	Subbed *bool `url:"filter[subbed],omitempty"`
	Lyrics *bool `url:"filter[lyrics],omitempty"`
	// Source keeps only one rip source: WEB, RAW, BD, DVD, VHS.
	Source string `url:"filter[source],omitempty"`
	// Overlap keeps only one credit overlap style: None, Trans, Over.
	Overlap string `url:"filter[overlap],omitempty"`

	ListOptions
}

// SearchOptions tunes the global search endpoint.
type SearchOptions struct {
	// Limit bounds how many records each result group holds; the API
	// accepts 1 through 5.
	Limit int `url:"limit,omitempty"`
	// Fields names the result groups to search: anime, artists, entries,
	// series, songs, synonyms, themes, videos.
	Fields []string `url:"fields,comma,omitempty"`
}

// queryValues encodes an options struct into URL query parameters. Nil
// options are allowed and encode to nothing.
func queryValues(opt any) (url.Values, error) {
	if opt == nil {
		return nil, nil
	}
	return query.Values(opt)
}
