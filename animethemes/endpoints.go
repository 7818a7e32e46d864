package animethemes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// listPage GETs a list endpoint and hydrates one page of it with the
// given element constructor.
func listPage[T any](ctx context.Context, c *Client, endpoint string, opt any, build func(map[string]any) (*T, error)) (*Page[T], error) {
	params, err := queryValues(opt)
	if err != nil {
		return nil, fmt.Errorf("failed to encode query options: %w", err)
	}
	raw, err := c.getObject(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}
	return hydratePage(c, raw, build)
}

// getRecord GETs a single-record endpoint and hydrates the record.
func getRecord[T any](ctx context.Context, c *Client, endpoint string, opt *GetOptions, build func(map[string]any) (*T, error)) (*T, error) {
	params, err := queryValues(opt)
	if err != nil {
		return nil, fmt.Errorf("failed to encode query options: %w", err)
	}
	raw, err := c.getObject(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}
	return build(raw)
}

// ListAnnouncements returns one page of site announcements.
func (c *Client) ListAnnouncements(ctx context.Context, opt *ListOptions) (*Page[Announcement], error) {
	return listPage(ctx, c, "/announcement", opt, hydrateAnnouncement)
}

// GetAnnouncement returns the announcement with the given id.
func (c *Client) GetAnnouncement(ctx context.Context, id int, opt *GetOptions) (*Announcement, error) {
	return getRecord(ctx, c, "/announcement/"+strconv.Itoa(id), opt, hydrateAnnouncement)
}

// ListAnime returns one page of the anime catalog.
func (c *Client) ListAnime(ctx context.Context, opt *AnimeListOptions) (*Page[Anime], error) {
	return listPage(ctx, c, "/anime", opt, hydrateAnime)
}

// GetAnime returns the anime with the given slug.
func (c *Client) GetAnime(ctx context.Context, slug string, opt *GetOptions) (*Anime, error) {
	return getRecord(ctx, c, "/anime/"+url.PathEscape(slug), opt, hydrateAnime)
}

// ListArtists returns one page of artists.
func (c *Client) ListArtists(ctx context.Context, opt *ListOptions) (*Page[Artist], error) {
	return listPage(ctx, c, "/artist", opt, hydrateArtist)
}

// GetArtist returns the artist with the given slug.
func (c *Client) GetArtist(ctx context.Context, slug string, opt *GetOptions) (*Artist, error) {
	return getRecord(ctx, c, "/artist/"+url.PathEscape(slug), opt, hydrateArtist)
}

// ListEntries returns one page of theme entries.
func (c *Client) ListEntries(ctx context.Context, opt *EntryListOptions) (*Page[Entry], error) {
	return listPage(ctx, c, "/entry", opt, hydrateEntry)
}

// GetEntry returns the theme entry with the given id.
func (c *Client) GetEntry(ctx context.Context, id int, opt *GetOptions) (*Entry, error) {
	return getRecord(ctx, c, "/entry/"+strconv.Itoa(id), opt, hydrateEntry)
}

// ListResources returns one page of external site links.
func (c *Client) ListResources(ctx context.Context, opt *ResourceListOptions) (*Page[ExternalLink], error) {
	return listPage(ctx, c, "/resource", opt, hydrateExternalLink)
}

// GetResource returns the external site link with the given id.
func (c *Client) GetResource(ctx context.Context, id int, opt *GetOptions) (*ExternalLink, error) {
	return getRecord(ctx, c, "/resource/"+strconv.Itoa(id), opt, hydrateExternalLink)
}

// ListSeries returns one page of series.
func (c *Client) ListSeries(ctx context.Context, opt *ListOptions) (*Page[Series], error) {
	return listPage(ctx, c, "/series", opt, hydrateSeries)
}

// GetSeries returns the series with the given slug.
func (c *Client) GetSeries(ctx context.Context, slug string, opt *GetOptions) (*Series, error) {
	return getRecord(ctx, c, "/series/"+url.PathEscape(slug), opt, hydrateSeries)
}

// ListSongs returns one page of songs.
func (c *Client) ListSongs(ctx context.Context, opt *ListOptions) (*Page[Song], error) {
	return listPage(ctx, c, "/song", opt, hydrateSong)
}

// GetSong returns the song with the given id.
func (c *Client) GetSong(ctx context.Context, id int, opt *GetOptions) (*Song, error) {
	return getRecord(ctx, c, "/song/"+strconv.Itoa(id), opt, hydrateSong)
}

// ListSynonyms returns one page of anime title synonyms.
func (c *Client) ListSynonyms(ctx context.Context, opt *ListOptions) (*Page[Synonym], error) {
	return listPage(ctx, c, "/synonym", opt, hydrateSynonym)
}

// GetSynonym returns the synonym with the given id.
func (c *Client) GetSynonym(ctx context.Context, id int, opt *GetOptions) (*Synonym, error) {
	return getRecord(ctx, c, "/synonym/"+strconv.Itoa(id), opt, hydrateSynonym)
}

// ListThemes returns one page of opening and ending themes.
func (c *Client) ListThemes(ctx context.Context, opt *ThemeListOptions) (*Page[Theme], error) {
	return listPage(ctx, c, "/theme", opt, hydrateTheme)
}

// GetTheme returns the theme with the given id.
func (c *Client) GetTheme(ctx context.Context, id int, opt *GetOptions) (*Theme, error) {
	return getRecord(ctx, c, "/theme/"+strconv.Itoa(id), opt, hydrateTheme)
}

// ListVideos returns one page of theme videos.
func (c *Client) ListVideos(ctx context.Context, opt *VideoListOptions) (*Page[Video], error) {
	return listPage(ctx, c, "/video", opt, hydrateVideo)
}

// GetVideo returns the video with the given basename.
func (c *Client) GetVideo(ctx context.Context, basename string, opt *GetOptions) (*Video, error) {
	return getRecord(ctx, c, "/video/"+url.PathEscape(basename), opt, hydrateVideo)
}

// Search returns the records matching a query, grouped by resource kind.
func (c *Client) Search(ctx context.Context, q string, opt *SearchOptions) (*SearchResult, error) {
	params, err := queryValues(opt)
	if err != nil {
		return nil, fmt.Errorf("failed to encode query options: %w", err)
	}
	if params == nil {
		params = url.Values{}
	}
	params.Set("q", q)

	raw, err := c.getObject(ctx, "/search", params)
	if err != nil {
		return nil, err
	}
	return hydrateSearch(raw)
}

// ListYears returns every year the catalog has anime for.
func (c *Client) ListYears(ctx context.Context) ([]int, error) {
	u := c.requestURL("/year", nil)
	body, err := c.getURL(ctx, u)
	if err != nil {
		return nil, err
	}

	var years []int
	if err := json.Unmarshal(body, &years); err != nil {
		return nil, &InvalidResponseError{URL: u, Err: err}
	}
	return years, nil
}

// GetYear returns one year's anime bucketed by airing season.
func (c *Client) GetYear(ctx context.Context, year int, opt *GetOptions) (*SeasonResult, error) {
	params, err := queryValues(opt)
	if err != nil {
		return nil, fmt.Errorf("failed to encode query options: %w", err)
	}
	raw, err := c.getObject(ctx, "/year/"+strconv.Itoa(year), params)
	if err != nil {
		return nil, err
	}
	return hydrateSeasons(raw)
}
