package animethemes

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

// newRecordingClient returns a client against a stub server that records
// the last request it saw.
func newRecordingClient(t *testing.T) (*Client, *string, *url.Values) {
	t.Helper()

	var lastPath string
	var lastQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		lastPath = r.URL.Path
		lastQuery = r.URL.Query()
		if r.URL.Path == "/year" {
			fmt.Fprint(w, `[2009, 2010, 2011]`)
			return
		}
		fmt.Fprint(w, `{"data": []}`)
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL, zerolog.Nop())
	require.NoError(t, err)
	return client, &lastPath, &lastQuery
}

func TestEndpointPaths(t *testing.T) {
	client, lastPath, _ := newRecordingClient(t)
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
		want string
	}{
		{"list announcements", func() error {
			_, err := client.ListAnnouncements(ctx, nil)
			return err
		}, "/announcement"},
		{"get announcement", func() error {
			_, err := client.GetAnnouncement(ctx, 3, nil)
			return err
		}, "/announcement/3"},
		{"list anime", func() error {
			_, err := client.ListAnime(ctx, nil)
			return err
		}, "/anime"},
		{"get anime", func() error {
			_, err := client.GetAnime(ctx, "bakemonogatari", nil)
			return err
		}, "/anime/bakemonogatari"},
		{"list artists", func() error {
			_, err := client.ListArtists(ctx, nil)
			return err
		}, "/artist"},
		{"get artist", func() error {
			_, err := client.GetArtist(ctx, "supercell", nil)
			return err
		}, "/artist/supercell"},
		{"list entries", func() error {
			_, err := client.ListEntries(ctx, nil)
			return err
		}, "/entry"},
		{"get entry", func() error {
			_, err := client.GetEntry(ctx, 42, nil)
			return err
		}, "/entry/42"},
		{"list resources", func() error {
			_, err := client.ListResources(ctx, nil)
			return err
		}, "/resource"},
		{"get resource", func() error {
			_, err := client.GetResource(ctx, 7, nil)
			return err
		}, "/resource/7"},
		{"list series", func() error {
			_, err := client.ListSeries(ctx, nil)
			return err
		}, "/series"},
		{"get series", func() error {
			_, err := client.GetSeries(ctx, "monogatari", nil)
			return err
		}, "/series/monogatari"},
		{"list songs", func() error {
			_, err := client.ListSongs(ctx, nil)
			return err
		}, "/song"},
		{"get song", func() error {
			_, err := client.GetSong(ctx, 9, nil)
			return err
		}, "/song/9"},
		{"list synonyms", func() error {
			_, err := client.ListSynonyms(ctx, nil)
			return err
		}, "/synonym"},
		{"get synonym", func() error {
			_, err := client.GetSynonym(ctx, 11, nil)
			return err
		}, "/synonym/11"},
		{"list themes", func() error {
			_, err := client.ListThemes(ctx, nil)
			return err
		}, "/theme"},
		{"get theme", func() error {
			_, err := client.GetTheme(ctx, 13, nil)
			return err
		}, "/theme/13"},
		{"list videos", func() error {
			_, err := client.ListVideos(ctx, nil)
			return err
		}, "/video"},
		{"get video", func() error {
			_, err := client.GetVideo(ctx, "Bakemonogatari-OP1.webm", nil)
			return err
		}, "/video/Bakemonogatari-OP1.webm"},
		{"get year", func() error {
			_, err := client.GetYear(ctx, 2009, nil)
			return err
		}, "/year/2009"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.call())
			assert.Equal(t, tt.want, *lastPath)
		})
	}
}

func TestListQueryEncoding(t *testing.T) {
	client, _, lastQuery := newRecordingClient(t)
	ctx := context.Background()

	t.Run("anime filters and paging", func(t *testing.T) {
		_, err := client.ListAnime(ctx, &AnimeListOptions{
			Year:   2009,
			Season: "Summer",
			ListOptions: ListOptions{
				Page:    2,
				PerPage: 50,
				Sort:    "name",
				Include: []string{"themes", "resources"},
			},
		})
		require.NoError(t, err)

		q := *lastQuery
		assert.Equal(t, "2009", q.Get("filter[year]"))
		assert.Equal(t, "Summer", q.Get("filter[season]"))
		assert.Equal(t, "2", q.Get("page[number]"))
		assert.Equal(t, "50", q.Get("page[size]"))
		assert.Equal(t, "name", q.Get("sort"))
		assert.Equal(t, "themes,resources", q.Get("include"))
	})

	t.Run("zero values are omitted", func(t *testing.T) {
		_, err := client.ListAnime(ctx, &AnimeListOptions{})
		require.NoError(t, err)
		assert.Empty(t, *lastQuery)
	})

	t.Run("tri-state booleans", func(t *testing.T) {
		_, err := client.ListEntries(ctx, &EntryListOptions{
			Version: 2,
			NSFW:    boolPtr(false),
		})
		require.NoError(t, err)

		q := *lastQuery
		assert.Equal(t, "2", q.Get("filter[version]"))
		assert.Equal(t, "false", q.Get("filter[nsfw]"))
		assert.False(t, q.Has("filter[spoiler]"))
	})

	t.Run("video filters", func(t *testing.T) {
		_, err := client.ListVideos(ctx, &VideoListOptions{
			Resolution: 1080,
			NC:         boolPtr(true),
			Source:     "BD",
			Overlap:    "None",
		})
		require.NoError(t, err)

		q := *lastQuery
		assert.Equal(t, "1080", q.Get("filter[resolution]"))
		assert.Equal(t, "true", q.Get("filter[nc]"))
		assert.Equal(t, "BD", q.Get("filter[source]"))
		assert.Equal(t, "None", q.Get("filter[overlap]"))
		assert.False(t, q.Has("filter[subbed]"))
	})

	t.Run("theme filters", func(t *testing.T) {
		_, err := client.ListThemes(ctx, &ThemeListOptions{
			Type:     "OP",
			Sequence: 1,
			Group:    "English Dub",
		})
		require.NoError(t, err)

		q := *lastQuery
		assert.Equal(t, "OP", q.Get("filter[type]"))
		assert.Equal(t, "1", q.Get("filter[sequence]"))
		assert.Equal(t, "English Dub", q.Get("filter[group]"))
	})

	t.Run("sparse fieldsets", func(t *testing.T) {
		_, err := client.GetAnime(ctx, "x", &GetOptions{
			Include: []string{"themes.song"},
			Fields: FieldSet{
				"anime": {"name", "slug"},
				"song":  {"title"},
			},
		})
		require.NoError(t, err)

		q := *lastQuery
		assert.Equal(t, "themes.song", q.Get("include"))
		assert.Equal(t, "name,slug", q.Get("fields[anime]"))
		assert.Equal(t, "title", q.Get("fields[song]"))
	})
}

func TestSearch(t *testing.T) {
	logger := zerolog.Nop()

	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		gotQuery = r.URL.Query()
		fmt.Fprint(w, `{
			"anime": [{"slug": "bakemonogatari"}],
			"songs": [{"title": "staple stable"}]
		}`)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, logger)
	require.NoError(t, err)

	result, err := client.Search(context.Background(), "monogatari", &SearchOptions{
		Limit:  3,
		Fields: []string{"anime", "songs"},
	})
	require.NoError(t, err)

	assert.Equal(t, "monogatari", gotQuery.Get("q"))
	assert.Equal(t, "3", gotQuery.Get("limit"))
	assert.Equal(t, "anime,songs", gotQuery.Get("fields"))

	require.Len(t, result.Anime, 1)
	assert.Equal(t, "bakemonogatari", *result.Anime[0].Slug)
	require.Len(t, result.Songs, 1)
	assert.Nil(t, result.Artists)
}

func TestListYears(t *testing.T) {
	client, lastPath, _ := newRecordingClient(t)

	years, err := client.ListYears(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/year", *lastPath)
	assert.Equal(t, []int{2009, 2010, 2011}, years)
}

func TestGetYearBuckets(t *testing.T) {
	logger := zerolog.Nop()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/year/2009", r.URL.Path)
		fmt.Fprint(w, `{
			"winter": [{"slug": "w"}],
			"spring": [],
			"summer": [{"slug": "bakemonogatari"}],
			"fall": [{"slug": "f"}],
			"": [{"slug": "unknown"}]
		}`)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, logger)
	require.NoError(t, err)

	seasons, err := client.GetYear(context.Background(), 2009, nil)
	require.NoError(t, err)

	require.Len(t, seasons.Summer, 1)
	assert.Equal(t, "bakemonogatari", *seasons.Summer[0].Slug)
	require.Len(t, seasons.NoSeason, 1)
	assert.Equal(t, "unknown", *seasons.NoSeason[0].Slug)
	assert.Empty(t, seasons.Spring)
	assert.Len(t, seasons.All(), 4)
}
