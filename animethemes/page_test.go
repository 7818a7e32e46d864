package animethemes

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageHydration(t *testing.T) {
	raw := decodeRaw(t, `{
		"data": [{"slug": "a"}, {"slug": "b"}],
		"meta": {"current_page": 3, "per_page": 25, "from": 51, "to": 52},
		"links": {
			"first": "https://animethemes.dev/api/anime?page%5Bnumber%5D=1",
			"next": "https://animethemes.dev/api/anime?page%5Bnumber%5D=4",
			"prev": "https://animethemes.dev/api/anime?page%5Bnumber%5D=2"
		}
	}`)

	page, err := hydratePage(nil, raw, hydrateAnime)
	require.NoError(t, err)

	require.Len(t, page.Items, 2)
	assert.Equal(t, "a", *page.Items[0].Slug)
	assert.Equal(t, "b", *page.Items[1].Slug)

	assert.Equal(t, 3, page.Meta.CurrentPage)
	assert.Equal(t, 25, page.Meta.PerPage)
	assert.Equal(t, 51, page.Meta.From)
	assert.Equal(t, 52, page.Meta.To)

	assert.True(t, page.HasNext())
	assert.True(t, page.HasPrev())
	assert.Empty(t, page.Links.Last)

	assert.Equal(t, raw, page.Raw)
}

func TestPageNavigationWithoutLink(t *testing.T) {
	logger := zerolog.Nop()

	// Any request at all fails the test: absent links must not reach the
	// network.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request to %s", r.URL)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, logger)
	require.NoError(t, err)

	page, err := hydratePage(client, decodeRaw(t, `{"data": [{"slug": "only"}]}`), hydrateAnime)
	require.NoError(t, err)
	assert.False(t, page.HasNext())
	assert.False(t, page.HasPrev())

	ctx := context.Background()
	for name, follow := range map[string]func(context.Context) (*Page[Anime], error){
		"first": page.FirstPage,
		"next":  page.NextPage,
		"prev":  page.PrevPage,
		"last":  page.LastPage,
	} {
		got, err := follow(ctx)
		require.NoError(t, err, name)
		assert.Nil(t, got, name)
	}
}

func TestPageNavigationFollowsLink(t *testing.T) {
	logger := zerolog.Nop()
	var requests []string

	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.URL.String())
		switch r.URL.Query().Get("page[number]") {
		case "2":
			fmt.Fprintf(w, `{
				"data": [{"slug": "third"}, {"slug": "fourth"}],
				"meta": {"current_page": 2, "per_page": 2},
				"links": {"prev": %q}
			}`, server.URL+"/anime?page%5Bnumber%5D=1")
		default:
			fmt.Fprintf(w, `{
				"data": [{"slug": "first"}, {"slug": "second"}],
				"meta": {"current_page": 1, "per_page": 2},
				"links": {"next": %q}
			}`, server.URL+"/anime?page%5Bnumber%5D=2")
		}
	}))
	defer server.Close()

	client, err := NewClient(server.URL, logger)
	require.NoError(t, err)

	ctx := context.Background()
	page, err := client.ListAnime(ctx, nil)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "first", *page.Items[0].Slug)

	// Following the next link issues exactly one more request, to the URL
	// the service handed out.
	next, err := page.NextPage(ctx)
	require.NoError(t, err)
	require.NotNil(t, next)
	require.Len(t, requests, 2)
	assert.Equal(t, "/anime?page%5Bnumber%5D=2", requests[1])

	assert.Equal(t, 2, next.Meta.CurrentPage)
	require.Len(t, next.Items, 2)
	assert.Equal(t, "third", *next.Items[0].Slug)

	// The last page offers no next link; the walk ends without a request.
	assert.False(t, next.HasNext())
	end, err := next.NextPage(ctx)
	require.NoError(t, err)
	assert.Nil(t, end)
	assert.Len(t, requests, 2)

	// And back again through the prev link.
	prev, err := next.PrevPage(ctx)
	require.NoError(t, err)
	require.NotNil(t, prev)
	assert.Equal(t, 1, prev.Meta.CurrentPage)
	assert.Len(t, requests, 3)
}

func TestPageNavigationErrors(t *testing.T) {
	logger := zerolog.Nop()

	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/gone":
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"message": "no such page"}`)
		case "/garbled":
			fmt.Fprint(w, `<html>not json</html>`)
		default:
			fmt.Fprintf(w, `{
				"data": [],
				"links": {"next": %q, "last": %q}
			}`, server.URL+"/gone", server.URL+"/garbled")
		}
	}))
	defer server.Close()

	client, err := NewClient(server.URL, logger)
	require.NoError(t, err)

	ctx := context.Background()
	page, err := client.ListAnime(ctx, nil)
	require.NoError(t, err)

	t.Run("http failure surfaces as APIError", func(t *testing.T) {
		_, err := page.NextPage(ctx)
		require.Error(t, err)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.True(t, apiErr.IsNotFound())
		assert.Contains(t, apiErr.URL, "/gone")
	})

	t.Run("bad body surfaces as InvalidResponseError", func(t *testing.T) {
		_, err := page.LastPage(ctx)
		require.Error(t, err)

		var respErr *InvalidResponseError
		require.ErrorAs(t, err, &respErr)
		assert.Contains(t, respErr.URL, "/garbled")
	})
}

func TestPageMissingSections(t *testing.T) {
	page, err := hydratePage[Anime](nil, decodeRaw(t, `{}`), hydrateAnime)
	require.NoError(t, err)
	assert.Nil(t, page.Items)
	assert.Zero(t, page.Meta)
	assert.Zero(t, page.Links)
}
