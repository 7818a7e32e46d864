package animethemes

import (
	"context"
)

// PageMeta describes where a page sits within its listing.
type PageMeta struct {
	CurrentPage int
	PerPage     int
	From        int
	To          int
}

// PageLinks holds the absolute navigation URLs of a page. An empty field
// means the service offered no such page.
type PageLinks struct {
	First string
	Next  string
	Prev  string
	Last  string
}

// Page represents one page of a list endpoint plus everything needed to
// walk to its neighbors. Navigation follows the URLs the service put in
// the page; a Page never computes page numbers itself.
type Page[T any] struct {
	Items []*T
	Meta  PageMeta
	Links PageLinks

	// Raw is the decoded page object Items was built from.
	Raw map[string]any

	client  *Client
	hydrate func(map[string]any) (*T, error)
}

// hydratePage builds a Page from a decoded page object, running each
// element of the data array through the given constructor.
func hydratePage[T any](c *Client, raw map[string]any, build func(map[string]any) (*T, error)) (*Page[T], error) {
	p := &Page[T]{
		Raw:     raw,
		client:  c,
		hydrate: build,
	}

	if arr, ok := raw["data"].([]any); ok {
		items, err := hydrateList(arr, build)
		if err != nil {
			return nil, err
		}
		p.Items = items
	}

	if meta, ok := raw["meta"].(map[string]any); ok {
		p.Meta = PageMeta{
			CurrentPage: intValue(meta, "current_page"),
			PerPage:     intValue(meta, "per_page"),
			From:        intValue(meta, "from"),
			To:          intValue(meta, "to"),
		}
	}

	if links, ok := raw["links"].(map[string]any); ok {
		p.Links = PageLinks{
			First: stringValue(links, "first"),
			Next:  stringValue(links, "next"),
			Prev:  stringValue(links, "prev"),
			Last:  stringValue(links, "last"),
		}
	}

	return p, nil
}

// FirstPage follows the page's first link. It returns (nil, nil) when the
// service offered no such page; no request is issued in that case.
func (p *Page[T]) FirstPage(ctx context.Context) (*Page[T], error) {
	return p.follow(ctx, p.Links.First)
}

// NextPage follows the page's next link. It returns (nil, nil) when the
// service offered no such page; no request is issued in that case.
func (p *Page[T]) NextPage(ctx context.Context) (*Page[T], error) {
	return p.follow(ctx, p.Links.Next)
}

// PrevPage follows the page's prev link. It returns (nil, nil) when the
// service offered no such page; no request is issued in that case.
func (p *Page[T]) PrevPage(ctx context.Context) (*Page[T], error) {
	return p.follow(ctx, p.Links.Prev)
}

// LastPage follows the page's last link. It returns (nil, nil) when the
// service offered no such page; no request is issued in that case.
func (p *Page[T]) LastPage(ctx context.Context) (*Page[T], error) {
	return p.follow(ctx, p.Links.Last)
}

// HasNext reports whether the service offered a next page.
func (p *Page[T]) HasNext() bool {
	return p.Links.Next != ""
}

// HasPrev reports whether the service offered a previous page.
func (p *Page[T]) HasPrev() bool {
	return p.Links.Prev != ""
}

// follow issues exactly one GET to a navigation link and hydrates the
// result as a fresh page of the same element type.
func (p *Page[T]) follow(ctx context.Context, link string) (*Page[T], error) {
	if link == "" {
		return nil, nil
	}
	body, err := p.client.getURL(ctx, link)
	if err != nil {
		return nil, err
	}
	raw, err := decodeObject(link, body)
	if err != nil {
		return nil, err
	}
	return hydratePage(p.client, raw, p.hydrate)
}

// intValue reads an integer field as a plain int, zero when absent.
func intValue(raw map[string]any, key string) int {
	f, _ := raw[key].(float64)
	return int(f)
}

// stringValue reads a string field as a plain string, empty when absent.
func stringValue(raw map[string]any, key string) string {
	s, _ := raw[key].(string)
	return s
}
