// Package animethemes provides a client for the AnimeThemes API.
//
// AnimeThemes is a database of anime opening and ending theme songs and
// their videos. This package maps its JSON REST API into typed Go values:
// every payload is hydrated into per-kind structs whose optional fields
// are pointers, with nested related records built recursively.
//
// # Architecture
//
// The package is organized into several components:
//
//   - Client: the HTTP transport, one GET per call, no credentials
//   - Hydrator: per-kind constructors turning decoded JSON objects into
//     typed records, shared by every endpoint
//   - Page: a generic page of a listing that can follow the navigation
//     links the service embeds in it
//   - Options: query parameter builders for paging, filtering, includes
//     and sparse fieldsets
//   - Errors: structured error types for better error handling
//
// # Usage
//
// Create a client and fetch an anime with its themes and resources:
//
//	logger := zerolog.New(os.Stdout)
//	client, err := animethemes.NewClient("", logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	anime, err := client.GetAnime(ctx, "bakemonogatari", &animethemes.GetOptions{
//		Include: []string{"themes.song", "resources"},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if id, ok := anime.ExternalID("MAL"); ok {
//		fmt.Println("MyAnimeList id:", id)
//	}
//
// Walk a listing page by page:
//
//	page, err := client.ListAnime(ctx, &animethemes.AnimeListOptions{Year: 2020})
//	for err == nil && page != nil {
//		for _, a := range page.Items {
//			fmt.Println(a.DisplayTitle())
//		}
//		page, err = page.NextPage(ctx)
//	}
//
// # Error Handling
//
// The package defines several error types:
//
//   - APIError: non-2xx responses, with status classification helpers
//   - InvalidResponseError: bodies that are not the promised JSON
//   - TimestampError: timestamp fields that cannot be parsed
//
// Anything else the service sends oddly shaped is tolerated: unknown
// keys are ignored and mistyped optional fields stay nil, so the client
// keeps working across API drift.
package animethemes
