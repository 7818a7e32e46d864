package filter

import (
	"fmt"
	"testing"

	"github.com/buzzbyte/animethemes-go/animethemes"
)

// generateTestAnime creates hydrated test records
func generateTestAnime(count int) []*animethemes.Anime {
	seasons := []string{"Winter", "Spring", "Summer", "Fall"}
	anime := make([]*animethemes.Anime, count)

	for i := range anime {
		raw := map[string]any{
			"id":         float64(i),
			"name":       fmt.Sprintf("Anime %d", i),
			"slug":       fmt.Sprintf("anime_%d", i),
			"year":       float64(2000 + i%25),
			"season":     seasons[i%4],
			"created_at": "2020-01-02T03:04:05Z",
			"themes": []any{
				map[string]any{
					"id":   float64(i*10 + 1),
					"slug": "OP1",
					"song": map[string]any{
						"title": fmt.Sprintf("Song %d", i),
						"artists": []any{
							map[string]any{"name": fmt.Sprintf("Artist %d", i%50)},
						},
					},
				},
				map[string]any{"id": float64(i*10 + 2), "slug": "ED1"},
			},
		}

		v, err := animethemes.Hydrate(animethemes.KindAnime, raw)
		if err != nil {
			panic(err)
		}
		anime[i] = v.(*animethemes.Anime)
	}

	return anime
}

// Benchmark filter compilation
func BenchmarkCompileFilter(b *testing.B) {
	expressions := []struct {
		name string
		expr string
	}{
		{"simple", `hasTheme("OP")`},
		{"complex", `hasTheme("OP") and Year > 2015 and hasArtist("Artist 7")`},
	}

	for _, tc := range expressions {
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, err := CompileFilter(tc.expr)
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// Benchmark filter compilation with caching
func BenchmarkCompileFilterWithCache(b *testing.B) {
	compiler := NewExprCompiler(WithCache(100))
	expression := `hasTheme("OP") and Year > 2015`

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, err := compiler.Compile(expression)
		if err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark evaluation over pre-flattened records
func BenchmarkEvaluateFilter(b *testing.B) {
	anime := generateTestAnime(1000)
	infos := make([]AnimeInfo, len(anime))
	for i, a := range anime {
		infos[i] = NewAnimeInfo(a)
	}

	filter, err := CompileFilter(`hasTheme("OP") and Year > 2015`)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		matches := 0
		for _, info := range infos {
			if filter.Evaluate(info) {
				matches++
			}
		}
		_ = matches
	}
}

// Benchmark Apply, which flattens each record on the fly
func BenchmarkApply(b *testing.B) {
	anime := generateTestAnime(1000)

	filter, err := CompileFilter(`Year > 2015 and Season == "Spring"`)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = Apply(filter, anime)
	}
}

// Benchmark helper function performance
func BenchmarkHelperFunctions(b *testing.B) {
	info := NewAnimeInfo(generateTestAnime(1)[0])

	b.Run("hasTheme", func(b *testing.B) {
		hasTheme := createHasThemeFunc(info.ThemeSlugs)
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_ = hasTheme("OP")
		}
	})

	b.Run("hasArtist", func(b *testing.B) {
		hasArtist := createExactMatchFunc(info.Artists)
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_ = hasArtist("Artist 0")
		}
	})

	b.Run("hasSong", func(b *testing.B) {
		hasSong := createHasSongFunc(info.SongTitles)
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_ = hasSong("song")
		}
	})
}
