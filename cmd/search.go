package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/buzzbyte/animethemes-go/animethemes"
)

var (
	searchLimit  int
	searchFields []string
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the catalog across all resource types",
	Long: `Search anime, artists, songs, themes and the other resource types in a
single request. Results come back grouped per type; --in restricts which
groups the service fills in.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().IntVarP(&searchLimit, "limit", "l", 0, "results per type (1-5)")
	searchCmd.Flags().StringSliceVar(&searchFields, "in", nil, "restrict results to these types (e.g. anime,songs)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	query := args[0]

	logger.Info().Str("query", query).Msg("Searching catalog")

	var opts *animethemes.SearchOptions
	if searchLimit > 0 || len(searchFields) > 0 {
		opts = &animethemes.SearchOptions{
			Limit:  searchLimit,
			Fields: searchFields,
		}
	}

	result, err := client.Search(ctx, query, opts)
	if err != nil {
		return err
	}

	total := len(result.Anime) + len(result.Artists) + len(result.Entries) +
		len(result.Series) + len(result.Songs) + len(result.Synonyms) +
		len(result.Themes) + len(result.Videos)
	if total == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Printf("Found %d results for %q:\n", total, query)

	if len(result.Anime) > 0 {
		fmt.Printf("\nAnime:\n")
		for _, a := range result.Anime {
			fmt.Printf("  • %s\n", a.DisplayTitle())
		}
	}
	if len(result.Artists) > 0 {
		fmt.Printf("\nArtists:\n")
		for _, ar := range result.Artists {
			fmt.Printf("  • %s\n", strOr(ar.Name, "unnamed artist"))
		}
	}
	if len(result.Songs) > 0 {
		fmt.Printf("\nSongs:\n")
		for _, s := range result.Songs {
			fmt.Printf("  • %s\n", strOr(s.Title, "untitled"))
		}
	}
	if len(result.Themes) > 0 {
		fmt.Printf("\nThemes:\n")
		for _, t := range result.Themes {
			line := strOr(t.Slug, "?")
			if t.Song != nil && t.Song.Title != nil {
				line = fmt.Sprintf("%s %q", line, *t.Song.Title)
			}
			if t.Anime != nil && t.Anime.Name != nil {
				line = fmt.Sprintf("%s (%s)", line, *t.Anime.Name)
			}
			fmt.Printf("  • %s\n", line)
		}
	}
	if len(result.Entries) > 0 {
		fmt.Printf("\nEntries:\n")
		for _, e := range result.Entries {
			line := fmt.Sprintf("entry %d, version %d", intOr(e.ID, 0), intOr(e.Version, 1))
			if e.Episodes != nil && *e.Episodes != "" {
				line = fmt.Sprintf("%s (episodes %s)", line, *e.Episodes)
			}
			fmt.Printf("  • %s\n", line)
		}
	}
	if len(result.Series) > 0 {
		fmt.Printf("\nSeries:\n")
		for _, s := range result.Series {
			fmt.Printf("  • %s\n", strOr(s.Name, "unnamed series"))
		}
	}
	if len(result.Synonyms) > 0 {
		fmt.Printf("\nSynonyms:\n")
		for _, s := range result.Synonyms {
			fmt.Printf("  • %s\n", strOr(s.Text, ""))
		}
	}
	if len(result.Videos) > 0 {
		fmt.Printf("\nVideos:\n")
		for _, v := range result.Videos {
			line := strOr(v.Basename, "?")
			if v.Resolution != nil {
				line = fmt.Sprintf("%s (%dp)", line, *v.Resolution)
			}
			fmt.Printf("  • %s\n", line)
		}
	}

	return nil
}
