package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/buzzbyte/animethemes-go/animethemes"
)

var yearFull bool

// yearCmd represents the year command
var yearCmd = &cobra.Command{
	Use:   "year [year]",
	Short: "Show the year index or one year's season buckets",
	Long: `Without an argument, print every year the catalog knows about. With a
year, print that year's anime grouped by airing season. --full re-fetches
each listed anime with its themes and artists included, a few at a time.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runYear,
}

func init() {
	rootCmd.AddCommand(yearCmd)

	yearCmd.Flags().BoolVar(&yearFull, "full", false, "fetch each listed anime in full (themes, artists, resources)")
}

func runYear(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if len(args) == 0 {
		years, err := client.ListYears(ctx)
		if err != nil {
			return err
		}
		if len(years) == 0 {
			fmt.Println("No years found.")
			return nil
		}
		for i, y := range years {
			if i > 0 && i%10 == 0 {
				fmt.Println()
			}
			fmt.Printf("%d  ", y)
		}
		fmt.Println()
		return nil
	}

	year, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid year %q", args[0])
	}

	logger.Info().Int("year", year).Msg("Fetching season buckets")

	seasons, err := client.GetYear(ctx, year, nil)
	if err != nil {
		return err
	}

	if len(seasons.All()) == 0 {
		fmt.Printf("No anime found for %d.\n", year)
		return nil
	}

	if yearFull {
		if err := enrichSeasons(ctx, seasons); err != nil {
			return err
		}
	}

	printSeason("Winter", seasons.Winter)
	printSeason("Spring", seasons.Spring)
	printSeason("Summer", seasons.Summer)
	printSeason("Fall", seasons.Fall)
	printSeason("Unscheduled", seasons.NoSeason)

	fmt.Printf("\n%d anime in %d.\n", len(seasons.All()), year)
	return nil
}

func printSeason(name string, anime []*animethemes.Anime) {
	if len(anime) == 0 {
		return
	}
	fmt.Printf("\n%s (%d):\n", name, len(anime))
	for _, a := range anime {
		printAnimeLine(a)
	}
}

// enrichSeasons swaps each bucketed record for a fully included fetch.
// The fan-out lives here in the CLI; every client call is still a single
// HTTP request.
func enrichSeasons(ctx context.Context, seasons *animethemes.SeasonResult) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for _, bucket := range [][]*animethemes.Anime{
		seasons.Winter, seasons.Spring, seasons.Summer, seasons.Fall, seasons.NoSeason,
	} {
		bucket := bucket
		for i, a := range bucket {
			if a.Slug == nil {
				continue
			}
			i := i
			slug := *a.Slug
			g.Go(func() error {
				full, err := client.GetAnime(ctx, slug, &animethemes.GetOptions{Include: animeIncludes})
				if err != nil {
					return fmt.Errorf("failed to fetch %s: %w", slug, err)
				}
				bucket[i] = full
				return nil
			})
		}
	}

	return g.Wait()
}
