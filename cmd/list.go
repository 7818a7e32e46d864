package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/buzzbyte/animethemes-go/animethemes"
	"github.com/buzzbyte/animethemes-go/filter"
)

var (
	listYear   int
	listSeason string
	listPages  int
	listSort   string
	filterExpr string
	presetName string
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List anime, following pagination",
	Long: `Walk the /anime listing page by page. Server-side narrowing uses
--year and --season; client-side narrowing evaluates a filter expression
(or a named preset from config) against each hydrated record.`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().IntVar(&listYear, "year", 0, "filter by airing year (server-side)")
	listCmd.Flags().StringVar(&listSeason, "season", "", "filter by airing season (server-side)")
	listCmd.Flags().IntVar(&listPages, "pages", 1, "number of pages to fetch (0 for all)")
	listCmd.Flags().StringVar(&listSort, "sort", "", "sort key, e.g. name or -year")
	listCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "client-side filter expression")
	listCmd.Flags().StringVarP(&presetName, "preset", "p", "", "use a preset filter from config")
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	expr, err := getFilterExpression()
	if err != nil {
		return err
	}

	predicate, err := filter.ParseAndCreateFilter(expr)
	if err != nil {
		return fmt.Errorf("invalid filter expression: %w", err)
	}

	opt := &animethemes.AnimeListOptions{
		Year:   listYear,
		Season: listSeason,
		ListOptions: animethemes.ListOptions{
			Sort:    listSort,
			Include: []string{"themes.song.artists", "resources"},
		},
	}

	logger.Info().
		Int("year", listYear).
		Str("season", listSeason).
		Str("filter", expr).
		Msg("Listing anime")

	page, err := client.ListAnime(ctx, opt)
	if err != nil {
		return err
	}

	matched, scanned := 0, 0
	for fetched := 1; page != nil; fetched++ {
		for _, a := range page.Items {
			scanned++
			if !predicate(filter.NewAnimeInfo(a)) {
				continue
			}
			matched++
			printAnimeLine(a)
		}

		if listPages > 0 && fetched >= listPages {
			break
		}
		page, err = page.NextPage(ctx)
		if err != nil {
			return err
		}
	}

	if matched == 0 {
		fmt.Println("No anime found matching the criteria.")
		return nil
	}

	fmt.Printf("\n%d of %d scanned anime matched.\n", matched, scanned)
	return nil
}

func printAnimeLine(a *animethemes.Anime) {
	line := a.DisplayTitle()
	if summary := themeSummary(a); summary != "" {
		line = fmt.Sprintf("%s [%s]", line, summary)
	}
	fmt.Printf("• %s\n", line)
}

func themeSummary(a *animethemes.Anime) string {
	ops, eds := 0, 0
	for _, t := range a.Themes {
		switch strings.ToUpper(strOr(t.Type, "")) {
		case "OP":
			ops++
		case "ED":
			eds++
		}
	}
	if ops == 0 && eds == 0 {
		return ""
	}
	return fmt.Sprintf("%d OP, %d ED", ops, eds)
}

// getFilterExpression determines the filter expression to use
func getFilterExpression() (string, error) {
	// Priority: command line filter > preset > match-all
	if filterExpr != "" {
		if presetName != "" {
			return "", fmt.Errorf("--filter and --preset are mutually exclusive")
		}
		return filterExpr, nil
	}

	if presetName != "" {
		preset, ok := presets.GetFilter(presetName)
		if !ok {
			return "", fmt.Errorf("preset '%s' not found in config", presetName)
		}
		return preset.Expression(), nil
	}

	return "", nil
}
