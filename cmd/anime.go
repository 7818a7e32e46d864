package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/buzzbyte/animethemes-go/animethemes"
)

var animeRaw bool

// animeIncludes pulls in everything the detail view renders.
var animeIncludes = []string{
	"themes.song.artists",
	"themes.entries.videos",
	"resources",
	"series",
	"synonyms",
}

// animeCmd represents the anime command
var animeCmd = &cobra.Command{
	Use:   "anime <slug>",
	Short: "Show one anime with its themes and external site links",
	Long: `Fetch a single anime by slug and print its theme songs, artists,
synonyms and known external site IDs.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnime,
}

func init() {
	rootCmd.AddCommand(animeCmd)

	animeCmd.Flags().BoolVar(&animeRaw, "raw", false, "dump the raw JSON payload instead of formatting")
}

func runAnime(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	slug := args[0]

	logger.Info().Str("slug", slug).Msg("Fetching anime")

	a, err := client.GetAnime(ctx, slug, &animethemes.GetOptions{Include: animeIncludes})
	if err != nil {
		return err
	}

	if animeRaw {
		out, err := json.MarshalIndent(a.Raw, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to render raw payload: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Println(a.DisplayTitle())
	fmt.Println(strings.Repeat("-", 80))

	if a.Synopsis != nil && *a.Synopsis != "" {
		fmt.Printf("%s\n", *a.Synopsis)
	}

	if names := synonymTexts(a); len(names) > 0 {
		fmt.Printf("\nAlso known as: %s\n", strings.Join(names, ", "))
	}
	if names := seriesNames(a); len(names) > 0 {
		fmt.Printf("Series: %s\n", strings.Join(names, ", "))
	}

	if len(a.Themes) > 0 {
		fmt.Printf("\nThemes:\n")
		for _, t := range a.Themes {
			line := strOr(t.Slug, "?")
			if t.Song != nil {
				if t.Song.Title != nil {
					line = fmt.Sprintf("%s %q", line, *t.Song.Title)
				}
				if artists := artistNames(t.Song); len(artists) > 0 {
					line = fmt.Sprintf("%s by %s", line, strings.Join(artists, ", "))
				}
			}
			if n := themeVideoCount(t); n > 0 {
				line = fmt.Sprintf("%s [%d videos]", line, n)
			}
			fmt.Printf("  • %s\n", line)
		}
	}

	var idLines []string
	for _, site := range []string{"MyAnimeList", "AniList", "AniDB"} {
		if id, ok := a.ExternalID(site); ok {
			idLines = append(idLines, fmt.Sprintf("%s: %s", site, id))
		}
	}
	if len(idLines) > 0 {
		fmt.Printf("\nExternal IDs:\n")
		for _, line := range idLines {
			fmt.Printf("  • %s\n", line)
		}
	}

	if len(a.Resources) > 0 {
		fmt.Printf("\nLinks:\n")
		for _, r := range a.Resources {
			if r.Link == nil {
				continue
			}
			line := *r.Link
			if r.Site != nil {
				line = fmt.Sprintf("%s (%s)", line, *r.Site)
			}
			fmt.Printf("  • %s\n", line)
		}
	}

	return nil
}

func synonymTexts(a *animethemes.Anime) []string {
	names := make([]string, 0, len(a.Synonyms))
	for _, s := range a.Synonyms {
		if s.Text != nil && *s.Text != "" {
			names = append(names, *s.Text)
		}
	}
	return names
}

func seriesNames(a *animethemes.Anime) []string {
	names := make([]string, 0, len(a.Series))
	for _, s := range a.Series {
		if s.Name != nil {
			names = append(names, *s.Name)
		}
	}
	return names
}

func artistNames(s *animethemes.Song) []string {
	names := make([]string, 0, len(s.Artists))
	for _, ar := range s.Artists {
		if ar.Name != nil {
			names = append(names, *ar.Name)
		}
	}
	return names
}

func themeVideoCount(t *animethemes.Theme) int {
	n := 0
	for _, e := range t.Entries {
		n += len(e.Videos)
	}
	return n
}

// videoCmd represents the video command
var videoCmd = &cobra.Command{
	Use:   "video <basename>",
	Short: "Show one theme video",
	Args:  cobra.ExactArgs(1),
	RunE:  runVideo,
}

func init() {
	rootCmd.AddCommand(videoCmd)
}

func runVideo(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	basename := args[0]

	logger.Info().Str("basename", basename).Msg("Fetching video")

	v, err := client.GetVideo(ctx, basename, nil)
	if err != nil {
		return err
	}

	fmt.Println(strOr(v.Basename, basename))
	if v.Resolution != nil {
		fmt.Printf("  Resolution: %dp\n", *v.Resolution)
	}
	if v.Source != nil && *v.Source != "" {
		fmt.Printf("  Source: %s\n", *v.Source)
	}
	if flags := videoFlags(v); len(flags) > 0 {
		fmt.Printf("  Flags: %s\n", strings.Join(flags, ", "))
	}
	if v.Overlap != nil && *v.Overlap != "" && !strings.EqualFold(*v.Overlap, "none") {
		fmt.Printf("  Overlap: %s\n", *v.Overlap)
	}
	if v.Link != nil {
		fmt.Printf("  Link: %s\n", *v.Link)
	}

	return nil
}

func videoFlags(v *animethemes.Video) []string {
	var flags []string
	if v.NC != nil && *v.NC {
		flags = append(flags, "NC")
	}
	if v.Subbed != nil && *v.Subbed {
		flags = append(flags, "subbed")
	}
	if v.Lyrics != nil && *v.Lyrics {
		flags = append(flags, "lyrics")
	}
	if v.Uncen != nil && *v.Uncen {
		flags = append(flags, "uncensored")
	}
	return flags
}
