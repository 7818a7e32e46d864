package cmd

import (
	"fmt"
	"os"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

// githubSlug is the repository used for release lookups.
const githubSlug = "buzzbyte/animethemes-go"

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update animethemes to the latest release",
	Long:  `Check GitHub releases for a newer build and replace the running binary.`,
	RunE:  runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	current, err := semver.ParseTolerant(buildVersion)
	if err != nil {
		return fmt.Errorf("could not parse current version %q (development build?): %w", buildVersion, err)
	}

	logger.Info().Str("current", current.String()).Msg("Checking for updates")

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(githubSlug))
	if err != nil {
		return fmt.Errorf("failed to look up releases: %w", err)
	}
	if !found {
		return fmt.Errorf("no release found for %s", githubSlug)
	}

	if latest.LessOrEqual(current.String()) {
		fmt.Printf("✓ Already up to date (%s)\n", current)
		return nil
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}

	fmt.Printf("Updating %s to %s...\n", current, latest.Version())
	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("failed to update binary: %w", err)
	}

	fmt.Printf("✓ Updated to %s\n", latest.Version())
	return nil
}
