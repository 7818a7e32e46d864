package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/buzzbyte/animethemes-go/animethemes"
	"github.com/buzzbyte/animethemes-go/config"
	"github.com/buzzbyte/animethemes-go/filter"
)

var (
	cfgFile string
	jsonLog bool
	cfg     *config.Config
	logger  zerolog.Logger
	client  *animethemes.Client
	presets *filter.Manager

	buildVersion = "dev"
	buildTime    = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "animethemes",
	Short: "Browse the AnimeThemes catalog of anime opening and ending themes",
	Long: `animethemes is a CLI for the AnimeThemes API. It can search the catalog,
show a single anime with its theme songs and external site links, walk
paginated listings with client-side filter expressions, and browse the
season buckets of a year.`,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetVersion records the build metadata injected through ldflags.
func SetVersion(version, built string) {
	buildVersion = version
	buildTime = built
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"animethemes {{.Version}} (built %s)\n", buildTime,
	))
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&jsonLog, "json", false, "log in JSON format regardless of config")
}

// initializeApp initializes the configuration, logger and API client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Override log format from command line if specified
	if jsonLog {
		cfg.Logging.Format = "json"
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Create AnimeThemes client
	var opts []animethemes.Option
	if cfg.API.Timeout > 0 {
		opts = append(opts, animethemes.WithTimeout(cfg.API.Timeout))
	}
	if cfg.API.UserAgent != "" {
		opts = append(opts, animethemes.WithUserAgent(cfg.API.UserAgent))
	}

	client, err = animethemes.NewClient(cfg.API.URL, logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create AnimeThemes client: %w", err)
	}

	// Compile filter presets from config
	presets = filter.NewManager()
	if err := presets.RegisterFilters(cfg.Filter); err != nil {
		return fmt.Errorf("failed to compile filter presets: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; color only when configured on and stderr is a terminal
	color := cfg.Color &&
		(isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()))

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !color,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// strOr returns the pointed-to string or a fallback when absent.
func strOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

// intOr returns the pointed-to int or a fallback when absent.
func intOr(n *int, fallback int) int {
	if n == nil {
		return fallback
	}
	return *n
}
