package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/twitchctl/twitchctl/config"
	"github.com/twitchctl/twitchctl/filter"
	"github.com/twitchctl/twitchctl/twitch"
)

var (
	cfgFile      string
	cfg          *config.Config
	logger       zerolog.Logger
	twitchClient *twitch.Client

	version   = "dev"
	buildTime = "unknown"

	// Global flags
	clientIDFlag string
	jsonOutput   bool

	// Command flags
	filterExpr string
	preset     string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "twitchctl",
	Short: "A CLI for browsing the Twitch API",
	Long: `twitchctl is a CLI tool for the Twitch Kraken REST API. It lists top
games, live streams, featured streams, channel details and ingest points,
and can filter stream listings with expressions.`,
	PersistentPreRunE: initializeApp,
}

// SetVersion records the build information shown by the version command
// and used by the upgrade command.
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&clientIDFlag, "client-id", "", "Twitch client ID (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print raw JSON instead of tables")
}

// initializeApp initializes the configuration and the Twitch client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Override client ID from command line if specified
	if cmd.Flags().Changed("client-id") {
		cfg.Twitch.ClientID = clientIDFlag
	}

	// Create Twitch client
	twitchClient, err = twitch.NewClient(
		cfg.Twitch.URL,
		cfg.Twitch.ClientID,
		logger,
		twitch.WithTimeout(cfg.Twitch.Timeout),
		twitch.WithUserAgent("twitchctl/"+version),
	)
	if err != nil {
		return fmt.Errorf("failed to create Twitch client: %w", err)
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

	// Console format
	noColor := false
	switch cfg.Color {
	case "never":
		noColor = true
	case "auto":
		noColor = !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd())
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// getFilterExpression resolves the filter from the --filter flag or a
// named preset from config
func getFilterExpression() (string, error) {
	if filterExpr != "" && preset != "" {
		return "", fmt.Errorf("only one of --filter and --preset may be given")
	}
	if filterExpr != "" {
		return filterExpr, nil
	}
	if preset != "" {
		expr, ok := cfg.Filter[preset]
		if !ok {
			return "", fmt.Errorf("unknown filter preset: %s", preset)
		}
		return expr, nil
	}
	return "", nil
}

// compileFilter compiles the active filter expression, if any
func compileFilter() (*filter.StreamFilter, error) {
	expr, err := getFilterExpression()
	if err != nil {
		return nil, err
	}
	if expr == "" {
		return nil, nil
	}

	f, err := filter.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}

	logger.Debug().Str("filter", expr).Msg("Filtering streams")
	return f, nil
}

// printJSON renders any API result as indented JSON
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
