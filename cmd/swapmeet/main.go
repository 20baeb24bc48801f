package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"swapmeet/cmd/swapmeet/tui"
	"swapmeet/internal/catalog"
	"swapmeet/internal/config"
	"swapmeet/internal/logging"
	"swapmeet/internal/market"
	"swapmeet/internal/suggest"
)

// Version is set at build time.
var Version = "0.1.0"

var (
	// Global flags
	verbose    bool
	configPath string

	// Logger for non-interactive commands. The TUI owns the terminal and
	// logs to files instead.
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "swapmeet",
	Short: "swapmeet - a terminal C2C marketplace demo",
	Long: `swapmeet is a small consumer-to-consumer marketplace that runs
entirely in your terminal.

Browse a catalog of second-hand listings, put your own item up for sale
(with an optional AI-drafted description), and manage listings through
the admin page. The catalog lives in memory; every session starts from
the same seed data.

Run without arguments to start the interactive interface.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The interactive session has its own file logging; stdout and
		// stderr belong to the TUI there.
		if cmd == cmd.Root() {
			return nil
		}

		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the swapmeet version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("swapmeet %s\n", Version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.swapmeet/config.yaml)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the config file path and loads it.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	return config.Load(path)
}

// runInteractive starts the TUI session.
func runInteractive() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := logging.Initialize(config.StateDir(), cfg.Logging.Debug, cfg.Logging.Level); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logging.CloseAll()
	logging.Boot("swapmeet %s starting, model=%s", Version, cfg.Gemini.Model)

	client := suggest.New(suggest.Config{
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
		Timeout: cfg.GeminiTimeout(),
	})
	ctrl := market.NewController(catalog.NewSeededStore(), client, cfg.Seller)

	p := tea.NewProgram(tui.New(ctrl), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("interface error: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
