package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"swapmeet/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage swapmeet configuration",
}

// configInitCmd writes a default config file. It refuses to clobber an
// existing one; edits belong to the user.
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = config.DefaultPath()
		}

		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists at %s", path)
		}

		cfg := config.Default()
		if err := cfg.Save(path); err != nil {
			return err
		}
		logger.Info("config written", zap.String("path", path))
		fmt.Printf("Wrote default config to %s\n", path)
		fmt.Println("Set gemini.api_key (or the GEMINI_API_KEY environment variable) to enable description suggestions.")
		return nil
	},
}

// configShowCmd prints the effective configuration with the credential
// masked.
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		key := "(not set)"
		if cfg.Gemini.APIKey != "" {
			key = "(set)"
		}
		fmt.Printf("gemini.api_key: %s\n", key)
		fmt.Printf("gemini.model: %s\n", cfg.Gemini.Model)
		fmt.Printf("gemini.timeout: %s\n", cfg.GeminiTimeout())
		fmt.Printf("seller: %s\n", cfg.Seller)
		fmt.Printf("logging.debug: %t\n", cfg.Logging.Debug)
		fmt.Printf("logging.level: %s\n", cfg.Logging.Level)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
