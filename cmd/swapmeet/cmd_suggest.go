package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"swapmeet/internal/suggest"
)

var (
	suggestName     string
	suggestKeywords string
)

// suggestCmd drafts a listing description without starting the TUI,
// useful for scripting and for checking the API credential.
var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Draft a product description from a name and keywords",
	Long: `Calls the description drafting service once and prints the result.

Example:
  swapmeet suggest --name "Vintage Leather Jacket" --keywords "leather, brown, size M"`,
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().StringVar(&suggestName, "name", "", "product name")
	suggestCmd.Flags().StringVar(&suggestKeywords, "keywords", "", "comma-separated keywords")
}

func runSuggest(cmd *cobra.Command, args []string) error {
	if suggestName == "" && suggestKeywords == "" {
		return fmt.Errorf("at least one of --name and --keywords is required")
	}
	name := suggestName
	if name == "" {
		name = "this item"
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client := suggest.New(suggest.Config{
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
		Timeout: cfg.GeminiTimeout(),
	})

	logger.Debug("drafting description",
		zap.String("model", cfg.Gemini.Model),
		zap.String("name", name))

	text, err := client.Suggest(context.Background(), name, suggestKeywords)
	if err != nil {
		logger.Error("suggestion failed",
			zap.String("kind", suggest.KindOf(err).String()),
			zap.Error(err))
		return fmt.Errorf("failed to draft description: %w", err)
	}

	fmt.Println(text)
	return nil
}
