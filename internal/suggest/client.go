// Package suggest drafts product descriptions through the Gemini API.
// The client performs exactly one logical operation: subject and keywords
// in, trimmed plain text out, or a classified failure. It never touches
// catalog or view state; callers decide what to do with the result.
package suggest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"google.golang.org/genai"

	"swapmeet/internal/logging"
)

// Config holds the client configuration.
type Config struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// DefaultConfig returns sensible defaults for a given key.
func DefaultConfig(apiKey string) Config {
	return Config{
		APIKey:  apiKey,
		Model:   "gemini-2.5-flash",
		Timeout: 60 * time.Second,
	}
}

// Client talks to the Gemini text-generation API. The underlying SDK
// client is created lazily on first use because its constructor needs a
// context; construction of Client itself never fails.
type Client struct {
	cfg Config

	mu  sync.Mutex
	api *genai.Client
}

// New creates a suggestion client. A missing API key is not an error
// here; Suggest reports it as a configuration failure so the UI can show
// "service not configured" instead of "try again".
func New(cfg Config) *Client {
	if cfg.Model == "" {
		cfg.Model = "gemini-2.5-flash"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	return &Client{cfg: cfg}
}

// Configured reports whether a credential is available.
func (c *Client) Configured() bool {
	return c.cfg.APIKey != ""
}

// Suggest drafts a listing description for the named product. At least
// one of name and keywords must be non-empty; callers substitute their
// own fallback subject (for example "this item") when the name is blank,
// since the prompt needs a subject.
func (c *Client) Suggest(ctx context.Context, name, keywords string) (string, error) {
	if strings.TrimSpace(name) == "" && strings.TrimSpace(keywords) == "" {
		return "", fmt.Errorf("name or keywords required")
	}
	if !c.Configured() {
		logging.SuggestError("suggest refused: no API key configured")
		return "", &Error{
			Kind: KindConfiguration,
			msg:  "generation API key is not configured",
		}
	}

	// Apply the configured timeout when the caller didn't set a deadline.
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	api, err := c.ensureAPI(ctx)
	if err != nil {
		logging.SuggestError("client init failed: %v", err)
		return "", classify(err)
	}

	start := time.Now()
	logging.SuggestDebug("suggest: model=%s name_len=%d keywords_len=%d", c.cfg.Model, len(name), len(keywords))

	contents := []*genai.Content{
		genai.NewContentFromText(buildPrompt(name, keywords), genai.RoleUser),
	}
	resp, err := api.Models.GenerateContent(ctx, c.cfg.Model, contents, &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.8),
	})
	if err != nil {
		logging.SuggestError("generate failed after %v: %v", time.Since(start), err)
		return "", classify(err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		logging.SuggestError("generate returned no usable text after %v", time.Since(start))
		return "", &Error{
			Kind: KindEmptyResponse,
			msg:  "generation service returned an empty response",
		}
	}

	logging.Suggest("suggest completed in %v response_len=%d", time.Since(start), len(text))
	return text, nil
}

func (c *Client) ensureAPI(ctx context.Context) (*genai.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.api != nil {
		return c.api, nil
	}
	api, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: c.cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create generation client: %w", err)
	}
	c.api = api
	return api, nil
}

// buildPrompt asks for a short plain-text C2C listing description. The
// 50-80 word target is prompt guidance to the model, not something the
// client can enforce.
func buildPrompt(name, keywords string) string {
	return fmt.Sprintf(`Generate a compelling and concise e-commerce product description for %q.
Highlight its key selling points based on these features/keywords: %q.
The description should be suitable for a C2C marketplace.
Aim for around 50-80 words. Be engaging and informative.
Do not use markdown formatting in your response, just plain text.`, name, keywords)
}
