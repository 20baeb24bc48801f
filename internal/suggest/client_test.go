package suggest

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	// go.opencensus.io (pulled in by the genai client) starts a background
	// stats worker in package init that can never be stopped.
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))
}

func TestSuggest_NoCredentialIsConfigurationError(t *testing.T) {
	c := New(Config{APIKey: ""})

	_, err := c.Suggest(context.Background(), "Desk Lamp", "")
	require.Error(t, err)

	se, ok := AsError(err)
	require.True(t, ok, "expected a classified error, got %T", err)
	assert.Equal(t, KindConfiguration, se.Kind)
	assert.False(t, se.Kind.Retryable())
}

func TestSuggest_RequiresNameOrKeywords(t *testing.T) {
	c := New(Config{APIKey: "test-key"})

	_, err := c.Suggest(context.Background(), "", "   ")
	require.Error(t, err)

	// Precondition failures are plain errors, not classified upstream
	// failures; the form controller catches them before the client.
	_, classified := AsError(err)
	assert.False(t, classified)
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Kind
	}{
		{"invalid api key", errors.New("API key not valid. Please pass a valid API key."), KindAuthentication},
		{"permission denied", errors.New("rpc error: PERMISSION DENIED"), KindAuthentication},
		{"authentication text", errors.New("authentication failed for request"), KindAuthentication},
		{"http 401", errors.New("API request failed with status 401"), KindAuthentication},
		{"http 403", errors.New("API request failed with status 403"), KindAuthentication},
		{"rate limit", errors.New("rate limit exceeded (429)"), KindTransient},
		{"network", errors.New("dial tcp: connection refused"), KindTransient},
		{"garbage", errors.New("unexpected EOF"), KindTransient},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := classify(tc.err)
			assert.Equal(t, tc.want, got.Kind)
			assert.ErrorIs(t, got, tc.err, "classified error must unwrap to the original")
		})
	}
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindConfiguration, KindOf(&Error{Kind: KindConfiguration}))
	assert.Equal(t, KindEmptyResponse, KindOf(fmt.Errorf("wrapped: %w", &Error{Kind: KindEmptyResponse})))
	assert.Equal(t, KindTransient, KindOf(errors.New("anything unclassified")))
}

func TestKindRetryable(t *testing.T) {
	assert.False(t, KindConfiguration.Retryable())
	assert.False(t, KindAuthentication.Retryable())
	assert.True(t, KindEmptyResponse.Retryable())
	assert.True(t, KindTransient.Retryable())
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("k")
	assert.Equal(t, "k", cfg.APIKey)
	assert.Equal(t, "gemini-2.5-flash", cfg.Model)
	assert.Equal(t, 60*time.Second, cfg.Timeout)
}

func TestBuildPrompt(t *testing.T) {
	p := buildPrompt("Desk Lamp", "brass, adjustable")
	assert.Contains(t, p, `"Desk Lamp"`)
	assert.Contains(t, p, "brass, adjustable")
	assert.Contains(t, p, "50-80 words")
	assert.Contains(t, p, "plain text")
}
