//go:build integration

package gemini_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/fwojciec/clipper"
	"github.com/fwojciec/clipper/gemini"
	"github.com/fwojciec/clipper/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestEnhancer_Integration_ReturnsSummary(t *testing.T) {
	t.Parallel()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		t.Skip("GEMINI_API_KEY not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	require.NoError(t, err)

	r := &clipper.ExtractionResult{
		Content:     "<p>The Rust compiler released version 2.0 on a Tuesday, adding async closures.</p>",
		TextContent: "The Rust compiler released version 2.0 on a Tuesday, adding async closures.",
	}
	r.Title = "Release notes"
	r.URL = "https://example.com/release"

	enhancer := gemini.NewEnhancer(client, htmltomarkdown.NewConverter())
	out, err := enhancer.Enhance(ctx, r, clipper.EnhanceSummarize)

	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
