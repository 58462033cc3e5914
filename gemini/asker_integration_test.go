//go:build integration

package gemini_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/fwojciec/nicobar"
	"github.com/fwojciec/nicobar/aitext"
	"github.com/fwojciec/nicobar/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestAsker_Integration_ProducesArticle(t *testing.T) {
	t.Parallel()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		t.Skip("GEMINI_API_KEY not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	require.NoError(t, err)

	prompt := nicobar.ArticlePrompt{
		Task:     "write an article",
		Topic:    "the history of the espresso machine",
		Style:    "informative",
		Tone:     "friendly",
		Audience: "coffee lovers",
		Length:   "short",
	}

	asker := gemini.NewAsker(client, "")
	answer, err := asker.Ask(ctx, aitext.BuildPrompt(prompt, nicobar.FencedDialect))
	require.NoError(t, err)

	article, err := aitext.NewPipeline(nicobar.FencedDialect).Process(answer, prompt)
	require.NoError(t, err)
	assert.NotEmpty(t, article.Content)
	assert.Positive(t, article.EstimatedReadingTimeMinutes)
}
