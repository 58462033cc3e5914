// Package gemini implements nicobar.Asker using Google Gemini.
package gemini

import (
	"context"

	"github.com/fwojciec/nicobar"
	"google.golang.org/genai"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

const providerName = "gemini"

// Ensure Asker implements nicobar.Asker at compile time.
var _ nicobar.Asker = (*Asker)(nil)

// Asker implements nicobar.Asker using Google Gemini. Gemini answers in
// chat style, so its responses follow nicobar.FencedDialect.
type Asker struct {
	client *genai.Client
	model  string
}

// NewAsker creates a new Asker. An empty model selects DefaultModel.
func NewAsker(client *genai.Client, model string) *Asker {
	if model == "" {
		model = DefaultModel
	}
	return &Asker{client: client, model: model}
}

// Ask sends prompt to Gemini and returns the text of the answer.
func (a *Asker) Ask(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", nicobar.Errorf(nicobar.EINVALID, "prompt required")
	}

	result, err := a.client.Models.GenerateContent(ctx, a.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", &nicobar.AIServiceError{Provider: providerName, Message: err.Error()}
	}
	if result == nil {
		return "", &nicobar.AIServiceError{Provider: providerName, Message: "gemini returned nil result"}
	}

	text := result.Text()
	if text == "" {
		return "", &nicobar.AIServiceError{Provider: providerName, Message: "gemini returned empty answer"}
	}
	return text, nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.7)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You write articles on request. Always answer with a single JSON document wrapped in a ```json code block and nothing else inside the block.",
			}},
		},
		Temperature: &temp,
	}
}
