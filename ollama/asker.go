// Package ollama implements nicobar.Asker on top of a local Ollama server.
package ollama

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/fwojciec/nicobar"
)

// DefaultHost is the address of a local Ollama server.
const DefaultHost = "http://localhost:11434"

// DefaultModel is the model used when none is configured.
const DefaultModel = "llama3.1"

const providerName = "ollama"

// Ensure Asker implements nicobar.Asker at compile time.
var _ nicobar.Asker = (*Asker)(nil)

// Asker sends prompts to the Ollama generate API in JSON output mode, so
// its responses follow nicobar.RawJSONDialect.
type Asker struct {
	fetcher nicobar.Fetcher
	host    string
	model   string
}

// NewAsker creates a new Asker. Empty host and model select the defaults.
func NewAsker(fetcher nicobar.Fetcher, host, model string) *Asker {
	if host == "" {
		host = DefaultHost
	}
	if model == "" {
		model = DefaultModel
	}
	return &Asker{
		fetcher: fetcher,
		host:    strings.TrimRight(host, "/"),
		model:   model,
	}
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Format string `json:"format"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
	Error    string `json:"error"`
}

// Ask sends prompt to Ollama and returns the generated text.
func (a *Asker) Ask(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", nicobar.Errorf(nicobar.EINVALID, "prompt required")
	}

	body, err := json.Marshal(generateRequest{
		Model:  a.model,
		Prompt: prompt,
		Format: "json",
		Stream: false,
	})
	if err != nil {
		return "", &nicobar.AIServiceError{Provider: providerName, Message: err.Error()}
	}

	text, err := nicobar.FetchAndMap(ctx, a.fetcher, a.host+"/api/generate", nicobar.RequestConfig{
		Method: "POST",
		Header: map[string]string{"Content-Type": "application/json"},
		Body:   string(body),
	}, decodeResponse)
	if err != nil {
		var aiErr *nicobar.AIServiceError
		if errors.As(err, &aiErr) {
			return "", err
		}
		return "", &nicobar.AIServiceError{Provider: providerName, Message: err.Error()}
	}
	return text, nil
}

func decodeResponse(body string) (string, error) {
	var resp generateResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		return "", err
	}
	if resp.Error != "" {
		return "", &nicobar.AIServiceError{Provider: providerName, Message: resp.Error}
	}
	if strings.TrimSpace(resp.Response) == "" {
		return "", &nicobar.AIServiceError{Provider: providerName, Message: "ollama returned empty answer"}
	}
	return resp.Response, nil
}
