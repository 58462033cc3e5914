package ollama_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/fwojciec/nicobar"
	"github.com/fwojciec/nicobar/mock"
	"github.com/fwojciec/nicobar/ollama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsker_Ask(t *testing.T) {
	t.Parallel()

	t.Run("posts json-mode generate request", func(t *testing.T) {
		t.Parallel()

		var gotURL string
		var gotCfg nicobar.RequestConfig
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string, cfg nicobar.RequestConfig) (string, error) {
				gotURL = url
				gotCfg = cfg
				return `{"response":"{\"content\":\"Hi\"}","done":true}`, nil
			},
		}

		answer, err := ollama.NewAsker(fetcher, "http://ollama:11434/", "mistral").Ask(context.Background(), "write")

		require.NoError(t, err)
		assert.Equal(t, `{"content":"Hi"}`, answer)
		assert.Equal(t, "http://ollama:11434/api/generate", gotURL)
		assert.Equal(t, "POST", gotCfg.Method)
		assert.Equal(t, "application/json", gotCfg.Header["Content-Type"])

		var req map[string]any
		require.NoError(t, json.Unmarshal([]byte(gotCfg.Body), &req))
		assert.Equal(t, "mistral", req["model"])
		assert.Equal(t, "write", req["prompt"])
		assert.Equal(t, "json", req["format"])
		assert.Equal(t, false, req["stream"])
	})

	t.Run("uses defaults", func(t *testing.T) {
		t.Parallel()

		var gotURL string
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string, _ nicobar.RequestConfig) (string, error) {
				gotURL = url
				return `{"response":"ok"}`, nil
			},
		}

		_, err := ollama.NewAsker(fetcher, "", "").Ask(context.Background(), "write")

		require.NoError(t, err)
		assert.Equal(t, ollama.DefaultHost+"/api/generate", gotURL)
	})

	t.Run("transport failure is an ai service error", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(context.Context, string, nicobar.RequestConfig) (string, error) {
				return "", &nicobar.APIError{Code: "0", Message: "connection refused"}
			},
		}

		_, err := ollama.NewAsker(fetcher, "", "").Ask(context.Background(), "write")

		var aiErr *nicobar.AIServiceError
		require.ErrorAs(t, err, &aiErr)
		assert.Equal(t, "ollama", aiErr.Provider)
		assert.Contains(t, aiErr.Message, "connection refused")
	})

	t.Run("server error field is an ai service error", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(context.Context, string, nicobar.RequestConfig) (string, error) {
				return `{"error":"model not found"}`, nil
			},
		}

		_, err := ollama.NewAsker(fetcher, "", "").Ask(context.Background(), "write")

		assert.Equal(t, nicobar.KindAIService, nicobar.KindOf(err))
		assert.Contains(t, err.Error(), "model not found")
	})

	t.Run("empty prompt is invalid", func(t *testing.T) {
		t.Parallel()

		_, err := ollama.NewAsker(nil, "", "").Ask(context.Background(), "")

		assert.Equal(t, nicobar.EINVALID, nicobar.ErrorCode(err))
	})
}
