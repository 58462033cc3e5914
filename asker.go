package nicobar

import "context"

// Asker sends a prompt to a text generation backend.
type Asker interface {
	// Ask returns the backend's raw text answer.
	// Failures are reported as AIServiceError.
	Ask(ctx context.Context, prompt string) (string, error)
}

// ResponseDialect describes how a backend formats article responses.
type ResponseDialect struct {
	// StripJSONFence requires the JSON document to be wrapped in a ```json fence.
	StripJSONFence bool

	// TrustSourceTitle uses the title field sent by the backend instead of
	// deriving one from the content.
	TrustSourceTitle bool
}

// Known response dialects.
var (
	// FencedDialect matches chat-style backends that wrap JSON in prose.
	FencedDialect = ResponseDialect{StripJSONFence: true, TrustSourceTitle: false}

	// RawJSONDialect matches backends running in JSON output mode.
	RawJSONDialect = ResponseDialect{StripJSONFence: false, TrustSourceTitle: true}
)
