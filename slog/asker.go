package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/nicobar"
)

// Ensure LoggingAsker implements nicobar.Asker.
var _ nicobar.Asker = (*LoggingAsker)(nil)

// LoggingAsker wraps an Asker with logging. Prompts and answers are logged
// by size only.
type LoggingAsker struct {
	next     nicobar.Asker
	provider string
	logger   *slog.Logger
}

// NewLoggingAsker creates a new LoggingAsker. provider names the backend in log lines.
func NewLoggingAsker(next nicobar.Asker, provider string, logger *slog.Logger) *LoggingAsker {
	return &LoggingAsker{next: next, provider: provider, logger: logger}
}

// Ask delegates to the wrapped asker.
func (a *LoggingAsker) Ask(ctx context.Context, prompt string) (answer string, err error) {
	defer func(begin time.Time) {
		logResult(a.logger, "ask", begin, err,
			"provider", a.provider,
			"prompt_bytes", len(prompt),
			"answer_bytes", len(answer),
		)
	}(time.Now())

	return a.next.Ask(ctx, prompt)
}
