// Package slog provides logging decorators for nicobar services using log/slog.
//
// Each decorator logs one line per call with the call's duration, and an
// err attribute when the call fails. Tagged errors also log their kind.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/nicobar"
)

// logResult logs msg at Info on success and at Error on failure.
func logResult(logger *slog.Logger, msg string, begin time.Time, err error, attrs ...any) {
	attrs = append(attrs, "duration", time.Since(begin))
	if err != nil {
		if kind := nicobar.KindOf(err); kind != "" {
			attrs = append(attrs, "kind", string(kind))
		}
		attrs = append(attrs, "err", err.Error())
		logger.Error(msg, attrs...)
		return
	}
	logger.Info(msg, attrs...)
}
