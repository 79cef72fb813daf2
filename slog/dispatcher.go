package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/narrator"
)

// Ensure LoggingDispatcher implements narrator.Dispatcher.
var _ narrator.Dispatcher = (*LoggingDispatcher)(nil)

// LoggingDispatcher wraps a Dispatcher and logs which adapter handles each
// document.
type LoggingDispatcher struct {
	next   narrator.Dispatcher
	logger *slog.Logger
}

// NewLoggingDispatcher creates a new LoggingDispatcher.
func NewLoggingDispatcher(next narrator.Dispatcher, logger *slog.Logger) *LoggingDispatcher {
	return &LoggingDispatcher{next: next, logger: logger}
}

// Select delegates to the wrapped dispatcher and logs the chosen adapter.
func (d *LoggingDispatcher) Select(doc *narrator.Document) (adapter narrator.Adapter) {
	defer func(begin time.Time) {
		d.logger.Info("adapter selection",
			"file", doc.Filename,
			"adapter", adapter.Name(),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return d.next.Select(doc)
}
