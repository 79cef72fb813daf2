package slog

import (
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/narrator"
)

// Ensure LoggingReader implements narrator.Reader.
var _ narrator.Reader = (*LoggingReader)(nil)

// LoggingReader wraps a reader-mode service. Failures are logged as
// warnings since adapters discard them; timings are logged at debug level.
type LoggingReader struct {
	next   narrator.Reader
	name   string
	logger *slog.Logger
}

// NewLoggingReader creates a new LoggingReader. name identifies the wrapped
// reader in log records.
func NewLoggingReader(next narrator.Reader, name string, logger *slog.Logger) *LoggingReader {
	return &LoggingReader{next: next, name: name, logger: logger}
}

// ReadContent delegates to the wrapped reader and logs the outcome.
func (r *LoggingReader) ReadContent(html string) (text string, err error) {
	defer func(begin time.Time) {
		if err != nil {
			r.logger.Warn("reader content failed", "reader", r.name, "err", err)
			return
		}
		r.logger.Debug("reader content",
			"reader", r.name,
			"chars", utf8.RuneCountInString(text),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return r.next.ReadContent(html)
}

// ReadMetadata delegates to the wrapped reader and logs the outcome.
func (r *LoggingReader) ReadMetadata(html string) (m *narrator.Metadata, err error) {
	defer func(begin time.Time) {
		if err != nil {
			r.logger.Warn("reader metadata failed", "reader", r.name, "err", err)
			return
		}
		r.logger.Debug("reader metadata",
			"reader", r.name,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return r.next.ReadMetadata(html)
}
