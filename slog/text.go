package slog

import (
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/vitae"
)

// Ensure LoggingTextExtractor implements vitae.TextExtractor.
var _ vitae.TextExtractor = (*LoggingTextExtractor)(nil)

// LoggingTextExtractor wraps a TextExtractor with debug logging.
type LoggingTextExtractor struct {
	next   vitae.TextExtractor
	format vitae.Format
	logger *slog.Logger
}

// NewLoggingTextExtractor creates a new LoggingTextExtractor for documents
// of the given format.
func NewLoggingTextExtractor(next vitae.TextExtractor, format vitae.Format, logger *slog.Logger) *LoggingTextExtractor {
	return &LoggingTextExtractor{next: next, format: format, logger: logger}
}

// ExtractText delegates to the wrapped extractor and logs the operation.
func (e *LoggingTextExtractor) ExtractText(data []byte) (text string, err error) {
	defer func(begin time.Time) {
		e.logger.Debug("text extraction",
			"format", string(e.format),
			"bytes", len(data),
			"chars", utf8.RuneCountInString(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractText(data)
}
