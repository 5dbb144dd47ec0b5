package slog

import (
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/vitae"
	"github.com/fwojciec/vitae/experience"
)

// Ensure LoggingExperienceExtractor implements vitae.ExperienceExtractor.
var _ vitae.ExperienceExtractor = (*LoggingExperienceExtractor)(nil)

// LoggingExperienceExtractor wraps an ExperienceExtractor with logging.
type LoggingExperienceExtractor struct {
	next   vitae.ExperienceExtractor
	logger *slog.Logger
}

// NewLoggingExperienceExtractor creates a new LoggingExperienceExtractor.
func NewLoggingExperienceExtractor(next vitae.ExperienceExtractor, logger *slog.Logger) *LoggingExperienceExtractor {
	return &LoggingExperienceExtractor{next: next, logger: logger}
}

// ExtractExperience delegates to the wrapped extractor and logs the result.
func (e *LoggingExperienceExtractor) ExtractExperience(text string) (entries []vitae.JobEntry) {
	defer func(begin time.Time) {
		e.logger.Info("experience extraction",
			"chars", utf8.RuneCountInString(text),
			"entries", len(entries),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return e.next.ExtractExperience(text)
}

// NewOutcomeLogger returns a hook for experience.Extractor.Report that logs
// every section candidate and the strategy decision at debug level.
func NewOutcomeLogger(logger *slog.Logger) func(experience.Outcome) {
	return func(out experience.Outcome) {
		for _, c := range out.Candidates {
			logger.Debug("section candidate",
				"header", c.Header,
				"position", c.Position,
				"score", c.Score,
				"chars", utf8.RuneCountInString(c.Text),
			)
		}

		attrs := []any{
			"candidates", len(out.Candidates),
			"located", out.Located,
			"attempted", out.Attempted,
			"strategy", out.Strategy,
			"entries", len(out.Entries),
		}
		if out.Located {
			attrs = append(attrs, "header", out.Section.Header, "score", out.Section.Score)
		}
		if len(out.Entries) == 0 {
			logger.Debug("no experience entries found", attrs...)
			return
		}
		logger.Debug("experience strategy", attrs...)
	}
}
