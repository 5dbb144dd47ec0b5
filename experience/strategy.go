package experience

import (
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/vitae"
)

// Strategy is an independent recognizer that turns text into job entries.
// Extract returns nil when the strategy does not apply.
type Strategy struct {
	Name    string
	Extract func(text string) []vitae.JobEntry
}

// Strategy names.
const (
	StrategyPipe      = "pipe"
	StrategyDateFirst = "date-first"
	StrategyLines     = "line-by-line"
	StrategyWholeText = "whole-text"
)

// titleCase matches a run of capitalised words.
const titleCase = `[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*`

// splitTitleCompany splits s on its first double space.
// ok is false when s contains no double space.
func splitTitleCompany(s string) (title, company string, ok bool) {
	if !strings.Contains(s, "  ") {
		return s, "", false
	}
	parts := strings.Split(s, "  ")
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), true
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if sub != "" && strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
