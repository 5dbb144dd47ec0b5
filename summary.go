package vitae

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxSummaryLength is the maximum number of characters ExtractSummary returns.
const MaxSummaryLength = 500

var (
	// Summary headers in priority order. Matching is case-insensitive and
	// not anchored to line starts.
	summaryHeaderRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)SUMMARY`),
		regexp.MustCompile(`(?i)OBJECTIVE`),
		regexp.MustCompile(`(?i)PROFILE`),
		regexp.MustCompile(`(?i)ABOUT`),
	}

	summaryEndRe = regexp.MustCompile(`(?i)EXPERIENCE|EDUCATION|SKILLS`)
)

// ExtractSummary returns the professional summary of a resume.
//
// The first summary-style header found opens a block that runs to the next
// experience, education or skills header. The header line itself is dropped
// and the remaining non-blank lines are trimmed and joined. When no header
// yields content, the first paragraph is used if it is longer than 50
// characters. The result is capped at MaxSummaryLength characters.
func ExtractSummary(text string) string {
	for _, re := range summaryHeaderRes {
		loc := re.FindStringIndex(text)
		if loc == nil {
			continue
		}

		block := text[loc[0]:]
		if end := summaryEndRe.FindStringIndex(text[loc[1]:]); end != nil {
			block = text[loc[0] : loc[1]+end[0]]
		}

		lines := strings.Split(block, "\n")[1:]
		kept := make([]string, 0, len(lines))
		for _, line := range lines {
			if line = strings.TrimSpace(line); line != "" {
				kept = append(kept, line)
			}
		}

		if summary := strings.Join(kept, "\n"); summary != "" {
			return truncateRunes(summary, MaxSummaryLength)
		}
	}

	first, _, _ := strings.Cut(text, "\n\n")
	if utf8.RuneCountInString(first) > 50 {
		return truncateRunes(first, MaxSummaryLength)
	}
	return ""
}

// truncateRunes shortens s to at most n runes.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
