package experience

import (
	"regexp"
	"strings"

	"github.com/fwojciec/vitae"
)

var (
	pipePattern = regexp.MustCompile(`([^|]+)\s*\|\s*([^(]+)\s*\(([^)]+)\)`)
	dateSignal  = regexp.MustCompile(`\b(?:19|20)\d{2}\b|20XX|Present|Current`)
)

// PipeFormat returns the strategy for "Title  Company | Start - End (Location)"
// lines.
//
// The segment between the pipe and the parenthesis is read as the date range
// and the parenthesised text as the location. When only the parenthesised text
// carries dates ("Title | Company (Start - End)"), the two are read the other
// way round.
func PipeFormat() Strategy {
	return Strategy{Name: StrategyPipe, Extract: extractPipe}
}

func extractPipe(text string) []vitae.JobEntry {
	var entries []vitae.JobEntry
	for _, m := range pipePattern.FindAllStringSubmatch(text, -1) {
		segment := strings.TrimSpace(m[1])
		dates := strings.TrimSpace(m[2])
		location := strings.TrimSpace(m[3])

		title, company, _ := splitTitleCompany(segment)

		if !dateSignal.MatchString(dates) && dateSignal.MatchString(location) {
			if company == "" {
				company = dates
			}
			dates, location = location, ""
		}

		start, end := splitDateRange(dates)
		entries = append(entries, vitae.JobEntry{
			Title:     title,
			Company:   company,
			Location:  location,
			StartDate: start,
			EndDate:   end,
		})
	}
	return entries
}

// splitDateRange splits "Start - End". A range mentioning Present always
// ends at Present; anything that is not exactly two parts is all start.
func splitDateRange(s string) (start, end string) {
	if strings.Contains(s, "Present") {
		before, _, _ := strings.Cut(s, "-")
		return strings.TrimSpace(before), "Present"
	}
	parts := strings.Split(s, "-")
	if len(parts) == 2 {
		return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	}
	return s, ""
}
