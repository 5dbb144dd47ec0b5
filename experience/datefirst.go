package experience

import (
	"regexp"
	"strings"

	"github.com/fwojciec/vitae"
)

var (
	dateFirstPresent = regexp.MustCompile(`(20XX|\d{4})\s+Present\s+(` + titleCase + `)\s+(` + titleCase + `)\s+(` + titleCase + `)`)
	dateFirstRange   = regexp.MustCompile(`(20XX|\d{4})\s+(20XX|\d{4})\s+(` + titleCase + `)\s+(` + titleCase + `)\s+(` + titleCase + `)`)
)

// DateFirst returns the strategy for lines that open with the dates:
// "2020 Present Title Company Location" or "2018 2020 Title Company Location".
// Entries from the open-ended form come first.
func DateFirst() Strategy {
	return Strategy{Name: StrategyDateFirst, Extract: extractDateFirst}
}

func extractDateFirst(text string) []vitae.JobEntry {
	var entries []vitae.JobEntry
	for _, m := range dateFirstPresent.FindAllStringSubmatch(text, -1) {
		entries = append(entries, dateFirstEntry(m[1], "Present", m[2], m[3], m[4]))
	}
	for _, m := range dateFirstRange.FindAllStringSubmatch(text, -1) {
		entries = append(entries, dateFirstEntry(m[1], m[2], m[3], m[4], m[5]))
	}
	return entries
}

func dateFirstEntry(start, end, first, second, location string) vitae.JobEntry {
	title, company, ok := splitTitleCompany(strings.TrimSpace(first))
	if !ok {
		company = second
	}
	return vitae.JobEntry{
		Title:     title,
		Company:   company,
		Location:  location,
		StartDate: start,
		EndDate:   end,
	}
}
