package experience

import (
	"regexp"
	"strings"

	"github.com/fwojciec/vitae"
)

var (
	wholeTextComma = regexp.MustCompile(`(` + titleCase + `),\s+(` + titleCase + `)\s+([A-Za-z]+\s+20XX)\s*-\s*([A-Za-z]+\s+20XX|Current)`)
	wholeTextParen = regexp.MustCompile(`(` + titleCase + `)\s*-\s*(` + titleCase + `)\s*\(([A-Za-z]+\s+\d{4})\s*-\s*Present\)`)
	wholeTextDash  = regexp.MustCompile(`(` + titleCase + `)\s*-\s*(` + titleCase + `)`)
)

// WholeText returns the last-resort strategy. It scans run-together text for
// capitalised "Title, Company Start - End", "Title - Company (Start - Present)"
// and "Title - Company" shapes, keeping only titles that name a role.
func WholeText(cfg Config) Strategy {
	roles := cfg.clone().FallbackRoleKeywords
	return Strategy{
		Name: StrategyWholeText,
		Extract: func(text string) []vitae.JobEntry {
			return extractWholeText(text, roles)
		},
	}
}

func extractWholeText(text string, roles []string) []vitae.JobEntry {
	var entries []vitae.JobEntry
	add := func(title, company, start, end string) {
		if !containsAny(title, roles) {
			return
		}
		entries = append(entries, vitae.JobEntry{
			Title:     strings.TrimSpace(title),
			Company:   strings.TrimSpace(company),
			StartDate: strings.TrimSpace(start),
			EndDate:   strings.TrimSpace(end),
		})
	}

	for _, m := range wholeTextComma.FindAllStringSubmatch(text, -1) {
		add(m[1], m[2], m[3], m[4])
	}
	for _, m := range wholeTextParen.FindAllStringSubmatch(text, -1) {
		add(m[1], m[2], m[3], "Present")
	}
	for _, m := range wholeTextDash.FindAllStringSubmatch(text, -1) {
		add(m[1], m[2], "", "")
	}
	return entries
}
