package experience

import (
	"regexp"
	"strings"

	"github.com/fwojciec/vitae"
)

var (
	// "Title, Company Start - End"
	commaPattern = regexp.MustCompile(`([^,]+),\s+([^(]+)\s+([^-]+)-([^-]+)`)
	// "Title - Company (Start - End)"
	parenPattern = regexp.MustCompile(`([^-]+)-\s*([^(]+)\s*\(([^-]+)-([^)]+)\)`)
	// "Title - Company"
	dashPattern = regexp.MustCompile(`([^-]+)-\s*([^-]+)`)

	// A month, optionally with a day, or 20XX closing the company run.
	dateStart = regexp.MustCompile(`(?:\b(?:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|June?|July?|Aug(?:ust)?|Sep(?:t(?:ember)?)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)\b(?:\s+\d{1,2},?)?|20XX)\s*$`)
)

var (
	commaReject = []string{"Summarize", "responsibilities"}
	parenReject = []string{"Developed"}
	dashReject  = []string{"Built", "Integrated"}
)

// LineByLine returns the strategy that reads the text one line at a time,
// skipping description lines and trying the comma, parenthesised and dash
// shapes in order. The first shape whose guard accepts a line wins.
func LineByLine(cfg Config) Strategy {
	r := lineReader{rules: cfg.clone().Lines}
	return Strategy{Name: StrategyLines, Extract: r.extract}
}

type lineReader struct {
	rules LineRules
}

func (r lineReader) extract(text string) []vitae.JobEntry {
	var entries []vitae.JobEntry
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || r.isDescription(line) {
			continue
		}
		if e, ok := r.matchLine(line); ok {
			entries = append(entries, e)
		}
	}
	return entries
}

func (r lineReader) isDescription(line string) bool {
	for _, b := range r.rules.Bullets {
		if b != "" && strings.HasPrefix(line, b) {
			return true
		}
	}
	if runeLen(line) > r.rules.MaxLineLength {
		return true
	}
	if containsAny(line, r.rules.NarrativeVerbs) {
		return true
	}
	return containsAny(strings.ToLower(line), r.rules.SummaryPhrases)
}

func (r lineReader) matchLine(line string) (vitae.JobEntry, bool) {
	for _, match := range []func(string) (vitae.JobEntry, bool){r.matchComma, r.matchParen, r.matchDash} {
		if e, ok := match(line); ok {
			return e, true
		}
	}
	return vitae.JobEntry{}, false
}

func (r lineReader) matchComma(line string) (vitae.JobEntry, bool) {
	m := commaPattern.FindStringSubmatchIndex(line)
	if m == nil {
		return vitae.JobEntry{}, false
	}
	title := trimArtifact(line[m[2]:m[3]], "e ")
	company := strings.TrimSpace(line[m[4]:m[5]])
	start := strings.TrimSpace(line[m[6]:m[7]])
	end := strings.TrimSpace(line[m[8]:m[9]])

	// The company run may have swallowed the start of the date. Only a
	// month at its very end belongs to the date, so "March Networks" stays.
	head := line[m[4]:m[7]]
	if loc := dateStart.FindStringIndex(line[m[4]:m[5]]); loc != nil {
		company = strings.TrimSpace(head[:loc[0]])
		start = strings.TrimSpace(head[loc[0]:])
	}

	if !r.fieldsOK(title, company) || containsAny(head, commaReject) {
		return vitae.JobEntry{}, false
	}
	return vitae.JobEntry{Title: title, Company: company, StartDate: start, EndDate: end}, true
}

func (r lineReader) matchParen(line string) (vitae.JobEntry, bool) {
	m := parenPattern.FindStringSubmatch(line)
	if m == nil {
		return vitae.JobEntry{}, false
	}
	title := trimArtifact(m[1], "ce: ")
	company := strings.TrimSpace(m[2])

	if !r.fieldsOK(title, company) || containsAny(company, parenReject) {
		return vitae.JobEntry{}, false
	}
	return vitae.JobEntry{
		Title:     title,
		Company:   company,
		StartDate: strings.TrimSpace(m[3]),
		EndDate:   strings.TrimSpace(m[4]),
	}, true
}

func (r lineReader) matchDash(line string) (vitae.JobEntry, bool) {
	m := dashPattern.FindStringSubmatch(line)
	if m == nil {
		return vitae.JobEntry{}, false
	}
	title := trimArtifact(m[1], "e: ")
	company := strings.TrimSpace(m[2])

	if !r.fieldsOK(title, company) || !containsAny(title, r.rules.RoleKeywords) || containsAny(company, dashReject) {
		return vitae.JobEntry{}, false
	}
	return vitae.JobEntry{Title: title, Company: company}, true
}

func (r lineReader) fieldsOK(title, company string) bool {
	return runeLen(title) > r.rules.MinFieldLength &&
		runeLen(company) > r.rules.MinFieldLength &&
		runeLen(company) < r.rules.MaxCompanyLength
}

// trimArtifact removes a fragment left over from upstream cleaning.
func trimArtifact(s, prefix string) string {
	s = strings.TrimSpace(s)
	return strings.TrimSpace(strings.TrimPrefix(s, prefix))
}
