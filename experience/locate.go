package experience

import (
	"cmp"
	"regexp"
	"slices"
	"unicode/utf8"
)

// SectionCandidate is one header occurrence and the block it introduces.
// Position is the byte offset of the header in the searched text.
type SectionCandidate struct {
	Header   string
	Position int
	Text     string
	Score    int
}

// Locator finds the most plausible experience section in a document.
type Locator struct {
	headers  []headerPattern
	boundary Boundary
	scorer   Scorer
}

type headerPattern struct {
	name string
	re   *regexp.Regexp
}

// NewLocator returns a Locator for the headers and scoring in cfg.
func NewLocator(cfg Config) *Locator {
	cfg = cfg.clone()
	headers := make([]headerPattern, 0, len(cfg.Headers))
	for _, h := range cfg.Headers {
		headers = append(headers, headerPattern{
			name: h,
			re:   regexp.MustCompile(`(?i)` + regexp.QuoteMeta(h)),
		})
	}
	return &Locator{
		headers:  headers,
		boundary: NewBoundary(cfg.NextSections),
		scorer:   NewScorer(cfg),
	}
}

// Candidates returns a scored candidate for every occurrence of every
// header, best first. Equal scores are ordered by later position first.
func (l *Locator) Candidates(text string) []SectionCandidate {
	var candidates []SectionCandidate
	if len(text) == 0 {
		return candidates
	}
	bounds := l.boundary.index(text)
	scores := l.scorer.index(text)
	for _, h := range l.headers {
		start := 0
		for start <= len(text) {
			loc := h.re.FindStringIndex(text[start:])
			if loc == nil {
				break
			}
			pos, end := start+loc[0], start+loc[1]
			from, to := bounds.span(end)
			candidates = append(candidates, SectionCandidate{
				Header:   h.name,
				Position: pos,
				Text:     text[from:to],
				Score:    scores.scoreSpan(h.name, from, to),
			})

			// Resume one character past the match so overlapping hits are found.
			_, size := utf8.DecodeRuneInString(text[pos:])
			start = pos + max(size, 1)
		}
	}

	slices.SortStableFunc(candidates, func(a, b SectionCandidate) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(b.Position, a.Position)
	})
	return candidates
}

// Locate returns the best candidate, or false when no candidate scores
// above zero.
func (l *Locator) Locate(text string) (SectionCandidate, bool) {
	candidates := l.Candidates(text)
	if len(candidates) == 0 || candidates[0].Score <= 0 {
		return SectionCandidate{}, false
	}
	return candidates[0], true
}
