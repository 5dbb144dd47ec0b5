// Package experience locates the work-history section of resume text and
// turns it into job entries.
//
// The engine is a cascade of narrow pattern recognizers. A Locator scores
// every occurrence of every header synonym and picks the best block; the
// block strategies run over that block in order until one produces entries,
// and the whole-text strategy runs over the full document as a last resort.
// All vocabulary lives in Config so that an Extractor holds no process-wide
// state and is safe for concurrent use.
package experience

import (
	"slices"

	"github.com/fwojciec/vitae"
)

// Config holds the vocabulary and thresholds used by the engine.
type Config struct {
	// Headers are the header synonyms searched for, in order.
	Headers []string
	// PrimaryHeader earns the primary-header bonus when it is the matched synonym.
	PrimaryHeader string
	// NextSections mark the end of a located section. Matched case-sensitively.
	NextSections []string
	// RoleKeywords raise a candidate's score once per occurrence.
	RoleKeywords []string
	// SummaryKeywords lower a candidate's score once per occurrence.
	SummaryKeywords []string

	Weights Weights
	Lines   LineRules

	// FallbackRoleKeywords must appear in a title found by the whole-text strategy.
	FallbackRoleKeywords []string
}

// Weights are the scoring terms applied to a section candidate.
// Penalties are stored as positive numbers and subtracted.
type Weights struct {
	PrimaryHeader      int
	LongSection        int
	LongSectionLength  int
	RoleKeyword        int
	SummaryKeyword     int
	ShortSection       int
	ShortSectionLength int
}

// LineRules configure the line-by-line strategy.
type LineRules struct {
	MaxLineLength    int
	MaxCompanyLength int
	MinFieldLength   int
	// Bullets are line prefixes that mark description lines.
	Bullets []string
	// NarrativeVerbs mark description lines. Matched case-sensitively.
	NarrativeVerbs []string
	// SummaryPhrases mark description lines. Matched against the lower-cased line.
	SummaryPhrases []string
	// RoleKeywords gate the undated "Title - Company" shape.
	RoleKeywords []string
}

// DefaultConfig returns the built-in English vocabulary.
func DefaultConfig() Config {
	return Config{
		Headers: []string{
			"PROFESSIONAL EXPERIENCE",
			"EXPERIENCE",
			"WORK HISTORY",
			"EMPLOYMENT",
			"WORK EXPERIENCE",
			"EMPLOYMENT HISTORY",
			"CAREER HISTORY",
			"JOB HISTORY",
		},
		PrimaryHeader:   "PROFESSIONAL EXPERIENCE",
		NextSections:    []string{"Education", "Skills", "Projects", "Certifications"},
		RoleKeywords:    []string{"manager", "engineer", "developer", "intern", "assistant", "specialist", "analyst"},
		SummaryKeywords: []string{"summary", "passionate", "building", "developing", "experience in"},
		Weights: Weights{
			PrimaryHeader:      10,
			LongSection:        5,
			LongSectionLength:  100,
			RoleKeyword:        2,
			SummaryKeyword:     3,
			ShortSection:       5,
			ShortSectionLength: 50,
		},
		Lines: LineRules{
			MaxLineLength:    100,
			MaxCompanyLength: 50,
			MinFieldLength:   3,
			Bullets:          []string{"•", "-"},
			NarrativeVerbs:   []string{"Developed", "Built", "Integrated", "Increased", "Deployed", "Handled", "Summarize"},
			SummaryPhrases:   []string{"responsibilities", "passionate", "building"},
			RoleKeywords:     []string{"Intern", "Developer", "Engineer", "Manager", "Assistant", "Specialist"},
		},
		FallbackRoleKeywords: []string{"Intern", "Developer", "Engineer", "Manager"},
	}
}

// Validate returns an error if the configuration cannot drive the engine.
func (c Config) Validate() error {
	if len(c.Headers) == 0 {
		return vitae.Errorf(vitae.EINVALID, "at least one header is required")
	}
	for i, h := range c.Headers {
		if h == "" {
			return vitae.Errorf(vitae.EINVALID, "header %d is empty", i)
		}
	}
	for _, s := range c.NextSections {
		if s == "" {
			return vitae.Errorf(vitae.EINVALID, "next-section marker cannot be empty")
		}
	}
	if c.Weights.LongSectionLength < 0 || c.Weights.ShortSectionLength < 0 {
		return vitae.Errorf(vitae.EINVALID, "section length thresholds cannot be negative")
	}
	if c.Lines.MaxLineLength <= 0 {
		return vitae.Errorf(vitae.EINVALID, "max line length must be positive")
	}
	if c.Lines.MaxCompanyLength <= 0 {
		return vitae.Errorf(vitae.EINVALID, "max company length must be positive")
	}
	if c.Lines.MinFieldLength < 0 {
		return vitae.Errorf(vitae.EINVALID, "min field length cannot be negative")
	}
	return nil
}

// clone returns a copy that shares no slices with c.
func (c Config) clone() Config {
	c.Headers = slices.Clone(c.Headers)
	c.NextSections = slices.Clone(c.NextSections)
	c.RoleKeywords = slices.Clone(c.RoleKeywords)
	c.SummaryKeywords = slices.Clone(c.SummaryKeywords)
	c.Lines.Bullets = slices.Clone(c.Lines.Bullets)
	c.Lines.NarrativeVerbs = slices.Clone(c.Lines.NarrativeVerbs)
	c.Lines.SummaryPhrases = slices.Clone(c.Lines.SummaryPhrases)
	c.Lines.RoleKeywords = slices.Clone(c.Lines.RoleKeywords)
	c.FallbackRoleKeywords = slices.Clone(c.FallbackRoleKeywords)
	return c
}
