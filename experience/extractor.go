package experience

import "github.com/fwojciec/vitae"

// Ensure Extractor implements vitae.ExperienceExtractor.
var _ vitae.ExperienceExtractor = (*Extractor)(nil)

// Outcome describes how one document was processed.
type Outcome struct {
	// Candidates holds every scored header occurrence, best first.
	Candidates []SectionCandidate
	// Section is the winning candidate when Located is true.
	Section SectionCandidate
	Located bool
	// Attempted lists strategy names in the order they ran.
	Attempted []string
	// Strategy names the strategy that produced Entries, or is empty.
	Strategy string
	Entries  []vitae.JobEntry
}

// Extractor runs the locate-then-cascade pipeline.
type Extractor struct {
	// Report, if set, receives the outcome of every call.
	Report func(Outcome)

	locator  *Locator
	block    []Strategy
	fallback Strategy
}

// NewExtractor returns an Extractor for cfg. The configuration is copied.
func NewExtractor(cfg Config) (*Extractor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Extractor{
		locator:  NewLocator(cfg),
		block:    []Strategy{PipeFormat(), DateFirst(), LineByLine(cfg)},
		fallback: WholeText(cfg),
	}, nil
}

// ExtractExperience returns the job entries found in text. It never fails;
// a document with no recognisable entries yields an empty slice.
func (e *Extractor) ExtractExperience(text string) []vitae.JobEntry {
	return e.Analyze(text).Entries
}

// Analyze runs the pipeline and reports each decision it made.
func (e *Extractor) Analyze(text string) Outcome {
	out := Outcome{Candidates: e.locator.Candidates(text)}
	if len(out.Candidates) > 0 && out.Candidates[0].Score > 0 {
		out.Section = out.Candidates[0]
		out.Located = true
	}

	// A located section with no content ends the search with no entries.
	var steps []step
	switch {
	case !out.Located:
		steps = append(steps, step{e.fallback, text})
	case out.Section.Text != "":
		for _, s := range e.block {
			steps = append(steps, step{s, out.Section.Text})
		}
		steps = append(steps, step{e.fallback, text})
	}

	for _, s := range steps {
		out.Attempted = append(out.Attempted, s.Name)
		if entries := s.Extract(s.text); len(entries) > 0 {
			out.Strategy = s.Name
			out.Entries = entries
			break
		}
	}
	if out.Entries == nil {
		out.Entries = []vitae.JobEntry{}
	}

	if e.Report != nil {
		e.Report(out)
	}
	return out
}

// step pairs a strategy with the text it runs over.
type step struct {
	Strategy
	text string
}
