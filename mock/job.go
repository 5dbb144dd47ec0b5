package mock

import "github.com/fwojciec/vitae"

var _ vitae.ExperienceExtractor = (*ExperienceExtractor)(nil)

// ExperienceExtractor is a mock implementation of vitae.ExperienceExtractor.
type ExperienceExtractor struct {
	ExtractExperienceFn func(text string) []vitae.JobEntry
}

func (e *ExperienceExtractor) ExtractExperience(text string) []vitae.JobEntry {
	return e.ExtractExperienceFn(text)
}
