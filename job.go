package vitae

// JobEntry is one position found in the work-history part of a resume.
// Fields hold the raw text as it appeared in the document; an absent field
// is the empty string.
type JobEntry struct {
	Title     string `json:"title"`
	Company   string `json:"company"`
	Location  string `json:"location"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`

	// Description is reserved and currently always empty.
	Description string `json:"description"`
}

// ExperienceExtractor converts resume text into job entries.
type ExperienceExtractor interface {
	// ExtractExperience returns the job entries found in text, in discovery
	// order. It never fails: text without recognisable work history yields
	// an empty result.
	ExtractExperience(text string) []JobEntry
}
