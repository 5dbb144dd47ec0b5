package vitae

import (
	"context"
	"time"
)

// Resume is the aggregate record produced by parsing one resume document.
type Resume struct {
	ID         string        `json:"id"`
	Source     string        `json:"source"`
	Format     Format        `json:"format"`
	Text       string        `json:"text"`
	TextHash   string        `json:"textHash"`
	Summary    string        `json:"summary"`
	Experience []JobEntry    `json:"experience"`
	Metadata   ParseMetadata `json:"metadata"`
	CreatedAt  time.Time     `json:"createdAt"`
}

// ParseMetadata describes how a resume was parsed.
type ParseMetadata struct {
	TextLength        int           `json:"textLength"`
	ExperienceEntries int           `json:"experienceEntries"`
	CleanMode         CleanMode     `json:"cleanMode"`
	ProcessingTime    time.Duration `json:"processingTime"`
}

// Validate returns an error if the resume contains invalid fields.
func (r *Resume) Validate() error {
	if r.Source == "" {
		return Errorf(EINVALID, "resume source required")
	}
	if r.Format == "" {
		return Errorf(EINVALID, "resume format required")
	}
	return nil
}

// ResumeService represents a service for managing parsed resumes.
type ResumeService interface {
	// CreateResume stores a new resume together with its job entries.
	CreateResume(ctx context.Context, resume *Resume) error

	// FindResumeByID retrieves a resume by ID.
	// Returns ENOTFOUND if resume does not exist.
	FindResumeByID(ctx context.Context, id string) (*Resume, error)

	// FindResumes retrieves resumes matching the filter.
	FindResumes(ctx context.Context, filter ResumeFilter) ([]*Resume, error)

	// DeleteResume permanently removes a resume and its job entries.
	// Returns ENOTFOUND if resume does not exist.
	DeleteResume(ctx context.Context, id string) error
}

// ResumeFilter represents a filter for FindResumes.
type ResumeFilter struct {
	ID       *string `json:"id"`
	Source   *string `json:"source"`
	TextHash *string `json:"textHash"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ResumeStore persists resumes outside the database with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type ResumeStore interface {
	Save(ctx context.Context, resume *Resume) error
	Commit() error
	Abort() error
}
