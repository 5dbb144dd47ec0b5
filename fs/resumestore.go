package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/vitae"
)

// Ensure ResumeStore implements vitae.ResumeStore at compile time.
var _ vitae.ResumeStore = (*ResumeStore)(nil)

// ResumeStore implements vitae.ResumeStore with atomic update semantics.
// Resumes are saved as JSON to a temporary directory, then moved atomically
// on Commit.
type ResumeStore struct {
	baseDir string
	name    string
}

// NewResumeStore creates a new ResumeStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewResumeStore(baseDir, name string) *ResumeStore {
	return &ResumeStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *ResumeStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *ResumeStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes resume to the temporary directory.
func (s *ResumeStore) Save(ctx context.Context, resume *vitae.Resume) error {
	if err := resume.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(resume, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.tempDir(), FileName(resume)), append(data, '\n'), 0644)
}

// Commit replaces the output directory with everything saved so far.
func (s *ResumeStore) Commit() error {
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards everything saved so far.
func (s *ResumeStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}

// FileName returns the export file name for a resume: its ID when set,
// otherwise the base name of its source. Directory parts are dropped so a
// source cannot escape the output directory.
func FileName(resume *vitae.Resume) string {
	name := resume.ID
	if name == "" {
		base := filepath.Base(filepath.FromSlash(resume.Source))
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	switch name {
	case "", ".", "..", string(filepath.Separator):
		name = "resume"
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, name) + ".json"
}
