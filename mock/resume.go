package mock

import (
	"context"

	"github.com/fwojciec/vitae"
)

var _ vitae.ResumeService = (*ResumeService)(nil)

// ResumeService is a mock implementation of vitae.ResumeService.
type ResumeService struct {
	CreateResumeFn   func(ctx context.Context, resume *vitae.Resume) error
	FindResumeByIDFn func(ctx context.Context, id string) (*vitae.Resume, error)
	FindResumesFn    func(ctx context.Context, filter vitae.ResumeFilter) ([]*vitae.Resume, error)
	DeleteResumeFn   func(ctx context.Context, id string) error
}

func (s *ResumeService) CreateResume(ctx context.Context, resume *vitae.Resume) error {
	return s.CreateResumeFn(ctx, resume)
}

func (s *ResumeService) FindResumeByID(ctx context.Context, id string) (*vitae.Resume, error) {
	return s.FindResumeByIDFn(ctx, id)
}

func (s *ResumeService) FindResumes(ctx context.Context, filter vitae.ResumeFilter) ([]*vitae.Resume, error) {
	return s.FindResumesFn(ctx, filter)
}

func (s *ResumeService) DeleteResume(ctx context.Context, id string) error {
	return s.DeleteResumeFn(ctx, id)
}

var _ vitae.ResumeStore = (*ResumeStore)(nil)

// ResumeStore is a mock implementation of vitae.ResumeStore.
type ResumeStore struct {
	SaveFn   func(ctx context.Context, resume *vitae.Resume) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *ResumeStore) Save(ctx context.Context, resume *vitae.Resume) error {
	return s.SaveFn(ctx, resume)
}

func (s *ResumeStore) Commit() error {
	return s.CommitFn()
}

func (s *ResumeStore) Abort() error {
	return s.AbortFn()
}
