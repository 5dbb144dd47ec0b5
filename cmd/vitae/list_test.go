package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/vitae"
	main "github.com/fwojciec/vitae/cmd/vitae"
	"github.com/fwojciec/vitae/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists resumes with ID, source and entry count", func(t *testing.T) {
		t.Parallel()

		var gotFilter vitae.ResumeFilter
		resumes := &mock.ResumeService{
			FindResumesFn: func(_ context.Context, filter vitae.ResumeFilter) ([]*vitae.Resume, error) {
				gotFilter = filter
				return []*vitae.Resume{
					{
						ID:         "res-123",
						Source:     "jane.pdf",
						Experience: []vitae.JobEntry{{Title: "Engineer"}, {Title: "Intern"}},
						CreatedAt:  time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
					},
					{
						ID:        "res-456",
						Source:    "https://john.example.com/cv",
						CreatedAt: time.Date(2025, 1, 16, 11, 0, 0, 0, time.UTC),
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Resumes: resumes,
		}

		err := (&main.ListCmd{Limit: 50}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, 50, gotFilter.Limit)
		assert.Nil(t, gotFilter.Source)
		output := stdout.String()
		assert.Contains(t, output, "res-123  jane.pdf  2 entries  2025-01-15 10:00:00")
		assert.Contains(t, output, "res-456  https://john.example.com/cv  0 entries")
	})

	t.Run("filters by source", func(t *testing.T) {
		t.Parallel()

		var gotFilter vitae.ResumeFilter
		resumes := &mock.ResumeService{
			FindResumesFn: func(_ context.Context, filter vitae.ResumeFilter) ([]*vitae.Resume, error) {
				gotFilter = filter
				return nil, nil
			},
		}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  &bytes.Buffer{},
			Resumes: resumes,
		}

		err := (&main.ListCmd{Source: "jane.pdf"}).Run(deps)

		require.NoError(t, err)
		require.NotNil(t, gotFilter.Source)
		assert.Equal(t, "jane.pdf", *gotFilter.Source)
	})

	t.Run("shows helpful message when no resumes exist", func(t *testing.T) {
		t.Parallel()

		resumes := &mock.ResumeService{
			FindResumesFn: func(_ context.Context, _ vitae.ResumeFilter) ([]*vitae.Resume, error) {
				return []*vitae.Resume{}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Resumes: resumes,
		}

		err := (&main.ListCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No resumes found")
	})

	t.Run("returns error when FindResumes fails", func(t *testing.T) {
		t.Parallel()

		dbErr := errors.New("database connection failed")
		resumes := &mock.ResumeService{
			FindResumesFn: func(_ context.Context, _ vitae.ResumeFilter) ([]*vitae.Resume, error) {
				return nil, dbErr
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			Resumes: resumes,
		}

		err := (&main.ListCmd{}).Run(deps)

		require.ErrorIs(t, err, dbErr)
		assert.Contains(t, stderr.String(), "error:")
	})
}
