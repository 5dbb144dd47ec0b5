package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/vitae"
	main "github.com/fwojciec/vitae/cmd/vitae"
	"github.com/fwojciec/vitae/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("saves every resume and commits", func(t *testing.T) {
		t.Parallel()

		var saved []string
		var committed bool
		var gotDir, gotName string
		store := &mock.ResumeStore{
			SaveFn: func(_ context.Context, r *vitae.Resume) error {
				saved = append(saved, r.ID)
				return nil
			},
			CommitFn: func() error {
				committed = true
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Resumes: &mock.ResumeService{
				FindResumesFn: func(_ context.Context, _ vitae.ResumeFilter) ([]*vitae.Resume, error) {
					return []*vitae.Resume{{ID: "a"}, {ID: "b"}}, nil
				},
			},
			NewStore: func(dir, name string) vitae.ResumeStore {
				gotDir, gotName = dir, name
				return store
			},
		}

		err := (&main.ExportCmd{Dir: "out", Name: "resumes"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, saved)
		assert.True(t, committed)
		assert.Equal(t, "out", gotDir)
		assert.Equal(t, "resumes", gotName)
		assert.Contains(t, stdout.String(), "Exported 2 resumes")
	})

	t.Run("aborts when a save fails", func(t *testing.T) {
		t.Parallel()

		var aborted bool
		store := &mock.ResumeStore{
			SaveFn: func(_ context.Context, _ *vitae.Resume) error {
				return errors.New("disk full")
			},
			AbortFn: func() error {
				aborted = true
				return nil
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Resumes: &mock.ResumeService{
				FindResumesFn: func(_ context.Context, _ vitae.ResumeFilter) ([]*vitae.Resume, error) {
					return []*vitae.Resume{{ID: "a"}}, nil
				},
			},
			NewStore: func(_, _ string) vitae.ResumeStore { return store },
		}

		err := (&main.ExportCmd{Dir: "out", Name: "resumes"}).Run(deps)

		require.Error(t, err)
		assert.True(t, aborted)
		assert.Contains(t, stderr.String(), "export a")
	})

	t.Run("does nothing without resumes", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Resumes: &mock.ResumeService{
				FindResumesFn: func(_ context.Context, _ vitae.ResumeFilter) ([]*vitae.Resume, error) {
					return nil, nil
				},
			},
		}

		err := (&main.ExportCmd{Dir: "out", Name: "resumes"}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No resumes to export.")
	})
}
