package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/vitae"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	resumes, err := deps.Resumes.FindResumes(deps.Ctx, vitae.ResumeFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vitae.ErrorMessage(err))
		return err
	}

	if len(resumes) == 0 {
		fmt.Fprintln(deps.Stdout, "No resumes to export.")
		return nil
	}

	store := deps.NewStore(c.Dir, c.Name)
	for _, r := range resumes {
		if err := store.Save(deps.Ctx, r); err != nil {
			_ = store.Abort()
			fmt.Fprintf(deps.Stderr, "error: export %s: %s\n", r.ID, vitae.ErrorMessage(err))
			return err
		}
	}

	if err := store.Commit(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vitae.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d resumes to %s\n", len(resumes), filepath.Join(c.Dir, c.Name))
	return nil
}
