package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/vitae"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := vitae.ResumeFilter{Limit: c.Limit}
	if c.Source != "" {
		filter.Source = &c.Source
	}

	resumes, err := deps.Resumes.FindResumes(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vitae.ErrorMessage(err))
		return err
	}

	if len(resumes) == 0 {
		fmt.Fprintln(deps.Stdout, "No resumes found. Use 'vitae parse --store' to add one.")
		return nil
	}

	for _, r := range resumes {
		fmt.Fprintf(deps.Stdout, "%s  %s  %d entries  %s\n",
			r.ID, r.Source, len(r.Experience), r.CreatedAt.Format(time.DateTime))
	}

	return nil
}
