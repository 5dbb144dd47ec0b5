package main

import (
	"fmt"

	"github.com/fwojciec/vitae"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	resume, err := deps.Resumes.FindResumeByID(deps.Ctx, c.ID)
	if vitae.ErrorCode(err) == vitae.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: resume %q not found. Use 'vitae list' to see stored resumes.\n", c.ID)
		return err
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vitae.ErrorMessage(err))
		return err
	}

	if c.JSON {
		return writeJSON(deps, resume)
	}
	fmt.Fprint(deps.Stdout, vitae.FormatResume(resume))
	return nil
}
