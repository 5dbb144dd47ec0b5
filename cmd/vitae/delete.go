package main

import (
	"fmt"

	"github.com/fwojciec/vitae"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return vitae.Errorf(vitae.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Resumes.DeleteResume(deps.Ctx, c.ID); vitae.ErrorCode(err) == vitae.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: resume %q not found. Use 'vitae list' to see stored resumes.\n", c.ID)
		return err
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vitae.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted resume %s\n", c.ID)
	return nil
}
