package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/vitae"
	"github.com/fwojciec/vitae/bloom"
	"github.com/fwojciec/vitae/parse"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	mode, err := vitae.ParseCleanMode(c.Clean)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vitae.ErrorMessage(err))
		return err
	}
	deps.Parser.Clean = mode
	if c.Concurrency > 0 {
		deps.Parser.Concurrency = c.Concurrency
	}
	if !c.Duplicates {
		deps.Parser.Duplicates = bloom.NewTextFilter(len(c.Sources))
	}

	progress := func(event parse.ProgressEvent) {
		switch event.Type {
		case parse.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.Source, event.Error)
		case parse.ProgressDuplicate:
			fmt.Fprintf(deps.Stderr, "  duplicate %s\n", event.Source)
		}
	}

	result, err := deps.Parser.ParseAll(deps.Ctx, c.Sources, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error parsing: %v\n", err)
		return err
	}

	var parsed []*vitae.Resume
	for _, r := range result.Resumes {
		if r == nil {
			continue
		}
		if c.Store {
			if err := deps.Resumes.CreateResume(deps.Ctx, r); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", vitae.ErrorMessage(err))
				return err
			}
		}
		parsed = append(parsed, r)
	}

	if c.JSON {
		if parsed == nil {
			parsed = []*vitae.Resume{}
		}
		if err := writeJSON(deps, parsed); err != nil {
			return err
		}
	} else {
		for i, r := range parsed {
			if i > 0 {
				fmt.Fprintln(deps.Stdout)
			}
			fmt.Fprint(deps.Stdout, vitae.FormatResume(r))
		}
	}

	fmt.Fprintf(deps.Stderr, "Parsed %d of %d resumes (%s)\n",
		result.Parsed, len(c.Sources), parse.FormatBytes(result.Bytes))

	if result.Duplicates > 0 {
		fmt.Fprintf(deps.Stderr, "Skipped %d duplicate resumes\n", result.Duplicates)
	}

	if result.Parsed == 0 && result.Failed > 0 {
		return vitae.Errorf(vitae.EINVALID, "no resumes parsed")
	}
	return nil
}

func writeJSON(deps *Dependencies, v any) error {
	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	return nil
}
