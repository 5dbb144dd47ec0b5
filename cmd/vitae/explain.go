package main

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/fwojciec/vitae"
)

// Run executes the explain command.
func (c *ExplainCmd) Run(deps *Dependencies) error {
	mode, err := vitae.ParseCleanMode(c.Clean)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vitae.ErrorMessage(err))
		return err
	}

	_, text, err := deps.Parser.Load(deps.Ctx, c.Source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vitae.ErrorMessage(err))
		return err
	}

	out := deps.Engine.Analyze(vitae.Clean(text, mode))

	if len(out.Candidates) == 0 {
		fmt.Fprintln(deps.Stdout, "No experience headers found.")
	} else {
		tw := tabwriter.NewWriter(deps.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "HEADER\tOFFSET\tSCORE\tCHARS")
		for _, cand := range out.Candidates {
			fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", cand.Header, cand.Position, cand.Score, utf8.RuneCountInString(cand.Text))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	fmt.Fprintln(deps.Stdout)
	if out.Located {
		fmt.Fprintf(deps.Stdout, "Section: %s at offset %d (score %d)\n", out.Section.Header, out.Section.Position, out.Section.Score)
	} else {
		fmt.Fprintln(deps.Stdout, "Section: none, searching whole text")
	}
	attempted := strings.Join(out.Attempted, ", ")
	if attempted == "" {
		attempted = "none, the section is empty"
	}
	fmt.Fprintf(deps.Stdout, "Attempted: %s\n", attempted)

	strategy := out.Strategy
	if strategy == "" {
		strategy = "none"
	}
	fmt.Fprintf(deps.Stdout, "Strategy: %s\n", strategy)

	fmt.Fprintf(deps.Stdout, "\nExperience (%d):\n", len(out.Entries))
	if len(out.Entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No experience entries found.")
		return nil
	}
	fmt.Fprintln(deps.Stdout, vitae.FormatJobEntries(out.Entries))
	return nil
}
