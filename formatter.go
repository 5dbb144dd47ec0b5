package vitae

import (
	"fmt"
	"strings"
)

// FormatJobEntry renders a single entry on one line.
// Missing fields are omitted rather than shown empty.
func FormatJobEntry(e JobEntry) string {
	var b strings.Builder
	b.WriteString(e.Title)
	if e.Title == "" {
		b.WriteString("(untitled)")
	}
	if e.Company != "" {
		b.WriteString(" @ ")
		b.WriteString(e.Company)
	}
	if e.StartDate != "" || e.EndDate != "" {
		b.WriteString(" [")
		b.WriteString(e.StartDate)
		if e.EndDate != "" {
			b.WriteString(" - ")
			b.WriteString(e.EndDate)
		}
		b.WriteString("]")
	}
	if e.Location != "" {
		b.WriteString(" (")
		b.WriteString(e.Location)
		b.WriteString(")")
	}
	return b.String()
}

// FormatJobEntries renders entries as a numbered list, one per line.
func FormatJobEntries(entries []JobEntry) string {
	if len(entries) == 0 {
		return ""
	}

	lines := make([]string, 0, len(entries))
	for i, e := range entries {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, FormatJobEntry(e)))
	}
	return strings.Join(lines, "\n")
}

// FormatResume renders a parsed resume for display.
func FormatResume(r *Resume) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Source: %s (%s)\n", r.Source, r.Format)
	if r.ID != "" {
		fmt.Fprintf(&b, "ID: %s\n", r.ID)
	}

	if r.Summary != "" {
		b.WriteString("\nSummary:\n")
		b.WriteString(r.Summary)
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\nExperience (%d):\n", len(r.Experience))
	if len(r.Experience) == 0 {
		b.WriteString("No experience entries found.")
	} else {
		b.WriteString(FormatJobEntries(r.Experience))
	}
	return b.String()
}
