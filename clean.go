package vitae

import (
	"regexp"
	"strings"
	"unicode"
)

// CleanMode selects how raw document text is normalised before parsing.
type CleanMode string

// CleanMode constants for Clean.
const (
	// CleanLines normalises line endings and control characters but keeps
	// the line structure and inner spacing that the line-oriented
	// experience strategies rely on.
	CleanLines CleanMode = "lines"

	// CleanFlat collapses every whitespace run, newlines included, into a
	// single space and removes characters outside word characters, spaces
	// and "-.@()+,:;".
	CleanFlat CleanMode = "flat"

	// CleanNone leaves the text untouched.
	CleanNone CleanMode = "none"
)

// ParseCleanMode validates a clean mode name. The empty string selects
// CleanLines.
func ParseCleanMode(s string) (CleanMode, error) {
	switch mode := CleanMode(strings.ToLower(s)); mode {
	case "":
		return CleanLines, nil
	case CleanLines, CleanFlat, CleanNone:
		return mode, nil
	default:
		return "", Errorf(EINVALID, "unknown clean mode %q", s)
	}
}

var (
	flatSpaceRe   = regexp.MustCompile(`[\s\v\p{Z}]+`)
	unsupportedRe = regexp.MustCompile(`[^\p{L}\p{N}_\s.@()+,:;-]`)
	blankRunRe    = regexp.MustCompile(`\n{3,}`)
)

// Clean normalises extracted document text according to mode.
func Clean(text string, mode CleanMode) string {
	switch mode {
	case CleanNone:
		return text
	case CleanFlat:
		text = flatSpaceRe.ReplaceAllString(text, " ")
		text = unsupportedRe.ReplaceAllString(text, "")
		return strings.TrimSpace(text)
	default:
		return cleanLines(text)
	}
}

func cleanLines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	text = strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\t':
			return r
		case r == '\ufeff' || r == '\u200b' || unicode.IsControl(r):
			return -1
		case unicode.Is(unicode.Zs, r):
			return ' '
		}
		return r
	}, text)

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRightFunc(line, unicode.IsSpace)
	}
	text = strings.Join(lines, "\n")
	text = blankRunRe.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}
