package experience

import (
	"sort"
	"strings"
	"unicode"
)

// Boundary finds where a section's content ends.
type Boundary struct {
	markers []string
}

// NewBoundary returns a Boundary that stops at the earliest of markers.
func NewBoundary(markers []string) Boundary {
	return Boundary{markers: markers}
}

// End returns the offset in text where the section starting at start ends:
// the earliest next-section marker at or after start, or len(text).
func (b Boundary) End(text string, start int) int {
	return b.index(text).end(start)
}

// Block returns the trimmed section content starting at start.
func (b Boundary) Block(text string, start int) string {
	idx := b.index(text)
	from, to := idx.span(start)
	return text[from:to]
}

// index records every marker occurrence in text so that many sections of
// the same text can be bounded without rescanning it.
func (b Boundary) index(text string) *markerIndex {
	idx := &markerIndex{text: text, trimmed: make(map[int]int)}
	for _, m := range b.markers {
		if m == "" {
			continue
		}
		idx.offsets = append(idx.offsets, occurrences(text, m)...)
	}
	sort.Ints(idx.offsets)
	return idx
}

type markerIndex struct {
	text    string
	offsets []int
	// trimmed caches the right-trimmed length of text[:end] per end.
	trimmed map[int]int
}

func (m *markerIndex) end(start int) int {
	i := sort.SearchInts(m.offsets, start)
	if i == len(m.offsets) {
		return len(m.text)
	}
	return m.offsets[i]
}

// span returns the bounds of the whitespace-trimmed section at start.
func (m *markerIndex) span(start int) (int, int) {
	end := m.end(start)
	to, ok := m.trimmed[end]
	if !ok {
		to = len(strings.TrimRightFunc(m.text[:end], unicode.IsSpace))
		m.trimmed[end] = to
	}
	if to <= start {
		return start, start
	}
	from := to - len(strings.TrimLeftFunc(m.text[start:to], unicode.IsSpace))
	return from, to
}

// occurrences returns the offset of every match of sub in s, overlapping
// matches included.
func occurrences(s, sub string) []int {
	var offsets []int
	for i := 0; i <= len(s)-len(sub); {
		j := strings.Index(s[i:], sub)
		if j == -1 {
			break
		}
		offsets = append(offsets, i+j)
		i += j + 1
	}
	return offsets
}
