package experience

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Scorer rates how plausible a block is as a true experience section.
type Scorer struct {
	primary string
	role    []string
	summary []string
	weights Weights
}

// NewScorer returns a Scorer using the keywords and weights in cfg.
func NewScorer(cfg Config) Scorer {
	cfg = cfg.clone()
	return Scorer{
		primary: cfg.PrimaryHeader,
		role:    lowerAll(cfg.RoleKeywords),
		summary: lowerAll(cfg.SummaryKeywords),
		weights: cfg.Weights,
	}
}

// Score returns the signed score of block found under header.
func (s Scorer) Score(header, block string) int {
	lower := strings.ToLower(block)
	return s.score(header, utf8.RuneCountInString(block), countAll(lower, s.role), countAll(lower, s.summary))
}

func (s Scorer) score(header string, length, roleHits, summaryHits int) int {
	w := s.weights
	score := 0

	if s.primary != "" && header == s.primary {
		score += w.PrimaryHeader
	}
	if length > w.LongSectionLength {
		score += w.LongSection
	}

	score += w.RoleKeyword * roleHits
	score -= w.SummaryKeyword * summaryHits

	if length < w.ShortSectionLength {
		score -= w.ShortSection
	}
	return score
}

// index lowercases text once and records where each keyword occurs, so
// that any span of text can be scored without rescanning it.
func (s Scorer) index(text string) *scoreIndex {
	idx := &scoreIndex{
		scorer:  s,
		lowerAt: make([]int, len(text)+1),
		runesAt: make([]int, len(text)+1),
	}

	var b strings.Builder
	b.Grow(len(text))
	runes := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		for j := i; j < i+size; j++ {
			idx.lowerAt[j] = b.Len()
			idx.runesAt[j] = runes
		}
		b.WriteRune(unicode.ToLower(r))
		runes++
		i += size
	}
	idx.lowerAt[len(text)] = b.Len()
	idx.runesAt[len(text)] = runes
	idx.lower = b.String()

	idx.role = idx.keywordHits(s.role)
	idx.summary = idx.keywordHits(s.summary)
	return idx
}

type scoreIndex struct {
	scorer Scorer
	lower  string
	// lowerAt maps a byte offset in the text to one in lower.
	lowerAt []int
	// runesAt holds the rune count of the text before each byte offset.
	runesAt []int
	role    []keywordHits
	summary []keywordHits
}

type keywordHits struct {
	keyword string
	// offsets in lower; nil when keyword overlaps itself and must be
	// counted per span.
	offsets []int
}

func (idx *scoreIndex) keywordHits(keywords []string) []keywordHits {
	hits := make([]keywordHits, 0, len(keywords))
	for _, k := range keywords {
		if k == "" {
			continue
		}
		h := keywordHits{keyword: k}
		if !overlapsItself(k) {
			h.offsets = occurrences(idx.lower, k)
			if h.offsets == nil {
				h.offsets = []int{}
			}
		}
		hits = append(hits, h)
	}
	return hits
}

// scoreSpan returns the score of text[from:to] found under header.
func (idx *scoreIndex) scoreSpan(header string, from, to int) int {
	lfrom, lto := idx.lowerAt[from], idx.lowerAt[to]
	return idx.scorer.score(header,
		idx.runesAt[to]-idx.runesAt[from],
		idx.count(idx.role, lfrom, lto),
		idx.count(idx.summary, lfrom, lto))
}

func (idx *scoreIndex) count(hits []keywordHits, from, to int) int {
	total := 0
	for _, h := range hits {
		if h.offsets == nil {
			total += strings.Count(idx.lower[from:to], h.keyword)
			continue
		}
		last := to - len(h.keyword)
		if last < from {
			continue
		}
		total += sort.SearchInts(h.offsets, last+1) - sort.SearchInts(h.offsets, from)
	}
	return total
}

// overlapsItself reports whether two matches of k can overlap, as in "aa".
func overlapsItself(k string) bool {
	for i := 1; i < len(k); i++ {
		if strings.HasPrefix(k, k[i:]) {
			return true
		}
	}
	return false
}

func countAll(s string, keywords []string) int {
	total := 0
	for _, k := range keywords {
		if k != "" {
			total += strings.Count(s, k)
		}
	}
	return total
}

func lowerAll(ss []string) []string {
	for i, s := range ss {
		ss[i] = strings.ToLower(s)
	}
	return ss
}
