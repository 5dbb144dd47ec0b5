package vitae

// DuplicateFilter remembers the keys it has been shown.
type DuplicateFilter interface {
	// TestAndAdd reports whether key may have been added before, then adds
	// it. Implementations may report false positives but never false
	// negatives.
	TestAndAdd(key string) bool
}
