package utils

// SeenFilter tracks which identifiers were already emitted during a single
// traversal. It is not shared between calls.
type SeenFilter struct {
	seen map[string]struct{}
}

// NewSeenFilter creates a filter sized for roughly n identifiers.
func NewSeenFilter(n int) *SeenFilter {
	if n < 0 {
		n = 0
	}
	return &SeenFilter{seen: make(map[string]struct{}, n)}
}

// ShouldInclude reports whether id is new, and records it.
// Returns false for every later call with the same id.
func (f *SeenFilter) ShouldInclude(id string) bool {
	if _, ok := f.seen[id]; ok {
		return false
	}
	f.seen[id] = struct{}{}
	return true
}
