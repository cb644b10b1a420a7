package storage

import "github.com/alexanderramin/tasktimer/internal/domain"

// ByCategory keeps sessions whose category is one of the given labels,
// preserving order. No labels means no matches.
func ByCategory(sessions []*domain.Session, categories ...string) []*domain.Session {
	want := make(map[string]bool, len(categories))
	for _, c := range categories {
		want[c] = true
	}

	var out []*domain.Session
	for _, s := range sessions {
		if want[s.Category] {
			out = append(out, s)
		}
	}
	return out
}

// Count returns the session cardinality. Provided as a named operation for
// symmetry with the filtered variants.
func Count(sessions []*domain.Session) int {
	return len(sessions)
}
