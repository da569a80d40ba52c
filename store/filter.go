package store

import "strings"

// Predicate narrows a filtered view; predicates are AND-combined with the
// search query.
type Predicate[R Record] func(R) bool

// Filter returns the records whose search text contains query
// (case-insensitive substring over title and description/content) and that
// satisfy every predicate. An empty query matches everything. The result is
// always a subset of items, in the original order.
func Filter[R Record](items []R, query string, preds ...Predicate[R]) []R {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]R, 0, len(items))
next:
	for _, r := range items {
		if query != "" && !matchesQuery(r, query) {
			continue
		}
		for _, p := range preds {
			if !p(r) {
				continue next
			}
		}
		out = append(out, r)
	}
	return out
}

func matchesQuery(r Record, lowered string) bool {
	s, ok := any(r).(Searchable)
	if !ok {
		return false
	}
	for _, field := range s.SearchText() {
		if strings.Contains(strings.ToLower(field), lowered) {
			return true
		}
	}
	return false
}
