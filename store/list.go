// Package store holds the in-memory view of a resource collection and
// applies the optimistic-update protocol uniformly: mutations land in the
// visible list synchronously, then a background confirmation either accepts
// the server's record as authoritative or reverts the whole collection by
// refetching it.
package store

import "sync"

// Record is any resource held in an optimistic list. Identifiers are unique
// within a list; insertion order is display order.
type Record interface {
	RecordID() string
}

// Searchable is implemented by records that expose text fields for
// case-insensitive search.
type Searchable interface {
	SearchText() []string
}

// List is an ordered collection of records keyed by id. It is safe for
// concurrent use; confirmations arrive from executor goroutines while the
// event loop reads snapshots.
type List[R Record] struct {
	mu    sync.RWMutex
	items []R
}

// NewList returns an empty list.
func NewList[R Record]() *List[R] {
	return &List[R]{}
}

// Snapshot returns a copy of the visible collection in display order.
func (l *List[R]) Snapshot() []R {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]R, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of visible records.
func (l *List[R]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

// Get returns the record with the given id.
func (l *List[R]) Get(id string) (R, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, r := range l.items {
		if r.RecordID() == id {
			return r, true
		}
	}
	var zero R
	return zero, false
}

// Reset replaces the whole collection, e.g. after a fetch or a revert.
func (l *List[R]) Reset(items []R) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = make([]R, len(items))
	copy(l.items, items)
}

// InsertHead splices a record in at the head, where new records display.
func (l *List[R]) InsertHead(r R) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = append([]R{r}, l.items...)
}

// Replace swaps the record with oldID for r, keeping its position. It is a
// no-op when oldID is no longer present — a late confirmation for a record
// the user already removed must not resurrect it.
func (l *List[R]) Replace(oldID string, r R) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, cur := range l.items {
		if cur.RecordID() == oldID {
			l.items[i] = r
			return true
		}
	}
	return false
}

// Remove deletes the record with the given id. Exactly one record is
// removed; a missing id is a no-op.
func (l *List[R]) Remove(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, cur := range l.items {
		if cur.RecordID() == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return true
		}
	}
	return false
}
