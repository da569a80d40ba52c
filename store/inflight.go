package store

import "sync"

// inflightSet is the per-record mutation guard: a second mutation on an id
// with an outstanding confirmation is rejected, so out-of-order
// confirmations can never target the same record.
type inflightSet struct {
	mu  sync.Mutex
	ids map[string]struct{}
}

func (f *inflightSet) init() {
	f.ids = make(map[string]struct{})
}

// begin reserves id, reporting false when it is already reserved.
func (f *inflightSet) begin(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, busy := f.ids[id]; busy {
		return false
	}
	f.ids[id] = struct{}{}
	return true
}

func (f *inflightSet) end(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.ids, id)
}
