package store

import "testing"

type note struct {
	id    string
	title string
	body  string
	done  bool
}

func (n note) RecordID() string     { return n.id }
func (n note) SearchText() []string { return []string{n.title, n.body} }

func ids[R Record](items []R) []string {
	out := make([]string, len(items))
	for i, r := range items {
		out[i] = r.RecordID()
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestList_InsertHeadOrder(t *testing.T) {
	t.Parallel()
	l := NewList[note]()
	l.InsertHead(note{id: "a"})
	l.InsertHead(note{id: "b"})
	l.InsertHead(note{id: "c"})
	if got := ids(l.Snapshot()); !equalIDs(got, []string{"c", "b", "a"}) {
		t.Fatalf("order = %v", got)
	}
}

func TestList_ReplaceKeepsPosition(t *testing.T) {
	t.Parallel()
	l := NewList[note]()
	l.Reset([]note{{id: "a"}, {id: "tmp"}, {id: "c"}})
	if !l.Replace("tmp", note{id: "srv-9", title: "confirmed"}) {
		t.Fatal("Replace reported miss")
	}
	if got := ids(l.Snapshot()); !equalIDs(got, []string{"a", "srv-9", "c"}) {
		t.Fatalf("order after replace = %v", got)
	}
}

// A late confirmation for a removed record must not resurrect it.
func TestList_ReplaceAbsentIsNoop(t *testing.T) {
	t.Parallel()
	l := NewList[note]()
	l.Reset([]note{{id: "a"}})
	if l.Replace("gone", note{id: "gone"}) {
		t.Fatal("Replace on absent id should be a no-op")
	}
	if l.Len() != 1 {
		t.Fatalf("len = %d", l.Len())
	}
}

func TestList_RemoveExactlyOne(t *testing.T) {
	t.Parallel()
	l := NewList[note]()
	l.Reset([]note{{id: "a"}, {id: "b"}, {id: "c"}})
	if !l.Remove("b") {
		t.Fatal("Remove reported miss")
	}
	if got := ids(l.Snapshot()); !equalIDs(got, []string{"a", "c"}) {
		t.Fatalf("after remove = %v", got)
	}
	if l.Remove("b") {
		t.Fatal("second remove of same id should be a no-op")
	}
}

func TestList_SnapshotIsolated(t *testing.T) {
	t.Parallel()
	l := NewList[note]()
	l.Reset([]note{{id: "a"}})
	snap := l.Snapshot()
	l.InsertHead(note{id: "b"})
	if len(snap) != 1 {
		t.Fatal("snapshot mutated by later writes")
	}
}
