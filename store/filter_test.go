package store

import (
	"strings"
	"testing"
)

var sample = []note{
	{id: "1", title: "Buy groceries", body: "Milk, eggs, bread", done: true},
	{id: "2", title: "Dentist", body: "Call Dr. Smith", done: false},
	{id: "3", title: "Project documentation", body: "write API docs", done: false},
}

func TestFilter_CaseInsensitiveSubstring(t *testing.T) {
	t.Parallel()
	got := Filter(sample, "GROCER")
	if len(got) != 1 || got[0].id != "1" {
		t.Fatalf("got %v", ids(got))
	}
	// matches body too
	got = Filter(sample, "api")
	if len(got) != 1 || got[0].id != "3" {
		t.Fatalf("got %v", ids(got))
	}
}

func TestFilter_EmptyQueryMatchesAll(t *testing.T) {
	t.Parallel()
	if got := Filter(sample, "  "); len(got) != len(sample) {
		t.Fatalf("got %d items", len(got))
	}
}

func TestFilter_PredicatesANDWithQuery(t *testing.T) {
	t.Parallel()
	incomplete := func(n note) bool { return !n.done }
	got := Filter(sample, "", incomplete)
	if len(got) != 2 {
		t.Fatalf("incomplete filter got %v", ids(got))
	}
	// query AND predicate
	got = Filter(sample, "d", incomplete)
	for _, n := range got {
		if n.done {
			t.Fatalf("predicate violated: %+v", n)
		}
		if !strings.Contains(strings.ToLower(n.title+n.body), "d") {
			t.Fatalf("query violated: %+v", n)
		}
	}
}

// The filtered view is always a subset of the input, in input order.
func TestFilter_SubsetProperty(t *testing.T) {
	t.Parallel()
	for _, q := range []string{"", "a", "e", "zzz", "DOC"} {
		got := Filter(sample, q)
		j := 0
		for _, n := range got {
			for j < len(sample) && sample[j].id != n.id {
				j++
			}
			if j == len(sample) {
				t.Fatalf("query %q: result not an ordered subset: %v", q, ids(got))
			}
		}
	}
}
