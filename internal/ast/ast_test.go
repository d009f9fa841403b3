package ast

import "testing"

func TestEdgeEqualUndirectedIsSymmetric(t *testing.T) {
	a := Edge{Src: "X", Op: Undirected, Tgt: "Y"}
	b := Edge{Src: "Y", Op: Undirected, Tgt: "X"}
	if !a.Equal(b) || !b.Equal(a) {
		t.Errorf("undirected edges should compare equal regardless of endpoint order")
	}
}

func TestEdgeEqualDirectedIsOrdered(t *testing.T) {
	a := Edge{Src: "X", Op: Directed, Tgt: "Y"}
	b := Edge{Src: "Y", Op: Directed, Tgt: "X"}
	if a.Equal(b) {
		t.Errorf("directed edges with swapped endpoints should not compare equal")
	}
}

func TestEdgeEqualDifferentOperators(t *testing.T) {
	a := Edge{Src: "X", Op: Undirected, Tgt: "Y"}
	b := Edge{Src: "X", Op: Directed, Tgt: "Y"}
	if a.Equal(b) {
		t.Errorf("edges with different operators should never compare equal")
	}
}

func TestEdgeKeyMatchesEqual(t *testing.T) {
	a := Edge{Src: "X", Op: Undirected, Tgt: "Y"}
	b := Edge{Src: "Y", Op: Undirected, Tgt: "X"}
	if a.Key() != b.Key() {
		t.Errorf("Key() must agree with Equal: %v != %v", a.Key(), b.Key())
	}

	c := Edge{Src: "X", Op: Directed, Tgt: "Y"}
	d := Edge{Src: "Y", Op: Directed, Tgt: "X"}
	if c.Key() == d.Key() {
		t.Errorf("directed edges with swapped endpoints must key differently")
	}
}

func TestSortedAttrsOrdersByKey(t *testing.T) {
	m := map[string]string{"color": "blue", "age": "19", "zip": "0"}
	got := SortedAttrs(m)
	want := []string{"age", "color", "zip"}
	if len(got) != len(want) {
		t.Fatalf("got %d items, want %d", len(got), len(want))
	}
	for i, k := range want {
		if got[i].Key != k {
			t.Errorf("item %d: got key %q, want %q", i, got[i].Key, k)
		}
	}
}

func TestSortedAttrsEmpty(t *testing.T) {
	got := SortedAttrs(nil)
	if len(got) != 0 {
		t.Errorf("expected no items for a nil map, got %v", got)
	}
}

func TestGraphTypeString(t *testing.T) {
	if Graph.String() != "graph" {
		t.Errorf("got %q, want graph", Graph.String())
	}
	if Digraph.String() != "digraph" {
		t.Errorf("got %q, want digraph", Digraph.String())
	}
}
