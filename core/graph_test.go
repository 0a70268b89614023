package core_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/sociograph/core"
)

// TestAddEdge_Symmetry verifies that every insertion mirrors both directions.
func TestAddEdge_Symmetry(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddEdge("A", "B"); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if !g.HasEdge("A", "B") || !g.HasEdge("B", "A") {
		t.Errorf("edge {A,B} must be visible from both endpoints")
	}
}

// TestAddEdge_Idempotent ensures repeated insertion never inflates degree.
func TestAddEdge_Idempotent(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		if err := g.AddEdge("A", "B"); err != nil {
			t.Fatalf("AddEdge #%d: %v", i, err)
		}
	}
	if d, _ := g.Degree("A"); d != 1 {
		t.Errorf("Degree(A) = %d; want 1", d)
	}
	if got := g.EdgeCount(); got != 1 {
		t.Errorf("EdgeCount = %d; want 1", got)
	}
}

// TestAddEdge_Errors covers empty IDs and the default self-loop policy.
func TestAddEdge_Errors(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddEdge("", "B"); !errors.Is(err, core.ErrEmptyNodeID) {
		t.Errorf("empty u: want ErrEmptyNodeID, got %v", err)
	}
	if err := g.AddEdge("A", ""); !errors.Is(err, core.ErrEmptyNodeID) {
		t.Errorf("empty v: want ErrEmptyNodeID, got %v", err)
	}
	if err := g.AddEdge("A", "A"); !errors.Is(err, core.ErrSelfLoop) {
		t.Errorf("self-loop: want ErrSelfLoop, got %v", err)
	}
}

// TestWithSelfLoops verifies the opt-in loop policy: the loop is stored
// once and contributes one to degree.
func TestWithSelfLoops(t *testing.T) {
	g := core.NewGraph(core.WithSelfLoops())
	if err := g.AddEdge("A", "A"); err != nil {
		t.Fatalf("AddEdge(A,A): %v", err)
	}
	if !g.HasEdge("A", "A") {
		t.Errorf("loop {A,A} must exist")
	}
	if d, _ := g.Degree("A"); d != 1 {
		t.Errorf("Degree(A) = %d; want 1", d)
	}
	if got := g.EdgeCount(); got != 1 {
		t.Errorf("EdgeCount = %d; want 1", got)
	}
}

// TestNodes_InsertionOrder pins the first-appearance enumeration order
// that downstream rankings depend on.
func TestNodes_InsertionOrder(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("C", "A")
	g.AddEdge("B", "A")
	g.AddNode("D")
	g.AddEdge("C", "B") // no new nodes

	want := []string{"C", "A", "B", "D"}
	if got := g.Nodes(); !reflect.DeepEqual(got, want) {
		t.Errorf("Nodes() = %v; want %v", got, want)
	}
}

// TestNeighbors_SortedAndMissing covers the sorted query and the
// not-found error.
func TestNeighbors_SortedAndMissing(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "C")
	g.AddEdge("A", "B")

	nbrs, err := g.Neighbors("A")
	if err != nil {
		t.Fatalf("Neighbors(A): %v", err)
	}
	if want := []string{"B", "C"}; !reflect.DeepEqual(nbrs, want) {
		t.Errorf("Neighbors(A) = %v; want %v", nbrs, want)
	}

	if _, err = g.Neighbors("Z"); !errors.Is(err, core.ErrNodeNotFound) {
		t.Errorf("Neighbors(Z): want ErrNodeNotFound, got %v", err)
	}
	if _, err = g.Degree("Z"); !errors.Is(err, core.ErrNodeNotFound) {
		t.Errorf("Degree(Z): want ErrNodeNotFound, got %v", err)
	}
}

// TestAddNode covers isolated node registration.
func TestAddNode(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddNode(""); !errors.Is(err, core.ErrEmptyNodeID) {
		t.Errorf("empty id: want ErrEmptyNodeID, got %v", err)
	}
	if err := g.AddNode("X"); err != nil {
		t.Fatalf("AddNode(X): %v", err)
	}
	if err := g.AddNode("X"); err != nil {
		t.Fatalf("duplicate AddNode(X): %v", err)
	}
	if !g.HasNode("X") {
		t.Errorf("HasNode(X) = false; want true")
	}
	if d, _ := g.Degree("X"); d != 0 {
		t.Errorf("Degree(X) = %d; want 0", d)
	}
	if got := g.NodeCount(); got != 1 {
		t.Errorf("NodeCount = %d; want 1", got)
	}
}

// TestCounts verifies node and edge counters over a small build sequence.
func TestCounts(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	g.AddEdge("A", "C")
	g.AddEdge("A", "B") // duplicate

	if got := g.NodeCount(); got != 3 {
		t.Errorf("NodeCount = %d; want 3", got)
	}
	if got := g.EdgeCount(); got != 3 {
		t.Errorf("EdgeCount = %d; want 3", got)
	}
}
