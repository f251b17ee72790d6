package backlog

import (
	"strings"
	"testing"
)

func buildTestGraph(t *testing.T, items []WorkItem) *Graph {
	t.Helper()
	g, err := Build(items)
	if err != nil {
		t.Fatalf("build graph: %v", err)
	}
	return g
}

func TestBuild_SimpleDAG(t *testing.T) {
	// d depends on b and c, both of which depend on a
	items := []WorkItem{
		{ID: "a", Title: "Item A", Status: StatusBacklog},
		{ID: "b", Title: "Item B", Status: StatusBacklog, Dependencies: []string{"a"}},
		{ID: "c", Title: "Item C", Status: StatusBacklog, Dependencies: []string{"a"}},
		{ID: "d", Title: "Item D", Status: StatusBacklog, Dependencies: []string{"b", "c"}},
	}

	g := buildTestGraph(t, items)

	if g.ItemCount() != 4 {
		t.Errorf("expected 4 items, got %d", g.ItemCount())
	}
	if adj := g.Adj["a"]; len(adj) != 2 {
		t.Errorf("expected a to unblock 2 items, got %v", adj)
	}
	if rev := g.RevAdj["d"]; len(rev) != 2 {
		t.Errorf("expected d to depend on 2 items, got %v", rev)
	}
}

func TestBuild_UnknownDependency(t *testing.T) {
	items := []WorkItem{
		{ID: "a", Title: "Item A", Status: StatusBacklog, Dependencies: []string{"ghost"}},
	}

	_, err := Build(items)
	if err == nil {
		t.Fatal("expected unknown dependency error, got nil")
	}
	if !strings.Contains(err.Error(), "ghost") {
		t.Errorf("error should name the unknown dependency: %v", err)
	}
}

func TestBuild_NegativeStoryPoints(t *testing.T) {
	items := []WorkItem{
		{ID: "a", Title: "Item A", StoryPoints: -3, Status: StatusBacklog},
	}

	_, err := Build(items)
	if err == nil {
		t.Fatal("expected negative story points error, got nil")
	}
}

func TestBuild_DuplicateID(t *testing.T) {
	items := []WorkItem{
		{ID: "a", Title: "First"},
		{ID: "a", Title: "Second"},
	}

	_, err := Build(items)
	if err == nil {
		t.Fatal("expected duplicate id error, got nil")
	}
}

func TestBuild_CycleDetection(t *testing.T) {
	// a -> b -> c -> a
	items := []WorkItem{
		{ID: "a", Dependencies: []string{"c"}},
		{ID: "b", Dependencies: []string{"a"}},
		{ID: "c", Dependencies: []string{"b"}},
	}

	_, err := Build(items)
	if err == nil {
		t.Fatal("expected cycle error, got nil")
	}
	if !strings.Contains(err.Error(), "cycle") {
		t.Errorf("error should mention the cycle: %v", err)
	}
	t.Logf("cycle error (expected): %v", err)
}

func TestBuild_SelfDependencyIsCycle(t *testing.T) {
	items := []WorkItem{
		{ID: "a", Dependencies: []string{"a"}},
	}

	_, err := Build(items)
	if err == nil {
		t.Fatal("expected cycle error for self dependency, got nil")
	}
}

func TestUnmetDependencies(t *testing.T) {
	items := []WorkItem{
		{ID: "done-dep", Status: StatusDone},
		{ID: "open-dep", Status: StatusInProgress},
		{ID: "x", Status: StatusBacklog, Dependencies: []string{"done-dep", "open-dep"}},
	}

	g := buildTestGraph(t, items)

	unmet := g.UnmetDependencies("x")
	if len(unmet) != 1 || unmet[0] != "open-dep" {
		t.Errorf("expected unmet=[open-dep], got %v", unmet)
	}
}
