package plan

import (
	"reflect"
	"testing"

	"github.com/pethmivithana/research-agile-tool/internal/backlog"
	"github.com/pethmivithana/research-agile-tool/internal/config"
)

func buildGraph(t *testing.T, items []backlog.WorkItem) *backlog.Graph {
	t.Helper()
	g, err := backlog.Build(items)
	if err != nil {
		t.Fatalf("build graph: %v", err)
	}
	return g
}

func scoring() config.Scoring {
	return config.Default().Scoring
}

func TestPlan_SingleItemFillsCapacity(t *testing.T) {
	// End-to-end: one high-value 5 SP item against a 5 SP budget.
	g := buildGraph(t, []backlog.WorkItem{
		{ID: "X", BusinessValue: 80, Urgency: 80, StoryPoints: 5, Status: backlog.StatusBacklog},
	})

	res := Plan(g, scoring(), 5, nil)

	if !reflect.DeepEqual(res.SelectedIDs, []string{"X"}) {
		t.Errorf("expected selected=[X], got %v", res.SelectedIDs)
	}
	if res.TotalPoints != 5 {
		t.Errorf("expected total 5, got %g", res.TotalPoints)
	}
	if res.RemainingCapacity != 0 {
		t.Errorf("expected remaining 0, got %g", res.RemainingCapacity)
	}
}

func TestPlan_RespectsCapacity(t *testing.T) {
	g := buildGraph(t, []backlog.WorkItem{
		{ID: "a", BusinessValue: 90, Urgency: 90, StoryPoints: 8, Status: backlog.StatusBacklog},
		{ID: "b", BusinessValue: 80, Urgency: 80, StoryPoints: 5, Status: backlog.StatusBacklog},
		{ID: "c", BusinessValue: 70, Urgency: 70, StoryPoints: 3, Status: backlog.StatusBacklog},
	})

	for _, capacity := range []float64{0, 3, 8, 11, 100} {
		res := Plan(g, scoring(), capacity, nil)
		if res.TotalPoints > capacity {
			t.Errorf("capacity %g: total %g exceeds budget", capacity, res.TotalPoints)
		}
		if res.RemainingCapacity != capacity-res.TotalPoints {
			t.Errorf("capacity %g: remaining %g inconsistent with total %g", capacity, res.RemainingCapacity, res.TotalPoints)
		}
	}
}

func TestPlan_FirstFitDescending(t *testing.T) {
	// The top item doesn't fit, but a smaller item further down does.
	// Planning must not stop at the first miss.
	g := buildGraph(t, []backlog.WorkItem{
		{ID: "huge", BusinessValue: 100, Urgency: 100, StoryPoints: 20, Status: backlog.StatusBacklog},
		{ID: "small", BusinessValue: 40, Urgency: 40, StoryPoints: 3, Status: backlog.StatusBacklog},
	})

	res := Plan(g, scoring(), 5, nil)

	if !reflect.DeepEqual(res.SelectedIDs, []string{"small"}) {
		t.Errorf("expected selected=[small], got %v", res.SelectedIDs)
	}
}

func TestPlan_SkipsItemsWithUnmetDependencies(t *testing.T) {
	g := buildGraph(t, []backlog.WorkItem{
		{ID: "dep", BusinessValue: 10, Urgency: 10, StoryPoints: 2, Status: backlog.StatusInProgress},
		{ID: "blocked", BusinessValue: 95, Urgency: 95, StoryPoints: 3, Status: backlog.StatusBacklog,
			Dependencies: []string{"dep"}},
		{ID: "free", BusinessValue: 50, Urgency: 50, StoryPoints: 3, Status: backlog.StatusBacklog},
	})

	res := Plan(g, scoring(), 10, nil)

	for _, id := range res.SelectedIDs {
		if id == "blocked" {
			t.Error("item with unmet dependency must not be selected")
		}
	}
	if !reflect.DeepEqual(res.UnmetDependencies, []string{"blocked"}) {
		t.Errorf("expected unmet_dependencies=[blocked], got %v", res.UnmetDependencies)
	}
	if !reflect.DeepEqual(res.SelectedIDs, []string{"free"}) {
		t.Errorf("expected selected=[free], got %v", res.SelectedIDs)
	}
}

func TestPlan_SelectsWhenDependencyDone(t *testing.T) {
	g := buildGraph(t, []backlog.WorkItem{
		{ID: "dep", StoryPoints: 2, Status: backlog.StatusDone},
		{ID: "ready", BusinessValue: 80, Urgency: 80, StoryPoints: 3, Status: backlog.StatusBacklog,
			Dependencies: []string{"dep"}},
	})

	res := Plan(g, scoring(), 5, nil)

	if !reflect.DeepEqual(res.SelectedIDs, []string{"ready"}) {
		t.Errorf("expected selected=[ready], got %v", res.SelectedIDs)
	}
	if len(res.UnmetDependencies) != 0 {
		t.Errorf("expected no unmet dependencies, got %v", res.UnmetDependencies)
	}
}

func TestPlan_ExcludeIDs(t *testing.T) {
	g := buildGraph(t, []backlog.WorkItem{
		{ID: "a", BusinessValue: 90, Urgency: 90, StoryPoints: 3, Status: backlog.StatusBacklog},
		{ID: "b", BusinessValue: 50, Urgency: 50, StoryPoints: 3, Status: backlog.StatusBacklog},
	})

	res := Plan(g, scoring(), 3, []string{"a"})

	if !reflect.DeepEqual(res.SelectedIDs, []string{"b"}) {
		t.Errorf("expected selected=[b] with a excluded, got %v", res.SelectedIDs)
	}
}

func TestPlan_Deterministic(t *testing.T) {
	g := buildGraph(t, []backlog.WorkItem{
		{ID: "a", BusinessValue: 60, Urgency: 60, StoryPoints: 4, Status: backlog.StatusBacklog},
		{ID: "b", BusinessValue: 60, Urgency: 60, StoryPoints: 4, Status: backlog.StatusBacklog},
		{ID: "c", BusinessValue: 60, Urgency: 60, StoryPoints: 4, Status: backlog.StatusBacklog},
	})

	first := Plan(g, scoring(), 8, nil)
	for i := 0; i < 10; i++ {
		if got := Plan(g, scoring(), 8, nil); !reflect.DeepEqual(got, first) {
			t.Fatalf("Plan not deterministic: %+v vs %+v", got, first)
		}
	}
}

func TestPlan_IgnoresNonBacklogItems(t *testing.T) {
	g := buildGraph(t, []backlog.WorkItem{
		{ID: "in-sprint", BusinessValue: 90, Urgency: 90, StoryPoints: 3, Status: backlog.StatusInProgress},
		{ID: "queued", BusinessValue: 50, Urgency: 50, StoryPoints: 3, Status: backlog.StatusBacklog},
	})

	res := Plan(g, scoring(), 10, nil)

	if !reflect.DeepEqual(res.SelectedIDs, []string{"queued"}) {
		t.Errorf("only backlog items are plannable, got %v", res.SelectedIDs)
	}
}
