package backlog

import (
	"fmt"
	"sort"
)

// Graph is an in-memory dependency DAG of work items, built fresh per
// invocation from a caller-supplied snapshot.
type Graph struct {
	Items  map[string]*WorkItem
	Adj    map[string][]string // item -> items that depend on it
	RevAdj map[string][]string // item -> items it depends on
	Order  []string            // all ids, sorted, for deterministic walks
}

// Build indexes a snapshot into a Graph. It fails fast on malformed input:
// duplicate ids, negative story points, dependencies on unknown items, or a
// dependency cycle.
func Build(items []WorkItem) (*Graph, error) {
	g := &Graph{
		Items:  make(map[string]*WorkItem, len(items)),
		Adj:    make(map[string][]string),
		RevAdj: make(map[string][]string),
	}

	for i := range items {
		it := &items[i]
		if it.ID == "" {
			return nil, fmt.Errorf("work item %d has no id", i)
		}
		if _, dup := g.Items[it.ID]; dup {
			return nil, fmt.Errorf("duplicate work item id %q", it.ID)
		}
		if it.StoryPoints < 0 {
			return nil, fmt.Errorf("work item %q has negative story points (%g)", it.ID, it.StoryPoints)
		}
		g.Items[it.ID] = it
	}

	edgeSet := make(map[[2]string]bool)
	for id, it := range g.Items {
		for _, dep := range it.Dependencies {
			if _, ok := g.Items[dep]; !ok {
				return nil, fmt.Errorf("work item %q depends on unknown item %q", id, dep)
			}
			key := [2]string{dep, id}
			if edgeSet[key] {
				continue
			}
			edgeSet[key] = true
			g.Adj[dep] = append(g.Adj[dep], id)
			g.RevAdj[id] = append(g.RevAdj[id], dep)
		}
	}

	// Sort adjacency lists for deterministic ordering
	for k := range g.Adj {
		sort.Strings(g.Adj[k])
	}
	for k := range g.RevAdj {
		sort.Strings(g.RevAdj[k])
	}

	g.Order = make([]string, 0, len(g.Items))
	for id := range g.Items {
		g.Order = append(g.Order, id)
	}
	sort.Strings(g.Order)

	if cycle := g.DetectCycle(); cycle != nil {
		return nil, fmt.Errorf("dependency cycle detected: %v", cycle)
	}

	return g, nil
}

// DetectCycle returns the cycle path if one exists, or nil if the graph is
// acyclic. Uses DFS with coloring: white (unvisited), gray (in progress),
// black (done).
func (g *Graph) DetectCycle() []string {
	const (
		white = 0
		gray  = 1
		black = 2
	)

	color := make(map[string]int)
	parent := make(map[string]string)

	var dfs func(node string) []string
	dfs = func(node string) []string {
		color[node] = gray
		for _, next := range g.Adj[node] {
			if color[next] == gray {
				// Found a cycle — reconstruct it
				cycle := []string{next, node}
				cur := node
				for cur != next {
					cur = parent[cur]
					cycle = append(cycle, cur)
				}
				for i, j := 0, len(cycle)-1; i < j; i, j = i+1, j-1 {
					cycle[i], cycle[j] = cycle[j], cycle[i]
				}
				return cycle
			}
			if color[next] == white {
				parent[next] = node
				if cycle := dfs(next); cycle != nil {
					return cycle
				}
			}
		}
		color[node] = black
		return nil
	}

	for _, id := range g.Order {
		if color[id] == white {
			if cycle := dfs(id); cycle != nil {
				return cycle
			}
		}
	}
	return nil
}

// ItemCount returns the number of work items in the graph.
func (g *Graph) ItemCount() int {
	return len(g.Items)
}

// UnmetDependencies returns the dependencies of id whose status is not Done,
// in sorted order.
func (g *Graph) UnmetDependencies(id string) []string {
	var unmet []string
	for _, dep := range g.RevAdj[id] {
		if g.Items[dep].Status != StatusDone {
			unmet = append(unmet, dep)
		}
	}
	return unmet
}
