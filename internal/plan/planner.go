// Package plan selects sprint content from a ranked backlog under a story
// point budget. It is a greedy first-fit-descending approximation of 0/1
// knapsack: walk the ranking, commit whatever fits and is unblocked, never
// stop early because a smaller item later in the ranking may still fit.
package plan

import (
	"github.com/pethmivithana/research-agile-tool/internal/backlog"
	"github.com/pethmivithana/research-agile-tool/internal/config"
)

// Result is the outcome of one planning pass.
type Result struct {
	SelectedIDs       []string `json:"selected_ids"`
	TotalPoints       float64  `json:"total_points"`
	RemainingCapacity float64  `json:"remaining_capacity"`
	UnmetDependencies []string `json:"unmet_dependencies"`
}

// Plan packs backlog items into a sprint of the given capacity. Items in
// exclude are skipped entirely, so callers can re-run planning around items
// already committed elsewhere. Pure function of the snapshot: identical
// inputs always produce identical output.
func Plan(g *backlog.Graph, sc config.Scoring, capacity float64, exclude []string) Result {
	excluded := make(map[string]bool, len(exclude))
	for _, id := range exclude {
		excluded[id] = true
	}

	res := Result{
		SelectedIDs:       []string{},
		UnmetDependencies: []string{},
	}
	blockedSeen := make(map[string]bool)

	for _, r := range g.Ranked(sc, backlog.StatusBacklog) {
		if excluded[r.ID] {
			continue
		}
		item := g.Items[r.ID]

		// Doesn't fit — skip this item but keep walking: a smaller one
		// further down may still fit.
		if res.TotalPoints+item.StoryPoints > capacity {
			continue
		}

		if unmet := g.UnmetDependencies(r.ID); len(unmet) > 0 {
			if !blockedSeen[r.ID] {
				blockedSeen[r.ID] = true
				res.UnmetDependencies = append(res.UnmetDependencies, r.ID)
			}
			continue
		}

		res.SelectedIDs = append(res.SelectedIDs, r.ID)
		res.TotalPoints += item.StoryPoints
	}

	res.RemainingCapacity = capacity - res.TotalPoints
	return res
}
