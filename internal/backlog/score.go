package backlog

import (
	"sort"

	"github.com/pethmivithana/research-agile-tool/internal/config"
)

// RankedItem is one entry of a ranked backlog.
type RankedItem struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
}

// SelectionScore computes the weighted priority score for a single item:
//
//	w1*business_value + w2*urgency - w3*risk_penalty - penalty*unmet_deps
//
// floored at zero so heavily blocked low-value items sink without producing
// negative orderings.
func (g *Graph) SelectionScore(id string, sc config.Scoring) float64 {
	it := g.Items[id]
	base := sc.BusinessValueWeight*it.BusinessValue +
		sc.UrgencyWeight*it.Urgency -
		sc.RiskPenaltyWeight*it.RiskPenalty

	for _, dep := range it.Dependencies {
		if g.Items[dep].Status != StatusDone {
			base -= sc.DependencyPenalty
		}
	}

	if base < 0 {
		return 0
	}
	return base
}

// ScoreAll computes selection scores for every item in the graph. Pure
// function of the snapshot.
func (g *Graph) ScoreAll(sc config.Scoring) map[string]float64 {
	scores := make(map[string]float64, len(g.Items))
	for _, id := range g.Order {
		scores[id] = g.SelectionScore(id, sc)
	}
	return scores
}

// Ranked returns items matching statusFilter ordered by score descending.
// Ties break by story points ascending (smaller items first, to maximize
// throughput), then by id so the ordering is fully reproducible. An empty
// statusFilter ranks every item.
func (g *Graph) Ranked(sc config.Scoring, statusFilter Status) []RankedItem {
	scores := g.ScoreAll(sc)

	var ranked []RankedItem
	for _, id := range g.Order {
		if statusFilter != "" && g.Items[id].Status != statusFilter {
			continue
		}
		ranked = append(ranked, RankedItem{ID: id, Score: scores[id]})
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		ra, rb := ranked[a], ranked[b]
		if ra.Score != rb.Score {
			return ra.Score > rb.Score
		}
		pa, pb := g.Items[ra.ID].StoryPoints, g.Items[rb.ID].StoryPoints
		if pa != pb {
			return pa < pb
		}
		return ra.ID < rb.ID
	})

	return ranked
}
