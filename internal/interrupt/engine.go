// Package interrupt decides what to do when a new, unplanned item must be
// considered for an already-active sprint: accept it into free capacity,
// swap it against a sprint item, split it, defer it, or escalate. The
// decision is a single synchronous pass over ordered constraint checks with
// no backtracking, and every rule evaluated along the way is recorded for
// audit.
package interrupt

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pethmivithana/research-agile-tool/internal/backlog"
	"github.com/pethmivithana/research-agile-tool/internal/config"
)

// blockerTerms flag an incoming item as a production blocker when they
// appear in its title or description.
var blockerTerms = []string{"blocker", "critical", "urgent", "production", "down", "broken", "p0"}

// Engine applies the zero-sum, WIP-safety and context-switching-tax
// constraints. It is stateless; every call is a pure function of its inputs.
type Engine struct {
	cfg config.Config
}

// NewEngine creates an Engine with the given tuning.
func NewEngine(cfg config.Config) *Engine {
	return &Engine{cfg: cfg}
}

// Assess evaluates a new item against the active sprint and returns the
// recommended action. pred may be the zero value when the prediction service
// is unavailable; the assessment then degrades to capacity-only reasoning.
func (e *Engine) Assess(newItem backlog.WorkItem, s Sprint, pred ImpactPrediction) Decision {
	var checked []string

	newValue := e.ItemValue(newItem)
	critical := e.isCriticalBlocker(newItem)
	remaining := s.RemainingCapacity()

	// Zero-sum rule: if the item fits unused capacity, nothing needs to
	// come out. The only branch that returns before the swap search.
	if newItem.StoryPoints <= remaining {
		checked = append(checked, "Zero-Sum: fits without removal")
		return Decision{
			Action: ActionAccept,
			Reasoning: fmt.Sprintf("New requirement (%g SP) fits within remaining capacity (%.1f SP). No rebalancing needed.",
				newItem.StoryPoints, remaining),
			ConstraintsChecked: checked,
		}
	}

	deficit := newItem.StoryPoints - remaining
	checked = append(checked, fmt.Sprintf("Zero-Sum: need to remove %.1f SP", deficit))

	// WIP safety rule: search To Do, then In Review; In Progress only for a
	// critical blocker.
	cand, tierReason := e.findSwapCandidate(s.Items, critical, deficit)
	if cand == nil {
		checked = append(checked, "WIP-Safety: no viable candidates")
		return Decision{
			Action:             ActionDefer,
			Reasoning:          "No items available for swap. Sprint is locked (all items in progress). Defer to next sprint.",
			ConstraintsChecked: checked,
		}
	}
	checked = append(checked, fmt.Sprintf("WIP-Safety: candidate %s (%s)", cand.ID, cand.Status))

	// A single candidate that cannot cover the deficit routes large items
	// to a split and everything else to a defer; removing multiple items
	// from a running sprint is never recommended.
	if cand.StoryPoints < deficit {
		if newItem.StoryPoints > e.cfg.Interrupt.SplitThresholdPoints {
			checked = append(checked, "Split-Feasibility: large item can be split")
			return Decision{
				Action: ActionSplit,
				Reasoning: fmt.Sprintf("Item is large (%g SP). Split into parts: %.1f SP now, %.1f SP later.",
					newItem.StoryPoints, remaining, deficit),
				ConstraintsChecked: checked,
			}
		}
		checked = append(checked, "Zero-Sum: single swap cannot cover deficit")
		return Decision{
			Action:             ActionDefer,
			Reasoning:          "Would require removing multiple items. Complexity too high. Defer to next sprint.",
			ConstraintsChecked: checked,
		}
	}

	// Context-switching tax: is the new value worth the removal plus the
	// modeled cost of interrupting the team?
	removedValue := e.ItemValue(*cand)
	costHours := e.switchCostHours(*cand, s.Active, s.InProgressCount(), pred.ProductivityImpactDays)
	switchCost := costHours * e.cfg.Interrupt.ValuePointsPerHour
	net := newValue - (removedValue + switchCost)
	checked = append(checked, fmt.Sprintf("Context-Switching-Tax: net value = %.1f", net))

	if net <= 0 {
		return Decision{
			Action: ActionDefer,
			Reasoning: fmt.Sprintf("Value of new task (%.1f) does not exceed value of removed task (%.1f) + switch cost (%.1f). Net: %.1f. Defer to next sprint.",
				newValue, removedValue, switchCost, net),
			ConstraintsChecked: checked,
			NewItemValue:       ptr(newValue),
			RemovedItemValue:   ptr(removedValue),
			SwitchCost:         ptr(switchCost),
			ValueNet:           ptr(net),
		}
	}

	if critical {
		checked = append(checked, "Critical-Path-Detection")
		return Decision{
			Action:         ActionCritical,
			TargetToRemove: cand.ID,
			Reasoning: fmt.Sprintf("CRITICAL BLOCKER: Immediate escalation required. Value justifies swap: %.1f net gain.",
				net),
			ConstraintsChecked: checked,
			NewItemValue:       ptr(newValue),
			RemovedItemValue:   ptr(removedValue),
			SwitchCost:         ptr(switchCost),
			ValueNet:           ptr(net),
		}
	}

	checked = append(checked, "All-Constraints-Satisfied")
	return Decision{
		Action:         ActionSwap,
		TargetToRemove: cand.ID,
		Reasoning: fmt.Sprintf("Value of new task (%.1f) > value of removed task (%.1f) + switch cost (%.1f). Net gain: %.1f. %s",
			newValue, removedValue, switchCost, net, tierReason),
		ConstraintsChecked: checked,
		NewItemValue:       ptr(newValue),
		RemovedItemValue:   ptr(removedValue),
		SwitchCost:         ptr(switchCost),
		ValueNet:           ptr(net),
	}
}

// ItemValue computes the value of an item for swap comparison. Priority is
// blended into urgency, not substituted: an explicit high-urgency override
// still wins, but priority alone provides a floor.
func (e *Engine) ItemValue(it backlog.WorkItem) float64 {
	sc := e.cfg.Scoring
	effectiveUrgency := it.Urgency
	if floor := it.Priority.Score() * e.cfg.Interrupt.PriorityUrgencyBlend; floor > effectiveUrgency {
		effectiveUrgency = floor
	}

	v := sc.BusinessValueWeight*it.BusinessValue +
		sc.UrgencyWeight*effectiveUrgency -
		sc.RiskPenaltyWeight*it.RiskPenalty
	if v < 0 {
		return 0
	}
	return v
}

// isCriticalBlocker flags items urgent enough to justify touching
// in-progress work: highest priority combined with blocker wording.
func (e *Engine) isCriticalBlocker(it backlog.WorkItem) bool {
	if it.Priority != backlog.PriorityHighest {
		return false
	}
	text := strings.ToLower(it.Title + " " + it.Description)
	for _, term := range blockerTerms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

// swapTiers is the WIP-safety search order. In Progress is only reachable
// for critical blockers.
var swapTiers = []struct {
	status backlog.Status
	reason string
}{
	{backlog.StatusToDo, "To Do items have lowest context-switch cost."},
	{backlog.StatusInReview, "In Review items are easier to defer than In Progress."},
	{backlog.StatusInProgress, "Only considering In Progress for critical blocker requirements."},
}

// findSwapCandidate picks the removal victim. Tiers are strict: a To Do
// candidate always beats an In Review one regardless of fit. Within a tier
// the smallest item that covers the deficit wins (minimal waste); when
// nothing in the tier covers it, the largest item is the best available.
func (e *Engine) findSwapCandidate(items []backlog.WorkItem, critical bool, deficit float64) (*backlog.WorkItem, string) {
	for _, tier := range swapTiers {
		if tier.status == backlog.StatusInProgress && !critical {
			continue
		}

		var pool []backlog.WorkItem
		for _, it := range items {
			if it.Status == tier.status {
				pool = append(pool, it)
			}
		}
		if len(pool) == 0 {
			continue
		}

		sort.SliceStable(pool, func(a, b int) bool {
			if pool[a].StoryPoints != pool[b].StoryPoints {
				return pool[a].StoryPoints < pool[b].StoryPoints
			}
			return pool[a].ID < pool[b].ID
		})

		for i := range pool {
			if pool[i].StoryPoints >= deficit {
				return &pool[i], tier.reason
			}
		}
		return &pool[len(pool)-1], tier.reason
	}
	return nil, ""
}

func ptr(f float64) *float64 { return &f }
