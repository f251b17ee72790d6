package interrupt

import "github.com/pethmivithana/research-agile-tool/internal/backlog"

// Action is the engine's recommendation for a mid-sprint interruption.
type Action string

const (
	// ActionAccept adds the item into unused capacity; nothing is removed.
	ActionAccept Action = "ACCEPT"
	// ActionSwap removes TargetToRemove to free capacity for the new item.
	ActionSwap Action = "SWAP"
	// ActionDefer pushes the item to the next sprint.
	ActionDefer Action = "DEFER"
	// ActionSplit takes as much of the item as fits now and defers the rest.
	ActionSplit Action = "SPLIT"
	// ActionCritical is a swap that additionally escalates to a human
	// operator because the new item is a critical blocker.
	ActionCritical Action = "CRITICAL"
)

// ImpactPrediction is the opaque result bundle from the external prediction
// service. The zero value means the service was unavailable; the engine then
// degrades to capacity-only reasoning rather than failing.
type ImpactPrediction struct {
	PredictedHours          float64 `json:"predicted_hours"`
	ScheduleRiskProbability float64 `json:"schedule_risk_probability"`
	ProductivityImpactDays  float64 `json:"productivity_impact_days"`
	QualityRiskProbability  float64 `json:"quality_risk_probability"`
}

// Sprint is the active sprint as seen at assessment time. Callers evaluating
// concurrent interruptions against the same sprint must serialize them; two
// concurrent assessments could otherwise pick the same swap victim.
type Sprint struct {
	CommittedCapacity float64            `json:"committed_capacity"`
	CommittedPoints   float64            `json:"current_committed_points"`
	Active            bool               `json:"active"`
	Items             []backlog.WorkItem `json:"items"`
}

// RemainingCapacity is the unused portion of the committed budget.
func (s Sprint) RemainingCapacity() float64 {
	return s.CommittedCapacity - s.CommittedPoints
}

// InProgressCount counts items currently being worked on.
func (s Sprint) InProgressCount() int {
	n := 0
	for _, it := range s.Items {
		if it.Status == backlog.StatusInProgress {
			n++
		}
	}
	return n
}

// Decision is the structured, auditable outcome of one assessment. It is
// built once and never mutated. ConstraintsChecked lists every rule
// evaluated on the way to the terminal action, in order, not just the rule
// that fired.
type Decision struct {
	Action             Action   `json:"action"`
	TargetToRemove     string   `json:"target_to_remove,omitempty"`
	Reasoning          string   `json:"reasoning"`
	ConstraintsChecked []string `json:"constraints_checked"`

	// Populated only when a swap/defer value comparison was performed.
	NewItemValue     *float64 `json:"new_item_value,omitempty"`
	RemovedItemValue *float64 `json:"removed_item_value,omitempty"`
	SwitchCost       *float64 `json:"switch_cost,omitempty"`
	ValueNet         *float64 `json:"value_net,omitempty"`
}
