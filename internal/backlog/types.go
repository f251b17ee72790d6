package backlog

// Status is a work item's position on the board.
type Status string

const (
	StatusBacklog    Status = "Backlog"
	StatusToDo       Status = "To Do"
	StatusInProgress Status = "In Progress"
	StatusInReview   Status = "In Review"
	StatusDone       Status = "Done"
)

// Priority is the caller-assigned priority band.
type Priority string

const (
	PriorityHighest Priority = "Highest"
	PriorityHigh    Priority = "High"
	PriorityMedium  Priority = "Medium"
	PriorityLow     Priority = "Low"
	PriorityLowest  Priority = "Lowest"
)

// Score maps a priority band onto the 0-100 value/urgency scale. Unknown
// bands read as Medium.
func (p Priority) Score() float64 {
	switch p {
	case PriorityHighest:
		return 90
	case PriorityHigh:
		return 70
	case PriorityMedium:
		return 50
	case PriorityLow:
		return 30
	case PriorityLowest:
		return 10
	default:
		return 50
	}
}

// WorkItem is a point-in-time snapshot of a single ticket. The engine never
// mutates one; it only reads snapshots and recommends transitions.
type WorkItem struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description,omitempty"`
	BusinessValue float64  `json:"business_value"` // 0-100
	Urgency       float64  `json:"urgency"`        // 0-100
	RiskPenalty   float64  `json:"risk_penalty"`   // 0-100, higher = riskier
	StoryPoints   float64  `json:"story_points"`
	Priority      Priority `json:"priority"`
	Status        Status   `json:"status"`
	Dependencies  []string `json:"dependencies,omitempty"`
}
