// Package sprint derives context metrics from sprint metadata: how much of
// the sprint remains, how much team capacity that represents, and how large
// a candidate item is relative to both. The metrics annotate decisions; they
// never change them.
package sprint

import "time"

// Defaults applied when sprint metadata is incomplete.
const (
	defaultDevelopers      = 5
	defaultHoursPerDevDay  = 6
	defaultDurationDays    = 14
	defaultPrevVelocity    = 30
	minRemainingDays       = 0.5
	minRemainingVelocitySP = 1
)

// Phase is the rough position within the sprint timeline.
type Phase string

const (
	PhaseEarly Phase = "early"
	PhaseMid   Phase = "mid"
	PhaseLate  Phase = "late"
)

// Context is the sprint metadata the metrics derive from. Zero-valued
// fields fall back to the defaults above.
type Context struct {
	StartDate         time.Time
	EndDate           time.Time
	Developers        int
	HoursPerDevPerDay float64
	CommittedPoints   float64
	PrevVelocity      float64
}

// Metrics is the derived snapshot of sprint state as of a point in time.
type Metrics struct {
	CurrentDay        int     `json:"current_sprint_day"`
	RemainingDays     float64 `json:"remaining_sprint_days"`
	DurationDays      float64 `json:"total_duration_days"`
	CapacityHours     float64 `json:"total_capacity_hours"`
	RemainingVelocity float64 `json:"remaining_velocity_sp"`
	CommittedPoints   float64 `json:"current_committed_sp"`
	TeamSize          int     `json:"team_size"`
}

// Metrics computes the context metrics as of now.
func (c Context) Metrics(now time.Time) Metrics {
	devs := c.Developers
	if devs <= 0 {
		devs = defaultDevelopers
	}
	hoursPerDay := c.HoursPerDevPerDay
	if hoursPerDay <= 0 {
		hoursPerDay = defaultHoursPerDevDay
	}
	prevVelocity := c.PrevVelocity
	if prevVelocity <= 0 {
		prevVelocity = defaultPrevVelocity
	}

	currentDay := 0
	if !c.StartDate.IsZero() {
		currentDay = int(now.Sub(c.StartDate).Hours() / 24)
	}

	duration := float64(defaultDurationDays)
	if !c.StartDate.IsZero() && !c.EndDate.IsZero() {
		duration = c.EndDate.Sub(c.StartDate).Hours() / 24
	}

	remaining := float64(defaultDurationDays)
	if !c.EndDate.IsZero() {
		remaining = c.EndDate.Sub(now).Hours() / 24
	}
	if remaining < minRemainingDays {
		remaining = minRemainingDays
	}

	remainingVelocity := prevVelocity - c.CommittedPoints
	if remainingVelocity < minRemainingVelocitySP {
		remainingVelocity = minRemainingVelocitySP
	}

	return Metrics{
		CurrentDay:        currentDay,
		RemainingDays:     remaining,
		DurationDays:      duration,
		CapacityHours:     float64(devs) * hoursPerDay * remaining,
		RemainingVelocity: remainingVelocity,
		CommittedPoints:   c.CommittedPoints,
		TeamSize:          devs,
	}
}

// EffortRatio is predicted effort over remaining team capacity hours.
// Below 0.25 an item is small; above 0.75 it dominates what is left of the
// sprint. Returns 1 when no capacity remains.
func (c Context) EffortRatio(predictedHours float64, now time.Time) float64 {
	m := c.Metrics(now)
	if m.CapacityHours <= 0 {
		return 1
	}
	return predictedHours / m.CapacityHours
}

// StoryPointRatio is item size over remaining velocity. Returns 1 when no
// velocity remains.
func (c Context) StoryPointRatio(points float64, now time.Time) float64 {
	m := c.Metrics(now)
	if m.RemainingVelocity <= 0 {
		return 1
	}
	return points / m.RemainingVelocity
}

// Phase buckets sprint progress into thirds.
func (c Context) Phase(now time.Time) Phase {
	m := c.Metrics(now)
	if m.DurationDays < 1 {
		return PhaseLate
	}
	progress := 100 * (1 - m.RemainingDays/m.DurationDays)
	switch {
	case progress < 33:
		return PhaseEarly
	case progress < 66:
		return PhaseMid
	default:
		return PhaseLate
	}
}
