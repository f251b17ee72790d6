package sprint

import (
	"testing"
	"time"
)

var (
	start = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	end   = time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
)

func TestMetrics_MidSprint(t *testing.T) {
	ctx := Context{
		StartDate:         start,
		EndDate:           end,
		Developers:        4,
		HoursPerDevPerDay: 6,
		CommittedPoints:   20,
		PrevVelocity:      30,
	}
	now := start.Add(7 * 24 * time.Hour)

	m := ctx.Metrics(now)

	if m.CurrentDay != 7 {
		t.Errorf("expected day 7, got %d", m.CurrentDay)
	}
	if m.RemainingDays != 7 {
		t.Errorf("expected 7 days remaining, got %g", m.RemainingDays)
	}
	if m.CapacityHours != 4*6*7 {
		t.Errorf("expected %d capacity hours, got %g", 4*6*7, m.CapacityHours)
	}
	if m.RemainingVelocity != 10 {
		t.Errorf("expected remaining velocity 10, got %g", m.RemainingVelocity)
	}
}

func TestMetrics_DefaultsWhenMetadataMissing(t *testing.T) {
	m := Context{}.Metrics(time.Now())

	if m.TeamSize != 5 {
		t.Errorf("expected default team size 5, got %d", m.TeamSize)
	}
	if m.DurationDays != 14 {
		t.Errorf("expected default duration 14, got %g", m.DurationDays)
	}
	if m.RemainingVelocity != 30 {
		t.Errorf("expected default velocity 30, got %g", m.RemainingVelocity)
	}
}

func TestMetrics_RemainingDaysFloor(t *testing.T) {
	ctx := Context{StartDate: start, EndDate: end}
	afterEnd := end.Add(48 * time.Hour)

	m := ctx.Metrics(afterEnd)
	if m.RemainingDays != 0.5 {
		t.Errorf("remaining days should floor at 0.5, got %g", m.RemainingDays)
	}
}

func TestMetrics_RemainingVelocityFloor(t *testing.T) {
	ctx := Context{CommittedPoints: 50, PrevVelocity: 30}
	m := ctx.Metrics(time.Now())
	if m.RemainingVelocity != 1 {
		t.Errorf("remaining velocity should floor at 1, got %g", m.RemainingVelocity)
	}
}

func TestPhase(t *testing.T) {
	ctx := Context{StartDate: start, EndDate: end}

	cases := []struct {
		now  time.Time
		want Phase
	}{
		{start.Add(24 * time.Hour), PhaseEarly},
		{start.Add(7 * 24 * time.Hour), PhaseMid},
		{start.Add(12 * 24 * time.Hour), PhaseLate},
	}
	for _, tc := range cases {
		if got := ctx.Phase(tc.now); got != tc.want {
			t.Errorf("at %s: expected %s, got %s", tc.now, tc.want, got)
		}
	}
}

func TestEffortRatio(t *testing.T) {
	ctx := Context{StartDate: start, EndDate: end, Developers: 5, HoursPerDevPerDay: 6}
	now := start.Add(7 * 24 * time.Hour) // 210 capacity hours remain

	if got := ctx.EffortRatio(21, now); got != 0.1 {
		t.Errorf("expected effort ratio 0.1, got %g", got)
	}
}

func TestStoryPointRatio(t *testing.T) {
	ctx := Context{CommittedPoints: 20, PrevVelocity: 30}

	if got := ctx.StoryPointRatio(5, time.Now()); got != 0.5 {
		t.Errorf("expected story point ratio 0.5, got %g", got)
	}
}
