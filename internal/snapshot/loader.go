// Package snapshot reads the point-in-time JSON snapshot the surrounding
// service hands to the engine: backlog items, the active sprint, and
// optionally an incoming item with its impact prediction. Input is produced
// by an external system, so parsing is tolerant: optional numeric fields
// fall back to priority-derived defaults and a missing prediction degrades
// to zero impact instead of an error.
package snapshot

import (
	"fmt"
	"os"
	"time"

	"github.com/tidwall/gjson"

	"github.com/pethmivithana/research-agile-tool/internal/backlog"
	"github.com/pethmivithana/research-agile-tool/internal/interrupt"
	"github.com/pethmivithana/research-agile-tool/internal/sprint"
)

// Snapshot is everything one engine invocation needs.
type Snapshot struct {
	Backlog    []backlog.WorkItem
	Sprint     interrupt.Sprint
	Context    sprint.Context
	HasContext bool
	Incoming   *backlog.WorkItem
	Prediction interrupt.ImpactPrediction
}

// Load reads and parses a snapshot file.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a snapshot from raw JSON.
func Parse(data []byte) (*Snapshot, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("snapshot is not valid JSON")
	}
	root := gjson.ParseBytes(data)

	snap := &Snapshot{}

	root.Get("backlog").ForEach(func(_, v gjson.Result) bool {
		snap.Backlog = append(snap.Backlog, itemFromJSON(v, backlog.StatusBacklog))
		return true
	})

	sp := root.Get("sprint")
	if sp.Exists() {
		snap.Sprint.CommittedCapacity = sp.Get("committed_capacity").Float()
		snap.Sprint.Active = sp.Get("status").String() == "active"

		sp.Get("items").ForEach(func(_, v gjson.Result) bool {
			snap.Sprint.Items = append(snap.Sprint.Items, itemFromJSON(v, backlog.StatusToDo))
			return true
		})

		if cp := sp.Get("committed_points"); cp.Exists() {
			snap.Sprint.CommittedPoints = cp.Float()
		} else {
			for _, it := range snap.Sprint.Items {
				snap.Sprint.CommittedPoints += it.StoryPoints
			}
		}

		snap.Context = contextFromJSON(sp, snap.Sprint.CommittedPoints)
		snap.HasContext = sp.Get("start_date").Exists() || sp.Get("end_date").Exists()
	}

	if in := root.Get("incoming"); in.Exists() {
		item := itemFromJSON(in, backlog.StatusBacklog)
		snap.Incoming = &item
	}

	// Missing prediction fields read as zero: the engine degrades to
	// capacity-only reasoning when the prediction service is unavailable.
	pred := root.Get("prediction")
	snap.Prediction = interrupt.ImpactPrediction{
		PredictedHours:          pred.Get("predicted_hours").Float(),
		ScheduleRiskProbability: pred.Get("schedule_risk_probability").Float(),
		ProductivityImpactDays:  pred.Get("productivity_impact_days").Float(),
		QualityRiskProbability:  pred.Get("quality_risk_probability").Float(),
	}

	return snap, nil
}

// itemFromJSON decodes one work item, deriving business_value and urgency
// from priority when absent: {Highest:90, High:70, Medium:50, Low:30,
// Lowest:10}. Missing risk_penalty is 0.
func itemFromJSON(v gjson.Result, defaultStatus backlog.Status) backlog.WorkItem {
	priority := backlog.PriorityMedium
	if p := v.Get("priority"); p.Exists() {
		priority = backlog.Priority(p.String())
	}

	item := backlog.WorkItem{
		ID:          v.Get("id").String(),
		Title:       v.Get("title").String(),
		Description: v.Get("description").String(),
		StoryPoints: v.Get("story_points").Float(),
		Priority:    priority,
		RiskPenalty: v.Get("risk_penalty").Float(),
		Status:      defaultStatus,
	}

	if bv := v.Get("business_value"); bv.Exists() {
		item.BusinessValue = bv.Float()
	} else {
		item.BusinessValue = priority.Score()
	}
	if u := v.Get("urgency"); u.Exists() {
		item.Urgency = u.Float()
	} else {
		item.Urgency = priority.Score()
	}
	if s := v.Get("status"); s.Exists() {
		item.Status = backlog.Status(s.String())
	}

	v.Get("dependencies").ForEach(func(_, dep gjson.Result) bool {
		item.Dependencies = append(item.Dependencies, dep.String())
		return true
	})

	return item
}

func contextFromJSON(sp gjson.Result, committedPoints float64) sprint.Context {
	ctx := sprint.Context{
		Developers:        int(sp.Get("developers").Int()),
		HoursPerDevPerDay: sp.Get("hours_per_dev_per_day").Float(),
		CommittedPoints:   committedPoints,
		PrevVelocity:      sp.Get("prev_velocity").Float(),
	}
	ctx.StartDate = parseDate(sp.Get("start_date").String())
	ctx.EndDate = parseDate(sp.Get("end_date").String())
	return ctx
}

// parseDate accepts RFC 3339 timestamps or bare dates; anything else reads
// as the zero time, which the context layer treats as absent.
func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	return time.Time{}
}
