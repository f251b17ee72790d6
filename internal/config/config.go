package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scoring holds the selection-score weights and the penalty applied per
// unmet dependency. Weights operate on 0-100 scaled inputs.
type Scoring struct {
	BusinessValueWeight float64 `yaml:"business_value_weight"`
	UrgencyWeight       float64 `yaml:"urgency_weight"`
	RiskPenaltyWeight   float64 `yaml:"risk_penalty_weight"`
	DependencyPenalty   float64 `yaml:"dependency_penalty"`
}

// Interrupt holds the thresholds and cost table used by the interruption
// decision engine.
type Interrupt struct {
	// PriorityUrgencyBlend scales the priority-derived urgency before it is
	// blended with explicit urgency: effective = max(urgency, blend * priority).
	PriorityUrgencyBlend float64 `yaml:"priority_urgency_blend"`

	// SplitThresholdPoints is the size above which an item that cannot be
	// swapped in whole is proposed for splitting.
	SplitThresholdPoints float64 `yaml:"split_threshold_points"`

	// Context-switch cost model, in hours.
	BaseCostHours          float64 `yaml:"base_cost_hours"`
	ToDoCostHours          float64 `yaml:"todo_cost_hours"`
	InReviewCostHours      float64 `yaml:"in_review_cost_hours"`
	InProgressCostHours    float64 `yaml:"in_progress_cost_hours"`
	DefaultStatusCostHours float64 `yaml:"default_status_cost_hours"`
	WIPCostHoursPerItem    float64 `yaml:"wip_cost_hours_per_item"`

	// Size multipliers kick in at the medium and large point thresholds.
	MediumSizePoints     float64 `yaml:"medium_size_points"`
	LargeSizePoints      float64 `yaml:"large_size_points"`
	MediumSizeMultiplier float64 `yaml:"medium_size_multiplier"`
	LargeSizeMultiplier  float64 `yaml:"large_size_multiplier"`

	ActiveSprintMultiplier float64 `yaml:"active_sprint_multiplier"`

	// ValuePointsPerHour converts switch-cost hours into value units.
	ValuePointsPerHour float64 `yaml:"value_points_per_hour"`
}

// Config is the complete engine tuning, passed in at construction. It is
// never module-level state.
type Config struct {
	Scoring   Scoring   `yaml:"scoring"`
	Interrupt Interrupt `yaml:"interrupt"`
}

// Default returns the stock tuning.
func Default() Config {
	return Config{
		Scoring: Scoring{
			BusinessValueWeight: 0.5,
			UrgencyWeight:       0.3,
			RiskPenaltyWeight:   0.2,
			DependencyPenalty:   30.0,
		},
		Interrupt: Interrupt{
			PriorityUrgencyBlend:   0.8,
			SplitThresholdPoints:   8,
			BaseCostHours:          0.5,
			ToDoCostHours:          0,
			InReviewCostHours:      1.0,
			InProgressCostHours:    3.0,
			DefaultStatusCostHours: 1.5,
			WIPCostHoursPerItem:    0.75,
			MediumSizePoints:       8,
			LargeSizePoints:        13,
			MediumSizeMultiplier:   1.2,
			LargeSizeMultiplier:    1.5,
			ActiveSprintMultiplier: 1.5,
			ValuePointsPerHour:     2.0,
		},
	}
}

// Load reads a YAML tuning file layered over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate rejects tunings that would make scores or costs meaningless.
func (c Config) Validate() error {
	s := c.Scoring
	if s.BusinessValueWeight < 0 || s.UrgencyWeight < 0 || s.RiskPenaltyWeight < 0 {
		return fmt.Errorf("scoring weights must be non-negative")
	}
	if s.BusinessValueWeight == 0 && s.UrgencyWeight == 0 {
		return fmt.Errorf("at least one of business_value_weight and urgency_weight must be positive")
	}
	if s.DependencyPenalty < 0 {
		return fmt.Errorf("dependency_penalty must be non-negative")
	}

	i := c.Interrupt
	if i.PriorityUrgencyBlend < 0 || i.PriorityUrgencyBlend > 1 {
		return fmt.Errorf("priority_urgency_blend must be in [0,1]")
	}
	if i.SplitThresholdPoints <= 0 {
		return fmt.Errorf("split_threshold_points must be positive")
	}
	if i.MediumSizePoints > i.LargeSizePoints {
		return fmt.Errorf("medium_size_points (%g) must not exceed large_size_points (%g)", i.MediumSizePoints, i.LargeSizePoints)
	}
	if i.MediumSizeMultiplier < 1 || i.LargeSizeMultiplier < 1 || i.ActiveSprintMultiplier < 1 {
		return fmt.Errorf("cost multipliers must be >= 1")
	}
	if i.ValuePointsPerHour <= 0 {
		return fmt.Errorf("value_points_per_hour must be positive")
	}
	return nil
}
