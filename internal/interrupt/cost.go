package interrupt

import (
	"github.com/pethmivithana/research-agile-tool/internal/backlog"
)

// switchCostHours models the context-switching tax of removing an item, in
// hours: a base cost plus a status-dependent cost plus a work-in-progress
// crowding cost, scaled by item size and by whether the sprint is live, plus
// the externally predicted productivity impact converted from days.
func (e *Engine) switchCostHours(item backlog.WorkItem, activeSprint bool, inProgressCount int, productivityImpactDays float64) float64 {
	c := e.cfg.Interrupt

	var statusCost float64
	switch item.Status {
	case backlog.StatusToDo:
		statusCost = c.ToDoCostHours
	case backlog.StatusInReview:
		statusCost = c.InReviewCostHours
	case backlog.StatusInProgress:
		statusCost = c.InProgressCostHours
	default:
		statusCost = c.DefaultStatusCostHours
	}

	wipCost := float64(inProgressCount) * c.WIPCostHoursPerItem

	sizeMultiplier := 1.0
	switch {
	case item.StoryPoints >= c.LargeSizePoints:
		sizeMultiplier = c.LargeSizeMultiplier
	case item.StoryPoints >= c.MediumSizePoints:
		sizeMultiplier = c.MediumSizeMultiplier
	}

	activeMultiplier := 1.0
	if activeSprint {
		activeMultiplier = c.ActiveSprintMultiplier
	}

	return (c.BaseCostHours+statusCost+wipCost)*sizeMultiplier*activeMultiplier +
		productivityImpactDays*8
}
