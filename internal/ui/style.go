package ui

import (
	"github.com/fatih/color"
)

// Color functions for building styled strings.
var (
	Bold       = color.New(color.Bold).SprintFunc()
	Dim        = color.New(color.Faint).SprintFunc()
	Cyan       = color.New(color.FgCyan).SprintFunc()
	Green      = color.New(color.FgGreen).SprintFunc()
	Red        = color.New(color.FgRed).SprintFunc()
	Yellow     = color.New(color.FgYellow).SprintFunc()
	Magenta    = color.New(color.FgMagenta).SprintFunc()
	BoldCyan   = color.New(color.Bold, color.FgCyan).SprintFunc()
	BoldGreen  = color.New(color.Bold, color.FgGreen).SprintFunc()
	BoldRed    = color.New(color.Bold, color.FgRed).SprintFunc()
	BoldYellow = color.New(color.Bold, color.FgYellow).SprintFunc()
	BoldWhite  = color.New(color.Bold, color.FgWhite).SprintFunc()
)

// ActionLabel returns a colored label for a decision action.
func ActionLabel(action string) string {
	switch action {
	case "ACCEPT":
		return BoldGreen(action)
	case "SWAP":
		return BoldCyan(action)
	case "SPLIT":
		return BoldYellow(action)
	case "CRITICAL":
		return BoldRed(action)
	case "DEFER":
		return Yellow(action)
	default:
		return Bold(action)
	}
}

// StatusLabel returns a colored label for a work item status.
func StatusLabel(status string) string {
	switch status {
	case "Done":
		return Green(status)
	case "In Progress":
		return Cyan(status)
	case "In Review":
		return Magenta(status)
	case "To Do":
		return Yellow(status)
	default:
		return Dim(status)
	}
}
