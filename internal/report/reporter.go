// Package report renders rankings, sprint plans and interruption decisions
// for the terminal. JSON output is handled by the caller; everything here is
// for humans.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/pethmivithana/research-agile-tool/internal/backlog"
	"github.com/pethmivithana/research-agile-tool/internal/interrupt"
	"github.com/pethmivithana/research-agile-tool/internal/plan"
	"github.com/pethmivithana/research-agile-tool/internal/sprint"
	"github.com/pethmivithana/research-agile-tool/internal/ui"
)

// PrintRanking writes the ranked backlog as a table.
func PrintRanking(w io.Writer, g *backlog.Graph, ranked []backlog.RankedItem) {
	fmt.Fprintf(w, "%s — %d items\n\n", ui.BoldCyan("Backlog ranking"), len(ranked))
	for i, r := range ranked {
		item := g.Items[r.ID]
		blocked := ""
		if unmet := g.UnmetDependencies(r.ID); len(unmet) > 0 {
			blocked = ui.Red(fmt.Sprintf("  blocked by %v", unmet))
		}
		fmt.Fprintf(w, "  %2d. %s %s  %s  %s%s\n",
			i+1,
			ui.Bold(fmt.Sprintf("%6.1f", r.Score)),
			ui.Dim(fmt.Sprintf("%4.1f SP", item.StoryPoints)),
			r.ID,
			ui.Dim(item.Title),
			blocked)
	}
}

// PrintPlan writes the planning result: what got in, what the budget looks
// like, and which items were passed over for unmet dependencies.
func PrintPlan(w io.Writer, g *backlog.Graph, res plan.Result, capacity float64) {
	fmt.Fprintf(w, "%s — %.1f of %.1f SP committed, %.1f remaining\n\n",
		ui.BoldCyan("Sprint plan"), res.TotalPoints, capacity, res.RemainingCapacity)

	if len(res.SelectedIDs) == 0 {
		fmt.Fprintf(w, "  %s\n", ui.Dim("no items fit the capacity budget"))
	}
	for _, id := range res.SelectedIDs {
		item := g.Items[id]
		fmt.Fprintf(w, "  %s %s  %s  %s\n",
			ui.Green("+"),
			ui.Dim(fmt.Sprintf("%4.1f SP", item.StoryPoints)),
			id,
			ui.Dim(item.Title))
	}

	if len(res.UnmetDependencies) > 0 {
		fmt.Fprintf(w, "\n%s\n", ui.BoldYellow("Skipped (unmet dependencies)"))
		for _, id := range res.UnmetDependencies {
			fmt.Fprintf(w, "  %s %s  %s\n", ui.Yellow("-"), id, ui.Red(fmt.Sprintf("blocked by %v", g.UnmetDependencies(id))))
		}
	}
}

// PrintDecision writes an interruption decision with its full audit trail
// and, when a value comparison ran, the numeric breakdown.
func PrintDecision(w io.Writer, d interrupt.Decision) {
	fmt.Fprintf(w, "%s %s\n\n", ui.Bold("Decision:"), ui.ActionLabel(string(d.Action)))
	fmt.Fprintf(w, "  %s\n", d.Reasoning)
	if d.TargetToRemove != "" {
		fmt.Fprintf(w, "  %s %s\n", ui.Bold("Remove:"), ui.BoldYellow(d.TargetToRemove))
	}

	if d.NewItemValue != nil {
		fmt.Fprintf(w, "\n%s\n", ui.BoldWhite("Value comparison"))
		fmt.Fprintf(w, "  new item value      %s\n", ui.Bold(fmt.Sprintf("%7.1f", *d.NewItemValue)))
		fmt.Fprintf(w, "  removed item value  %s\n", ui.Bold(fmt.Sprintf("%7.1f", *d.RemovedItemValue)))
		fmt.Fprintf(w, "  switch cost         %s\n", ui.Bold(fmt.Sprintf("%7.1f", *d.SwitchCost)))
		net := fmt.Sprintf("%7.1f", *d.ValueNet)
		if *d.ValueNet > 0 {
			fmt.Fprintf(w, "  net                 %s\n", ui.BoldGreen(net))
		} else {
			fmt.Fprintf(w, "  net                 %s\n", ui.BoldRed(net))
		}
	}

	fmt.Fprintf(w, "\n%s\n", ui.BoldWhite("Constraints checked"))
	for i, c := range d.ConstraintsChecked {
		fmt.Fprintf(w, "  %d. %s\n", i+1, c)
	}
}

// PrintSprintContext writes the derived sprint metrics that frame a
// decision.
func PrintSprintContext(w io.Writer, ctx sprint.Context, pred interrupt.ImpactPrediction, points float64, now time.Time) {
	m := ctx.Metrics(now)
	fmt.Fprintf(w, "\n%s\n", ui.BoldWhite("Sprint context"))
	fmt.Fprintf(w, "  phase               %s (day %d, %.1f days remaining of %.1f)\n",
		ui.Cyan(string(ctx.Phase(now))), m.CurrentDay, m.RemainingDays, m.DurationDays)
	fmt.Fprintf(w, "  capacity            %.0f team-hours remaining\n", m.CapacityHours)
	fmt.Fprintf(w, "  effort ratio        %.2f\n", ctx.EffortRatio(pred.PredictedHours, now))
	fmt.Fprintf(w, "  story point ratio   %.2f\n", ctx.StoryPointRatio(points, now))
}
