package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pethmivithana/research-agile-tool/internal/backlog"
	"github.com/pethmivithana/research-agile-tool/internal/config"
	"github.com/pethmivithana/research-agile-tool/internal/interrupt"
	"github.com/pethmivithana/research-agile-tool/internal/plan"
	"github.com/pethmivithana/research-agile-tool/internal/report"
	"github.com/pethmivithana/research-agile-tool/internal/snapshot"
)

var (
	flagSnapshot string
	flagConfig   string
	flagJSON     bool
	flagStatus   string
	flagCapacity float64
	flagExclude  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "replan",
		Short: "Rank a backlog, pack a sprint, and assess mid-sprint interruptions",
		Long: `Replan scores backlog items over their dependency graph, selects sprint
content under a story point budget, and decides whether a newly arriving
requirement should be accepted, swapped, split, deferred or escalated.

All commands read a JSON snapshot of the backlog and active sprint; the
engine itself never persists anything.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&flagSnapshot, "snapshot", "", "Path to the backlog/sprint snapshot JSON")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to an engine tuning YAML (defaults used when omitted)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Machine-readable JSON output")

	rootCmd.AddCommand(scoreCmd())
	rootCmd.AddCommand(planCmd())
	rootCmd.AddCommand(assessCmd())
	rootCmd.AddCommand(validateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadInputs is shared setup: tuning, snapshot, and the dependency graph
// over every item in the snapshot (backlog plus sprint, so dependencies on
// in-sprint work resolve).
func loadInputs() (config.Config, *snapshot.Snapshot, *backlog.Graph, error) {
	cfg := config.Default()
	if flagConfig != "" {
		var err error
		cfg, err = config.Load(flagConfig)
		if err != nil {
			return cfg, nil, nil, err
		}
	}

	if flagSnapshot == "" {
		return cfg, nil, nil, fmt.Errorf("--snapshot is required")
	}
	snap, err := snapshot.Load(flagSnapshot)
	if err != nil {
		return cfg, nil, nil, err
	}

	items := make([]backlog.WorkItem, 0, len(snap.Backlog)+len(snap.Sprint.Items))
	items = append(items, snap.Backlog...)
	items = append(items, snap.Sprint.Items...)
	g, err := backlog.Build(items)
	if err != nil {
		return cfg, nil, nil, fmt.Errorf("build backlog graph: %w", err)
	}

	return cfg, snap, g, nil
}

func scoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Rank backlog items by selection score",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, g, err := loadInputs()
			if err != nil {
				return err
			}

			ranked := g.Ranked(cfg.Scoring, backlog.Status(flagStatus))
			if flagJSON {
				return outputJSON(ranked)
			}
			report.PrintRanking(os.Stdout, g, ranked)
			return nil
		},
	}
	cmd.Flags().StringVar(&flagStatus, "status", string(backlog.StatusBacklog), "Status filter (empty ranks everything)")
	return cmd
}

func planCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Select sprint content under a capacity budget",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, snap, g, err := loadInputs()
			if err != nil {
				return err
			}

			capacity := flagCapacity
			if capacity == 0 {
				capacity = snap.Sprint.CommittedCapacity
			}
			if capacity <= 0 {
				return fmt.Errorf("no capacity budget: pass --capacity or set sprint.committed_capacity in the snapshot")
			}

			var exclude []string
			if flagExclude != "" {
				exclude = strings.Split(flagExclude, ",")
			}

			res := plan.Plan(g, cfg.Scoring, capacity, exclude)
			if flagJSON {
				return outputJSON(res)
			}
			report.PrintPlan(os.Stdout, g, res, capacity)
			return nil
		},
	}
	cmd.Flags().Float64Var(&flagCapacity, "capacity", 0, "Sprint capacity in story points (defaults to the snapshot's committed capacity)")
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "Comma-separated item ids to leave out of planning")
	return cmd
}

func assessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assess",
		Short: "Decide how to handle an incoming item against the active sprint",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, snap, _, err := loadInputs()
			if err != nil {
				return err
			}
			if snap.Incoming == nil {
				return fmt.Errorf("snapshot has no incoming item to assess")
			}

			engine := interrupt.NewEngine(cfg)
			decision := engine.Assess(*snap.Incoming, snap.Sprint, snap.Prediction)

			if flagJSON {
				return outputJSON(decision)
			}
			report.PrintDecision(os.Stdout, decision)
			if snap.HasContext {
				report.PrintSprintContext(os.Stdout, snap.Context, snap.Prediction, snap.Incoming.StoryPoints, time.Now())
			}
			return nil
		},
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the snapshot for malformed items, unknown dependencies and cycles",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, g, err := loadInputs()
			if err != nil {
				return err
			}
			fmt.Printf("snapshot ok: %d items, dependency graph is acyclic\n", g.ItemCount())
			return nil
		},
	}
}

func outputJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
