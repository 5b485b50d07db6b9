// History commands: list and inspect persisted runs.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/form-foundry/qarchitect/internal/report"
	"github.com/form-foundry/qarchitect/pkg/types"
)

var historyHistogram bool

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect past Grover runs",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved runs, newest first",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Print the full report of a saved run",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	historyShowCmd.Flags().BoolVar(&historyHistogram, "histogram", false, "print an ASCII shot histogram")
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	runs, err := store.ListRuns()
	if err != nil {
		return fmt.Errorf("list runs: %w", err)
	}
	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}
	fmt.Fprintf(out, "%-36s  %-22s  %-10s  %-6s  %s\n",
		"RUN ID", "RULE", "ITERATIONS", "SHOTS", "CREATED")
	for _, run := range runs {
		fmt.Fprintf(out, "%-36s  %-22s  %-10d  %-6d  %s\n",
			run.RunID, run.Rule, run.Iterations, run.Shots,
			run.CreatedAt.Local().Format(time.DateTime))
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	run, err := store.GetRun(args[0])
	if err != nil {
		return fmt.Errorf("get run %s: %w", args[0], err)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Run %s\nRule: %s\nSeed: %d\nCreated: %s\n",
		run.RunID, run.Rule, run.Seed, run.CreatedAt.Local().Format(time.DateTime))
	report.WriteRun(out, run)
	if historyHistogram {
		report.WriteHistogram(out, run, bitWidth(run))
	}
	return nil
}

// bitWidth recovers the register width from the stored bitstrings.
func bitWidth(run *types.Run) int {
	if len(run.Outcomes) > 0 {
		return len(run.Outcomes[0].Bitstring)
	}
	return 4
}
