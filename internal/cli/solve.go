package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thruflo/pipemaze/internal/solver"
)

var (
	solveJSON    bool
	solveWorkers int
)

var solveCmd = &cobra.Command{
	Use:   "solve <grid-file>",
	Short: "Print the furthest loop distance and the enclosed tile count",
	Long: `Traces the loop through the start tile and prints two answers:

  Part 1: the number of steps along the loop to the tile furthest from S
  Part 2: the number of tiles enclosed by the loop`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().BoolVar(&solveJSON, "json", false, "print the result as JSON")
	solveCmd.Flags().IntVarP(&solveWorkers, "workers", "w", 0, "goroutines classifying rows (default: from config)")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	workers := cfg.Classifier.Workers
	if solveWorkers > 0 {
		workers = solveWorkers
	}

	a, err := solver.SolveFile(commandContext(cmd), args[0], solver.Options{Workers: workers})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if solveJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(a.Result); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		return nil
	}

	fmt.Fprintf(out, "Part 1: %d\n", a.Result.Furthest)
	fmt.Fprintf(out, "Part 2: %d\n", a.Result.Enclosed)
	return nil
}
