package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/groundwaterkit/pitflow/pkg/pitflow"
	"github.com/groundwaterkit/pitflow/pkg/report"
)

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	thresholds []float64 // drawdown thresholds to report distances for
	guess      float64   // initial solver guess override
	output     string    // output file path (stdout if empty)
}

// newSolveCmd creates the solve command. It loads a TOML scenario file,
// solves the radius of influence, and prints the assessment report.
func newSolveCmd() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve <scenario.toml>",
		Short: "Solve a dewatering scenario and print the assessment report",
		Long: `Solve the radius of influence and groundwater inflows for a pit
dewatering scenario described in a TOML file (field units).

Examples:
  pitflow solve mine.toml
  pitflow solve mine.toml --threshold 1 --threshold 0.5
  pitflow solve mine.toml -o report.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runSolve(c.Context(), args[0], opts)
		},
	}

	cmd.Flags().Float64SliceVarP(&opts.thresholds, "threshold", "t", nil,
		"drawdown threshold (m) to report the distance for; repeatable")
	cmd.Flags().Float64Var(&opts.guess, "guess", 0,
		"initial guess for the influence radius solve (m)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "",
		"write the report to a file instead of stdout")

	return cmd
}

func runSolve(ctx context.Context, path string, opts solveOpts) error {
	logger := loggerFromContext(ctx)

	field, err := loadScenario(path)
	if err != nil {
		return err
	}

	var modelOpts []pitflow.Option
	if opts.guess != 0 {
		modelOpts = append(modelOpts, pitflow.WithInitialGuess(opts.guess))
	}
	c, err := pitflow.NewFieldCase(field, modelOpts...)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	sp := newSpinner(ctx, "solving radius of influence")
	sp.Start()
	rep, err := report.Build(c, report.Options{Thresholds: opts.thresholds})
	sp.Stop()
	if err != nil {
		return err
	}

	_, iterations, err := c.SolveStats()
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Solved radius of influence in %d iterations", iterations))

	out, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := fmt.Fprintln(out, rep.Text()); err != nil {
		return err
	}
	if opts.output != "" {
		printSuccess("Report written")
		printFile(opts.output)
	}
	return nil
}
