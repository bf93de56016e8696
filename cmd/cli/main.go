package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"effectsize/adapters/excel"
	"effectsize/adapters/rng"
	"effectsize/app"
	"effectsize/domain/effect"
	"effectsize/domain/report"
	"effectsize/ui"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "effectsize",
		Short: "Standardized effect sizes with confidence intervals",
	}

	rootCmd.AddCommand(newAnalyzeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newAnalyzeCmd() *cobra.Command {
	var (
		colX      string
		colY      string
		measures  string
		method    string
		coverage  float64
		resamples int
		seed      int64
		precision int
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "analyze [data-file]",
		Short: "Compute effect sizes between two columns of a data file",
		Long: `Compute standardized effect sizes (Cohen's d, Hedge's g, Glass's delta)
between two numeric columns of an .xlsx or .csv file, with a confidence
interval around each estimate.

Example: effectsize analyze trial.csv --x-col treatment --y-col control --method bootstrap --seed 12345`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			requested, err := parseMeasures(measures)
			if err != nil {
				return err
			}
			chosenMethod, ok := report.ParseMethod(method)
			if !ok {
				return fmt.Errorf("invalid --method %q (use normal or bootstrap)", method)
			}

			xs, ys, err := excel.NewSampleReader(args[0]).ReadSamples(colX, colY)
			if err != nil {
				return err
			}

			svc := app.NewAnalysisService(rng.NewSeededAdapter(), nil)
			rep, err := svc.Run(cmd.Context(), app.AnalysisRequest{
				XS:        xs,
				YS:        ys,
				Source:    args[0],
				Measures:  requested,
				Method:    chosenMethod,
				Coverage:  coverage,
				Resamples: resamples,
				Seed:      seed,
			})
			if err != nil {
				return err
			}

			if asJSON {
				out, err := json.MarshalIndent(rep.ToPayload(), "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), ui.RenderMarkdown(rep, precision))
			return nil
		},
	}

	cmd.Flags().StringVar(&colX, "x-col", "x", "Column holding the first (treatment) sample")
	cmd.Flags().StringVar(&colY, "y-col", "y", "Column holding the second (control) sample")
	cmd.Flags().StringVar(&measures, "measures", "", "Comma-separated measures (cohen_d,hedges_g,glass_delta); all when empty")
	cmd.Flags().StringVar(&method, "method", "bootstrap", "Interval method: normal or bootstrap")
	cmd.Flags().Float64Var(&coverage, "coverage", 0.95, "Two-sided interval coverage in [0,1]")
	cmd.Flags().IntVar(&resamples, "resamples", 1000, "Bootstrap resample count (must exceed 1)")
	cmd.Flags().Int64Var(&seed, "seed", 42, "Random seed for reproducible bootstrap bounds")
	cmd.Flags().IntVar(&precision, "precision", 4, "Digits after the decimal point in output")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the report as JSON")

	return cmd
}

func parseMeasures(list string) ([]effect.Measure, error) {
	if strings.TrimSpace(list) == "" {
		return nil, nil
	}
	var out []effect.Measure
	for _, part := range strings.Split(list, ",") {
		m, err := effect.ParseMeasure(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
