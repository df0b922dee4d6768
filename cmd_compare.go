package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"jansuvidha/charts"
	"jansuvidha/compare"
	"jansuvidha/data"
	"jansuvidha/i18n"
	"jansuvidha/models"
)

var compareFlags struct {
	category string
	mode     string
	export   string
	lang     string
}

var compareCmd = &cobra.Command{
	Use:   "compare [a] [b] [metric...]",
	Short: "Compare two regions or two years",
	Long: `Compares two regions (ids such as tamil-nadu) or two years for a category.
Without metrics every metric of the category is compared. --export writes the
full comparison report as an Excel workbook.

Example:
  jansuvidha compare tamil-nadu karnataka hospitals
  jansuvidha compare 2024 2023 --export health-2024-vs-2023.xlsx`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCompare(cmd.OutOrStdout(), args[0], args[1], args[2:])
	},
}

func init() {
	f := compareCmd.Flags()
	f.StringVarP(&compareFlags.category, "category", "c", string(models.CategoryHealth), "category to compare")
	f.StringVar(&compareFlags.mode, "mode", "", "regions or years (default: inferred from the selectors)")
	f.StringVar(&compareFlags.export, "export", "", "write the report to this .xlsx file")
	f.StringVar(&compareFlags.lang, "lang", i18n.Default, "language for number formatting")
}

func runCompare(stdout io.Writer, first, second string, metrics []string) error {
	c, ok := models.ParseCategory(compareFlags.category)
	if !ok {
		return fmt.Errorf("%w: %q", charts.ErrUnknownCategory, compareFlags.category)
	}
	mode := models.ComparisonMode(compareFlags.mode)
	if mode == "" {
		mode = compare.ModeFor(first, second)
	}

	tables := data.Load()
	eval := compare.NewEvaluator(tables, charts.NewSelector(tables))

	if compareFlags.export != "" {
		page, err := eval.Page(c, compare.Spec(mode, first, second))
		if err != nil {
			return err
		}
		f, err := os.Create(compareFlags.export)
		if err != nil {
			return fmt.Errorf("create report: %w", err)
		}
		defer f.Close()
		if err := compare.ExportXLSX(page, f); err != nil {
			return err
		}
		return f.Close()
	}

	if len(metrics) == 0 {
		for _, def := range tables.MetricDefinitions(c) {
			metrics = append(metrics, def.Key)
		}
	}

	results := make([]models.ComparisonResult, 0, len(metrics))
	for _, m := range metrics {
		results = append(results, eval.Metric(mode, m, first, second, c))
	}

	if !isTerminal(stdout) {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}
	writeTable(stdout, compareFlags.lang, results)
	return nil
}

func writeTable(w io.Writer, lang string, results []models.ComparisonResult) {
	for _, r := range results {
		delta := r.PercentDelta
		if r.DeltaAvailable {
			delta += "%"
		}
		fmt.Fprintf(w, "%-28s %14s %14s  %s %s\n", r.Metric,
			i18n.FormatNumber(lang, r.ValueA),
			i18n.FormatNumber(lang, r.ValueB),
			delta, r.Direction)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
