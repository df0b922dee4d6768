package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"jansuvidha/charts"
	"jansuvidha/compare"
	"jansuvidha/data"
	"jansuvidha/models"
)

var chartFlags struct {
	format string
	out    string
	spec   bool
	width  int
	height int
	mode   string
	first  string
	second string
}

var chartCmd = &cobra.Command{
	Use:   "chart [category] [view]",
	Short: "Render a dashboard chart to an image file",
	Long: `Renders the chart of a category view (overview, charts, trends or
comparison) as PNG or SVG. With --spec the chart configuration is printed as
JSON instead.

Example:
  jansuvidha chart health trends --format svg --out health.svg
  jansuvidha chart education comparison --a tamil-nadu --b karnataka`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChart(cmd.OutOrStdout(), models.Category(args[0]), models.ViewType(args[1]))
	},
}

func init() {
	f := chartCmd.Flags()
	f.StringVar(&chartFlags.format, "format", "png", "image format: png or svg")
	f.StringVarP(&chartFlags.out, "out", "o", "", "output file (default stdout)")
	f.BoolVar(&chartFlags.spec, "spec", false, "print the chart configuration as JSON")
	f.IntVar(&chartFlags.width, "width", 800, "image width in pixels")
	f.IntVar(&chartFlags.height, "height", 450, "image height in pixels")
	f.StringVar(&chartFlags.mode, "mode", "", "comparison mode: regions or years")
	f.StringVar(&chartFlags.first, "a", "", "first region or year")
	f.StringVar(&chartFlags.second, "b", "", "second region or year")
}

func runChart(stdout io.Writer, c models.Category, view models.ViewType) error {
	var cmp *models.ComparisonSpec
	if chartFlags.first != "" && chartFlags.second != "" {
		mode := models.ComparisonMode(chartFlags.mode)
		if mode == "" {
			mode = compare.ModeFor(chartFlags.first, chartFlags.second)
		}
		spec := compare.Spec(mode, chartFlags.first, chartFlags.second)
		cmp = &spec
	}

	spec, err := charts.NewSelector(data.Load()).Select(c, view, cmp)
	if err != nil {
		return err
	}

	var out []byte
	if chartFlags.spec {
		out, err = json.MarshalIndent(spec, "", "  ")
		if err != nil {
			return err
		}
		out = append(out, '\n')
	} else {
		format, err := charts.ParseFormat(chartFlags.format)
		if err != nil {
			return err
		}
		out, err = charts.RenderSpec(spec, format, chartFlags.width, chartFlags.height)
		if err != nil {
			return err
		}
	}

	if chartFlags.out == "" {
		_, err = stdout.Write(out)
		return err
	}
	if err := os.WriteFile(chartFlags.out, out, 0o644); err != nil {
		return fmt.Errorf("write chart: %w", err)
	}
	logger.Sugar().Infof("Wrote %s/%s chart to %s", c, view, chartFlags.out)
	return nil
}
