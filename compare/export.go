package compare

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"jansuvidha/models"
)

const (
	metricsSheet = "Metrics"
	chartSheet   = "Chart Data"
)

// ExportXLSX writes the comparison report as an Excel workbook: one sheet
// with the metric cards and one with the chart table.
func ExportXLSX(page models.ComparisonPage, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", metricsSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(chartSheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}

	nameA, nameB := page.Spec.Selectors[0], page.Spec.Selectors[1]
	if len(page.Metrics) > 0 {
		nameA, nameB = page.Metrics[0].NameA, page.Metrics[0].NameB
	}

	headers := []string{"Metric", nameA, nameB, "Difference (%)", "Direction"}
	if err := writeRow(f, metricsSheet, 1, toAny(headers)); err != nil {
		return err
	}
	for i, m := range page.Metrics {
		label := m.Label
		if label == "" {
			label = m.Metric
		}
		row := []any{label + unitSuffix(m.Unit), m.ValueA, m.ValueB, m.PercentDelta, string(m.Direction)}
		if err := writeRow(f, metricsSheet, i+2, row); err != nil {
			return err
		}
	}
	if err := setWidths(f, metricsSheet, len(headers), 22); err != nil {
		return err
	}

	chartHeaders := []any{"Label"}
	for _, ds := range page.Chart.Datasets {
		chartHeaders = append(chartHeaders, ds.Label)
	}
	if err := writeRow(f, chartSheet, 1, chartHeaders); err != nil {
		return err
	}
	for i, label := range page.Chart.Labels {
		row := []any{label}
		for _, ds := range page.Chart.Datasets {
			if i < len(ds.Data) {
				row = append(row, ds.Data[i])
			} else {
				row = append(row, nil)
			}
		}
		if err := writeRow(f, chartSheet, i+2, row); err != nil {
			return err
		}
	}
	if err := setWidths(f, chartSheet, len(chartHeaders), 18); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("set %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}

func setWidths(f *excelize.File, sheet string, cols int, width float64) error {
	if cols == 0 {
		return nil
	}
	last, err := excelize.ColumnNumberToName(cols)
	if err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", last, width)
}

func unitSuffix(unit string) string {
	unit = strings.TrimSpace(unit)
	if unit == "" {
		return ""
	}
	return " (" + unit + ")"
}

func toAny(in []string) []any {
	out := make([]any, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}
