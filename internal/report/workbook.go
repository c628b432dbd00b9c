package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet = "Summary"
	stepsSheet   = "Steps"
)

var stepHeader = []any{"Name", "Step Type", "Status", "Seconds", "Path", "Error Type", "Stdout", "Stderr"}

// ExportWorkbook writes a summary sheet and one row per step to path.
func ExportWorkbook(path, suite string, tree *Tree) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(stepsSheet); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	counts := tree.Counts()
	summary := [][]any{
		{"Suite", suite},
		{"Result", tree.ResultID},
		{"Passed", counts[StatusPassed]},
		{"Failed", counts[StatusFailed]},
		{"Errored", counts[StatusErrored]},
		{"Skipped", counts[StatusSkipped]},
		{"Total", len(tree.Cases())},
	}
	for i, row := range summary {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(summarySheet, "A1", fmt.Sprintf("A%d", len(summary)), bold); err != nil {
		return err
	}

	if err := f.SetSheetRow(stepsSheet, "A1", &stepHeader); err != nil {
		return err
	}
	if err := f.SetCellStyle(stepsSheet, "A1", "H1", bold); err != nil {
		return err
	}

	for i, s := range tree.Steps() {
		var p Parameter
		if len(s.Data.Parameters) > 0 {
			p = s.Data.Parameters[0]
		}
		row := []any{s.Name, s.StepType, s.Status.StatusName, s.TotalTimeInSeconds, tree.Path(s), p.Type, p.Stdout, p.Stderr}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(stepsSheet, cell, &row); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(stepsSheet, "A", "A", 48); err != nil {
		return err
	}
	if err := f.SetColWidth(stepsSheet, "E", "E", 64); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write workbook %s: %w", path, err)
	}
	return nil
}
