package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/structuraltools/goiscc/internal/design"
)

// WriteXLSX exports the check schedule of one compliance result as a
// spreadsheet with a Checks sheet and, when loads were derived, a
// Loads sheet.
func WriteXLSX(w io.Writer, result *design.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Checks"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headers := []string{"Check", "Required", "Provided", "Result", "Reference"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	if result.Error != "" {
		if err := f.SetCellValue(sheet, "A2", fmt.Sprintf("error: %s", result.Error)); err != nil {
			return err
		}
		return f.Write(w)
	}

	for i, c := range result.Checks {
		row := i + 2
		verdict := "PASS"
		if !c.Pass {
			verdict = "FAIL"
		}
		values := []any{string(c.Name), c.Required, c.Provided, verdict, c.Description}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	summaryRow := len(result.Checks) + 3
	cell, err := excelize.CoordinatesToCellName(1, summaryRow)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, cell,
		fmt.Sprintf("Member: %s - Overall: %s", result.MemberType, result.Status)); err != nil {
		return err
	}

	if l := result.CalculatedLoads; l != nil {
		const loadSheet = "Loads"
		if _, err := f.NewSheet(loadSheet); err != nil {
			return err
		}
		rows := [][]any{
			{"Quantity", "Value"},
			{"dead_load", l.DeadLoad.Float()},
			{"live_load", l.LiveLoad.Float()},
			{"wind_load", l.WindLoad.Float()},
			{"factored_load", l.FactoredLoad.Float()},
			{"axial_load", l.AxialLoad.Float()},
			{"moment", l.Moment.Float()},
		}
		for r, row := range rows {
			for col, v := range row {
				cell, err := excelize.CoordinatesToCellName(col+1, r+1)
				if err != nil {
					return err
				}
				if err := f.SetCellValue(loadSheet, cell, v); err != nil {
					return err
				}
			}
		}
	}

	return f.Write(w)
}
