package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"weldsim/physics"
)

// SweepTable is one sheet of the parameter-effects workbook.
type SweepTable struct {
	Name      string // sheet name
	Parameter string // varied parameter, used as the first column header
	Points    []physics.SweepPoint
}

// WriteSweepWorkbook renders one sheet per sweep table. The first table
// replaces the default sheet so the workbook opens on it.
func WriteSweepWorkbook(w io.Writer, tables []SweepTable) error {
	if len(tables) == 0 {
		return fmt.Errorf("no sweep tables to export")
	}
	f := excelize.NewFile()
	defer f.Close()

	for i, table := range tables {
		sheet := table.Name
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
				return err
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return err
			}
		}
		headers := []string{table.Parameter, "heat_input_j_mm", "width_mm", "penetration_mm"}
		for col, h := range headers {
			cell, err := excelize.CoordinatesToCellName(col+1, 1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, h); err != nil {
				return err
			}
		}
		for row, p := range table.Points {
			values := []float64{p.Value, p.HeatInput, p.Width, p.Penetration}
			for col, v := range values {
				cell, err := excelize.CoordinatesToCellName(col+1, row+2)
				if err != nil {
					return err
				}
				if err := f.SetCellValue(sheet, cell, v); err != nil {
					return err
				}
			}
		}
	}
	return f.Write(w)
}
