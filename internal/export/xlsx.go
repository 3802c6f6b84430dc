package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"munrodist/internal/munro"
)

// SheetName is the sheet the match table is written to.
const SheetName = "Matches"

// WriteXLSX writes the full match table as a spreadsheet: one row per
// Munro with its nearest Munro Top and the distance in kilometers. An
// existing file at path is replaced.
func WriteXLSX(path string, matches []munro.Match) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		return fmt.Errorf("new sheet: %w", err)
	}
	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return fmt.Errorf("stream writer: %w", err)
	}

	headers := []interface{}{
		"Munro", "Height (m)", "Height (ft)", "Easting", "Northing",
		"Nearest Munro Top", "Top Easting", "Top Northing", "Distance (km)",
	}
	if err := sw.SetRow("A1", headers); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, m := range matches {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{
			m.Peak.Name, m.Peak.HeightM, m.Peak.HeightFt,
			m.Peak.Point.X, m.Peak.Point.Y,
			m.Nearest.Name, m.Nearest.Point.X, m.Nearest.Point.Y,
			m.DistanceKm,
		}
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}

	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
