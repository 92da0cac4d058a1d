package store

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/cwbudde/tourclimb/internal/tour"
)

// Sheet names used by WriteReport
const (
	SummarySheet = "Summary"
	RouteSheet   = "Route"
	TraceSheet   = "Trace"
)

// WriteReport saves a spreadsheet describing a result: a summary sheet, the
// visiting order with leg lengths, and the restart trace when one is given.
func WriteReport(path string, result *Result, cities []tour.City, trace []TraceEntry) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("error creating header style: %w", err)
	}

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return fmt.Errorf("error renaming sheet: %w", err)
	}
	summary := [][]interface{}{
		{"Field", "Value"},
		{"Run ID", result.ID},
		{"City file", result.Config.CityFile},
		{"Cities", result.Config.CityCount},
		{"Strategy", result.Config.Strategy},
		{"Seed", result.Config.Seed},
		{"Restarts", result.Restarts},
		{"Initial distance", result.InitialDistance},
		{"Total distance", result.Distance},
		{"Improved", result.Found},
		{"Timestamp", result.Timestamp.Format("2006-01-02 15:04:05")},
	}
	if err := writeRows(f, SummarySheet, summary, headerStyle); err != nil {
		return err
	}

	if _, err := f.NewSheet(RouteSheet); err != nil {
		return fmt.Errorf("error creating sheet: %w", err)
	}
	rows := [][]interface{}{{"Position", "City", "Label", "X", "Y", "Leg"}}
	n := len(result.Route)
	for i, c := range result.Route {
		next := result.Route[(i+1)%n]
		rows = append(rows, []interface{}{
			i, c, fmt.Sprintf("C_%d", c), cities[c].X, cities[c].Y,
			tour.Distance(cities[c], cities[next]),
		})
	}
	if err := writeRows(f, RouteSheet, rows, headerStyle); err != nil {
		return err
	}

	if len(trace) > 0 {
		if _, err := f.NewSheet(TraceSheet); err != nil {
			return fmt.Errorf("error creating sheet: %w", err)
		}
		rows := [][]interface{}{{"Restart", "Distance", "Best"}}
		for _, e := range trace {
			rows = append(rows, []interface{}{e.Restart, e.Distance, e.Best})
		}
		if err := writeRows(f, TraceSheet, rows, headerStyle); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("error saving report: %w", err)
	}
	return nil
}

// writeRows writes rows starting at A1 and styles the first one as a header
func writeRows(f *excelize.File, sheet string, rows [][]interface{}, headerStyle int) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("error writing %s row %d: %w", sheet, i+1, err)
		}
	}

	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil
	}
	last, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, headerStyle)
}
