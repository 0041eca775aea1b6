package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/railops/yardwheel/config"
)

func writeWorkbook(t *testing.T, path, sheet string, rows [][]any) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		t.Fatalf("rename sheet: %v", err)
	}
	for r, row := range rows {
		for c, v := range row {
			cellRef, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellValue(sheet, cellRef, v); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
}

func TestServiceRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	schedulePath := filepath.Join(dir, "departures.xlsx")
	yardPath := filepath.Join(dir, "yard.xlsx")
	reportPath := filepath.Join(dir, "out", "report.xlsx")
	csvDir := filepath.Join(dir, "out", "csv")

	// ITHNAS appears twice: the later row must win and the collapse must
	// not surface as a skipped train.
	writeWorkbook(t, schedulePath, "Worksheet1", [][]any{
		{"Train", "Scheduled Departure", "Blocks"},
		{"ITHNAS", "9:00", "EVL"},
		{"GHOST", "5:00", "ZZZ"},
		{"NOBLK", "6:00", " , "},
		{"ITHNAS", "3:30", "EVL, NAS"},
	})
	writeWorkbook(t, yardPath, "Sheet1", [][]any{
		{"Time", "Pull 1", "EVL", "NAS", "SPARE 1"},
		{"23:00-23:15", "ITHNAS", 5, "", ""},
		{"1:00-1:15", "", 12, 8, ""},
		{"7:00-7:15", "", 6, "", "4 NAS"},
		{"11:00-11:15", "", "", "", "7 EVL 3 NAS"},
		{"18:00-18:15", "", "", 4, ""},
		{"19:00-19:15", "", "", "", "1 EVL 2 CHG"},
	})

	cfg := &config.Config{}
	cfg.Input.SchedulePath = schedulePath
	cfg.Input.YardPath = yardPath
	cfg.Input.SetDefaults()
	cfg.Yard.SetDefaults()
	cfg.Report.Path = reportPath
	cfg.Report.CSVDir = csvDir
	cfg.Analysis.SetDefaults()

	svc, err := New(cfg)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	defer func() {
		if err := svc.Close(); err != nil {
			t.Errorf("close: %v", err)
		}
	}()
	if err := svc.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	f, err := excelize.OpenFile(reportPath)
	if err != nil {
		t.Fatalf("open report: %v", err)
	}
	defer f.Close()
	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "Summary" || sheets[1] != "ITHNAS" {
		t.Fatalf("unexpected sheets %v (GHOST and NOBLK must be excluded)", sheets)
	}

	rows, err := f.GetRows("Summary")
	if err != nil {
		t.Fatalf("summary rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 1 summary row, got %d", len(rows)-1)
	}
	if rows[1][0] != "ITHNAS" || rows[1][3] != "45" || rows[1][4] != "789" {
		t.Fatalf("unexpected summary row %v", rows[1])
	}

	if _, err := os.Stat(filepath.Join(csvDir, "ITHNAS_summary.csv")); err != nil {
		t.Fatalf("per-train csv missing: %v", err)
	}
}
