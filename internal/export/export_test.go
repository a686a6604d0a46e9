package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/blues/ets/internal/logic"
	"github.com/xuri/excelize/v2"
)

func sampleRows() []logic.ReportRow {
	assignee := "Bailey Dev"
	hours := 3.5
	due := "2025-03-17"
	return []logic.ReportRow{
		{
			TaskID:     1,
			Title:      "Onboard new feature",
			Assignee:   &assignee,
			HoursSpent: &hours,
			Status:     "in_progress",
			DueDate:    &due,
			CreatedAt:  "2025-03-15T00:00:00Z",
			ColorKey:   logic.ColorNearingDeadline,
		},
		{
			TaskID:    2,
			Title:     "Write docs",
			Status:    "completed",
			CreatedAt: "2025-03-10T00:00:00Z",
			ColorKey:  logic.ColorCompletedOnTime,
		},
	}
}

func TestRenderCSV(t *testing.T) {
	data, err := RenderCSV(sampleRows())
	if err != nil {
		t.Fatalf("RenderCSV() error: %v", err)
	}

	want := "task_id,title,assignee,hours_spent,status,due_date,created_at\n" +
		"1,Onboard new feature,Bailey Dev,3.5,in_progress,2025-03-17,2025-03-15T00:00:00Z\n" +
		"2,Write docs,,,completed,,2025-03-10T00:00:00Z\n"
	if got := string(data); got != want {
		t.Errorf("RenderCSV() =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderCSVEmpty(t *testing.T) {
	data, err := RenderCSV(nil)
	if err != nil {
		t.Fatalf("RenderCSV() error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected header only, got %d lines", len(lines))
	}
	if lines[0] != "task_id,title,assignee,hours_spent,status,due_date,created_at" {
		t.Errorf("header = %q", lines[0])
	}
}

func TestRenderXLSX(t *testing.T) {
	data, err := RenderXLSX(sampleRows())
	if err != nil {
		t.Fatalf("RenderXLSX() error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)

	cells := map[string]string{
		"A1": "task_id",
		"G1": "created_at",
		"A2": "1",
		"B2": "Onboard new feature",
		"C2": "Bailey Dev",
		"D2": "3.5",
		"E2": "in_progress",
		"F2": "2025-03-17",
		"B3": "Write docs",
		"D3": "",
	}
	for cell, want := range cells {
		got, err := f.GetCellValue(sheet, cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s) error: %v", cell, err)
		}
		if got != want {
			t.Errorf("cell %s = %q, want %q", cell, got, want)
		}
	}
}
