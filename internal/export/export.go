// Package export renders report rows into downloadable formats. It only
// formats what the report engine produced; classification never happens
// here.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/blues/ets/internal/logic"
	"github.com/xuri/excelize/v2"
)

// Columns shared by the CSV and XLSX exports, in output order. The
// summary is omitted from file downloads.
var reportColumns = []string{
	"task_id", "title", "assignee", "hours_spent", "status", "due_date", "created_at",
}

// RenderCSV renders rows as CSV with a header line.
func RenderCSV(rows []logic.ReportRow) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(reportColumns); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			strconv.FormatInt(row.TaskID, 10),
			row.Title,
			stringOrEmpty(row.Assignee),
			hoursOrEmpty(row.HoursSpent),
			row.Status,
			stringOrEmpty(row.DueDate),
			row.CreatedAt,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderXLSX renders rows as a single-sheet spreadsheet, header row first.
func RenderXLSX(rows []logic.ReportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	header := make([]interface{}, len(reportColumns))
	for i, col := range reportColumns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write sheet header: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to address sheet row: %w", err)
		}
		values := []interface{}{
			row.TaskID,
			row.Title,
			stringOrEmpty(row.Assignee),
			hoursCell(row.HoursSpent),
			row.Status,
			stringOrEmpty(row.DueDate),
			row.CreatedAt,
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write sheet row: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to encode spreadsheet: %w", err)
	}
	return buf.Bytes(), nil
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func hoursOrEmpty(h *float64) string {
	if h == nil {
		return ""
	}
	return strconv.FormatFloat(*h, 'f', -1, 64)
}

func hoursCell(h *float64) interface{} {
	if h == nil {
		return nil
	}
	return *h
}
