package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// SubmissionRow is one line of the submissions register export.
type SubmissionRow struct {
	JobID           string
	ClientName      string
	DesignerName    string
	InstallLocation string
	Collection      string
	Color           string
	Door            string
	Drawer          string
	Status          string
	Submitted       string
}

// GenerateSubmissionsExcel creates an Excel register of intake submissions
// and returns the file contents as a byte slice.
func GenerateSubmissionsExcel(rows []SubmissionRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Submissions"
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	// Column references (A through J).
	columns := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}

	widths := []float64{10, 22, 22, 28, 12, 14, 30, 30, 10, 14}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	// Column header style: bold, white text, charcoal background, centered.
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Color: "#FFFFFF",
			Size:  11,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	headers := []string{
		"Job ID", "Client Name", "Designer Name", "Install Location",
		"Collection", "Color", "Door", "Drawer", "Status", "Submitted",
	}
	for i, h := range headers {
		cell := fmt.Sprintf("%s1", columns[i])
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("set header %s: %w", cell, err)
		}
	}
	if err := f.SetCellStyle(sheetName, "A1", "J1", headerStyle); err != nil {
		return nil, fmt.Errorf("style header row: %w", err)
	}

	for i, row := range rows {
		values := []string{
			row.JobID, row.ClientName, row.DesignerName, row.InstallLocation,
			row.Collection, row.Color, row.Door, row.Drawer, row.Status, row.Submitted,
		}
		for j, v := range values {
			cell := fmt.Sprintf("%s%d", columns[j], i+2)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// DecoSummary renders a door/drawer selection for the register, e.g.
// "4 x Deco / Deco 01 / Variant 101" or "No" when disabled.
func DecoSummary(d DecoSelection) string {
	if !d.Enabled {
		return "No"
	}
	summary := fmt.Sprintf("%s x %s", d.Quantity, d.Style)
	if d.Style != "Slab" && d.Series != "" {
		summary += " / " + d.Series
		if d.Variant != "" {
			summary += " / " + d.Variant
		}
	}
	return summary
}
