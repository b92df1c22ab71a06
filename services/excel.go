package services

import (
	"fmt"
	"io"

	"counselling-module/models"

	"github.com/xuri/excelize/v2"
)

// WriteConsultationsXLSX writes the consultations as a spreadsheet for the
// counselling team. Columns mirror the consultation document fields.
func WriteConsultationsXLSX(w io.Writer, consultations []models.Consultation) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	headers := []string{"Name", "Email", "Mobile", "Type", "Preferred Time", "Message", "Created At"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("building header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for row, c := range consultations {
		values := []string{c.Name, c.Email, c.Mobile, c.ConsultationType, c.PreferredTime, c.Message, c.CreatedAt}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return fmt.Errorf("building cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("writing row %d: %w", row+2, err)
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing spreadsheet: %w", err)
	}
	return nil
}
