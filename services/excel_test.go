package services

import (
	"bytes"
	"testing"

	"counselling-module/models"

	"github.com/xuri/excelize/v2"
)

func TestWriteConsultationsXLSX(t *testing.T) {
	consultations := []models.Consultation{
		{Name: "Priya Nair", Email: "priya@example.com", Mobile: "+919876543210", ConsultationType: models.ConsultationUniversityAdmission, CreatedAt: "2026-08-20T10:00:00Z"},
		{Name: "Rohan Mehta", Email: "rohan@example.com", Mobile: "+919812345678", Message: "Career switch advice"},
	}

	var buf bytes.Buffer
	if err := WriteConsultationsXLSX(&buf, consultations); err != nil {
		t.Fatalf("WriteConsultationsXLSX: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("reopening spreadsheet: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		t.Fatalf("reading rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + 2", len(rows))
	}
	if rows[0][0] != "Name" || rows[0][1] != "Email" {
		t.Errorf("header row = %v", rows[0])
	}
	if rows[1][1] != "priya@example.com" {
		t.Errorf("first data row = %v", rows[1])
	}
	if rows[2][0] != "Rohan Mehta" {
		t.Errorf("second data row = %v", rows[2])
	}
}

func TestWriteConsultationsXLSXEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteConsultationsXLSX(&buf, nil); err != nil {
		t.Fatalf("WriteConsultationsXLSX: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("empty export produced no bytes")
	}
}
