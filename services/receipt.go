package services

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"counselling-module/models"

	"github.com/jung-kurt/gofpdf"
)

// GenerateReceipt creates a PDF payment receipt and returns its path.
func GenerateReceipt(name, email string, plan models.PricingPlan, orderID string) (string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Payment Receipt")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(40, 10, fmt.Sprintf("Dear %s,", name))
	pdf.Ln(12)
	pdf.Cell(40, 10, fmt.Sprintf("Plan: %s", plan.Title))
	pdf.Ln(12)
	pdf.Cell(40, 10, fmt.Sprintf("Amount: INR %d", plan.Price))
	pdf.Ln(12)
	pdf.Cell(40, 10, fmt.Sprintf("Order ID: %s", orderID))
	pdf.Ln(12)
	pdf.Cell(40, 10, fmt.Sprintf("Email: %s", email))
	pdf.Ln(12)
	pdf.Cell(40, 10, fmt.Sprintf("Date: %s", time.Now().Format("Jan 2, 2006")))
	pdf.Ln(12)
	pdf.Cell(40, 10, "Thank you for choosing Margdarshan Counselling.")

	fileName := filepath.Join(os.TempDir(), fmt.Sprintf("receipt_%s.pdf", orderID))
	if err := pdf.OutputFileAndClose(fileName); err != nil {
		return "", fmt.Errorf("error generating receipt PDF: %w", err)
	}

	return fileName, nil
}
