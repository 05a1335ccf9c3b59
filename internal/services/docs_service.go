package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"dashboard/internal/domain/models"
	"dashboard/internal/repositories"
	"dashboard/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders a printable PDF for a single invoice.
type DocsService struct {
	Repo      repositories.InvoiceRepository
	RequestID string
}

func (s DocsService) GenerateInvoicePDF(id string) ([]byte, string, error) {
	inv, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, "", err
	}
	utils.LogAction(s.RequestID, "invoice_pdf", "invoice_id="+inv.ID)
	return buildInvoicePDF(inv)
}

func buildInvoicePDF(inv models.Invoice) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Invoice No : "+inv.ID)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Generated  : "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Billed to:")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Customer : %s", inv.CustomerID),
		fmt.Sprintf("Date     : %s", inv.Date),
		fmt.Sprintf("Status   : %s", strings.ToUpper(inv.Status)),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Amount Due : "+utils.FormatCents(inv.Amount))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Note: amounts are stored in cents and rendered at two decimal places.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("INV_%s.pdf", inv.ID)
	return buf.Bytes(), filename, nil
}
