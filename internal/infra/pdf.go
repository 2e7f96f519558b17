package infra

// pdf.go: receipt PDF generation using go-pdf/fpdf.
// Renders a thermal-receipt sized bill with:
//   - Restaurant header, order number, timestamp, mode and payment method
//   - Item table (name, quantity, line total incl. tax)
//   - Subtotal, tax, discount (if any) and bold grand total
//
// The output file is saved to storagePath/receipt_{id}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Pujitha233/restaurant-billing-software/internal/dto"

	"github.com/go-pdf/fpdf"
)

// GenerateReceiptPDF writes the bill of one order and returns the file path.
// storagePath is created if needed.
func GenerateReceiptPDF(receipt *dto.OrderResponse, restaurantName, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0o755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	order := receipt.Order
	filePath := filepath.Join(storagePath, fmt.Sprintf("receipt_%d.pdf", order.ID))

	// 80mm roll; height grows with the number of lines.
	height := 90.0 + 5.0*float64(len(receipt.Items))
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 80, Ht: height},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.SetAutoPageBreak(false, 4)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, restaurantName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, "Tax Invoice", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Order #%d", order.ID), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	stamp := order.CreatedAt
	if t, err := time.Parse(time.RFC3339, order.CreatedAt); err == nil {
		stamp = t.Format("02/01/2006  15:04")
	}
	pdf.CellFormat(contentW, 4, stamp, "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 4, order.Mode+" / "+order.PaymentMethod, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Items ────────────────────────────────────────────────────────────────
	col1 := contentW * 0.52
	col2 := contentW * 0.16
	col3 := contentW * 0.32

	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(col1, 5, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, "Qty", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 5, "Amount", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	for _, item := range receipt.Items {
		name := item.ItemName
		if r := []rune(name); len(r) > 24 {
			name = string(r[:23]) + "."
		}
		pdf.CellFormat(col1, 5, name, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, fmt.Sprintf("x%d", item.Quantity), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 5, "Rs."+item.LineTotal.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Totals ───────────────────────────────────────────────────────────────
	row := func(label, value string) {
		pdf.CellFormat(col1+col2, 5, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 5, value, "", 1, "R", false, 0, "")
	}
	pdf.SetFont("Helvetica", "", 7)
	row("Subtotal:", "Rs."+order.Subtotal.StringFixed(2))
	row("Tax:", "Rs."+order.TaxTotal.StringFixed(2))
	if !order.DiscountAmount.IsZero() {
		row("Discount:", "-Rs."+order.DiscountAmount.StringFixed(2))
	}
	pdf.SetFont("Helvetica", "B", 9)
	row("TOTAL:", "Rs."+order.GrandTotal.StringFixed(2))

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.CellFormat(contentW, 4, "Thank you! Visit again.", "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return filePath, nil
}
