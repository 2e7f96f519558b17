package infra

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Pujitha233/restaurant-billing-software/internal/dto"
)

var summaryHeader = []string{"period", "order_count", "subtotal_sum", "tax_sum", "discount_sum", "total_sum"}

// WriteSummaryCSV writes one header row and one row per period.
func WriteSummaryCSV(w io.Writer, rows []dto.PeriodSummary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(summaryHeader); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			r.Period,
			strconv.Itoa(r.OrderCount),
			r.SubtotalSum.StringFixed(2),
			r.TaxSum.StringFixed(2),
			r.DiscountSum.StringFixed(2),
			r.TotalSum.StringFixed(2),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSummaryCSVFile replaces the file at path with the summary.
func WriteSummaryCSVFile(path string, rows []dto.PeriodSummary) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("report csv: create dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report csv: %w", err)
	}
	if err := WriteSummaryCSV(f, rows); err != nil {
		f.Close()
		return fmt.Errorf("report csv: %w", err)
	}
	return f.Close()
}
