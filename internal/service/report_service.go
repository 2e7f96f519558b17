package service

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/Pujitha233/restaurant-billing-software/internal/dto"
	"github.com/Pujitha233/restaurant-billing-software/internal/infra"
	"github.com/Pujitha233/restaurant-billing-software/internal/repository"

	"github.com/shopspring/decimal"
)

const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

// ReportService derives sales summaries straight from the ledger on every call.
type ReportService interface {
	Summarize(ctx context.Context, period string) ([]dto.PeriodSummary, error)
	TopItems(ctx context.Context, n int) ([]dto.ItemPopularity, error)
	ExportSummaryCSV(ctx context.Context, period string, w io.Writer) error
}

type reportService struct {
	repo repository.OrderRepository
	loc  *time.Location
}

// NewReportService buckets orders by calendar dates in loc (time.Local when nil).
func NewReportService(repo repository.OrderRepository, loc *time.Location) ReportService {
	if loc == nil {
		loc = time.Local
	}
	return &reportService{repo: repo, loc: loc}
}

// periodKey maps a timestamp to its bucket: 2006-01-02, ISO week 2006-W01,
// or 2006-01. All three sort chronologically as plain strings.
func periodKey(t time.Time, period string) (string, error) {
	switch period {
	case PeriodDaily:
		return t.Format("2006-01-02"), nil
	case PeriodWeekly:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week), nil
	case PeriodMonthly:
		return t.Format("2006-01"), nil
	}
	return "", invalid("period", "must be daily, weekly or monthly")
}

func (s *reportService) Summarize(ctx context.Context, period string) ([]dto.PeriodSummary, error) {
	if _, err := periodKey(time.Time{}, period); err != nil {
		return nil, err
	}
	orders, err := s.repo.ListHeaders(ctx)
	if err != nil {
		return nil, &StorageError{Op: "list orders", Err: err}
	}

	buckets := make(map[string]*dto.PeriodSummary)
	for _, o := range orders {
		key, _ := periodKey(o.CreatedAt.In(s.loc), period)
		b, ok := buckets[key]
		if !ok {
			b = &dto.PeriodSummary{
				Period:      key,
				SubtotalSum: decimal.Zero,
				TaxSum:      decimal.Zero,
				DiscountSum: decimal.Zero,
				TotalSum:    decimal.Zero,
			}
			buckets[key] = b
		}
		b.OrderCount++
		b.SubtotalSum = b.SubtotalSum.Add(o.Subtotal)
		b.TaxSum = b.TaxSum.Add(o.TaxTotal)
		b.DiscountSum = b.DiscountSum.Add(o.DiscountAmount)
		b.TotalSum = b.TotalSum.Add(o.GrandTotal)
	}

	result := make([]dto.PeriodSummary, 0, len(buckets))
	for _, b := range buckets {
		result = append(result, *b)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Period < result[j].Period })
	return result, nil
}

func (s *reportService) TopItems(ctx context.Context, n int) ([]dto.ItemPopularity, error) {
	if n <= 0 {
		return nil, invalid("n", "must be a positive integer")
	}
	items, err := s.repo.TopItems(ctx, n)
	if err != nil {
		return nil, &StorageError{Op: "top items", Err: err}
	}
	return items, nil
}

func (s *reportService) ExportSummaryCSV(ctx context.Context, period string, w io.Writer) error {
	rows, err := s.Summarize(ctx, period)
	if err != nil {
		return err
	}
	return infra.WriteSummaryCSV(w, rows)
}
