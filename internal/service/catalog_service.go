package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Pujitha233/restaurant-billing-software/internal/dto"
	"github.com/Pujitha233/restaurant-billing-software/internal/model"
	"github.com/Pujitha233/restaurant-billing-software/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CatalogService manages the menu. Replacement is all-or-nothing: one bad
// row rejects the batch and the previous menu stays in place.
type CatalogService interface {
	ReplaceAll(ctx context.Context, items []dto.MenuItemInput) error
	ImportCSV(ctx context.Context, r io.Reader) (*dto.MenuImportResponse, error)
	List(ctx context.Context) ([]dto.MenuItemResponse, error)
	FindByID(ctx context.Context, id uint) (*dto.MenuItemResponse, error)
}

type catalogService struct {
	repo repository.MenuRepository
}

func NewCatalogService(repo repository.MenuRepository) CatalogService {
	return &catalogService{repo: repo}
}

func mapMenuItem(m model.MenuItem) dto.MenuItemResponse {
	return dto.MenuItemResponse{
		ID:         m.ID,
		ItemName:   m.ItemName,
		Category:   m.Category,
		Price:      m.Price,
		TaxPercent: m.TaxPercent,
	}
}

// ── ReplaceAll ────────────────────────────────────────────────────────────────

func (s *catalogService) ReplaceAll(ctx context.Context, items []dto.MenuItemInput) error {
	rows := make([]model.MenuItem, 0, len(items))
	for i, in := range items {
		name := strings.TrimSpace(in.ItemName)
		if name == "" {
			return invalid(fmt.Sprintf("items[%d].item_name", i), "is required")
		}
		if !in.Price.IsPositive() {
			return invalid(fmt.Sprintf("items[%d].price", i), "must be greater than zero")
		}
		if err := checkPrice(fmt.Sprintf("items[%d].price", i), in.Price); err != nil {
			return err
		}
		tax := model.DefaultTaxPercent
		if in.TaxPercent != nil {
			tax = *in.TaxPercent
		}
		if err := checkTaxPercent(fmt.Sprintf("items[%d].tax_percent", i), tax); err != nil {
			return err
		}
		rows = append(rows, model.MenuItem{
			ItemName:   name,
			Category:   normalizeCategory(in.Category),
			Price:      in.Price,
			TaxPercent: tax,
		})
	}

	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.DeleteAllTx(tx); err != nil {
			return err
		}
		return s.repo.CreateBatchTx(tx, rows)
	})
	if err != nil {
		return &StorageError{Op: "replace menu", Err: err}
	}
	log.Info().Int("items", len(rows)).Msg("menu replaced")
	return nil
}

func normalizeCategory(c *string) *string {
	if c == nil {
		return nil
	}
	v := strings.TrimSpace(*c)
	if v == "" {
		return nil
	}
	return &v
}

// ── ImportCSV ─────────────────────────────────────────────────────────────────
// Header row is required and must contain item_name and price. category and
// gst_percent / tax_percent are optional. Rows with a blank name or blank price
// are skipped; any other malformed value rejects the whole file.

func (s *catalogService) ImportCSV(ctx context.Context, r io.Reader) (*dto.MenuImportResponse, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, invalid("file", "empty CSV")
	}
	if err != nil {
		return nil, invalid("file", "unreadable CSV: %v", err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		cols[h] = i
	}
	nameIdx, okName := cols["item_name"]
	priceIdx, okPrice := cols["price"]
	if !okName || !okPrice {
		return nil, invalid("file", "header must contain item_name and price columns")
	}
	catIdx, hasCat := cols["category"]
	taxIdx, hasTax := cols["gst_percent"]
	if !hasTax {
		taxIdx, hasTax = cols["tax_percent"]
	}

	field := func(rec []string, idx int) string {
		if idx < len(rec) {
			return strings.TrimSpace(rec[idx])
		}
		return ""
	}

	resp := &dto.MenuImportResponse{}
	var items []dto.MenuItemInput
	for line := 2; ; line++ {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, invalid(fmt.Sprintf("row %d", line), "unreadable: %v", err)
		}
		resp.TotalRows++

		name := field(rec, nameIdx)
		rawPrice := field(rec, priceIdx)
		if name == "" || rawPrice == "" {
			resp.Skipped++
			continue
		}

		price, err := decimal.NewFromString(rawPrice)
		if err != nil {
			return nil, invalid(fmt.Sprintf("row %d price", line), "%q is not a number", rawPrice)
		}
		if !price.IsPositive() {
			return nil, invalid(fmt.Sprintf("row %d price", line), "must be greater than zero")
		}

		in := dto.MenuItemInput{ItemName: name, Price: price}
		if hasCat {
			cat := field(rec, catIdx)
			in.Category = &cat
		}
		if hasTax {
			if rawTax := field(rec, taxIdx); rawTax != "" {
				tax, err := decimal.NewFromString(rawTax)
				if err != nil {
					return nil, invalid(fmt.Sprintf("row %d tax", line), "%q is not a number", rawTax)
				}
				in.TaxPercent = &tax
			}
		}
		items = append(items, in)
	}

	if len(items) == 0 {
		return nil, invalid("file", "no importable rows")
	}
	if err := s.ReplaceAll(ctx, items); err != nil {
		return nil, err
	}
	resp.Imported = len(items)
	if resp.Skipped > 0 {
		log.Warn().Int("skipped", resp.Skipped).Msg("menu import skipped rows without name or price")
	}
	return resp, nil
}

// ── Queries ───────────────────────────────────────────────────────────────────

func (s *catalogService) List(ctx context.Context) ([]dto.MenuItemResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, &StorageError{Op: "list menu", Err: err}
	}
	result := make([]dto.MenuItemResponse, 0, len(list))
	for _, m := range list {
		result = append(result, mapMenuItem(m))
	}
	return result, nil
}

func (s *catalogService) FindByID(ctx context.Context, id uint) (*dto.MenuItemResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "menu item", ID: id}
		}
		return nil, &StorageError{Op: "find menu item", Err: err}
	}
	resp := mapMenuItem(*m)
	return &resp, nil
}
