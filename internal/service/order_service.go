package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Pujitha233/restaurant-billing-software/internal/dto"
	"github.com/Pujitha233/restaurant-billing-software/internal/model"
	"github.com/Pujitha233/restaurant-billing-software/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReceiptMirror receives a copy of every placed order. It is a convenience
// export; the ledger stays authoritative, so mirror failures never fail an order.
type ReceiptMirror interface {
	Append(receipt *dto.OrderResponse) error
}

type OrderService interface {
	// CreateOrder records already-priced lines and totals as one atomic unit.
	CreateOrder(ctx context.Context, mode model.OrderMode, payment model.PaymentMethod, lines []dto.PricedLine,
		subtotal, taxTotal, discount, grandTotal decimal.Decimal) (*dto.PlacedOrder, error)
	// PlaceOrder records a pricing result and mirrors the bill to the receipt log.
	PlaceOrder(ctx context.Context, mode model.OrderMode, payment model.PaymentMethod, totals *dto.CartTotals) (*dto.PlacedOrder, error)
	FetchOrder(ctx context.Context, id uint) (*dto.OrderResponse, error)
}

type orderService struct {
	repo   repository.OrderRepository
	mirror ReceiptMirror
	now    func() time.Time
}

// NewOrderService wires the ledger. mirror may be nil; clock defaults to time.Now.
func NewOrderService(repo repository.OrderRepository, mirror ReceiptMirror, clock func() time.Time) OrderService {
	if clock == nil {
		clock = time.Now
	}
	return &orderService{repo: repo, mirror: mirror, now: clock}
}

// ── CreateOrder ───────────────────────────────────────────────────────────────

func (s *orderService) CreateOrder(
	ctx context.Context,
	mode model.OrderMode,
	payment model.PaymentMethod,
	lines []dto.PricedLine,
	subtotal, taxTotal, discount, grandTotal decimal.Decimal,
) (*dto.PlacedOrder, error) {
	if !mode.Valid() {
		return nil, invalid("mode", "must be %q or %q", model.ModeDineIn, model.ModeTakeaway)
	}
	if !payment.Valid() {
		return nil, invalid("payment_method", "must be one of Cash, Card, UPI")
	}
	if len(lines) == 0 {
		return nil, invalid("lines", "order must contain at least one line")
	}
	for field, v := range map[string]decimal.Decimal{
		"subtotal": subtotal, "tax_total": taxTotal, "discount_amount": discount, "grand_total": grandTotal,
	} {
		if err := checkPrice(field, v); err != nil {
			return nil, err
		}
	}

	order := model.Order{
		Mode:           mode,
		PaymentMethod:  payment,
		Subtotal:       subtotal,
		TaxTotal:       taxTotal,
		DiscountAmount: discount,
		GrandTotal:     grandTotal,
		CreatedAt:      s.now().Truncate(time.Second),
	}
	for i, l := range lines {
		if l.Quantity <= 0 {
			return nil, invalid(fmt.Sprintf("lines[%d].quantity", i), "must be a positive integer")
		}
		if l.ItemName == "" {
			return nil, invalid(fmt.Sprintf("lines[%d].item_name", i), "is required")
		}
		if err := checkPrice(fmt.Sprintf("lines[%d].unit_price", i), l.UnitPrice); err != nil {
			return nil, err
		}
		if err := checkTaxPercent(fmt.Sprintf("lines[%d].tax_percent", i), l.TaxPercent); err != nil {
			return nil, err
		}
		order.Lines = append(order.Lines, model.OrderLine{
			ItemID:     l.ItemID,
			ItemName:   l.ItemName,
			Quantity:   l.Quantity,
			UnitPrice:  l.UnitPrice,
			TaxPercent: l.TaxPercent,
			LineTotal:  l.LineTotal,
		})
	}

	// Header and lines commit together or not at all.
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.Create(ctx, tx, &order)
	})
	if txErr != nil {
		return nil, &StorageError{Op: "create order", Err: txErr}
	}

	log.Info().
		Uint("order_id", order.ID).
		Str("mode", string(mode)).
		Str("payment_method", string(payment)).
		Str("grand_total", grandTotal.StringFixed(2)).
		Int("lines", len(order.Lines)).
		Msg("order created")

	return &dto.PlacedOrder{
		OrderID:   order.ID,
		CreatedAt: order.CreatedAt.Format(time.RFC3339),
	}, nil
}

// ── PlaceOrder ────────────────────────────────────────────────────────────────

func (s *orderService) PlaceOrder(ctx context.Context, mode model.OrderMode, payment model.PaymentMethod, totals *dto.CartTotals) (*dto.PlacedOrder, error) {
	if totals == nil {
		return nil, invalid("totals", "is required")
	}
	placed, err := s.CreateOrder(ctx, mode, payment, totals.Lines,
		totals.Subtotal, totals.TaxTotal, totals.DiscountAmount, totals.GrandTotal)
	if err != nil {
		return nil, err
	}

	// The order is already committed; the mirror is best effort.
	if s.mirror != nil {
		receipt, err := s.FetchOrder(ctx, placed.OrderID)
		if err == nil {
			err = s.mirror.Append(receipt)
		}
		if err != nil {
			log.Warn().Err(err).Uint("order_id", placed.OrderID).Msg("receipt mirror failed")
		}
	}
	return placed, nil
}

// ── FetchOrder ────────────────────────────────────────────────────────────────

func (s *orderService) FetchOrder(ctx context.Context, id uint) (*dto.OrderResponse, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "order", ID: id}
		}
		return nil, &StorageError{Op: "find order", Err: err}
	}
	return orderToResponse(o), nil
}

func orderToResponse(o *model.Order) *dto.OrderResponse {
	items := make([]dto.OrderLineResponse, 0, len(o.Lines))
	for _, l := range o.Lines {
		items = append(items, dto.OrderLineResponse{
			ID:         l.ID,
			OrderID:    l.OrderID,
			ItemID:     l.ItemID,
			ItemName:   l.ItemName,
			Quantity:   l.Quantity,
			UnitPrice:  l.UnitPrice,
			TaxPercent: l.TaxPercent,
			LineTotal:  l.LineTotal,
		})
	}
	return &dto.OrderResponse{
		Order: dto.OrderHeader{
			ID:             o.ID,
			Mode:           string(o.Mode),
			PaymentMethod:  string(o.PaymentMethod),
			Subtotal:       o.Subtotal,
			TaxTotal:       o.TaxTotal,
			DiscountAmount: o.DiscountAmount,
			GrandTotal:     o.GrandTotal,
			CreatedAt:      o.CreatedAt.Format(time.RFC3339),
		},
		Items: items,
	}
}
