package repository

import (
	"context"

	"github.com/Pujitha233/restaurant-billing-software/internal/dto"
	"github.com/Pujitha233/restaurant-billing-software/internal/model"

	"gorm.io/gorm"
)

// OrderRepository persists orders with their lines and serves the raw rows
// reports are built from.
type OrderRepository interface {
	// Create inserts the header and every Lines entry through tx.
	Create(ctx context.Context, tx *gorm.DB, o *model.Order) error
	FindByID(ctx context.Context, id uint) (*model.Order, error)
	// ListHeaders returns all orders without lines, oldest first.
	ListHeaders(ctx context.Context) ([]model.Order, error)
	TopItems(ctx context.Context, n int) ([]dto.ItemPopularity, error)
	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type orderRepo struct{ db *gorm.DB }

func NewOrderRepository(db *gorm.DB) OrderRepository { return &orderRepo{db: db} }

func (r *orderRepo) DB() *gorm.DB { return r.db }

func (r *orderRepo) Create(ctx context.Context, tx *gorm.DB, o *model.Order) error {
	return tx.WithContext(ctx).Create(o).Error
}

func (r *orderRepo) FindByID(ctx context.Context, id uint) (*model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		First(&o, id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) ListHeaders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&orders).Error
	return orders, err
}

// TopItems sums sold quantity per item name. Ties on quantity are ordered by
// name so the result is stable.
func (r *orderRepo) TopItems(ctx context.Context, n int) ([]dto.ItemPopularity, error) {
	var rows []struct {
		ItemName string
		TotalQty int64
	}
	err := r.db.WithContext(ctx).Model(&model.OrderLine{}).
		Select("item_name, CAST(SUM(quantity) AS BIGINT) AS total_qty").
		Group("item_name").
		Order("total_qty DESC, item_name ASC").
		Limit(n).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemPopularity, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.ItemPopularity{ItemName: row.ItemName, Quantity: row.TotalQty})
	}
	return out, nil
}
