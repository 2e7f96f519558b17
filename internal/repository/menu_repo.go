package repository

import (
	"context"

	"github.com/Pujitha233/restaurant-billing-software/internal/model"

	"gorm.io/gorm"
)

// MenuRepository is the data access contract for the catalog.
// Bulk replacement is split into Tx methods so the service owns the transaction.
type MenuRepository interface {
	List(ctx context.Context) ([]model.MenuItem, error)
	FindByID(ctx context.Context, id uint) (*model.MenuItem, error)

	// Used inside transactions; callers must pass the tx instance
	DeleteAllTx(tx *gorm.DB) error
	CreateBatchTx(tx *gorm.DB, items []model.MenuItem) error

	DB() *gorm.DB
}

type menuRepo struct{ db *gorm.DB }

func NewMenuRepository(db *gorm.DB) MenuRepository { return &menuRepo{db: db} }

func (r *menuRepo) DB() *gorm.DB { return r.db }

// List orders by category with uncategorised items last, then by name;
// id breaks ties so equal rows keep their import order.
func (r *menuRepo) List(ctx context.Context) ([]model.MenuItem, error) {
	var items []model.MenuItem
	err := r.db.WithContext(ctx).
		Order("category IS NULL, category ASC, item_name ASC, id ASC").
		Find(&items).Error
	return items, err
}

func (r *menuRepo) FindByID(ctx context.Context, id uint) (*model.MenuItem, error) {
	var m model.MenuItem
	err := r.db.WithContext(ctx).First(&m, id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *menuRepo) DeleteAllTx(tx *gorm.DB) error {
	return tx.Where("1 = 1").Delete(&model.MenuItem{}).Error
}

func (r *menuRepo) CreateBatchTx(tx *gorm.DB, items []model.MenuItem) error {
	if len(items) == 0 {
		return nil
	}
	return tx.CreateInBatches(&items, 100).Error
}
