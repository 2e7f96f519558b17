package infra

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Pujitha233/restaurant-billing-software/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens the store named by dsn and makes sure the schema exists.
// postgres:// and postgresql:// URLs (or key=value DSNs with host=) go to
// Postgres; anything else is treated as an SQLite file path.
func NewDatabase(dsn string) (*gorm.DB, error) {
	dialector, isSQLite, err := openDialector(dsn)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if isSQLite {
		// Single writer: one connection keeps SQLite from returning SQLITE_BUSY.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
	}

	if err := InitStorage(db); err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}
	return db, nil
}

// InitStorage creates the menu, orders and order_lines tables when absent.
// Running it against an up-to-date schema is a no-op.
func InitStorage(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.MenuItem{},
		&model.Order{},
		&model.OrderLine{},
	)
}

func openDialector(dsn string) (gorm.Dialector, bool, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") || strings.Contains(dsn, "host=") {
		return postgres.Open(dsn), false, nil
	}

	path := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if path != "" && !strings.Contains(path, ":memory:") {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, true, fmt.Errorf("sqlite: create data dir: %w", err)
		}
	}

	if !strings.Contains(dsn, "foreign_keys") {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + "_pragma=foreign_keys(1)"
	}
	return sqlite.Open(dsn), true, nil
}
