//go:build integration

package router_test

// Runs the order flow against a real Postgres via testcontainers.
// Run with: go test -tags integration ./internal/router/... -v

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/Pujitha233/restaurant-billing-software/internal/config"
	"github.com/Pujitha233/restaurant-billing-software/internal/dto"
	"github.com/Pujitha233/restaurant-billing-software/internal/infra"
	"github.com/Pujitha233/restaurant-billing-software/internal/router"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

func setupPostgresEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("restaurant_test"),
		tcPostgres.WithUsername("restaurant"),
		tcPostgres.WithPassword("restaurant"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	dir := t.TempDir()
	cfg := &config.Config{
		Port:             8000,
		Env:              "test",
		DatabaseURL:      pgURL,
		RestaurantName:   "Spice Route",
		Timezone:         "UTC",
		ReceiptLogPath:   filepath.Join(dir, "sample_bills.json"),
		ReceiptPDFPath:   filepath.Join(dir, "receipts"),
		ReportExportPath: filepath.Join(dir, "sales_report.csv"),
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)

	return &testEnv{engine: router.New(cfg, db, time.UTC), cfg: cfg, db: db}
}

func TestPostgres_OrderRoundTripAndTopItems(t *testing.T) {
	env := setupPostgresEnv(t)
	menu := env.importMenu(t)
	require.Len(t, menu, 3)

	place := func(name string, qty int) uint {
		w := env.do(t, http.MethodPost, "/v1/orders", map[string]any{
			"mode": "Takeaway", "payment_method": "Card",
			"cart": []map[string]any{{"item_name": name, "quantity": qty, "unit_price": "20", "tax_percent": "5"}},
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		return decode[dto.PlaceOrderResponse](t, w).OrderID
	}
	id := place("Tea", 3)
	place("Coffee", 5)

	w := env.do(t, http.MethodGet, fmt.Sprintf("/v1/orders/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	order := decode[dto.OrderResponse](t, w)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "63.00", order.Order.GrandTotal.StringFixed(2))

	w = env.do(t, http.MethodGet, "/v1/reports/top-items?n=1", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, []dto.ItemPopularity{{ItemName: "Coffee", Quantity: 5}}, decode[[]dto.ItemPopularity](t, w))

	w = env.do(t, http.MethodGet, "/v1/reports/summary?period=weekly", nil)
	require.Equal(t, http.StatusOK, w.Code)
	summary := decode[[]dto.PeriodSummary](t, w)
	require.Len(t, summary, 1)
	assert.Equal(t, 2, summary[0].OrderCount)
}
