package router_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Pujitha233/restaurant-billing-software/internal/apierror"
	"github.com/Pujitha233/restaurant-billing-software/internal/config"
	"github.com/Pujitha233/restaurant-billing-software/internal/dto"
	"github.com/Pujitha233/restaurant-billing-software/internal/infra"
	"github.com/Pujitha233/restaurant-billing-software/internal/router"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

type testEnv struct {
	engine *gin.Engine
	cfg    *config.Config
	db     *gorm.DB
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()

	cfg := &config.Config{
		Port:             8000,
		Env:              "test",
		LogLevel:         "error",
		DatabaseURL:      filepath.Join(dir, "restaurant.db"),
		RestaurantName:   "Spice Route",
		Timezone:         "UTC",
		ReceiptLogPath:   filepath.Join(dir, "data", "sample_bills.json"),
		ReceiptPDFPath:   filepath.Join(dir, "data", "receipts"),
		ReportExportPath: filepath.Join(dir, "data", "sales_report.csv"),
	}
	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return &testEnv{engine: router.New(cfg, db, time.UTC), cfg: cfg, db: db}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

const menuCSV = "item_name,category,price,gst_percent\n" +
	"Masala Chai,Beverages,25,5\n" +
	"Veg Biryani,Mains,180,12\n" +
	"Plain Naan,,30,\n"

func (e *testEnv) importMenu(t *testing.T) []dto.MenuItemResponse {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "menu.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte(menuCSV))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/menu/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, dto.MenuImportResponse{TotalRows: 3, Imported: 3}, decode[dto.MenuImportResponse](t, w))

	w = e.do(t, http.MethodGet, "/v1/menu", nil)
	require.Equal(t, http.StatusOK, w.Code)
	return decode[[]dto.MenuItemResponse](t, w)
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	env := setupTestEnv(t)
	w := env.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestMenuImport_RawBodyAndRejection(t *testing.T) {
	env := setupTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/menu/import", strings.NewReader(menuCSV))
	req.Header.Set("Content-Type", "text/csv")
	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	req = httptest.NewRequest(http.MethodPost, "/v1/menu/import", strings.NewReader("item_name,price\nTea,-4\n"))
	req.Header.Set("Content-Type", "text/csv")
	w = httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	menu := decode[[]dto.MenuItemResponse](t, env.do(t, http.MethodGet, "/v1/menu", nil))
	assert.Len(t, menu, 3, "rejected import keeps the previous menu")
}

func TestCartFlow(t *testing.T) {
	env := setupTestEnv(t)
	menu := env.importMenu(t)

	// Beverages, Mains, then uncategorised.
	require.Len(t, menu, 3)
	assert.Equal(t, "Masala Chai", menu[0].ItemName)
	assert.Equal(t, "Plain Naan", menu[2].ItemName)
	assert.Nil(t, menu[2].Category)

	w := env.do(t, http.MethodPost, "/v1/cart/add", map[string]any{"item_id": menu[1].ID, "quantity": 2})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	cart := decode[dto.CartResponse](t, w).Cart
	require.Len(t, cart, 1)
	assert.Equal(t, "Veg Biryani", cart[0].ItemName)

	w = env.do(t, http.MethodPost, "/v1/cart/add", map[string]any{
		"cart": cart, "item_name": "Chef Special", "quantity": 1, "unit_price": "99.50",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	cart = decode[dto.CartResponse](t, w).Cart
	require.Len(t, cart, 2)

	w = env.do(t, http.MethodPost, "/v1/cart/remove-last", map[string]any{"cart": cart})
	require.Equal(t, http.StatusOK, w.Code)
	cart = decode[dto.CartResponse](t, w).Cart
	require.Len(t, cart, 1)

	w = env.do(t, http.MethodPost, "/v1/cart/price", map[string]any{"cart": cart, "discount_percent": "10"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	totals := decode[dto.CartTotals](t, w)
	assert.Equal(t, "360.00", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "43.20", totals.TaxTotal.StringFixed(2))
	assert.Equal(t, "40.32", totals.DiscountAmount.StringFixed(2))
	assert.Equal(t, "362.88", totals.GrandTotal.StringFixed(2))

	w = env.do(t, http.MethodPost, "/v1/cart/clear", map[string]any{"cart": cart})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[dto.CartResponse](t, w).Cart)
}

func TestCartAdd_Errors(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodPost, "/v1/cart/add", map[string]any{"item_id": 404, "quantity": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodPost, "/v1/cart/add", map[string]any{"item_name": "Tea", "quantity": 0, "unit_price": "10"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = env.do(t, http.MethodPost, "/v1/cart/add", map[string]any{"item_name": "Tea", "quantity": 1})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	verr := decode[apierror.ValidationError](t, w)
	assert.Equal(t, "Validation error", verr.Detail)
	assert.Equal(t, map[string]string{"unit_price": "is required"}, verr.Fields)

	w = env.do(t, http.MethodPost, "/v1/cart/price", map[string]any{"cart": []any{}, "discount_percent": "120"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestPlaceOrderAndReports(t *testing.T) {
	env := setupTestEnv(t)
	cart := []map[string]any{
		{"item_name": "Paneer Tikka", "quantity": 2, "unit_price": "100", "tax_percent": "5"},
	}

	w := env.do(t, http.MethodPost, "/v1/orders", map[string]any{
		"mode": "Dine-In", "payment_method": "Cash", "cart": cart, "discount_percent": "10",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	placed := decode[dto.PlaceOrderResponse](t, w)
	assert.NotZero(t, placed.OrderID)
	assert.Equal(t, "189.00", placed.Totals.GrandTotal.StringFixed(2))

	w = env.do(t, http.MethodPost, "/v1/orders", map[string]any{
		"mode": "Takeaway", "payment_method": "UPI", "cart": cart,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Fetch
	w = env.do(t, http.MethodGet, fmt.Sprintf("/v1/orders/%d", placed.OrderID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	order := decode[dto.OrderResponse](t, w)
	assert.Equal(t, "Dine-In", order.Order.Mode)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, "210.00", order.Items[0].LineTotal.StringFixed(2))

	// Receipt mirror holds both bills.
	data, err := os.ReadFile(env.cfg.ReceiptLogPath)
	require.NoError(t, err)
	var bills []dto.OrderResponse
	require.NoError(t, json.Unmarshal(data, &bills))
	assert.Len(t, bills, 2)

	// Receipt PDF
	w = env.do(t, http.MethodGet, fmt.Sprintf("/v1/orders/%d/receipt.pdf", placed.OrderID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))

	// Reports
	w = env.do(t, http.MethodGet, "/v1/reports/summary?period=daily", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	summary := decode[[]dto.PeriodSummary](t, w)
	require.Len(t, summary, 1)
	assert.Equal(t, 2, summary[0].OrderCount)
	assert.Equal(t, "399.00", summary[0].TotalSum.StringFixed(2))

	w = env.do(t, http.MethodGet, "/v1/reports/top-items?n=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []dto.ItemPopularity{{ItemName: "Paneer Tikka", Quantity: 4}}, decode[[]dto.ItemPopularity](t, w))

	w = env.do(t, http.MethodGet, "/v1/reports/summary.csv?period=monthly", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), "period,order_count,"))
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")

	w = env.do(t, http.MethodPost, "/v1/reports/export?period=weekly", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.FileExists(t, env.cfg.ReportExportPath)

	w = env.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `billing_orders_placed_total{mode="Dine-In",payment_method="Cash"} 1`)
}

func TestPlaceOrder_Errors(t *testing.T) {
	env := setupTestEnv(t)
	cart := []map[string]any{{"item_name": "Tea", "quantity": 1, "unit_price": "20"}}

	w := env.do(t, http.MethodPost, "/v1/orders", map[string]any{"mode": "Delivery", "payment_method": "Cash", "cart": cart})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = env.do(t, http.MethodPost, "/v1/orders", map[string]any{"mode": "Dine-In", "payment_method": "Cash", "cart": []any{}})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = env.do(t, http.MethodPost, "/v1/orders", map[string]any{
		"mode": "Dine-In", "payment_method": "Cash",
		"cart": []map[string]any{{"item_name": "Tea", "quantity": 1, "unit_price": "9.999"}},
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	assert.Contains(t, decode[apierror.ValidationError](t, w).Fields, "cart[0].unit_price")

	w = env.do(t, http.MethodPost, "/v1/orders", map[string]any{
		"mode": "Dine-In", "payment_method": "Cash",
		"cart": []map[string]any{{"item_name": "Tea", "quantity": 1, "unit_price": "20", "tax_percent": "1000"}},
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	assert.Contains(t, decode[apierror.ValidationError](t, w).Fields, "cart[0].tax_percent")

	w = env.do(t, http.MethodGet, "/v1/orders/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodGet, "/v1/orders/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodGet, "/v1/reports/summary?period=yearly", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestMetrics_RecordFinalStatus(t *testing.T) {
	env := setupTestEnv(t)
	require.NoError(t, env.db.Exec("DROP TABLE menu").Error)

	w := env.do(t, http.MethodGet, "/v1/menu", nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	w = env.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `billing_http_requests_total{method="GET",route="/v1/menu",status="500"} 1`)
	assert.NotContains(t, body, `billing_http_requests_total{method="GET",route="/v1/menu",status="200"}`)
}

func TestSwaggerUI(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodGet, "/swagger/index.html", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/swagger/doc.json", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var doc struct {
		Paths map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Contains(t, doc.Paths, "/v1/orders")
	assert.Contains(t, doc.Paths, "/v1/cart/price")
}

func TestSwaggerUI_HiddenInProduction(t *testing.T) {
	env := setupTestEnv(t)
	env.cfg.Env = "production"
	engine := router.New(env.cfg, env.db, time.UTC)
	t.Cleanup(func() { gin.SetMode(gin.TestMode) })

	req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
