package router

import (
	"time"

	_ "github.com/Pujitha233/restaurant-billing-software/docs"
	"github.com/Pujitha233/restaurant-billing-software/internal/config"
	"github.com/Pujitha233/restaurant-billing-software/internal/handler"
	"github.com/Pujitha233/restaurant-billing-software/internal/infra"
	"github.com/Pujitha233/restaurant-billing-software/internal/metrics"
	"github.com/Pujitha233/restaurant-billing-software/internal/middleware"
	"github.com/Pujitha233/restaurant-billing-software/internal/repository"
	"github.com/Pujitha233/restaurant-billing-software/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB, loc *time.Location) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	m := metrics.New()

	// Global middleware chain (order matters)
	// Metrics and Logger wrap Recovery and ErrorHandler so they see the final status.
	r.Use(middleware.RequestID())
	r.Use(m.GinMiddleware())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())

	// ── Infrastructure ───────────────────────────────────────────────────────
	receiptLog := infra.NewReceiptLog(cfg.ReceiptLogPath)

	// ── Repositories ─────────────────────────────────────────────────────────
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	catalogSvc := service.NewCatalogService(menuRepo)
	orderSvc := service.NewOrderService(orderRepo, receiptLog, time.Now)
	reportSvc := service.NewReportService(orderRepo, loc)

	// ── Handlers ─────────────────────────────────────────────────────────────
	menuH := handler.NewMenuHandler(catalogSvc)
	cartH := handler.NewCartHandler(catalogSvc)
	ordersH := handler.NewOrdersHandler(orderSvc, m, cfg.RestaurantName, cfg.ReceiptPDFPath)
	reportsH := handler.NewReportsHandler(reportSvc, cfg.ReportExportPath)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db))
	r.GET("/metrics", gin.WrapH(m.Handler()))

	v1 := r.Group("/v1")
	{
		v1.GET("/menu", menuH.List)
		v1.POST("/menu/import", menuH.Import)

		cart := v1.Group("/cart")
		{
			cart.POST("/add", cartH.Add)
			cart.POST("/clear", cartH.Clear)
			cart.POST("/remove-last", cartH.RemoveLast)
			cart.POST("/price", cartH.Price)
		}

		v1.POST("/orders", ordersH.Place)
		v1.GET("/orders/:id", ordersH.Get)
		v1.GET("/orders/:id/receipt.pdf", ordersH.ReceiptPDF)

		reports := v1.Group("/reports")
		{
			reports.GET("/summary", reportsH.Summary)
			reports.GET("/summary.csv", reportsH.SummaryCSV)
			reports.GET("/top-items", reportsH.TopItems)
			reports.POST("/export", reportsH.Export)
		}
	}

	// Swagger UI (only in non-production environments)
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
