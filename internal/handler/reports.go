package handler

import (
	"bytes"
	"net/http"

	"github.com/Pujitha233/restaurant-billing-software/internal/dto"
	"github.com/Pujitha233/restaurant-billing-software/internal/infra"
	"github.com/Pujitha233/restaurant-billing-software/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ReportsHandler struct {
	svc        service.ReportService
	exportPath string
}

func NewReportsHandler(svc service.ReportService, exportPath string) *ReportsHandler {
	return &ReportsHandler{svc: svc, exportPath: exportPath}
}

func (h *ReportsHandler) bindQuery(c *gin.Context) (dto.ReportQuery, bool) {
	var q dto.ReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, &service.ValidationError{Field: "query", Message: err.Error()})
		return q, false
	}
	return q, validateStruct(c, &q)
}

// Summary godoc
// @Summary      Sales summary per period
// @Description  Aggregates orders per day, ISO week or month in the configured timezone.
// @Tags         reports
// @Produce      json
// @Param        period query string false "daily, weekly or monthly" default(daily)
// @Success      200  {array}  dto.PeriodSummary
// @Failure      422  {object} apierror.ValidationError
// @Router       /v1/reports/summary [get]
func (h *ReportsHandler) Summary(c *gin.Context) {
	q, ok := h.bindQuery(c)
	if !ok {
		return
	}
	rows, err := h.svc.Summarize(c.Request.Context(), q.Period)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// TopItems godoc
// @Summary      Best-selling items
// @Description  Ranks item names by total quantity sold.
// @Tags         reports
// @Produce      json
// @Param        n query int false "How many items" default(10)
// @Success      200  {array}  dto.ItemPopularity
// @Failure      422  {object} apierror.ValidationError
// @Router       /v1/reports/top-items [get]
func (h *ReportsHandler) TopItems(c *gin.Context) {
	q, ok := h.bindQuery(c)
	if !ok {
		return
	}
	items, err := h.svc.TopItems(c.Request.Context(), q.N)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// SummaryCSV godoc
// @Summary      Sales summary as CSV
// @Tags         reports
// @Produce      text/csv
// @Param        period query string false "daily, weekly or monthly" default(daily)
// @Success      200  {file}   file
// @Failure      422  {object} apierror.ValidationError
// @Router       /v1/reports/summary.csv [get]
func (h *ReportsHandler) SummaryCSV(c *gin.Context) {
	q, ok := h.bindQuery(c)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := h.svc.ExportSummaryCSV(c.Request.Context(), q.Period, &buf); err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="sales_report.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// Export godoc
// @Summary      Write the sales summary to disk
// @Description  Writes the summary to the configured report file.
// @Tags         reports
// @Produce      json
// @Param        period query string false "daily, weekly or monthly" default(daily)
// @Success      200  {object} dto.ReportExportResponse
// @Failure      422  {object} apierror.ValidationError
// @Router       /v1/reports/export [post]
func (h *ReportsHandler) Export(c *gin.Context) {
	q, ok := h.bindQuery(c)
	if !ok {
		return
	}
	rows, err := h.svc.Summarize(c.Request.Context(), q.Period)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := infra.WriteSummaryCSVFile(h.exportPath, rows); err != nil {
		respondError(c, err)
		return
	}
	log.Info().Str("path", h.exportPath).Str("period", q.Period).Int("periods", len(rows)).Msg("sales report exported")
	c.JSON(http.StatusOK, dto.ReportExportResponse{Path: h.exportPath, Period: q.Period, Periods: len(rows)})
}
