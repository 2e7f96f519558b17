package handler

import (
	"io"
	"net/http"

	"github.com/Pujitha233/restaurant-billing-software/internal/apierror"
	"github.com/Pujitha233/restaurant-billing-software/internal/service"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct{ svc service.CatalogService }

func NewMenuHandler(svc service.CatalogService) *MenuHandler { return &MenuHandler{svc: svc} }

// List godoc
// @Summary      List the menu
// @Description  Returns every menu item ordered by category then name. Items without a category come last.
// @Tags         menu
// @Produce      json
// @Success      200  {array}  dto.MenuItemResponse
// @Failure      500  {object} apierror.APIError
// @Router       /v1/menu [get]
func (h *MenuHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Import godoc
// @Summary      Replace the menu from CSV
// @Description  Accepts a multipart field named "file" or the CSV as the raw request body.
// @Description  Columns: item_name, price, optional category and gst_percent/tax_percent. One bad row rejects the whole file.
// @Tags         menu
// @Accept       mpfd
// @Accept       text/csv
// @Produce      json
// @Param        file formData file false "Menu CSV"
// @Success      200  {object} dto.MenuImportResponse
// @Failure      400  {object} apierror.APIError
// @Failure      422  {object} apierror.ValidationError
// @Router       /v1/menu/import [post]
func (h *MenuHandler) Import(c *gin.Context) {
	var src io.Reader = c.Request.Body
	if fh, err := c.FormFile("file"); err == nil {
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("cannot read uploaded file"))
			return
		}
		defer f.Close()
		src = f
	}

	resp, err := h.svc.ImportCSV(c.Request.Context(), src)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
