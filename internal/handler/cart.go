package handler

import (
	"net/http"

	"github.com/Pujitha233/restaurant-billing-software/internal/dto"
	"github.com/Pujitha233/restaurant-billing-software/internal/service"

	"github.com/gin-gonic/gin"
)

// CartHandler is stateless: the client holds the cart and sends it with every
// call, the server returns the updated copy.
type CartHandler struct{ catalog service.CatalogService }

func NewCartHandler(catalog service.CatalogService) *CartHandler {
	return &CartHandler{catalog: catalog}
}

// Add godoc
// @Summary      Add a line to the cart
// @Description  With item_id the line snapshots the menu item's current name, price and tax.
// @Description  Otherwise item_name and unit_price are required.
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body body dto.AddToCartRequest true "Cart and the line to add"
// @Success      200  {object} dto.CartResponse
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Failure      422  {object} apierror.ValidationError
// @Router       /v1/cart/add [post]
func (h *CartHandler) Add(c *gin.Context) {
	var req dto.AddToCartRequest
	if !bindAndValidate(c, &req) {
		return
	}

	cart := service.NewCart(req.Cart)
	if req.ItemID != nil {
		item, err := h.catalog.FindByID(c.Request.Context(), *req.ItemID)
		if err != nil {
			respondError(c, err)
			return
		}
		if err := cart.AddMenuItem(*item, req.Quantity); err != nil {
			respondError(c, err)
			return
		}
	} else {
		if req.UnitPrice == nil {
			respondError(c, &service.ValidationError{Field: "unit_price", Message: "is required"})
			return
		}
		if err := cart.Add(dto.CartLine{
			ItemName:   req.ItemName,
			Quantity:   req.Quantity,
			UnitPrice:  *req.UnitPrice,
			TaxPercent: req.TaxPercent,
		}); err != nil {
			respondError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, dto.CartResponse{Cart: cart.Lines()})
}

// Clear godoc
// @Summary      Empty the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body body dto.CartRequest true "Current cart"
// @Success      200  {object} dto.CartResponse
// @Router       /v1/cart/clear [post]
func (h *CartHandler) Clear(c *gin.Context) {
	var req dto.CartRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cart := service.NewCart(req.Cart)
	cart.Clear()
	c.JSON(http.StatusOK, dto.CartResponse{Cart: cart.Lines()})
}

// RemoveLast godoc
// @Summary      Remove the most recent line
// @Description  An empty cart is returned unchanged.
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body body dto.CartRequest true "Current cart"
// @Success      200  {object} dto.CartResponse
// @Router       /v1/cart/remove-last [post]
func (h *CartHandler) RemoveLast(c *gin.Context) {
	var req dto.CartRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cart := service.NewCart(req.Cart)
	cart.RemoveLast()
	c.JSON(http.StatusOK, dto.CartResponse{Cart: cart.Lines()})
}

// Price godoc
// @Summary      Price the cart
// @Description  Computes line and bill totals without recording anything.
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body body dto.PriceCartRequest true "Cart, flat tax and discount"
// @Success      200  {object} dto.CartTotals
// @Failure      422  {object} apierror.ValidationError
// @Router       /v1/cart/price [post]
func (h *CartHandler) Price(c *gin.Context) {
	var req dto.PriceCartRequest
	if !bindAndValidate(c, &req) {
		return
	}
	totals, err := service.PriceCart(req.Cart, req.FlatTaxPercent, req.DiscountPercent)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, totals)
}
