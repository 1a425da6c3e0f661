package handler

import (
	"crimson-store/internal/dto"
	"crimson-store/internal/service"
	"net/http"

	"github.com/labstack/echo/v4"
)

type ViewHandler struct {
	storeService service.StoreService
}

func NewViewHandler(storeService service.StoreService) *ViewHandler {
	return &ViewHandler{
		storeService: storeService,
	}
}

func (h *ViewHandler) GetView(c echo.Context) error {
	ctx := c.Request().Context()

	view, err := h.storeService.View(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, view)
}

func (h *ViewHandler) SetTab(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.TabRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	if err := h.storeService.SetTab(ctx, req.Tab); err != nil {
		return toHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *ViewHandler) GetCart(c echo.Context) error {
	return c.JSON(http.StatusOK, h.storeService.Cart())
}

func (h *ViewHandler) AddToCart(c echo.Context) error {
	var req dto.CartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	cart, err := h.storeService.AddToCart(req.ItemType, req.ItemName)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, cart)
}

func (h *ViewHandler) RemoveFromCart(c echo.Context) error {
	return c.JSON(http.StatusOK, h.storeService.RemoveFromCart(c.Param("name")))
}

func (h *ViewHandler) ClearCart(c echo.Context) error {
	h.storeService.ClearCart()
	return c.NoContent(http.StatusNoContent)
}
