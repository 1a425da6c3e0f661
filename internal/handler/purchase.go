package handler

import (
	"crimson-store/internal/dto"
	"crimson-store/internal/service"
	"net/http"

	"github.com/labstack/echo/v4"
)

type PurchaseHandler struct {
	storeService service.StoreService
}

func NewPurchaseHandler(storeService service.StoreService) *PurchaseHandler {
	return &PurchaseHandler{
		storeService: storeService,
	}
}

func (h *PurchaseHandler) GetCatalog(c echo.Context) error {
	items, err := h.storeService.Catalog(c.Param("type"))
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, items)
}

func (h *PurchaseHandler) Open(c echo.Context) error {
	var req dto.OpenPurchaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	item, err := h.storeService.OpenPurchase(req.ItemType, req.ItemName)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, item)
}

func (h *PurchaseHandler) Close(c echo.Context) error {
	h.storeService.ClosePurchase()
	return c.NoContent(http.StatusNoContent)
}

func (h *PurchaseHandler) Submit(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.PurchaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	order, err := h.storeService.SubmitPurchase(ctx, req.IGN, req.Email)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, order)
}
