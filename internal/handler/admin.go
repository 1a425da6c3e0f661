package handler

import (
	"crimson-store/internal/dto"
	"crimson-store/internal/model"
	"crimson-store/internal/service"
	"net/http"

	"github.com/labstack/echo/v4"
)

type AdminHandler struct {
	storeService service.StoreService
}

func NewAdminHandler(storeService service.StoreService) *AdminHandler {
	return &AdminHandler{
		storeService: storeService,
	}
}

func (h *AdminHandler) OpenDialog(c echo.Context) error {
	h.storeService.OpenAdminDialog()
	return c.NoContent(http.StatusNoContent)
}

func (h *AdminHandler) CloseDialog(c echo.Context) error {
	h.storeService.CloseAdminDialog()
	return c.NoContent(http.StatusNoContent)
}

func (h *AdminHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	if err := h.storeService.AdminLogin(ctx, req.Password); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, map[string]bool{
		"is_admin": true,
	})
}

func (h *AdminHandler) Logout(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.storeService.AdminLogout(ctx); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *AdminHandler) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()

	orders, err := h.storeService.ListOrders(ctx, model.OrderFilter{
		Query:  c.QueryParam("q"),
		Status: c.QueryParam("status"),
	})
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.OrderList{
		Orders: orders,
		Total:  len(orders),
	})
}

func (h *AdminHandler) DeleteOrder(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.storeService.DeleteOrder(ctx, c.Param("id")); err != nil {
		return toHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
