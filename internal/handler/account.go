package handler

import (
	"crimson-store/internal/dto"
	"crimson-store/internal/service"
	"net/http"

	"github.com/labstack/echo/v4"
)

type AccountHandler struct {
	storeService service.StoreService
}

func NewAccountHandler(storeService service.StoreService) *AccountHandler {
	return &AccountHandler{
		storeService: storeService,
	}
}

func (h *AccountHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	resp, err := h.storeService.Login(ctx, req.Email)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *AccountHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	profile, err := h.storeService.Register(ctx, req.Nickname)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, dto.NewProfile(profile))
}

func (h *AccountHandler) CancelRegistration(c echo.Context) error {
	h.storeService.CancelRegistration()
	return c.NoContent(http.StatusNoContent)
}

func (h *AccountHandler) Logout(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.storeService.Logout(ctx); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *AccountHandler) GetLeaderboard(c echo.Context) error {
	ctx := c.Request().Context()

	board, err := h.storeService.Leaderboard(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, board)
}
