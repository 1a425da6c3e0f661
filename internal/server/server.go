package server

import (
	"context"
	"crimson-store/internal/handler"
	appmiddleware "crimson-store/internal/middleware"
	"crimson-store/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo            *echo.Echo
	storeService    service.StoreService
	viewHandler     *handler.ViewHandler
	purchaseHandler *handler.PurchaseHandler
	accountHandler  *handler.AccountHandler
	adminHandler    *handler.AdminHandler
}

func NewServer(storeService service.StoreService) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:            e,
		storeService:    storeService,
		viewHandler:     handler.NewViewHandler(storeService),
		purchaseHandler: handler.NewPurchaseHandler(storeService),
		accountHandler:  handler.NewAccountHandler(storeService),
		adminHandler:    handler.NewAdminHandler(storeService),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	api.GET("/view", s.viewHandler.GetView)
	api.PUT("/view/tab", s.viewHandler.SetTab)
	api.GET("/catalog/:type", s.purchaseHandler.GetCatalog)
	api.GET("/leaderboard", s.accountHandler.GetLeaderboard)

	// -------- cart --------
	api.GET("/cart", s.viewHandler.GetCart)
	api.POST("/cart", s.viewHandler.AddToCart)
	api.DELETE("/cart", s.viewHandler.ClearCart)
	api.DELETE("/cart/:name", s.viewHandler.RemoveFromCart)

	// -------- purchase dialog --------
	purchase := api.Group("/purchase")
	purchase.POST("", s.purchaseHandler.Submit)
	purchase.POST("/open", s.purchaseHandler.Open)
	purchase.POST("/close", s.purchaseHandler.Close)

	// -------- customer account --------
	account := api.Group("/account")
	account.POST("/login", s.accountHandler.Login)
	account.POST("/register", s.accountHandler.Register)
	account.POST("/register/cancel", s.accountHandler.CancelRegistration)
	account.POST("/logout", s.accountHandler.Logout)

	// -------- admin --------
	admin := api.Group("/admin")
	admin.POST("/dialog", s.adminHandler.OpenDialog)
	admin.POST("/dialog/close", s.adminHandler.CloseDialog)
	admin.POST("/login", s.adminHandler.Login)
	admin.POST("/logout", s.adminHandler.Logout)

	orders := admin.Group("/orders", appmiddleware.AdminOnly(s.storeService))
	orders.GET("", s.adminHandler.ListOrders)
	orders.DELETE("/:id", s.adminHandler.DeleteOrder)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
