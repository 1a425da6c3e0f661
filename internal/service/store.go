package service

import (
	"context"
	"crimson-store/internal/dto"
	"crimson-store/internal/model"
	"crimson-store/internal/repository"
	"log/slog"
	"sync"
	"time"
)

const paymentLogoURL = "https://www.paypalobjects.com/webstatic/mktg/logo/pp_cc_mark_74x46.jpg"

type StoreService interface {
	Catalog(itemType string) ([]model.CatalogItem, error)

	OpenPurchase(itemType, itemName string) (model.CatalogItem, error)
	ClosePurchase()
	SubmitPurchase(ctx context.Context, ign, email string) (*model.Order, error)

	Login(ctx context.Context, email string) (*dto.LoginResponse, error)
	Register(ctx context.Context, nickname string) (*model.UserProfile, error)
	CancelRegistration()
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*model.UserProfile, error)

	OpenAdminDialog()
	CloseAdminDialog()
	AdminLogin(ctx context.Context, password string) error
	AdminLogout(ctx context.Context) error
	IsAdmin(ctx context.Context) (bool, error)

	ListOrders(ctx context.Context, filter model.OrderFilter) ([]*model.Order, error)
	DeleteOrder(ctx context.Context, orderID string) error

	Leaderboard(ctx context.Context) (*dto.Leaderboard, error)

	Cart() *dto.Cart
	AddToCart(itemType, itemName string) (*dto.Cart, error)
	RemoveFromCart(itemName string) *dto.Cart
	ClearCart()

	SetTab(ctx context.Context, tab string) error
	View(ctx context.Context) (*dto.StoreView, error)
}

type StoreOptions struct {
	Name          string
	DiscordURL    string
	AdminPassword string
}

// storeServiceImpl is the single storefront: one session, one admin flag,
// one set of dialogs. Every operation runs under mu, one at a time.
type storeServiceImpl struct {
	mu sync.Mutex

	opts        StoreOptions
	logger      *slog.Logger
	now         func() time.Time
	catalogRepo repository.CatalogRepository
	orderRepo   repository.OrderRepository
	profileRepo repository.ProfileRepository
	sessionRepo repository.SessionRepository

	activeTab        Tab
	purchase         PurchaseModal
	adminDialogOpen  bool
	registeringEmail string
	cart             []model.CartItem
}

func NewStoreService(
	opts StoreOptions,
	logger *slog.Logger,
	catalogRepo repository.CatalogRepository,
	orderRepo repository.OrderRepository,
	profileRepo repository.ProfileRepository,
	sessionRepo repository.SessionRepository,
) StoreService {
	return newStoreService(opts, logger, time.Now, catalogRepo, orderRepo, profileRepo, sessionRepo)
}

func newStoreService(
	opts StoreOptions,
	logger *slog.Logger,
	now func() time.Time,
	catalogRepo repository.CatalogRepository,
	orderRepo repository.OrderRepository,
	profileRepo repository.ProfileRepository,
	sessionRepo repository.SessionRepository,
) *storeServiceImpl {
	return &storeServiceImpl{
		opts:        opts,
		logger:      logger,
		now:         now,
		catalogRepo: catalogRepo,
		orderRepo:   orderRepo,
		profileRepo: profileRepo,
		sessionRepo: sessionRepo,
		activeTab:   TabHome,
	}
}

func (s *storeServiceImpl) Catalog(itemType string) ([]model.CatalogItem, error) {
	t := model.ItemType(itemType)
	if !t.Valid() {
		return nil, fieldError("item_type", "Unknown item type.")
	}
	return s.catalogRepo.GetByType(t), nil
}

func (s *storeServiceImpl) findItem(itemType, itemName string) (model.CatalogItem, error) {
	item, ok := s.catalogRepo.Find(model.ItemType(itemType), itemName)
	if !ok {
		return model.CatalogItem{}, ErrUnknownItem
	}
	return item, nil
}

func findProfile(profiles []*model.UserProfile, email string) *model.UserProfile {
	for _, p := range profiles {
		if p.Email == email {
			return p
		}
	}
	return nil
}
