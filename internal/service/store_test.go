package service

import (
	"context"
	"crimson-store/internal/model"
	"crimson-store/internal/repository"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

const testAdminPassword = "letmein"

type testStore struct {
	*storeServiceImpl
	kv       repository.KVStore
	orders   repository.OrderRepository
	profiles repository.ProfileRepository
	session  repository.SessionRepository
}

func newTestStore(t *testing.T) *testStore {
	t.Helper()

	kv := repository.NewMemoryKVStore()
	orders := repository.NewOrderRepository(kv)
	profiles := repository.NewProfileRepository(kv)
	session := repository.NewSessionRepository(kv)

	clock := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	now := func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}

	svc := newStoreService(
		StoreOptions{Name: "CrimsonMC", AdminPassword: testAdminPassword},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		now,
		repository.NewCatalogRepository(),
		orders, profiles, session,
	)
	return &testStore{storeServiceImpl: svc, kv: kv, orders: orders, profiles: profiles, session: session}
}

func (ts *testStore) seedProfiles(t *testing.T, profiles ...*model.UserProfile) {
	t.Helper()
	if err := ts.profiles.Save(context.Background(), profiles); err != nil {
		t.Fatalf("seed profiles: %v", err)
	}
}

func (ts *testStore) seedOrders(t *testing.T, orders ...*model.Order) {
	t.Helper()
	if err := ts.orders.Save(context.Background(), orders); err != nil {
		t.Fatalf("seed orders: %v", err)
	}
}

func (ts *testStore) storedOrders(t *testing.T) []*model.Order {
	t.Helper()
	orders, err := ts.orders.Load(context.Background())
	if err != nil {
		t.Fatalf("load orders: %v", err)
	}
	return orders
}

func (ts *testStore) storedProfiles(t *testing.T) []*model.UserProfile {
	t.Helper()
	profiles, err := ts.profiles.Load(context.Background())
	if err != nil {
		t.Fatalf("load profiles: %v", err)
	}
	return profiles
}

func (ts *testStore) buy(t *testing.T, rank, ign, email string) *model.Order {
	t.Helper()
	if _, err := ts.OpenPurchase("rank", rank); err != nil {
		t.Fatalf("open purchase %s: %v", rank, err)
	}
	order, err := ts.SubmitPurchase(context.Background(), ign, email)
	if err != nil {
		t.Fatalf("submit purchase: %v", err)
	}
	return order
}

func (ts *testStore) signUp(t *testing.T, email, nickname string) {
	t.Helper()
	ctx := context.Background()
	resp, err := ts.Login(ctx, email)
	if err != nil || !resp.NeedsRegistration {
		t.Fatalf("login %s = %+v, %v; want registration", email, resp, err)
	}
	if _, err := ts.Register(ctx, nickname); err != nil {
		t.Fatalf("register: %v", err)
	}
}

func profile(email, nickname, spent string) *model.UserProfile {
	return &model.UserProfile{Email: email, Nickname: nickname, TotalSpent: decimal.RequireFromString(spent)}
}

func TestCatalog(t *testing.T) {
	ts := newTestStore(t)

	ranks, err := ts.Catalog("rank")
	if err != nil || len(ranks) != 5 {
		t.Fatalf("Catalog(rank) = %d items, %v", len(ranks), err)
	}
	crates, err := ts.Catalog("crate")
	if err != nil || len(crates) != 0 {
		t.Fatalf("Catalog(crate) = %d items, %v", len(crates), err)
	}
	if _, err := ts.Catalog("pet"); !errors.Is(err, ErrValidation) {
		t.Fatalf("Catalog(pet) err = %v, want validation", err)
	}
}

func TestCartAccumulates(t *testing.T) {
	ts := newTestStore(t)

	if _, err := ts.AddToCart("rank", "Knight"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := ts.AddToCart("rank", "Knight"); err != nil {
		t.Fatalf("add again: %v", err)
	}
	cart, err := ts.AddToCart("rank", "Emperor")
	if err != nil {
		t.Fatalf("add emperor: %v", err)
	}

	if len(cart.Items) != 2 || cart.Items[0].Quantity != 2 {
		t.Fatalf("cart items = %+v", cart.Items)
	}
	if cart.Count != 3 || !cart.Total.Equal(decimal.NewFromInt(17)) {
		t.Errorf("count %d total %s, want 3 and 17", cart.Count, cart.Total)
	}

	if _, err := ts.AddToCart("rank", "Peasant"); !errors.Is(err, ErrUnknownItem) {
		t.Errorf("unknown item err = %v", err)
	}

	cart = ts.RemoveFromCart("Knight")
	if len(cart.Items) != 1 || cart.Items[0].Name != "Emperor" {
		t.Errorf("after remove: %+v", cart.Items)
	}

	ts.ClearCart()
	if c := ts.Cart(); c.Count != 0 || len(c.Items) != 0 || !c.Total.IsZero() {
		t.Errorf("after clear: %+v", c)
	}
}

func TestSetTab(t *testing.T) {
	ctx := context.Background()
	ts := newTestStore(t)

	if err := ts.SetTab(ctx, "ranks"); err != nil {
		t.Fatalf("SetTab(ranks): %v", err)
	}
	if err := ts.SetTab(ctx, "orders"); !errors.Is(err, ErrAdminRequired) {
		t.Fatalf("SetTab(orders) as guest err = %v", err)
	}
	if err := ts.SetTab(ctx, "shop"); !errors.Is(err, ErrValidation) {
		t.Fatalf("SetTab(shop) err = %v", err)
	}

	view, err := ts.View(ctx)
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if view.ActiveTab != "ranks" {
		t.Errorf("active tab = %s, want ranks", view.ActiveTab)
	}
	if view.OrdersCount != nil {
		t.Error("orders count must be hidden from guests")
	}
}

func TestViewReflectsState(t *testing.T) {
	ctx := context.Background()
	ts := newTestStore(t)
	ts.signUp(t, "steve@mc.net", "Steve")
	ts.buy(t, "Duke", "Steve", "steve@mc.net")
	if err := ts.AdminLogin(ctx, testAdminPassword); err != nil {
		t.Fatalf("admin login: %v", err)
	}
	if _, err := ts.OpenPurchase("rank", "King"); err != nil {
		t.Fatalf("open: %v", err)
	}

	view, err := ts.View(ctx)
	if err != nil {
		t.Fatalf("View: %v", err)
	}

	if view.User == nil || view.User.Nickname != "Steve" {
		t.Errorf("user = %+v", view.User)
	}
	if !view.IsAdmin || view.OrdersCount == nil || *view.OrdersCount != 1 {
		t.Errorf("admin view: is_admin %v count %v", view.IsAdmin, view.OrdersCount)
	}
	if view.Leaderboard.TopCustomer == nil || view.Leaderboard.TopCustomer.Nickname != "Steve" {
		t.Errorf("top customer = %+v", view.Leaderboard.TopCustomer)
	}
	if !view.Purchase.Open || view.Purchase.Item == nil || view.Purchase.Item.Name != "King" {
		t.Errorf("purchase dialog = %+v", view.Purchase)
	}
	if view.PaymentLogoURL == "" || view.StoreName != "CrimsonMC" {
		t.Errorf("static view fields missing: %+v", view)
	}
}
