package service

import (
	"context"
	"crimson-store/internal/dto"
	"fmt"
)

type Tab string

const (
	TabHome   Tab = "home"
	TabRanks  Tab = "ranks"
	TabCrates Tab = "crates"
	TabOrders Tab = "orders"
)

func (t Tab) valid() bool {
	switch t {
	case TabHome, TabRanks, TabCrates, TabOrders:
		return true
	}
	return false
}

// SetTab switches the page. The orders tab is only reachable as admin.
func (s *storeServiceImpl) SetTab(ctx context.Context, tab string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := Tab(tab)
	if !t.valid() {
		return fieldError("tab", "Unknown tab.")
	}
	if t == TabOrders {
		if err := s.requireAdmin(ctx); err != nil {
			return err
		}
	}

	s.activeTab = t
	return nil
}

func (s *storeServiceImpl) View(ctx context.Context) (*dto.StoreView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	admin, err := s.sessionRepo.IsAdmin(ctx)
	if err != nil {
		return nil, fmt.Errorf("load admin flag: %w", err)
	}

	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	board, err := s.leaderboard(ctx)
	if err != nil {
		return nil, err
	}

	// orders renders only while the admin flag is set
	tab := s.activeTab
	if tab == TabOrders && !admin {
		tab = TabHome
	}

	view := &dto.StoreView{
		StoreName:       s.opts.Name,
		DiscordURL:      s.opts.DiscordURL,
		PaymentLogoURL:  paymentLogoURL,
		ActiveTab:       string(tab),
		User:            dto.NewProfile(user),
		Registering:     s.registeringEmail != "",
		IsAdmin:         admin,
		AdminDialogOpen: s.adminDialogOpen,
		Leaderboard:     *board,
		Cart:            *s.cartView(),
		Purchase: dto.PurchaseDialog{
			Open:  s.purchase.IsOpen(),
			Error: s.purchase.Error(),
		},
	}
	if item, ok := s.purchase.Item(); ok {
		view.Purchase.Item = &item
	}

	if admin {
		orders, err := s.orderRepo.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("load orders: %w", err)
		}
		count := len(orders)
		view.OrdersCount = &count
	}

	return view, nil
}
