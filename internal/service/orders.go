package service

import (
	"context"
	"crimson-store/internal/model"
	"fmt"
	"log/slog"
	"strings"
)

func (s *storeServiceImpl) ListOrders(ctx context.Context, filter model.OrderFilter) ([]*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireAdmin(ctx); err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	return FilterOrders(orders, filter), nil
}

// FilterOrders keeps orders whose customer name, email or item name contains
// the query (case-insensitive) and whose status matches exactly.
func FilterOrders(orders []*model.Order, filter model.OrderFilter) []*model.Order {
	query := strings.ToLower(strings.TrimSpace(filter.Query))
	status := filter.Status
	if status == "all" {
		status = ""
	}

	out := make([]*model.Order, 0, len(orders))
	for _, o := range orders {
		if status != "" && o.Status != status {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(o.CustomerName), query) &&
			!strings.Contains(strings.ToLower(o.CustomerEmail), query) &&
			!strings.Contains(strings.ToLower(o.ItemName), query) {
			continue
		}
		out = append(out, o)
	}
	return out
}

func (s *storeServiceImpl) DeleteOrder(ctx context.Context, orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireAdmin(ctx); err != nil {
		return err
	}

	orders, err := s.orderRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load orders: %w", err)
	}

	kept := make([]*model.Order, 0, len(orders))
	for _, o := range orders {
		if o.ID != orderID {
			kept = append(kept, o)
		}
	}
	if len(kept) == len(orders) {
		return ErrOrderNotFound
	}

	if err := s.orderRepo.Save(ctx, kept); err != nil {
		return fmt.Errorf("store orders: %w", err)
	}

	s.logger.Info("order deleted", slog.String("order_id", orderID))
	return nil
}
