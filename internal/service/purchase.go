package service

import (
	"context"
	"crimson-store/internal/model"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// members buying for their own account pay 90%
var memberDiscount = decimal.RequireFromString("0.9")

func (s *storeServiceImpl) OpenPurchase(itemType, itemName string) (model.CatalogItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.findItem(itemType, itemName)
	if err != nil {
		return model.CatalogItem{}, err
	}

	s.purchase.Open(item)
	return item, nil
}

func (s *storeServiceImpl) ClosePurchase() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purchase.Close()
}

func (s *storeServiceImpl) SubmitPurchase(ctx context.Context, ign, email string) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.purchase.Item()
	if !ok {
		return nil, ErrNoPurchaseInProgress
	}

	var order *model.Order
	err := s.purchase.Submit(ign, email, func(ign, email string) error {
		var err error
		order, err = s.recordPurchase(ctx, item, ign, email)
		return err
	})
	if err != nil {
		s.logger.Debug("purchase rejected", slog.String("item", item.Name), slog.Any("error", err))
		return nil, err
	}

	s.purchase.Close()
	return order, nil
}

// recordPurchase writes the order list, then the profile list.
// The two writes are independent; a failure in the second leaves the order in place.
func (s *storeServiceImpl) recordPurchase(ctx context.Context, item model.CatalogItem, ign, email string) (*model.Order, error) {
	profiles, err := s.profileRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load profiles: %w", err)
	}

	sessionEmail, err := s.sessionRepo.Email(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	price := item.Price
	if sessionEmail != "" {
		if current := findProfile(profiles, sessionEmail); current != nil && current.Email == email {
			price = price.Mul(memberDiscount)
		}
	}

	now := s.now()
	order := &model.Order{
		ID:            newOrderID(now),
		CustomerName:  ign,
		CustomerEmail: email,
		ItemType:      item.Type,
		ItemName:      item.Name,
		Price:         price,
		Status:        model.OrderStatusCompleted,
		CreatedAt:     now,
	}

	orders, err := s.orderRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	orders = append([]*model.Order{order}, orders...)
	if err := s.orderRepo.Save(ctx, orders); err != nil {
		return nil, fmt.Errorf("store order: %w", err)
	}

	if buyer := findProfile(profiles, email); buyer != nil {
		buyer.TotalSpent = buyer.TotalSpent.Add(price)
		if err := s.profileRepo.Save(ctx, profiles); err != nil {
			return nil, fmt.Errorf("store profile spend: %w", err)
		}
	}

	s.logger.Info("purchase recorded",
		slog.String("order_id", order.ID),
		slog.String("item", item.Name),
		slog.String("price", price.String()),
	)
	return order, nil
}

// newOrderID is a base-36 millisecond timestamp plus a random suffix.
// Uniqueness is likely, not checked.
func newOrderID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return strconv.FormatInt(now.UnixMilli(), 36) + "-" + suffix
}
