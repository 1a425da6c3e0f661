package service

import (
	"crimson-store/internal/dto"
	"crimson-store/internal/model"

	"github.com/shopspring/decimal"
)

func (s *storeServiceImpl) Cart() *dto.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cartView()
}

// AddToCart bumps the quantity when the item is already in the cart.
func (s *storeServiceImpl) AddToCart(itemType, itemName string) (*dto.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.findItem(itemType, itemName)
	if err != nil {
		return nil, err
	}

	for i := range s.cart {
		if s.cart[i].Type == item.Type && s.cart[i].Name == item.Name {
			s.cart[i].Quantity++
			return s.cartView(), nil
		}
	}

	s.cart = append(s.cart, model.CartItem{
		Type:     item.Type,
		Name:     item.Name,
		Price:    item.Price,
		Quantity: 1,
	})
	return s.cartView(), nil
}

func (s *storeServiceImpl) RemoveFromCart(itemName string) *dto.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.cart[:0]
	for _, ci := range s.cart {
		if ci.Name != itemName {
			kept = append(kept, ci)
		}
	}
	s.cart = kept
	return s.cartView()
}

func (s *storeServiceImpl) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = nil
}

func (s *storeServiceImpl) cartView() *dto.Cart {
	view := &dto.Cart{
		Items: make([]model.CartItem, len(s.cart)),
		Total: decimal.Zero,
	}
	copy(view.Items, s.cart)

	for _, ci := range s.cart {
		view.Count += ci.Quantity
		view.Total = view.Total.Add(ci.Price.Mul(decimal.NewFromInt(int64(ci.Quantity))))
	}
	return view
}
