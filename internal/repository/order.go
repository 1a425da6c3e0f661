package repository

import (
	"context"
	"crimson-store/internal/model"
	"encoding/json"
	"fmt"
)

type OrderRepository interface {
	Load(ctx context.Context) ([]*model.Order, error)
	Save(ctx context.Context, orders []*model.Order) error
}

type orderRepoImpl struct {
	kv KVStore
}

func NewOrderRepository(kv KVStore) OrderRepository {
	return &orderRepoImpl{
		kv: kv,
	}
}

func (r *orderRepoImpl) Load(ctx context.Context) ([]*model.Order, error) {
	var orders []*model.Order
	if err := loadJSON(ctx, r.kv, KeyOrders, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Save overwrites the whole order list.
func (r *orderRepoImpl) Save(ctx context.Context, orders []*model.Order) error {
	return saveJSON(ctx, r.kv, KeyOrders, orders)
}

func loadJSON(ctx context.Context, kv KVStore, key string, dst any) error {
	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("get %s: %w", key, err)
	}
	if !ok || raw == "" {
		return nil
	}

	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorruptRecord, key, err)
	}
	return nil
}

func saveJSON(ctx context.Context, kv KVStore, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	if err := kv.Set(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}
