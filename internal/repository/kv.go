package repository

import (
	"context"
	"crimson-store/internal/model"
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVStore is the synchronous get/set/remove storage the storefront persists to.
type KVStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

type gormKVStore struct {
	db *gorm.DB
}

func NewGormKVStore(db *gorm.DB) KVStore {
	return &gormKVStore{
		db: db,
	}
}

func (s *gormKVStore) Get(ctx context.Context, key string) (string, bool, error) {
	var entry model.KVEntry
	err := s.db.WithContext(ctx).
		Where("entry_key = ?", key).
		First(&entry).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	return entry.Value, true, nil
}

func (s *gormKVStore) Set(ctx context.Context, key, value string) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      value,
			"updated_at": time.Now(),
		}),
	}).Create(&model.KVEntry{Key: key, Value: value}).Error
}

func (s *gormKVStore) Remove(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).
		Where("entry_key = ?", key).
		Delete(&model.KVEntry{}).Error
}

type memoryKVStore struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryKVStore() KVStore {
	return &memoryKVStore{
		data: make(map[string]string),
	}
}

func (s *memoryKVStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	return v, ok, nil
}

func (s *memoryKVStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return nil
}

func (s *memoryKVStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}
