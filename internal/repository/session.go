package repository

import (
	"context"
	"fmt"
)

// SessionRepository persists the logged-in email and the admin flag.
type SessionRepository interface {
	IsAdmin(ctx context.Context) (bool, error)
	SetAdmin(ctx context.Context) error
	ClearAdmin(ctx context.Context) error

	Email(ctx context.Context) (string, error)
	SetEmail(ctx context.Context, email string) error
	ClearEmail(ctx context.Context) error
}

type sessionRepoImpl struct {
	kv KVStore
}

func NewSessionRepository(kv KVStore) SessionRepository {
	return &sessionRepoImpl{
		kv: kv,
	}
}

func (r *sessionRepoImpl) IsAdmin(ctx context.Context) (bool, error) {
	v, ok, err := r.kv.Get(ctx, KeyAdmin)
	if err != nil {
		return false, fmt.Errorf("get %s: %w", KeyAdmin, err)
	}
	return ok && v == "true", nil
}

func (r *sessionRepoImpl) SetAdmin(ctx context.Context) error {
	return r.kv.Set(ctx, KeyAdmin, "true")
}

func (r *sessionRepoImpl) ClearAdmin(ctx context.Context) error {
	return r.kv.Remove(ctx, KeyAdmin)
}

func (r *sessionRepoImpl) Email(ctx context.Context) (string, error) {
	v, _, err := r.kv.Get(ctx, KeyUserEmail)
	if err != nil {
		return "", fmt.Errorf("get %s: %w", KeyUserEmail, err)
	}
	return v, nil
}

func (r *sessionRepoImpl) SetEmail(ctx context.Context, email string) error {
	return r.kv.Set(ctx, KeyUserEmail, email)
}

func (r *sessionRepoImpl) ClearEmail(ctx context.Context) error {
	return r.kv.Remove(ctx, KeyUserEmail)
}
