package repository

import (
	"context"
	"crimson-store/internal/model"
)

type ProfileRepository interface {
	Load(ctx context.Context) ([]*model.UserProfile, error)
	Save(ctx context.Context, profiles []*model.UserProfile) error
}

type profileRepoImpl struct {
	kv KVStore
}

func NewProfileRepository(kv KVStore) ProfileRepository {
	return &profileRepoImpl{
		kv: kv,
	}
}

func (r *profileRepoImpl) Load(ctx context.Context) ([]*model.UserProfile, error) {
	var profiles []*model.UserProfile
	if err := loadJSON(ctx, r.kv, KeyUserProfiles, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *profileRepoImpl) Save(ctx context.Context, profiles []*model.UserProfile) error {
	return saveJSON(ctx, r.kv, KeyUserProfiles, profiles)
}
