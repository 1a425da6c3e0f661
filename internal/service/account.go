package service

import (
	"context"
	"crimson-store/internal/dto"
	"crimson-store/internal/model"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"
)

func (s *storeServiceImpl) Login(ctx context.Context, email string) (*dto.LoginResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email = strings.TrimSpace(email)
	if !strings.Contains(email, "@") {
		return nil, fieldError("email", msgInvalidEmail)
	}

	profiles, err := s.profileRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load profiles: %w", err)
	}

	profile := findProfile(profiles, email)
	if profile == nil {
		s.registeringEmail = email
		return &dto.LoginResponse{
			NeedsRegistration: true,
			Message:           "No account found for this email. Choose a nickname to register.",
		}, nil
	}

	if err := s.sessionRepo.SetEmail(ctx, profile.Email); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	s.registeringEmail = ""

	return &dto.LoginResponse{
		Message: fmt.Sprintf("Welcome back, %s!", profile.Nickname),
		User:    dto.NewProfile(profile),
	}, nil
}

func (s *storeServiceImpl) Register(ctx context.Context, nickname string) (*model.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.registeringEmail == "" {
		return nil, ErrNotRegistering
	}

	nickname = strings.TrimSpace(nickname)
	if nickname == "" {
		return nil, fieldError("nickname", "Please enter a nickname.")
	}

	profiles, err := s.profileRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load profiles: %w", err)
	}

	profile := &model.UserProfile{
		Email:        s.registeringEmail,
		Nickname:     nickname,
		RegisteredAt: s.now(),
		TotalSpent:   decimal.Zero,
	}
	profiles = append(profiles, profile)

	if err := s.profileRepo.Save(ctx, profiles); err != nil {
		return nil, fmt.Errorf("store profiles: %w", err)
	}
	if err := s.sessionRepo.SetEmail(ctx, profile.Email); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	s.registeringEmail = ""

	s.logger.Info("profile registered", slog.String("nickname", nickname))
	return profile, nil
}

func (s *storeServiceImpl) CancelRegistration() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.registeringEmail = ""
}

// Logout ends the customer session. Admin state is untouched.
func (s *storeServiceImpl) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.registeringEmail = ""
	return s.sessionRepo.ClearEmail(ctx)
}

func (s *storeServiceImpl) CurrentUser(ctx context.Context) (*model.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.currentUser(ctx)
}

func (s *storeServiceImpl) currentUser(ctx context.Context) (*model.UserProfile, error) {
	email, err := s.sessionRepo.Email(ctx)
	if err != nil || email == "" {
		return nil, err
	}

	profiles, err := s.profileRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load profiles: %w", err)
	}
	return findProfile(profiles, email), nil
}
