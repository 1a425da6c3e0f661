package service

import (
	"context"
	"fmt"
)

func (s *storeServiceImpl) OpenAdminDialog() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.adminDialogOpen = true
}

func (s *storeServiceImpl) CloseAdminDialog() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.adminDialogOpen = false
}

// AdminLogin compares against the shared secret. This is a client-grade gate,
// not authentication.
func (s *storeServiceImpl) AdminLogin(ctx context.Context, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if password != s.opts.AdminPassword {
		s.logger.Info("admin login rejected")
		return ErrInvalidAdminPassword
	}

	if err := s.sessionRepo.SetAdmin(ctx); err != nil {
		return fmt.Errorf("store admin flag: %w", err)
	}
	s.adminDialogOpen = false

	s.logger.Info("admin logged in")
	return nil
}

func (s *storeServiceImpl) AdminLogout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sessionRepo.ClearAdmin(ctx); err != nil {
		return fmt.Errorf("clear admin flag: %w", err)
	}
	s.activeTab = TabHome

	s.logger.Info("admin logged out")
	return nil
}

func (s *storeServiceImpl) IsAdmin(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessionRepo.IsAdmin(ctx)
}

func (s *storeServiceImpl) requireAdmin(ctx context.Context) error {
	admin, err := s.sessionRepo.IsAdmin(ctx)
	if err != nil {
		return err
	}
	if !admin {
		return ErrAdminRequired
	}
	return nil
}
