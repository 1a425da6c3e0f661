package service

import (
	"context"
	"crimson-store/internal/repository"
	"errors"
	"testing"
)

func TestLoginRejectsEmailWithoutAt(t *testing.T) {
	ts := newTestStore(t)

	_, err := ts.Login(context.Background(), "steve.mc.net")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want validation", err)
	}
	if ts.registeringEmail != "" {
		t.Error("failed login must not enter registration")
	}
}

func TestLoginUnknownEmailStartsRegistration(t *testing.T) {
	ctx := context.Background()
	ts := newTestStore(t)

	resp, err := ts.Login(ctx, "new@mc.net")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !resp.NeedsRegistration || resp.User != nil {
		t.Fatalf("resp = %+v, want registration prompt", resp)
	}
	if len(ts.storedProfiles(t)) != 0 {
		t.Error("login alone must not create a profile")
	}
	if email, _ := ts.session.Email(ctx); email != "" {
		t.Errorf("session email = %q before registering", email)
	}

	view, _ := ts.View(ctx)
	if !view.Registering {
		t.Error("view should show the registration form")
	}
}

func TestRegisterBlankNickname(t *testing.T) {
	ctx := context.Background()
	ts := newTestStore(t)
	if _, err := ts.Login(ctx, "new@mc.net"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	if _, err := ts.Register(ctx, "   "); !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want validation", err)
	}
	if len(ts.storedProfiles(t)) != 0 {
		t.Error("blank nickname must not create a profile")
	}
}

func TestRegisterCreatesProfileAndSession(t *testing.T) {
	ctx := context.Background()
	ts := newTestStore(t)
	if _, err := ts.Login(ctx, "new@mc.net"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	p, err := ts.Register(ctx, "  Newbie ")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if p.Email != "new@mc.net" || p.Nickname != "Newbie" || !p.TotalSpent.IsZero() || p.RegisteredAt.IsZero() {
		t.Errorf("profile = %+v", p)
	}

	stored := ts.storedProfiles(t)
	if len(stored) != 1 || stored[0].Email != "new@mc.net" {
		t.Fatalf("stored profiles = %+v", stored)
	}
	if email, _ := ts.session.Email(ctx); email != "new@mc.net" {
		t.Errorf("session email = %q", email)
	}
	if ts.registeringEmail != "" {
		t.Error("registration state should end")
	}

	if _, err := ts.Register(ctx, "Again"); !errors.Is(err, ErrNotRegistering) {
		t.Errorf("second Register err = %v, want ErrNotRegistering", err)
	}
}

func TestLoginKnownEmail(t *testing.T) {
	ctx := context.Background()
	ts := newTestStore(t)
	ts.seedProfiles(t, profile("steve@mc.net", "Steve", "4"))

	resp, err := ts.Login(ctx, "steve@mc.net")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.NeedsRegistration || resp.User == nil || resp.User.Nickname != "Steve" {
		t.Fatalf("resp = %+v", resp)
	}
	if resp.Message != "Welcome back, Steve!" {
		t.Errorf("greeting = %q", resp.Message)
	}
	if len(ts.storedProfiles(t)) != 1 {
		t.Error("login must not duplicate the profile")
	}
	if email, _ := ts.session.Email(ctx); email != "steve@mc.net" {
		t.Errorf("session email = %q", email)
	}

	user, err := ts.CurrentUser(ctx)
	if err != nil || user == nil || user.Email != "steve@mc.net" {
		t.Errorf("CurrentUser = %+v, %v", user, err)
	}
}

func TestCancelRegistration(t *testing.T) {
	ctx := context.Background()
	ts := newTestStore(t)
	_, _ = ts.Login(ctx, "new@mc.net")

	ts.CancelRegistration()
	if _, err := ts.Register(ctx, "Newbie"); !errors.Is(err, ErrNotRegistering) {
		t.Fatalf("err = %v, want ErrNotRegistering", err)
	}
}

func TestLogoutKeepsAdmin(t *testing.T) {
	ctx := context.Background()
	ts := newTestStore(t)
	ts.signUp(t, "steve@mc.net", "Steve")
	if err := ts.AdminLogin(ctx, testAdminPassword); err != nil {
		t.Fatalf("AdminLogin: %v", err)
	}

	if err := ts.Logout(ctx); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, ok, _ := ts.kv.Get(ctx, repository.KeyUserEmail); ok {
		t.Error("session email should be removed")
	}
	if admin, _ := ts.IsAdmin(ctx); !admin {
		t.Error("customer logout must not clear admin")
	}
	if user, _ := ts.CurrentUser(ctx); user != nil {
		t.Errorf("CurrentUser after logout = %+v", user)
	}
}
