package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/junksamiad/xmas-donation-app/config"
	"github.com/junksamiad/xmas-donation-app/internal/dto"
	"github.com/junksamiad/xmas-donation-app/internal/model"
	"github.com/junksamiad/xmas-donation-app/pkg/jwt"
)

func newAuthServiceForTest(t *testing.T, userRepo *mockUserRepo) (AuthService, *jwt.Manager) {
	t.Helper()
	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:       "unit-test-secret-key",
			AccessTokenTTL:  30 * time.Minute,
			RefreshTokenTTL: 24 * time.Hour,
		},
	}
	jwtMgr := jwt.NewManager(&cfg.Auth)
	repo := newTestRepo(nil, nil, nil, nil, userRepo)
	return NewAuthService(cfg, repo, jwtMgr, nil, zap.NewNop()), jwtMgr
}

func testAdmin(t *testing.T, username, password string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return &model.User{
		UserID:       "u1",
		Username:     username,
		PasswordHash: string(hash),
		Role:         "admin",
	}
}

func TestLogin(t *testing.T) {
	userRepo := newMockUserRepo(testAdmin(t, "admin", "festive-secret"))
	svc, jwtMgr := newAuthServiceForTest(t, userRepo)

	got, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "admin",
		Password: "festive-secret",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if got.User.Username != "admin" || got.User.Role != "admin" {
		t.Fatalf("got user %+v", got.User)
	}
	if got.ExpiresIn != int((30 * time.Minute).Seconds()) {
		t.Errorf("got expires_in %d, want 1800", got.ExpiresIn)
	}

	claims, err := jwtMgr.ParseToken(got.AccessToken)
	if err != nil {
		t.Fatalf("parse access token: %v", err)
	}
	if claims.TokenType != "access" || claims.UserID != "u1" {
		t.Fatalf("got claims %+v", claims)
	}

	refresh, err := jwtMgr.ParseToken(got.RefreshToken)
	if err != nil {
		t.Fatalf("parse refresh token: %v", err)
	}
	if refresh.TokenType != "refresh" {
		t.Fatalf("got token type %q, want refresh", refresh.TokenType)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	userRepo := newMockUserRepo(testAdmin(t, "admin", "festive-secret"))
	svc, _ := newAuthServiceForTest(t, userRepo)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "admin",
		Password: "wrong",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("got %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _ := newAuthServiceForTest(t, newMockUserRepo())

	// unknown user and wrong password must be indistinguishable
	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "nobody",
		Password: "anything",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("got %v, want ErrInvalidCredentials", err)
	}
}

func TestLogoutWithoutRedis(t *testing.T) {
	userRepo := newMockUserRepo(testAdmin(t, "admin", "festive-secret"))
	svc, jwtMgr := newAuthServiceForTest(t, userRepo)

	token, err := jwtMgr.GenerateAccessToken("u1", "admin", "admin")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	claims, err := jwtMgr.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}

	if err := svc.Logout(context.Background(), claims); err != nil {
		t.Fatalf("Logout without redis: %v", err)
	}
}

func TestGetCurrentUser(t *testing.T) {
	userRepo := newMockUserRepo(testAdmin(t, "admin", "festive-secret"))
	svc, _ := newAuthServiceForTest(t, userRepo)

	got, err := svc.GetCurrentUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("GetCurrentUser: %v", err)
	}
	if got.Username != "admin" {
		t.Fatalf("got %q, want admin", got.Username)
	}

	_, err = svc.GetCurrentUser(context.Background(), "missing")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("got %v, want ErrUserNotFound", err)
	}
}
