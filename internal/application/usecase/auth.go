// Package usecase contains application-level services.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// AuthAPI abstracts the backend auth endpoints.
type AuthAPI interface {
	Register(ctx context.Context, email, password string) error
	Login(ctx context.Context, email, password string) (string, error)
}

// SessionRepository abstracts the durable credential slot.
type SessionRepository interface {
	Get() (token string, ok bool)
	Set(token string) error
	Clear() error
}

// AuthService sequences account and session lifecycle.
type AuthService struct {
	API      AuthAPI
	Sessions SessionRepository
}

// NewAuthService constructs an AuthService.
func NewAuthService(api AuthAPI, sessions SessionRepository) AuthService {
	return AuthService{API: api, Sessions: sessions}
}

// Login authenticates and persists the returned token.
func (s AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", errors.New("email and password are required")
	}
	token, err := s.API.Login(ctx, email, password)
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", errors.New("login response carried no access token")
	}
	if err := s.Sessions.Set(token); err != nil {
		return "", fmt.Errorf("persist session: %w", err)
	}
	return token, nil
}

// Register creates an account and chains into login on success.
func (s AuthService) Register(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", errors.New("email and password are required")
	}
	if err := s.API.Register(ctx, email, password); err != nil {
		return "", err
	}
	return s.Login(ctx, email, password)
}

// Logout clears the persisted session.
func (s AuthService) Logout() error {
	return s.Sessions.Clear()
}

// Token returns the current session token when one is stored.
func (s AuthService) Token() (string, bool) {
	return s.Sessions.Get()
}
