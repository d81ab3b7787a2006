package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthAPI struct {
	registerCalls int
	loginCalls    int
	registerErr   error
	loginErr      error
	token         string
}

func (s *stubAuthAPI) Register(_ context.Context, email, password string) error {
	s.registerCalls++
	return s.registerErr
}

func (s *stubAuthAPI) Login(_ context.Context, email, password string) (string, error) {
	s.loginCalls++
	if s.loginErr != nil {
		return "", s.loginErr
	}
	return s.token, nil
}

type stubSessionRepo struct {
	token    string
	setErr   error
	clearErr error
}

func (s *stubSessionRepo) Get() (string, bool) {
	return s.token, s.token != ""
}

func (s *stubSessionRepo) Set(token string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.token = token
	return nil
}

func (s *stubSessionRepo) Clear() error {
	if s.clearErr != nil {
		return s.clearErr
	}
	s.token = ""
	return nil
}

func TestAuthService_LoginPersistsToken(t *testing.T) {
	api := &stubAuthAPI{token: "tok-1"}
	sessions := &stubSessionRepo{}
	svc := NewAuthService(api, sessions)

	token, err := svc.Login(context.Background(), "a@b.c", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	stored, ok := sessions.Get()
	assert.True(t, ok)
	assert.Equal(t, "tok-1", stored)
}

func TestAuthService_LoginFailureLeavesSessionUntouched(t *testing.T) {
	api := &stubAuthAPI{loginErr: errors.New("401 Unauthorized")}
	sessions := &stubSessionRepo{}
	svc := NewAuthService(api, sessions)

	_, err := svc.Login(context.Background(), "a@b.c", "bad")
	require.Error(t, err)

	_, ok := sessions.Get()
	assert.False(t, ok)
}

func TestAuthService_LoginValidatesInput(t *testing.T) {
	svc := NewAuthService(&stubAuthAPI{}, &stubSessionRepo{})

	_, err := svc.Login(context.Background(), "  ", "pw")
	assert.Error(t, err)
	_, err = svc.Login(context.Background(), "a@b.c", "")
	assert.Error(t, err)
}

func TestAuthService_LoginRejectsEmptyTokenResponse(t *testing.T) {
	api := &stubAuthAPI{token: ""}
	sessions := &stubSessionRepo{}
	svc := NewAuthService(api, sessions)

	_, err := svc.Login(context.Background(), "a@b.c", "pw")
	require.Error(t, err)
	_, ok := sessions.Get()
	assert.False(t, ok)
}

func TestAuthService_RegisterChainsIntoLogin(t *testing.T) {
	api := &stubAuthAPI{token: "tok-2"}
	sessions := &stubSessionRepo{}
	svc := NewAuthService(api, sessions)

	token, err := svc.Register(context.Background(), "new@b.c", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-2", token)
	assert.Equal(t, 1, api.registerCalls)
	assert.Equal(t, 1, api.loginCalls)
}

func TestAuthService_RegisterFailureSkipsLogin(t *testing.T) {
	api := &stubAuthAPI{registerErr: errors.New("400 Bad Request - Email already registered")}
	sessions := &stubSessionRepo{}
	svc := NewAuthService(api, sessions)

	_, err := svc.Register(context.Background(), "dup@b.c", "secret")
	require.Error(t, err)
	assert.Equal(t, 0, api.loginCalls)
	_, ok := sessions.Get()
	assert.False(t, ok)
}

func TestAuthService_Logout(t *testing.T) {
	sessions := &stubSessionRepo{token: "tok"}
	svc := NewAuthService(&stubAuthAPI{}, sessions)

	require.NoError(t, svc.Logout())
	_, ok := svc.Token()
	assert.False(t, ok)
}
