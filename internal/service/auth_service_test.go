package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"nextstep/athlete-api/internal/config"
	"nextstep/athlete-api/internal/service"
)

const (
	testEmail    = "athlete@example.com"
	testPassword = "correct-horse-battery-staple"
	testSecret   = "test-jwt-secret"
)

func newAuthService(t *testing.T) service.AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	return service.NewAuthService(
		config.AuthConfig{Email: testEmail, PasswordHash: string(hash)},
		config.JWTConfig{Secret: testSecret, Issuer: "athlete-api", Expiration: time.Hour},
	)
}

func TestLogin_Success(t *testing.T) {
	svc := newAuthService(t)

	tokenString, err := svc.Login(context.Background(), testEmail, testPassword)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)
	require.Equal(t, testEmail, claims.Subject)
	require.Equal(t, "athlete-api", claims.Issuer)
	require.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestLogin_WrongCredentials(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, testEmail, "wrong-password")
	require.ErrorIs(t, err, service.ErrAuthenticationFailed)

	_, err = svc.Login(ctx, "other@example.com", testPassword)
	require.ErrorIs(t, err, service.ErrAuthenticationFailed)

	_, err = svc.Login(ctx, "", "")
	require.ErrorIs(t, err, service.ErrAuthenticationFailed)
}

func TestNewAuthService_PanicsOnMissingConfig(t *testing.T) {
	require.Panics(t, func() {
		service.NewAuthService(
			config.AuthConfig{Email: testEmail, PasswordHash: "x"},
			config.JWTConfig{},
		)
	})
	require.Panics(t, func() {
		service.NewAuthService(
			config.AuthConfig{},
			config.JWTConfig{Secret: testSecret},
		)
	})
}
