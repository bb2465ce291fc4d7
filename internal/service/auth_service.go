package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"nextstep/athlete-api/internal/config"
)

// --- Error Definitions ---
var (
	ErrAuthenticationFailed = errors.New("authentication failed: invalid email or password")
	ErrTokenGeneration      = errors.New("failed to generate authentication token")
)

// AuthService authenticates the single configured user and issues JWTs.
// There is no user store: the credentials live in configuration, with the
// password kept as a bcrypt hash.
type AuthService interface {
	Login(ctx context.Context, email, password string) (token string, err error)
}

type authService struct {
	auth config.AuthConfig
	jwt  config.JWTConfig
}

// NewAuthService creates a new instance of authService.
func NewAuthService(auth config.AuthConfig, jwtCfg config.JWTConfig) AuthService {
	if jwtCfg.Secret == "" {
		panic("JWT secret cannot be empty") // Critical configuration
	}
	if auth.Email == "" || auth.PasswordHash == "" {
		panic("auth email and password hash must be configured")
	}
	cfg := jwtCfg
	if cfg.Expiration <= 0 {
		cfg.Expiration = 12 * time.Hour
	}
	return &authService{auth: auth, jwt: cfg}
}

// Login compares the supplied credentials against the configured ones and
// returns a signed token on success. Both failure modes (wrong email, wrong
// password) map to the same error so nothing leaks about which was wrong.
func (s *authService) Login(_ context.Context, email, password string) (string, error) {
	emailMatch := subtle.ConstantTimeCompare([]byte(email), []byte(s.auth.Email)) == 1

	err := bcrypt.CompareHashAndPassword([]byte(s.auth.PasswordHash), []byte(password))
	if err != nil || !emailMatch {
		return "", ErrAuthenticationFailed
	}

	token, err := s.generateJWT(email)
	if err != nil {
		return "", ErrTokenGeneration
	}
	return token, nil
}

// generateJWT creates a new HS256 token with the user's email as subject.
func (s *authService) generateJWT(email string) (string, error) {
	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Subject:   email,
		Issuer:    s.jwt.Issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.jwt.Expiration)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwt.Secret))
}
