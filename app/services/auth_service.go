package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials means the login username/password pair was rejected.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken means the bearer token failed verification.
	ErrInvalidToken = errors.New("invalid token")
)

// AuthService issues and verifies self-contained bearer tokens. Tokens are
// HS256-signed with a shared secret and valid until their encoded expiry;
// there is no session store, refresh mechanism or revocation list.
type AuthService struct {
	secret       []byte
	username     string
	passwordHash []byte
	tokenTTL     time.Duration
	now          func() time.Time
}

// NewAuthService creates a new AuthService. passwordHash is a bcrypt hash
// of the admin password.
func NewAuthService(secret []byte, username string, passwordHash []byte, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		secret:       secret,
		username:     username,
		passwordHash: passwordHash,
		tokenTTL:     tokenTTL,
		now:          time.Now,
	}
}

// Login checks the credentials and issues a signed token on success.
func (s *AuthService) Login(username, password string) (string, time.Time, error) {
	if username != s.username || len(s.passwordHash) == 0 {
		return "", time.Time{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", time.Time{}, ErrInvalidCredentials
	}

	issued := s.now()
	expires := issued.Add(s.tokenTTL)
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(issued),
		ExpiresAt: jwt.NewNumericDate(expires),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %v", err)
	}
	return token, expires, nil
}

// Verify checks the token's signature and expiry and returns its claims.
func (s *AuthService) Verify(tokenString string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return claims, nil
}
