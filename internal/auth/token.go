// Package auth issues and verifies the bearer credentials handed out at login
// and hashes account passwords.
package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
)

// TokenType distinguishes the short-lived access token from the renewal token.
type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

// Claims is the JWT payload for both token types. Subject carries the
// username and ID a fresh UUID per token.
type Claims struct {
	TokenType TokenType `json:"token_type"`
	UserID    int64     `json:"user_id"`
	jwt.RegisteredClaims
}

// Pair is the credential set returned by a successful login.
type Pair struct {
	Access  string
	Refresh string
}

// Issuer signs and verifies HS256 tokens with a single shared secret.
type Issuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewIssuer constructs an Issuer. Both TTLs must be positive.
func NewIssuer(secret string, accessTTL, refreshTTL time.Duration) *Issuer {
	return &Issuer{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

// IssuePair mints an access and a refresh token for the given account.
func (i *Issuer) IssuePair(userID int64, username string) (Pair, error) {
	access, err := i.sign(AccessToken, userID, username, i.accessTTL)
	if err != nil {
		return Pair{}, fmt.Errorf("auth.Issuer.IssuePair: access: %w", err)
	}
	refresh, err := i.sign(RefreshToken, userID, username, i.refreshTTL)
	if err != nil {
		return Pair{}, fmt.Errorf("auth.Issuer.IssuePair: refresh: %w", err)
	}
	return Pair{Access: access, Refresh: refresh}, nil
}

// Refresh verifies a refresh token and returns a new access token for the
// same account. Any verification failure wraps domain.ErrUnauthorized.
func (i *Issuer) Refresh(refreshToken string) (string, error) {
	claims, err := i.Parse(refreshToken, RefreshToken)
	if err != nil {
		return "", err
	}
	access, err := i.sign(AccessToken, claims.UserID, claims.Subject, i.accessTTL)
	if err != nil {
		return "", fmt.Errorf("auth.Issuer.Refresh: %w", err)
	}
	return access, nil
}

// Parse verifies signature, expiry, and token type.
func (i *Issuer) Parse(token string, want TokenType) (Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(strings.TrimSpace(token), &claims,
		func(*jwt.Token) (any, error) { return i.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return Claims{}, fmt.Errorf("auth.Issuer.Parse: %w: %v", domain.ErrUnauthorized, err)
	}
	if claims.TokenType != want {
		return Claims{}, fmt.Errorf("auth.Issuer.Parse: %w: token_type %q, want %q",
			domain.ErrUnauthorized, claims.TokenType, want)
	}
	return claims, nil
}

func (i *Issuer) sign(typ TokenType, userID int64, username string, ttl time.Duration) (string, error) {
	now := i.now()
	claims := Claims{
		TokenType: typ,
		UserID:    userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}
