package main

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	tokenClassAccess  = "access"
	tokenClassRefresh = "refresh"
)

// tokenClaims is the payload of both token classes. Typ tells an access
// token apart from a refresh token; a token of the wrong class never
// verifies.
type tokenClaims struct {
	jwt.RegisteredClaims
	UserID uint   `json:"user_id"`
	Typ    string `json:"typ"`
}

// tokenIssuer mints and verifies the token pair. The secret and TTLs
// come from Config at startup; the issuer itself is immutable, so it is
// safe to share across requests.
type tokenIssuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func newTokenIssuer(cfg Config) *tokenIssuer {
	return &tokenIssuer{
		secret:     []byte(cfg.JWTSecret),
		accessTTL:  cfg.AccessTokenTTL,
		refreshTTL: cfg.RefreshTokenTTL,
	}
}

// TokenPair is what a successful login returns. Field names follow the
// response contract: {"access": ..., "refresh": ...}.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

func (ti *tokenIssuer) IssuePair(userID uint) (TokenPair, error) {
	access, err := ti.sign(userID, tokenClassAccess, ti.accessTTL)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := ti.sign(userID, tokenClassRefresh, ti.refreshTTL)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{Access: access, Refresh: refresh}, nil
}

// IssueAccess mints a new access token from an already-verified refresh.
// The refresh token itself is not rotated; it stays valid until its own
// expiry.
func (ti *tokenIssuer) IssueAccess(userID uint) (string, error) {
	return ti.sign(userID, tokenClassAccess, ti.accessTTL)
}

func (ti *tokenIssuer) sign(userID uint, class string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: userID,
		Typ:    class,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ti.secret)
}

// Verify checks signature, expiry and token class, returning the user id
// the token was issued for. All failure causes collapse into
// ErrInvalidToken so callers cannot leak why a token was rejected.
func (ti *tokenIssuer) Verify(tokenString, wantClass string) (uint, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return ti.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}
	if claims.Typ != wantClass {
		return 0, ErrInvalidToken
	}
	return claims.UserID, nil
}
