package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/mealfinder/backend/internal/apperror"
	"github.com/mealfinder/backend/internal/types"
)

// tokenClaims is the payload of both token kinds: the user ID as subject
// plus a type discriminator.
type tokenClaims struct {
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies the access/refresh token pair. It is
// stateless; there is no server-side revocation list.
type TokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenService(secret string, accessTTL, refreshTTL time.Duration) *TokenService {
	return &TokenService{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// IssuePair mints a fresh access/refresh pair for the given user.
func (s *TokenService) IssuePair(userID uuid.UUID) (*types.TokenPair, error) {
	access, err := s.sign(userID, types.TokenTypeAccess, s.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.sign(userID, types.TokenTypeRefresh, s.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &types.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// VerifyAccess validates an access token and returns the user it was
// issued to. Refresh tokens are rejected here: they never grant resource
// access.
func (s *TokenService) VerifyAccess(tokenString string) (uuid.UUID, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return uuid.Nil, err
	}
	if claims.TokenType != types.TokenTypeAccess {
		return uuid.Nil, apperror.Auth("access token required")
	}
	return s.subject(claims)
}

// RefreshAccess mints a new access token from a valid refresh token. It
// does not check that the user still exists; identity-scoped endpoints
// re-check the user row on every read.
func (s *TokenService) RefreshAccess(refreshToken string) (string, error) {
	claims, err := s.parse(refreshToken)
	if err != nil {
		return "", err
	}
	if claims.TokenType != types.TokenTypeRefresh {
		return "", apperror.Auth("refresh token required")
	}
	userID, err := s.subject(claims)
	if err != nil {
		return "", err
	}
	return s.sign(userID, types.TokenTypeAccess, s.accessTTL)
}

func (s *TokenService) sign(userID uuid.UUID, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", apperror.Wrap(apperror.KindInternal, "failed to sign token", err)
	}
	return signed, nil
}

func (s *TokenService) parse(tokenString string) (*tokenClaims, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperror.Auth("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperror.Wrap(apperror.KindAuth, "invalid or expired token", err)
	}
	return claims, nil
}

func (s *TokenService) subject(claims *tokenClaims) (uuid.UUID, error) {
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, apperror.Auth("invalid token subject")
	}
	return userID, nil
}
