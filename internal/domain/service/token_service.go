package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"heritage/internal/domain/entity"
)

// Claims defines the custom claims carried by the session tokens.
type Claims struct {
	Identity entity.Identity
	Roles    []string
	Type     string // "access" or "refresh"
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating the
// session tokens that carry a caller's identity. This abstracts the
// token mechanics from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for
	// a given identity.
	GenerateTokens(identity entity.Identity, roles []string) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks an access token and returns its claims.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken checks a refresh token and returns its claims.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
