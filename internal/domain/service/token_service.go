package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any token that fails signature, algorithm or expiry checks.
var ErrInvalidToken = errors.New("invalid token")

// TokenService defines the interface for issuing and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue signs a copy of claims with an exp of now+ttl. A zero ttl uses the configured default.
	Issue(claims jwt.MapClaims, ttl time.Duration) (string, error)

	// Validate verifies an HS256 token and returns its claims.
	Validate(tokenString string) (jwt.MapClaims, error)

	// AccessTokenTTL returns the default token lifetime.
	AccessTokenTTL() time.Duration
}
