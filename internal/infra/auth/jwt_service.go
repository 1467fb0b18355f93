package auth

import (
	"maps"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"catalog/config"
	"catalog/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret    []byte           // Secret key for signing access tokens.
	accessTTL time.Duration    // Default time-to-live for access tokens.
	now       func() time.Time // Clock, replaced in tests.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret:    []byte(cfg.SecretKey.Access),
		accessTTL: cfg.AccessTokenTTL(),
		now:       time.Now,
	}, nil
}

// Issue signs a copy of claims, stamping iat and exp.
func (s *jwtService) Issue(claims jwt.MapClaims, ttl time.Duration) (string, error) {
	if ttl == 0 {
		ttl = s.accessTTL
	}

	now := s.now()
	payload := make(jwt.MapClaims, len(claims)+2)
	maps.Copy(payload, claims)
	payload["iat"] = now.Unix()
	payload["exp"] = now.Add(ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Validate checks the signature, the algorithm and the exp claim.
func (s *jwtService) Validate(tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(service.ErrInvalidToken, err.Error())
	}

	return claims, nil
}

// AccessTokenTTL returns the configured default lifetime.
func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.accessTTL
}
