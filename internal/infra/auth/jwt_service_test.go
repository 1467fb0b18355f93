package auth

import (
	"strings"
	"testing"
	"time"

	"catalog/config"
	"catalog/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc := newTestJWTService(t)

	token, err := svc.Issue(jwt.MapClaims{"sub": "ada@example.com"}, 0)
	require.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 3)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", claims["sub"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), exp.Time, 5*time.Second)
}

func TestJWTService_IssueDoesNotMutateInput(t *testing.T) {
	svc := newTestJWTService(t)

	input := jwt.MapClaims{"sub": "ada@example.com"}
	_, err := svc.Issue(input, time.Minute)
	require.NoError(t, err)

	assert.Len(t, input, 1)
}

func TestJWTService_Expired(t *testing.T) {
	svc := newTestJWTService(t)

	issuedAt := time.Now().Add(-time.Hour)
	svc.now = func() time.Time { return issuedAt }
	token, err := svc.Issue(jwt.MapClaims{"sub": "ada@example.com"}, time.Minute)
	require.NoError(t, err)

	svc.now = time.Now
	claims, err := svc.Validate(token)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrInvalidToken))
}

func TestJWTService_RejectsTamperedAndForeignTokens(t *testing.T) {
	svc := newTestJWTService(t)

	token, err := svc.Issue(jwt.MapClaims{"sub": "ada@example.com"}, time.Minute)
	require.NoError(t, err)

	other := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "ada@example.com",
		"exp": time.Now().Add(time.Minute).Unix(),
	})
	foreign, err := other.SignedString([]byte("another-secret"))
	require.NoError(t, err)

	hs512 := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"sub": "ada@example.com",
		"exp": time.Now().Add(time.Minute).Unix(),
	})
	wrongAlg, err := hs512.SignedString([]byte(testSecret))
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	evil := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "mallory@example.com",
		"exp": time.Now().Add(time.Minute).Unix(),
	})
	evilToken, err := evil.SignedString([]byte("another-secret"))
	require.NoError(t, err)
	evilParts := strings.Split(evilToken, ".")
	tampered := evilParts[0] + "." + evilParts[1] + "." + parts[2]

	noExp := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "ada@example.com"})
	missingExp, err := noExp.SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := map[string]string{
		"garbage":      "clearly-not-a-jwt-token-format",
		"tampered":     tampered,
		"wrong secret": foreign,
		"wrong alg":    wrongAlg,
		"missing exp":  missingExp,
	}

	for name, tok := range tests {
		t.Run(name, func(t *testing.T) {
			claims, err := svc.Validate(tok)
			assert.Nil(t, claims)
			assert.True(t, errors.Is(err, service.ErrInvalidToken))
		})
	}
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_AccessTokenTTL(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{AccessTokenTTL: 5 * time.Minute}}
	cfg.SecretKey.Access = testSecret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, svc.AccessTokenTTL())
}
