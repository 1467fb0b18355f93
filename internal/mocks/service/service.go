// Package service provides testify mocks for the domain service interfaces.
package service

import (
	"context"
	"testing"
	"time"

	"catalog/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
)

func register(t *testing.T, m *mock.Mock) {
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
}

// MockPasswordHasher is a testify mock of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

func NewMockPasswordHasher(t *testing.T) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	register(t, &m.Mock)

	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

// MockTokenService is a testify mock of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

func NewMockTokenService(t *testing.T) *MockTokenService {
	m := &MockTokenService{}
	register(t, &m.Mock)

	return m
}

func (m *MockTokenService) Issue(claims jwt.MapClaims, ttl time.Duration) (string, error) {
	args := m.Called(claims, ttl)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Validate(tokenString string) (jwt.MapClaims, error) {
	args := m.Called(tokenString)

	claims, _ := args.Get(0).(jwt.MapClaims)

	return claims, args.Error(1)
}

func (m *MockTokenService) AccessTokenTTL() time.Duration {
	return m.Called().Get(0).(time.Duration)
}

// MockEventPublisher is a testify mock of service.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

func NewMockEventPublisher(t *testing.T) *MockEventPublisher {
	m := &MockEventPublisher{}
	register(t, &m.Mock)

	return m
}

func (m *MockEventPublisher) PublishCatalogEvent(ctx context.Context, event *service.CatalogEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockEventPublisher) Close() error {
	return m.Called().Error(0)
}

// MockQRCodeService is a testify mock of service.QRCodeService.
type MockQRCodeService struct {
	mock.Mock
}

func NewMockQRCodeService(t *testing.T) *MockQRCodeService {
	m := &MockQRCodeService{}
	register(t, &m.Mock)

	return m
}

func (m *MockQRCodeService) GenerateBookQR(bookID int64) ([]byte, error) {
	args := m.Called(bookID)

	png, _ := args.Get(0).([]byte)

	return png, args.Error(1)
}
