package usecase

import (
	"context"
	"testing"

	"catalog/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockCatalogEventUsecase is a testify mock of usecase.CatalogEventUsecase.
type MockCatalogEventUsecase struct {
	mock.Mock
}

func NewMockCatalogEventUsecase(t *testing.T) *MockCatalogEventUsecase {
	m := &MockCatalogEventUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCatalogEventUsecase) HandleCatalogEvent(ctx context.Context, event *service.CatalogEvent) error {
	return m.Called(ctx, event).Error(0)
}
