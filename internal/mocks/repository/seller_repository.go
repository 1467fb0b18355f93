package repository

import (
	"context"
	"testing"

	"catalog/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockSellerRepository is a testify mock of repository.SellerRepository.
type MockSellerRepository struct {
	mock.Mock
}

// NewMockSellerRepository creates a mock that asserts its expectations when the test ends.
func NewMockSellerRepository(t *testing.T) *MockSellerRepository {
	m := &MockSellerRepository{}
	register(t, &m.Mock)

	return m
}

func (m *MockSellerRepository) Create(ctx context.Context, seller *entity.Seller) error {
	return m.Called(ctx, seller).Error(0)
}

func (m *MockSellerRepository) FindByID(ctx context.Context, id int64) (*entity.Seller, error) {
	args := m.Called(ctx, id)

	return sellerOrNil(args.Get(0)), args.Error(1)
}

func (m *MockSellerRepository) FindByIDWithBooks(ctx context.Context, id int64) (*entity.Seller, error) {
	args := m.Called(ctx, id)

	return sellerOrNil(args.Get(0)), args.Error(1)
}

func (m *MockSellerRepository) FindByEmail(ctx context.Context, email string) (*entity.Seller, error) {
	args := m.Called(ctx, email)

	return sellerOrNil(args.Get(0)), args.Error(1)
}

func (m *MockSellerRepository) List(ctx context.Context) ([]*entity.Seller, error) {
	args := m.Called(ctx)

	sellers, _ := args.Get(0).([]*entity.Seller)

	return sellers, args.Error(1)
}

func (m *MockSellerRepository) Update(ctx context.Context, seller *entity.Seller) error {
	return m.Called(ctx, seller).Error(0)
}

func (m *MockSellerRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func sellerOrNil(v any) *entity.Seller {
	seller, _ := v.(*entity.Seller)

	return seller
}
