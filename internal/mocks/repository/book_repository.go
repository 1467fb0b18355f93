package repository

import (
	"context"
	"testing"

	"catalog/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockBookRepository is a testify mock of repository.BookRepository.
type MockBookRepository struct {
	mock.Mock
}

// NewMockBookRepository creates a mock that asserts its expectations when the test ends.
func NewMockBookRepository(t *testing.T) *MockBookRepository {
	m := &MockBookRepository{}
	register(t, &m.Mock)

	return m
}

func (m *MockBookRepository) Create(ctx context.Context, book *entity.Book) error {
	return m.Called(ctx, book).Error(0)
}

func (m *MockBookRepository) FindByID(ctx context.Context, id int64) (*entity.Book, error) {
	args := m.Called(ctx, id)

	book, _ := args.Get(0).(*entity.Book)

	return book, args.Error(1)
}

func (m *MockBookRepository) List(ctx context.Context) ([]*entity.Book, error) {
	args := m.Called(ctx)

	books, _ := args.Get(0).([]*entity.Book)

	return books, args.Error(1)
}

func (m *MockBookRepository) ListBySellerID(ctx context.Context, sellerID int64) ([]*entity.Book, error) {
	args := m.Called(ctx, sellerID)

	books, _ := args.Get(0).([]*entity.Book)

	return books, args.Error(1)
}

func (m *MockBookRepository) Update(ctx context.Context, book *entity.Book) error {
	return m.Called(ctx, book).Error(0)
}

func (m *MockBookRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockBookRepository) DeleteBySellerID(ctx context.Context, sellerID int64) (int64, error) {
	args := m.Called(ctx, sellerID)

	return args.Get(0).(int64), args.Error(1)
}
