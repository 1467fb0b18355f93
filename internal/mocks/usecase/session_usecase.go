// Package usecase provides testify mocks for the usecase interfaces.
package usecase

import (
	"context"
	"testing"

	"catalog/internal/domain/entity"
	"catalog/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockSessionUsecase is a testify mock of usecase.SessionUsecase.
type MockSessionUsecase struct {
	mock.Mock
}

func NewMockSessionUsecase(t *testing.T) *MockSessionUsecase {
	m := &MockSessionUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSessionUsecase) IssueToken(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenOutput, error) {
	args := m.Called(ctx, input)

	out, _ := args.Get(0).(*usecase.TokenOutput)

	return out, args.Error(1)
}

func (m *MockSessionUsecase) ResolveSeller(ctx context.Context, token string) (*entity.Seller, error) {
	args := m.Called(ctx, token)

	seller, _ := args.Get(0).(*entity.Seller)

	return seller, args.Error(1)
}
