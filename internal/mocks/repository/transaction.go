// Package repository provides testify mocks for the domain repository interfaces.
package repository

import (
	"context"
	"testing"

	"catalog/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// TransactionManager runs the callback directly against Factory and records every call.
type TransactionManager struct {
	Factory repository.RepositoryFactory
	Calls   int
}

// NewTransactionManager returns a TransactionManager whose factory hands out the given repositories.
func NewTransactionManager(sellers repository.SellerRepository, books repository.BookRepository) *TransactionManager {
	return &TransactionManager{Factory: &RepositoryFactory{Sellers: sellers, Books: books}}
}

func (tm *TransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	tm.Calls++

	return fn(tm.Factory)
}

// RepositoryFactory returns fixed repository instances.
type RepositoryFactory struct {
	Sellers repository.SellerRepository
	Books   repository.BookRepository
}

func (f *RepositoryFactory) NewSellerRepository() repository.SellerRepository {
	return f.Sellers
}

func (f *RepositoryFactory) NewBookRepository() repository.BookRepository {
	return f.Books
}

func register(t *testing.T, m *mock.Mock) {
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
}
