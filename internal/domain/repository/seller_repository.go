// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"catalog/internal/domain/entity"
)

var (
	// ErrSellerNotFound is returned when a seller is not found.
	ErrSellerNotFound = errors.New("seller not found")

	// ErrSellerEmailExists is returned when the unique email constraint is violated.
	ErrSellerEmailExists = errors.New("seller email already exists")
)

// SellerRepository defines the standard operations for seller persistence.
type SellerRepository interface {
	// Create persists a new seller and fills in its generated ID.
	Create(ctx context.Context, seller *entity.Seller) error

	// FindByID retrieves a single seller without books.
	FindByID(ctx context.Context, id int64) (*entity.Seller, error)

	// FindByIDWithBooks retrieves a single seller together with its books.
	FindByIDWithBooks(ctx context.Context, id int64) (*entity.Seller, error)

	// FindByEmail retrieves a single seller by login email.
	FindByEmail(ctx context.Context, email string) (*entity.Seller, error)

	// List returns every seller ordered by ID.
	List(ctx context.Context) ([]*entity.Seller, error)

	// Update writes the profile fields of an existing seller. The password hash is never touched.
	Update(ctx context.Context, seller *entity.Seller) error

	// Delete removes a seller row.
	Delete(ctx context.Context, id int64) error
}
