package repository

import (
	"context"
	"errors"

	"catalog/internal/domain/entity"
)

var (
	// ErrBookNotFound is returned when a book is not found.
	ErrBookNotFound = errors.New("book not found")

	// ErrBookSellerMissing is returned when the owning seller does not exist.
	ErrBookSellerMissing = errors.New("book seller does not exist")
)

// BookRepository defines the standard operations for book persistence.
type BookRepository interface {
	Create(ctx context.Context, book *entity.Book) error
	FindByID(ctx context.Context, id int64) (*entity.Book, error)
	List(ctx context.Context) ([]*entity.Book, error)
	ListBySellerID(ctx context.Context, sellerID int64) ([]*entity.Book, error)

	// Update replaces title, author, year and page count.
	Update(ctx context.Context, book *entity.Book) error
	Delete(ctx context.Context, id int64) error

	// DeleteBySellerID removes every book owned by the seller and returns how many were removed.
	DeleteBySellerID(ctx context.Context, sellerID int64) (int64, error)
}
