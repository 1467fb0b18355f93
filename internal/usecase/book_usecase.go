package usecase

import (
	"context"

	"catalog/internal/domain/entity"
)

// BookUsecase defines the interface for book listing operations.
type BookUsecase interface {
	// CreateBook stores a book owned by the authenticated seller.
	CreateBook(ctx context.Context, owner *entity.Seller, input *BookInput) (*entity.Book, error)

	ListBooks(ctx context.Context) ([]*entity.Book, error)
	GetBook(ctx context.Context, id int64) (*entity.Book, error)

	// UpdateBook replaces the book details. caller is checked against the owner when ownership is enforced.
	UpdateBook(ctx context.Context, caller *entity.Seller, id int64, input *BookInput) (*entity.Book, error)

	// DeleteBook removes the book. caller may be nil unless ownership is enforced.
	DeleteBook(ctx context.Context, caller *entity.Seller, id int64) error

	// BookQRCode renders a PNG QR code for the public listing.
	BookQRCode(ctx context.Context, id int64) ([]byte, error)
}

// BookInput is the body of book create and update requests. Any seller_id sent by the client is ignored.
type BookInput struct {
	Title  string `json:"title" validate:"required"`
	Author string `json:"author" validate:"required"`
	Year   int    `json:"year" validate:"required"`
	Pages  *int   `json:"pages" validate:"required"`
}

// Details maps the request body onto the domain value.
func (in *BookInput) Details() entity.BookDetails {
	details := entity.BookDetails{
		Title:  in.Title,
		Author: in.Author,
		Year:   in.Year,
	}
	if in.Pages != nil {
		details.CountPages = *in.Pages
	}

	return details
}
