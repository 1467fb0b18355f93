package handler

import "catalog/internal/domain/entity"

// SellerResponse is the public view of a seller. The password hash is never exposed.
type SellerResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// SellerWithBooksResponse is returned by the seller detail endpoint.
type SellerWithBooksResponse struct {
	SellerResponse
	Books []BookResponse `json:"books"`
}

// SellerListResponse wraps the seller list.
type SellerListResponse struct {
	Sellers []SellerResponse `json:"sellers"`
}

// BookResponse omits seller_id; used where the owner is implied.
type BookResponse struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Author     string `json:"author"`
	Year       int    `json:"year"`
	CountPages int    `json:"count_pages"`
}

// BookWithSellerResponse is the standalone book view.
type BookWithSellerResponse struct {
	BookResponse
	SellerID int64 `json:"seller_id"`
}

// BookListResponse wraps the book list.
type BookListResponse struct {
	Books []BookWithSellerResponse `json:"books"`
}

func newSellerResponse(s *entity.Seller) SellerResponse {
	return SellerResponse{
		ID:        s.ID,
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Email:     s.Email,
	}
}

func newSellerWithBooksResponse(s *entity.Seller) SellerWithBooksResponse {
	books := make([]BookResponse, 0, len(s.Books))
	for _, b := range s.Books {
		books = append(books, newBookResponse(b))
	}

	return SellerWithBooksResponse{
		SellerResponse: newSellerResponse(s),
		Books:          books,
	}
}

func newBookResponse(b *entity.Book) BookResponse {
	return BookResponse{
		ID:         b.ID,
		Title:      b.Title,
		Author:     b.Author,
		Year:       b.Year,
		CountPages: b.CountPages,
	}
}

func newBookWithSellerResponse(b *entity.Book) BookWithSellerResponse {
	return BookWithSellerResponse{
		BookResponse: newBookResponse(b),
		SellerID:     b.SellerID,
	}
}
