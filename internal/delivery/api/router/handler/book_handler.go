package handler

import (
	"net/http"

	"catalog/internal/delivery/api/middleware"
	"catalog/internal/delivery/api/response"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// BookHandlerParams holds dependencies for BookHandler, injected by Fx.
type BookHandlerParams struct {
	fx.In

	BookUC usecase.BookUsecase
}

// BookHandler serves the /books resource.
type BookHandler struct {
	bookUC usecase.BookUsecase
}

// NewBookHandler is the constructor for BookHandler
func NewBookHandler(params BookHandlerParams) *BookHandler {
	return &BookHandler{bookUC: params.BookUC}
}

// CreateBook stores a book owned by the authenticated seller.
func (h *BookHandler) CreateBook(c echo.Context) error {
	var req usecase.BookInput
	if err := bind(c, &req); err != nil {
		return err
	}

	book, err := h.bookUC.CreateBook(c.Request().Context(), middleware.CurrentSeller(c), &req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newBookWithSellerResponse(book))
}

// ListBooks returns all books.
func (h *BookHandler) ListBooks(c echo.Context) error {
	books, err := h.bookUC.ListBooks(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	out := BookListResponse{Books: make([]BookWithSellerResponse, 0, len(books))}
	for _, b := range books {
		out.Books = append(out.Books, newBookWithSellerResponse(b))
	}

	return response.Success(c, http.StatusOK, out)
}

// GetBook returns one book.
func (h *BookHandler) GetBook(c echo.Context) error {
	id, err := pathID(c, "book_id")
	if err != nil {
		return err
	}

	book, err := h.bookUC.GetBook(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newBookWithSellerResponse(book))
}

// UpdateBook replaces title, author, year and pages.
func (h *BookHandler) UpdateBook(c echo.Context) error {
	id, err := pathID(c, "book_id")
	if err != nil {
		return err
	}

	var req usecase.BookInput
	if err := bind(c, &req); err != nil {
		return err
	}

	book, err := h.bookUC.UpdateBook(c.Request().Context(), middleware.CurrentSeller(c), id, &req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusAccepted, newBookWithSellerResponse(book))
}

// DeleteBook removes a book.
func (h *BookHandler) DeleteBook(c echo.Context) error {
	id, err := pathID(c, "book_id")
	if err != nil {
		return err
	}

	if err := h.bookUC.DeleteBook(c.Request().Context(), middleware.CurrentSeller(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c, http.StatusNoContent)
}

// BookQRCode renders the listing QR label as PNG.
func (h *BookHandler) BookQRCode(c echo.Context) error {
	id, err := pathID(c, "book_id")
	if err != nil {
		return err
	}

	png, err := h.bookUC.BookQRCode(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.PNG(c, png)
}
