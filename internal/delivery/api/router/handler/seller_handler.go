package handler

import (
	"net/http"

	"catalog/internal/delivery/api/response"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SellerHandlerParams holds dependencies for SellerHandler, injected by Fx.
type SellerHandlerParams struct {
	fx.In

	SellerUC usecase.SellerUsecase
}

// SellerHandler serves the /sellers resource.
type SellerHandler struct {
	sellerUC usecase.SellerUsecase
}

// NewSellerHandler is the constructor for SellerHandler
func NewSellerHandler(params SellerHandlerParams) *SellerHandler {
	return &SellerHandler{
		sellerUC: params.SellerUC,
	}
}

// CreateSeller registers a seller.
func (h *SellerHandler) CreateSeller(c echo.Context) error {
	var req usecase.RegisterSellerInput
	if err := bind(c, &req); err != nil {
		return err
	}

	seller, err := h.sellerUC.RegisterSeller(c.Request().Context(), &req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newSellerResponse(seller))
}

// ListSellers returns every seller without books.
func (h *SellerHandler) ListSellers(c echo.Context) error {
	sellers, err := h.sellerUC.ListSellers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	out := SellerListResponse{Sellers: make([]SellerResponse, 0, len(sellers))}
	for _, s := range sellers {
		out.Sellers = append(out.Sellers, newSellerResponse(s))
	}

	return response.Success(c, http.StatusOK, out)
}

// GetSeller returns one seller with its books. Any authenticated seller may call it.
func (h *SellerHandler) GetSeller(c echo.Context) error {
	id, err := pathID(c, "seller_id")
	if err != nil {
		return err
	}

	seller, err := h.sellerUC.GetSeller(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSellerWithBooksResponse(seller))
}

// UpdateSeller replaces the seller profile.
func (h *SellerHandler) UpdateSeller(c echo.Context) error {
	id, err := pathID(c, "seller_id")
	if err != nil {
		return err
	}

	var req usecase.UpdateSellerInput
	if err := bind(c, &req); err != nil {
		return err
	}

	seller, err := h.sellerUC.UpdateSeller(c.Request().Context(), id, &req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusAccepted, newSellerResponse(seller))
}

// DeleteSeller removes the seller and its books.
func (h *SellerHandler) DeleteSeller(c echo.Context) error {
	id, err := pathID(c, "seller_id")
	if err != nil {
		return err
	}

	if err := h.sellerUC.DeleteSeller(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c, http.StatusNoContent)
}
