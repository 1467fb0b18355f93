// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"catalog/internal/domain/entity"
)

// SellerUsecase defines the interface for seller account operations.
type SellerUsecase interface {
	// RegisterSeller validates the profile and password, hashes the password and stores the seller.
	RegisterSeller(ctx context.Context, input *RegisterSellerInput) (*entity.Seller, error)

	// ListSellers returns every seller without books.
	ListSellers(ctx context.Context) ([]*entity.Seller, error)

	// GetSeller returns the seller together with the books it owns.
	GetSeller(ctx context.Context, id int64) (*entity.Seller, error)

	// UpdateSeller replaces first name, last name and email.
	UpdateSeller(ctx context.Context, id int64, input *UpdateSellerInput) (*entity.Seller, error)

	// DeleteSeller removes the seller and all of its books in one transaction.
	DeleteSeller(ctx context.Context, id int64) error
}

// --- Input DTOs ---

// RegisterSellerInput defines the data required to register a seller.
type RegisterSellerInput struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

// UpdateSellerInput defines the profile fields a seller may change. The password cannot be changed here.
type UpdateSellerInput struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required"`
}
