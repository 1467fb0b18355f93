package usecase

import (
	"context"

	"catalog/internal/domain/entity"
)

// TokenTypeBearer is the only token type issued.
const TokenTypeBearer = "bearer"

// SessionUsecase issues bearer tokens and resolves them back to sellers.
type SessionUsecase interface {
	// IssueToken checks the credentials and returns a signed access token.
	// Unknown email and wrong password produce the same error.
	IssueToken(ctx context.Context, input *LoginInput) (*TokenOutput, error)

	// ResolveSeller validates the token and loads the seller named by its subject.
	ResolveSeller(ctx context.Context, token string) (*entity.Seller, error)
}

// LoginInput is the form-encoded login body. Username carries the email.
type LoginInput struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// TokenOutput is returned by the token endpoint.
type TokenOutput struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
