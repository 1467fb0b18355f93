package handler

import (
	"net/http"

	"catalog/internal/delivery/api/response"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TokenHandler issues access tokens.
type TokenHandler struct {
	sessionUC usecase.SessionUsecase
}

// NewTokenHandler is the constructor for TokenHandler, injected by Fx.
func NewTokenHandler(sessionUC usecase.SessionUsecase) *TokenHandler {
	return &TokenHandler{sessionUC: sessionUC}
}

// IssueToken exchanges form credentials for a bearer token.
func (h *TokenHandler) IssueToken(c echo.Context) error {
	var req usecase.LoginInput
	if err := bind(c, &req); err != nil {
		return err
	}

	out, err := h.sessionUC.IssueToken(c.Request().Context(), &req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, out)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Health(c)
}
