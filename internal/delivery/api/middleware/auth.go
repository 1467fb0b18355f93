package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const bearerScheme = "bearer"

// AuthMiddleware resolves bearer tokens to sellers.
type AuthMiddleware struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessionUC usecase.SessionUsecase, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{sessionUC: sessionUC, logger: logger}
}

// Authenticate requires a bearer token that resolves to an existing seller.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return errors.WithStack(domainerrors.ErrNotAuthenticated)
		}

		seller, err := m.sessionUC.ResolveSeller(c.Request().Context(), token)
		if err != nil {
			return errors.WithStack(err)
		}
		deliverycontext.SetSeller(c, seller)

		return next(c)
	}
}

// OptionalAuthenticate sets the seller when a valid bearer token is sent and
// otherwise lets the request through anonymously.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return next(c)
		}

		ctx := c.Request().Context()
		seller, err := m.sessionUC.ResolveSeller(ctx, token)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Ignoring unusable bearer token", slog.Any("error", err))

			return next(c)
		}
		deliverycontext.SetSeller(c, seller)

		return next(c)
	}
}

// CurrentSeller returns the seller set by Authenticate or OptionalAuthenticate, or nil.
func CurrentSeller(c echo.Context) *entity.Seller {
	seller, _ := deliverycontext.GetSeller(c)

	return seller
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}
