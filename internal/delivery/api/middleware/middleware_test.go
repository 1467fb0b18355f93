package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/infra/ratelimit"
	mockusecase "catalog/internal/mocks/usecase"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeDetail(t *testing.T, rec *httptest.ResponseRecorder) any {
	t.Helper()

	var body domainerrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Detail
}

func TestHandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail any
		wantAuth   bool
	}{
		{
			name:       "app error",
			err:        errors.WithStack(domainerrors.ErrBookNotFound),
			wantStatus: http.StatusNotFound,
			wantDetail: "Book not found",
		},
		{
			name:       "unauthorized carries challenge",
			err:        errors.WithStack(domainerrors.ErrInvalidToken),
			wantStatus: http.StatusUnauthorized,
			wantDetail: "Incorrect JWT token",
			wantAuth:   true,
		},
		{
			name:       "database error hides internals",
			err:        domainerrors.NewDatabaseExecuteError(errors.New("relation sellers does not exist"), "find seller"),
			wantStatus: http.StatusInternalServerError,
			wantDetail: "Internal Server Error",
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"),
			wantStatus: http.StatusMethodNotAllowed,
			wantDetail: "Method Not Allowed",
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantDetail: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext(httptest.NewRequest(http.MethodGet, "/", nil))

			NewErrorMiddleware(discardLogger()).HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantDetail, decodeDetail(t, rec))
			if tt.wantAuth {
				assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
			} else {
				assert.Empty(t, rec.Header().Get("WWW-Authenticate"))
			}
		})
	}
}

func TestHandleHTTPError_ValidationFields(t *testing.T) {
	c, rec := newContext(httptest.NewRequest(http.MethodPost, "/", nil))
	verr := domainerrors.NewValidationError()
	verr.Add([]string{"body", "year"}, "Year is wrong!", "value_error")

	NewErrorMiddleware(discardLogger()).HandleHTTPError(errors.WithStack(verr), c)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"detail":[{"loc":["body","year"],"msg":"Year is wrong!","type":"value_error"}]}`, rec.Body.String())
}

func TestAuthenticate(t *testing.T) {
	seller := &entity.Seller{ID: 7, Email: "a@x.com"}

	t.Run("missing header", func(t *testing.T) {
		sessionUC := mockusecase.NewMockSessionUsecase(t)
		c, _ := newContext(httptest.NewRequest(http.MethodGet, "/", nil))

		err := NewAuthMiddleware(sessionUC, discardLogger()).Authenticate(func(echo.Context) error {
			t.Fatal("handler must not run")

			return nil
		})(c)

		assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		sessionUC := mockusecase.NewMockSessionUsecase(t)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Basic dXNlcjpwYXNz")
		c, _ := newContext(req)

		err := NewAuthMiddleware(sessionUC, discardLogger()).Authenticate(func(echo.Context) error { return nil })(c)

		assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
	})

	t.Run("resolved seller is stored", func(t *testing.T) {
		sessionUC := mockusecase.NewMockSessionUsecase(t)
		sessionUC.On("ResolveSeller", mock.Anything, "tok").Return(seller, nil)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "bearer tok")
		c, _ := newContext(req)

		var got *entity.Seller
		err := NewAuthMiddleware(sessionUC, discardLogger()).Authenticate(func(c echo.Context) error {
			got = CurrentSeller(c)

			return nil
		})(c)

		require.NoError(t, err)
		assert.Equal(t, seller, got)
	})

	t.Run("resolver failure", func(t *testing.T) {
		sessionUC := mockusecase.NewMockSessionUsecase(t)
		sessionUC.On("ResolveSeller", mock.Anything, "tok").Return(nil, domainerrors.ErrInvalidToken)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer tok")
		c, _ := newContext(req)

		err := NewAuthMiddleware(sessionUC, discardLogger()).Authenticate(func(echo.Context) error { return nil })(c)

		assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	})
}

func TestOptionalAuthenticate(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		sessionUC := mockusecase.NewMockSessionUsecase(t)
		c, _ := newContext(httptest.NewRequest(http.MethodDelete, "/", nil))

		called := false
		err := NewAuthMiddleware(sessionUC, discardLogger()).OptionalAuthenticate(func(c echo.Context) error {
			called = true
			assert.Nil(t, CurrentSeller(c))

			return nil
		})(c)

		require.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("invalid token falls back to anonymous", func(t *testing.T) {
		sessionUC := mockusecase.NewMockSessionUsecase(t)
		sessionUC.On("ResolveSeller", mock.Anything, "expired").Return(nil, domainerrors.ErrInvalidToken)
		req := httptest.NewRequest(http.MethodDelete, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer expired")
		c, _ := newContext(req)

		err := NewAuthMiddleware(sessionUC, discardLogger()).OptionalAuthenticate(func(c echo.Context) error {
			_, ok := deliverycontext.GetSeller(c)
			assert.False(t, ok)

			return nil
		})(c)

		require.NoError(t, err)
	})
}

func TestLoginAttempts(t *testing.T) {
	mr := miniredis.RunT(t)
	limiter, err := ratelimit.NewFixedWindowLimiter(mr.Addr(), "", "test", 1, time.Hour, discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = limiter.Close() })

	m := NewRateLimitMiddleware(limiter, discardLogger())
	next := func(c echo.Context) error { return c.NoContent(http.StatusCreated) }

	c, rec := newContext(httptest.NewRequest(http.MethodPost, "/api/v1/token", nil))
	require.NoError(t, m.LoginAttempts(next)(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	c, _ = newContext(httptest.NewRequest(http.MethodPost, "/api/v1/token", nil))
	assert.ErrorIs(t, m.LoginAttempts(next)(c), domainerrors.ErrTooManyLoginAttempts)
}

func TestLoginAttempts_Disabled(t *testing.T) {
	m := NewRateLimitMiddleware(nil, discardLogger())

	for range 5 {
		c, rec := newContext(httptest.NewRequest(http.MethodPost, "/api/v1/token", nil))
		require.NoError(t, m.LoginAttempts(func(c echo.Context) error { return c.NoContent(http.StatusCreated) })(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	}
}
