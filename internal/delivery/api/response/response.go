// Package response writes API payloads. Successful responses are the resource itself,
// errors are {"detail": ...}.
package response

import (
	"net/http"

	domainerrors "catalog/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// HeaderWWWAuthenticate is sent with every 401 response.
const HeaderWWWAuthenticate = "WWW-Authenticate"

// Success writes data as the JSON body.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// NoContent writes an empty response with the given status.
func NoContent(c echo.Context, statusCode int) error {
	return c.NoContent(statusCode)
}

// PNG writes a PNG image body.
func PNG(c echo.Context, data []byte) error {
	return c.Blob(http.StatusOK, "image/png", data)
}

// Error writes an error response. detail is a message or a list of field errors.
func Error(c echo.Context, statusCode int, detail any) error {
	if statusCode == http.StatusUnauthorized {
		c.Response().Header().Set(HeaderWWWAuthenticate, "Bearer")
	}

	if c.Request().Method == http.MethodHead {
		return c.NoContent(statusCode)
	}

	return c.JSON(statusCode, domainerrors.ErrorResponse{Detail: detail})
}

// AppError writes an AppError. Validation errors expose their field list, 5xx errors only their generic message.
func AppError(c echo.Context, err domainerrors.AppError) error {
	if verr, ok := err.(*domainerrors.ValidationError); ok {
		return Error(c, verr.HTTPCode(), verr.Fields())
	}

	return Error(c, err.HTTPCode(), err.Message())
}

// Health writes the liveness payload.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, domainerrors.HealthResponse{Status: "ok"})
}
