// Package handler contains the HTTP handlers for the catalog API.
package handler

import (
	"strconv"

	domainerrors "catalog/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// bind decodes the request into dst and runs the struct validator.
// Malformed bodies are reported as validation failures.
func bind(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return domainerrors.NewValidationError(domainerrors.FieldError{
			Loc:  []string{"body"},
			Msg:  "invalid request body",
			Type: "value_error.jsondecode",
		})
	}

	if err := c.Validate(dst); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// pathID parses a positive integer path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.NewValidationError(domainerrors.FieldError{
			Loc:  []string{"path", name},
			Msg:  "value is not a valid integer",
			Type: "type_error.integer",
		})
	}

	return id, nil
}
