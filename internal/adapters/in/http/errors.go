package http

import (
	"errors"
	"net/http"

	"fieldops/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON error body of every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps the typed core errors onto HTTP status codes:
//
//	validation errors           422
//	lifecycle/constraint errors 409
//	authorization errors        403
//	missing objects             404
//	anything else               500
func writeError(c echo.Context, err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return c.JSON(httpErr.Code, ErrorResponse{
			Code:    httpErr.Code,
			Message: http.StatusText(httpErr.Code),
		})
	}

	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrTerminalState),
		errors.Is(err, errs.ErrConstraintViolation):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrForbidden):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	}

	return c.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}
