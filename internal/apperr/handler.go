package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

type errorBody struct {
	Error string `json:"error"`
	Title string `json:"title,omitempty"`
	Field string `json:"field,omitempty"`
}

// GlobalErrorHandler maps validation errors to 400, echo HTTP errors to their
// own status and anything else to an opaque 500.
func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := render(err)
		if status >= http.StatusInternalServerError {
			slog.Error("Request failed",
				"error", err,
				"method", c.Request().Method,
				"route", c.Path(),
				"status", status,
			)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, body)
		}
		if err != nil {
			slog.Warn("Failed to write error response", "error", err)
		}
	}
}

func render(err error) (int, errorBody) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, errorBody{Error: ve.Message, Title: "validation error", Field: ve.Field}
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Code >= http.StatusInternalServerError {
			return he.Code, errorBody{Error: http.StatusText(he.Code)}
		}
		return he.Code, errorBody{Error: fmt.Sprint(he.Message)}
	}

	return http.StatusInternalServerError, errorBody{Error: "internal server error"}
}
