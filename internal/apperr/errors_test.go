package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DjordjeVuckovic/press-hunter/internal/apperr"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidation(t *testing.T) {
	err := apperr.NewValidation("roster is empty")

	assert.Equal(t, "roster is empty", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestNewFieldValidation(t *testing.T) {
	err := apperr.NewFieldValidation("teams[1].speaker", "is required")

	assert.Equal(t, "teams[1].speaker: is required", err.Error())
	assert.Equal(t, "teams[1].speaker", err.Field)
}

func TestNewValidationWrap(t *testing.T) {
	inner := fmt.Errorf("strconv.Atoi: parsing \"abc\": invalid syntax")
	err := apperr.NewValidationWrap("teamId must be an integer", inner)

	assert.Equal(t, "teamId must be an integer: strconv.Atoi: parsing \"abc\": invalid syntax", err.Error())
	assert.ErrorIs(t, err, inner)
}

func TestValidationError_SurvivesFmtWrapping(t *testing.T) {
	original := apperr.NewValidation("duplicate team id 42")

	wrapped := fmt.Errorf("failed to load roster: %w", original)
	doubleWrapped := fmt.Errorf("startup: %w", wrapped)

	var ve *apperr.ValidationError
	require.True(t, errors.As(doubleWrapped, &ve))
	assert.Equal(t, "duplicate team id 42", ve.Message)
}

func TestValidationError_NotFoundForPlainErrors(t *testing.T) {
	wrapped := fmt.Errorf("storage error: %w", errors.New("database connection failed"))

	var ve *apperr.ValidationError
	assert.False(t, errors.As(wrapped, &ve))
}

func TestGlobalErrorHandler(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "validation",
			err:      apperr.NewFieldValidation("teamId", "must be a positive integer"),
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"must be a positive integer","title":"validation error","field":"teamId"}`,
		},
		{
			name:     "echo http error",
			err:      echo.NewHTTPError(http.StatusNotFound, "not found"),
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"not found"}`,
		},
		{
			name:     "echo server error hides message",
			err:      echo.NewHTTPError(http.StatusServiceUnavailable, "pool exhausted"),
			wantCode: http.StatusServiceUnavailable,
			wantBody: `{"error":"Service Unavailable"}`,
		},
		{
			name:     "unexpected",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			apperr.GlobalErrorHandler()(tt.err, c)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
