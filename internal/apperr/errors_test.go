package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DjordjeVuckovic/news-portal/internal/apperr"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestNewValidation(t *testing.T) {
	err := apperr.NewValidation("unknown atlas type")

	if err.Error() != "unknown atlas type" {
		t.Errorf("expected 'unknown atlas type', got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Errorf("expected nil unwrap, got %v", err.Unwrap())
	}
}

func TestNewValidationWrap(t *testing.T) {
	inner := fmt.Errorf("parse failed")
	err := apperr.NewValidationWrap("invalid id", inner)

	if err.Error() != "invalid id: parse failed" {
		t.Errorf("expected 'invalid id: parse failed', got %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to return inner error")
	}
}

func TestNotFound_SurvivesFmtWrapping(t *testing.T) {
	original := apperr.NewNotFound("article", 42)
	wrapped := fmt.Errorf("service: %w", fmt.Errorf("details: %w", original))

	var nf *apperr.NotFoundError
	if !errors.As(wrapped, &nf) {
		t.Fatal("errors.As should find NotFoundError through double wrapping")
	}
	assert.Equal(t, int64(42), nf.ID)
	assert.Equal(t, "article not found", nf.Error())
}

func TestValidationError_NotFoundForPlainErrors(t *testing.T) {
	wrapped := fmt.Errorf("storage error: %w", fmt.Errorf("database connection failed"))

	var ve *apperr.ValidationError
	if errors.As(wrapped, &ve) {
		t.Fatal("errors.As should NOT find ValidationError in plain error chain")
	}
}

func TestGlobalErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "validation maps to bad request",
			err:        fmt.Errorf("wrap: %w", apperr.NewValidation("bad type")),
			wantStatus: http.StatusBadRequest,
			wantBody:   `"error":"bad type"`,
		},
		{
			name:       "not found maps to 404",
			err:        apperr.NewNotFound("section", 7),
			wantStatus: http.StatusNotFound,
			wantBody:   `"title":"not found"`,
		},
		{
			name:       "integrity fault is hidden behind 500",
			err:        apperr.NewIntegrity("comment author 3 missing"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"error":"internal server error"`,
		},
		{
			name:       "echo http error passes through",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "nope"),
			wantStatus: http.StatusMethodNotAllowed,
			wantBody:   `"error":"nope"`,
		},
		{
			name:       "plain error is internal",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"error":"internal server error"`,
		},
	}

	handler := apperr.GlobalErrorHandler()
	e := echo.New()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			handler(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
