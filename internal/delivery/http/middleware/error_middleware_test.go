package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"warden/internal/delivery/http/response"
	domainerrors "warden/internal/domain/errors"
	"warden/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, *response.ErrorResponse, string) {
	t.Helper()

	var logs bytes.Buffer
	handler := NewErrorMiddleware(slog.New(slog.NewTextHandler(&logs, nil)))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/auth/me", nil), rec)
	handler.HandleHTTPError(err, c)

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, &body, logs.String()
}

func TestHandleHTTPError_WrappedForeignErrorIsInternal(t *testing.T) {
	wrapped := echo.NewHTTPError(http.StatusInternalServerError).WithInternal(errors.New("pool exhausted"))

	rec, body, logs := handleError(t, wrapped)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, domainerrors.ErrInternalError.ErrorCode(), body.Error.Code)
	assert.NotContains(t, rec.Body.String(), "pool exhausted")
	assert.Contains(t, logs, "Unhandled error")
	assert.Contains(t, logs, "pool exhausted")
}

func TestHandleHTTPError_EchoError(t *testing.T) {
	rec, body, logs := handleError(t, echo.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
	assert.Empty(t, logs)
}

func TestHandleHTTPError_TaxonomyError(t *testing.T) {
	rec, body, _ := handleError(t, errors.WithStack(domainerrors.ErrAccountInactive))
	assert.Equal(t, domainerrors.ErrAccountInactive.HTTPCode(), rec.Code)
	assert.Equal(t, domainerrors.ErrAccountInactive.ErrorCode(), body.Error.Code)
}
