package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/tumpangan/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessResponse(t *testing.T) {
	c, rec := newTestContext()

	err := SuccessResponse(c, http.StatusOK, "done", map[string]int{"count": 2})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "done", body.Message)
}

func TestAppErrorResponse_CodeMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{apperrors.NotFound("trip not found"), http.StatusNotFound, "NOT_FOUND"},
		{apperrors.Validation("no seats available"), http.StatusBadRequest, "VALIDATION_FAILED"},
		{apperrors.Conflict("reservation already exists"), http.StatusConflict, "CONFLICT"},
		{apperrors.Authorization("not your reservation"), http.StatusForbidden, "AUTHORIZATION_FAILED"},
		{apperrors.Authentication("no session"), http.StatusUnauthorized, "AUTHENTICATION_FAILED"},
		{errors.New("db exploded"), http.StatusInternalServerError, "INTERNAL"},
	}

	for _, tt := range tests {
		c, rec := newTestContext()
		require.NoError(t, AppErrorResponse(c, tt.err))
		assert.Equal(t, tt.status, rec.Code)

		var body ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, tt.code, body.Code)
	}
}

func TestAppErrorResponse_HidesInternalDetail(t *testing.T) {
	c, rec := newTestContext()
	require.NoError(t, AppErrorResponse(c, errors.New("pq: connection refused")))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "internal server error", body.Error)
}
