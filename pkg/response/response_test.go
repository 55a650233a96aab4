package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var body Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestSuccessWithMeta(t *testing.T) {
	rec := httptest.NewRecorder()
	SuccessWithMeta(rec, http.StatusOK, "ok", []int{1, 2}, &Meta{Total: 25, TotalPages: 3, CurrentPage: 2, Limit: 10})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var raw map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&raw))
	meta := raw["meta"].(map[string]any)
	assert.Equal(t, float64(3), meta["totalPages"])
	assert.Equal(t, float64(2), meta["currentPage"])
}

func TestServerError_HidesDetailOutsideDebug(t *testing.T) {
	SetDebug(false)
	rec := httptest.NewRecorder()
	ServerError(rec, "Failed to save", errors.New("disk full"))

	body := decode(t, rec)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, body.Success)
	assert.Nil(t, body.Error)
}

func TestServerError_ShowsDetailInDebug(t *testing.T) {
	SetDebug(true)
	defer SetDebug(false)

	rec := httptest.NewRecorder()
	ServerError(rec, "Failed to save", errors.New("disk full"))

	body := decode(t, rec)
	assert.Equal(t, "disk full", body.Error)
}
