package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	JSONResponse(rec, map[string]string{"hello": "world"}, http.StatusOK)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "world", body["hello"])
}

func TestErrorResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	ErrorResponse(rec, "something broke", http.StatusBadRequest)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body StandardResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Bad Request", body.Error)
	assert.Equal(t, "something broke", body.Message)
}

func TestNotFoundResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFoundResponse(rec, "pokemon")

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body StandardResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "pokemon not found", body.Message)
}

func TestInternalErrorResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	InternalErrorResponse(rec, "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body StandardResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body.Message)
}

func TestHealthHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)

	HealthHandler("pokedex")(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "pokedex", body.Module)
}
