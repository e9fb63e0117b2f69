package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contentloom/console/internal/models"
)

func TestContentTypeEndpointShape(t *testing.T) {
	router, _ := newTestRouter(t, 1<<20)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/content-types/articles", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var ct models.ContentType
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ct))
	assert.Equal(t, "Articles", ct.DisplayName)
	require.NotEmpty(t, ct.Fields)
	assert.Equal(t, "title", ct.Fields[0].Name)
	assert.Equal(t, models.FieldTypeString, ct.Fields[0].Type)
}

func TestContentTypeNotFound(t *testing.T) {
	router, _ := newTestRouter(t, 1<<20)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/content-types/missing", nil))
	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "content type not found", body["message"])
}

func TestEntriesEndpointEnvelope(t *testing.T) {
	router, _ := newTestRouter(t, 1<<20)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/content/articles?page=1&limit=2", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Entries []models.Record `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Len(t, envelope.Entries, 2)
}

func TestEntriesUnknownContentType(t *testing.T) {
	router, _ := newTestRouter(t, 1<<20)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/content/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
