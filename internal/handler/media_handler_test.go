package handler

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/contentloom/console/internal/dto"
	"github.com/contentloom/console/internal/models"
	"github.com/contentloom/console/internal/store"
	"github.com/contentloom/console/pkg/config"
	"github.com/contentloom/console/pkg/storage"
)

func newTestRouter(t *testing.T, maxUploadBytes int64) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	files, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	st := store.Seeded()
	cfg := &config.Config{Server: config.ServerConfig{MaxUploadBytes: maxUploadBytes}}
	return NewRouter(cfg, st, files, nil, zap.NewNop()), st
}

func postMedia(t *testing.T, router *gin.Engine, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/media", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestMediaUploadCreatesRecord(t *testing.T) {
	router, st := newTestRouter(t, 1<<20)

	w := postMedia(t, router, dto.UploadMediaRequest{
		File:     base64.StdEncoding.EncodeToString([]byte("png-bytes")),
		FileName: "logo.png",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.MediaRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "logo.png", created.Name)
	assert.Equal(t, "image/png", created.Type)
	assert.Equal(t, int64(9), created.SizeBytes)

	require.Len(t, st.Media(), 1)
}

func TestMediaUploadRejectsMissingFields(t *testing.T) {
	router, _ := newTestRouter(t, 1<<20)

	w := postMedia(t, router, map[string]string{"fileName": "x.png"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body["message"])
}

func TestMediaUploadRejectsInvalidBase64(t *testing.T) {
	router, _ := newTestRouter(t, 1<<20)

	w := postMedia(t, router, dto.UploadMediaRequest{File: "not-base64!!!", FileName: "x.png"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMediaUploadRejectsOversizedPayload(t *testing.T) {
	router, _ := newTestRouter(t, 4)

	w := postMedia(t, router, dto.UploadMediaRequest{
		File:     base64.StdEncoding.EncodeToString([]byte("way too large")),
		FileName: "big.bin",
	})
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestMediaListIsBareArray(t *testing.T) {
	router, st := newTestRouter(t, 1<<20)
	st.AddMedia(models.MediaRecord{ID: "m1", Name: "a.txt"})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/media", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var listed []models.MediaRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "m1", listed[0].ID)
}

func TestMediaDelete(t *testing.T) {
	router, st := newTestRouter(t, 1<<20)
	st.AddMedia(models.MediaRecord{ID: "m1", Name: "a.txt", URL: "/media/m1.txt"})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/media/m1", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, st.Media())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/media/m1", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
