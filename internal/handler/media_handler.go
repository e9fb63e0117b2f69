package handler

import (
	"encoding/base64"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/contentloom/console/internal/dto"
	"github.com/contentloom/console/internal/models"
	appErrors "github.com/contentloom/console/pkg/errors"
	"github.com/contentloom/console/pkg/response"
	"github.com/contentloom/console/pkg/storage"
)

type mediaStore interface {
	Media() []models.MediaRecord
	AddMedia(m models.MediaRecord)
	RemoveMedia(id string) (models.MediaRecord, bool)
}

// MediaHandler serves the media listing and mutation endpoints.
type MediaHandler struct {
	store    mediaStore
	files    *storage.LocalStorage
	validate *validator.Validate
	maxBytes int64
	logger   *zap.Logger
}

// NewMediaHandler builds a new handler.
func NewMediaHandler(store mediaStore, files *storage.LocalStorage, validate *validator.Validate, maxBytes int64, logger *zap.Logger) *MediaHandler {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MediaHandler{store: store, files: files, validate: validate, maxBytes: maxBytes, logger: logger}
}

// List handles GET /api/media. The response is a bare array; filtering is a
// client concern.
func (h *MediaHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.store.Media())
}

// Upload handles POST /api/media with a base64 JSON payload.
func (h *MediaHandler) Upload(c *gin.Context) {
	var req dto.UploadMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid upload payload"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "file and fileName are required"))
		return
	}

	data, err := base64.StdEncoding.DecodeString(req.File)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "file must be base64 encoded"))
		return
	}
	if h.maxBytes > 0 && int64(len(data)) > h.maxBytes {
		response.Error(c, appErrors.ErrPayloadTooLarge)
		return
	}

	id := uuid.NewString()
	storedName := id + filepath.Ext(req.FileName)
	if _, err := h.files.Save(storedName, data); err != nil {
		h.logger.Error("persist media failed", zap.String("file_name", req.FileName), zap.Error(err))
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store file"))
		return
	}

	record := models.MediaRecord{
		ID:        id,
		Name:      req.FileName,
		URL:       "/media/" + storedName,
		Type:      detectMIME(req.FileName, data),
		SizeBytes: int64(len(data)),
	}
	h.store.AddMedia(record)

	response.Created(c, record)
}

// Delete handles DELETE /api/media/:id.
func (h *MediaHandler) Delete(c *gin.Context) {
	removed, ok := h.store.RemoveMedia(c.Param("id"))
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "media record not found"))
		return
	}
	if err := h.files.Delete(filepath.Base(removed.URL)); err != nil {
		h.logger.Warn("remove media file failed", zap.String("id", removed.ID), zap.Error(err))
	}
	response.NoContent(c)
}

func detectMIME(fileName string, data []byte) string {
	if byExt := mime.TypeByExtension(filepath.Ext(fileName)); byExt != "" {
		return byExt
	}
	return http.DetectContentType(data)
}
