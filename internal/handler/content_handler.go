package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/contentloom/console/internal/dto"
	"github.com/contentloom/console/internal/models"
	appErrors "github.com/contentloom/console/pkg/errors"
	"github.com/contentloom/console/pkg/response"
)

type contentStore interface {
	ContentType(apiID string) (models.ContentType, bool)
	Entries(apiID string, page, limit int) ([]models.Record, bool)
}

// ContentHandler serves the read-only content-type and record endpoints.
type ContentHandler struct {
	store contentStore
}

// NewContentHandler builds a new handler.
func NewContentHandler(store contentStore) *ContentHandler {
	return &ContentHandler{store: store}
}

// GetContentType handles GET /api/content-types/:apiId.
func (h *ContentHandler) GetContentType(c *gin.Context) {
	ct, ok := h.store.ContentType(c.Param("apiId"))
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "content type not found"))
		return
	}
	response.JSON(c, http.StatusOK, ct)
}

// ListEntries handles GET /api/content/:apiId?page=&limit=.
func (h *ContentHandler) ListEntries(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	records, ok := h.store.Entries(c.Param("apiId"), page, limit)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "content type not found"))
		return
	}
	response.JSON(c, http.StatusOK, dto.EntriesResponse{Entries: records})
}
