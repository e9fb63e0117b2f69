package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/contentloom/console/internal/models"
)

// backendReader is the slice of the CMS client the catalog needs.
type backendReader interface {
	GetContentType(ctx context.Context, apiID string) (*models.ContentType, error)
	ListEntries(ctx context.Context, apiID string, page, limit int) ([]models.Record, error)
	ListMedia(ctx context.Context) ([]models.MediaRecord, error)
}

// CatalogService is the read-through cache for schemas, record pages and the
// media listing, keyed by content-type id. It is shared read-mostly state;
// only a successful mutation (upload, delete) invalidates it.
type CatalogService struct {
	api      backendReader
	metrics  *MetricsService
	logger   *zap.Logger
	pageSize int

	mu          sync.RWMutex
	schemas     map[string]*models.ContentType
	entries     map[string][]models.Record
	media       []models.MediaRecord
	mediaLoaded bool
}

// NewCatalogService builds a catalog backed by the given client.
func NewCatalogService(api backendReader, metrics *MetricsService, pageSize int, logger *zap.Logger) *CatalogService {
	if pageSize <= 0 {
		pageSize = 20
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{
		api:      api,
		metrics:  metrics,
		logger:   logger,
		pageSize: pageSize,
		schemas:  make(map[string]*models.ContentType),
		entries:  make(map[string][]models.Record),
	}
}

// ContentType returns the cached schema for the given api id, fetching it on
// first use.
func (s *CatalogService) ContentType(ctx context.Context, apiID string) (*models.ContentType, error) {
	s.mu.RLock()
	ct, ok := s.schemas[apiID]
	s.mu.RUnlock()
	if ok {
		s.metrics.RecordCacheLookup(true)
		return ct, nil
	}
	s.metrics.RecordCacheLookup(false)

	start := time.Now()
	fetched, err := s.api.GetContentType(ctx, apiID)
	s.metrics.ObserveFetch("content_type", err == nil, time.Since(start))
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.schemas[apiID] = fetched
	s.mu.Unlock()
	return fetched, nil
}

// Entries returns the cached first page of records for a content type. The
// picker shows a single fixed-size page; larger collections truncate.
func (s *CatalogService) Entries(ctx context.Context, apiID string) ([]models.Record, error) {
	s.mu.RLock()
	cached, ok := s.entries[apiID]
	s.mu.RUnlock()
	if ok {
		s.metrics.RecordCacheLookup(true)
		return cached, nil
	}
	s.metrics.RecordCacheLookup(false)

	start := time.Now()
	fetched, err := s.api.ListEntries(ctx, apiID, 1, s.pageSize)
	s.metrics.ObserveFetch("entries", err == nil, time.Since(start))
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.entries[apiID] = fetched
	s.mu.Unlock()
	return fetched, nil
}

// Media returns the cached media listing, fetching it on first use or after
// invalidation.
func (s *CatalogService) Media(ctx context.Context) ([]models.MediaRecord, error) {
	s.mu.RLock()
	loaded, cached := s.mediaLoaded, s.media
	s.mu.RUnlock()
	if loaded {
		s.metrics.RecordCacheLookup(true)
		return cached, nil
	}
	s.metrics.RecordCacheLookup(false)

	start := time.Now()
	fetched, err := s.api.ListMedia(ctx)
	s.metrics.ObserveFetch("media", err == nil, time.Since(start))
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.media = fetched
	s.mediaLoaded = true
	s.mu.Unlock()
	return fetched, nil
}

// MediaRecords adapts the media listing for the generic picker surfaces.
func (s *CatalogService) MediaRecords(ctx context.Context) ([]models.Record, error) {
	media, err := s.Media(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]models.Record, 0, len(media))
	for _, m := range media {
		records = append(records, m.AsRecord())
	}
	return records, nil
}

// InvalidateMedia drops the cached media listing so the next read refetches.
func (s *CatalogService) InvalidateMedia() {
	s.mu.Lock()
	s.media = nil
	s.mediaLoaded = false
	s.mu.Unlock()
	s.logger.Debug("media cache invalidated")
}

// InvalidateEntries drops the cached record page for one content type.
func (s *CatalogService) InvalidateEntries(apiID string) {
	s.mu.Lock()
	delete(s.entries, apiID)
	s.mu.Unlock()
	s.logger.Debug("entries cache invalidated", zap.String("api_id", apiID))
}
