package service

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/contentloom/console/internal/models"
	appErrors "github.com/contentloom/console/pkg/errors"
)

const (
	// Displayed progress creeps toward this ceiling while the real transfer
	// is in flight; the transfer itself exposes no progress signal.
	progressCeiling = 90
	progressStep    = 10
)

// ErrBatchInFlight rejects a second Run while a batch is still uploading.
var ErrBatchInFlight = appErrors.New("BATCH_IN_FLIGHT", http.StatusConflict, "an upload batch is already running")

// mediaUploader is the slice of the CMS client the pipeline needs.
type mediaUploader interface {
	UploadMedia(ctx context.Context, fileName string, data []byte) (*models.MediaRecord, error)
}

// mediaInvalidator lets the pipeline expire the host's media listing.
type mediaInvalidator interface {
	InvalidateMedia()
}

// BatchListener receives UI notifications from a running batch. Callbacks may
// fire from a timer goroutine.
type BatchListener interface {
	ItemUpdated(item models.UploadItem)
	BatchFinished(summary models.BatchSummary)
	CloseDialog()
}

type nopListener struct{}

func (nopListener) ItemUpdated(models.UploadItem)     {}
func (nopListener) BatchFinished(models.BatchSummary) {}
func (nopListener) CloseDialog()                      {}

// UploadService drives a multi-file upload batch: one file's network call at
// a time, per-file progress, independent failure isolation and an aggregate
// summary. State is dialog-local and discarded on reset.
type UploadService struct {
	api            mediaUploader
	catalog        mediaInvalidator
	metrics        *MetricsService
	logger         *zap.Logger
	progressTick   time.Duration
	autoCloseDelay time.Duration

	mu       sync.Mutex
	order    []string
	items    map[string]*models.UploadItem
	payloads map[string][]byte
	inFlight bool
}

// NewUploadService builds an upload pipeline.
func NewUploadService(api mediaUploader, catalog mediaInvalidator, metrics *MetricsService, progressTick, autoCloseDelay time.Duration, logger *zap.Logger) *UploadService {
	if progressTick <= 0 {
		progressTick = 150 * time.Millisecond
	}
	if autoCloseDelay <= 0 {
		autoCloseDelay = 500 * time.Millisecond
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UploadService{
		api:            api,
		catalog:        catalog,
		metrics:        metrics,
		logger:         logger,
		progressTick:   progressTick,
		autoCloseDelay: autoCloseDelay,
		items:          make(map[string]*models.UploadItem),
		payloads:       make(map[string][]byte),
	}
}

// Add registers a local file with the batch and returns its tracking key.
// Same-name files added together get distinct keys.
func (s *UploadService) Add(fileName string, data []byte) string {
	key := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = append(s.order, key)
	s.items[key] = &models.UploadItem{
		Key:       key,
		FileName:  fileName,
		SizeBytes: int64(len(data)),
		Status:    models.UploadPending,
	}
	s.payloads[key] = data
	return key
}

// Remove dismisses a pending or settled item. The in-flight item cannot be
// dismissed.
func (s *UploadService) Remove(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[key]
	if !ok || item.Status == models.UploadUploading {
		return false
	}
	delete(s.items, key)
	delete(s.payloads, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Reset discards all items, as on dialog close. Refused while uploading.
func (s *UploadService) Reset() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight {
		return false
	}
	s.order = nil
	s.items = make(map[string]*models.UploadItem)
	s.payloads = make(map[string][]byte)
	return true
}

// Busy reports whether a batch is in flight; the host suppresses dialog close
// while it is.
func (s *UploadService) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}

// Items returns a snapshot of the batch in submission order.
func (s *UploadService) Items() []models.UploadItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make([]models.UploadItem, 0, len(s.order))
	for _, key := range s.order {
		if item, ok := s.items[key]; ok {
			snapshot = append(snapshot, *item)
		}
	}
	return snapshot
}

// Run uploads all pending items sequentially in submission order. A failed
// file never aborts the batch. With zero pending files Run is a no-op: no
// network call, no summary. After the loop the media listing is invalidated
// regardless of failures; the dialog auto-closes only when every file made it.
func (s *UploadService) Run(ctx context.Context, listener BatchListener) (*models.BatchSummary, error) {
	if listener == nil {
		listener = nopListener{}
	}

	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return nil, ErrBatchInFlight
	}
	pending := make([]string, 0, len(s.order))
	for _, key := range s.order {
		if item, ok := s.items[key]; ok && item.Status == models.UploadPending {
			pending = append(pending, key)
		}
	}
	if len(pending) == 0 {
		s.mu.Unlock()
		return nil, nil
	}
	s.inFlight = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	successCount := 0
	for _, key := range pending {
		if s.uploadOne(ctx, key, listener) {
			successCount++
		}
	}

	s.catalog.InvalidateMedia()

	summary := models.BatchSummary{SuccessCount: successCount, TotalCount: len(pending)}
	s.logger.Info("upload batch finished",
		zap.Int("success", summary.SuccessCount),
		zap.Int("total", summary.TotalCount),
	)
	listener.BatchFinished(summary)

	if summary.AllSucceeded() {
		time.AfterFunc(s.autoCloseDelay, listener.CloseDialog)
	}
	return &summary, nil
}

// uploadOne transfers a single file: it starts the progress ticker, performs
// the call, and settles the item. The ticker is cancelled on both paths the
// moment the transfer settles.
func (s *UploadService) uploadOne(ctx context.Context, key string, listener BatchListener) bool {
	item, payload := s.markUploading(key)
	if item == nil {
		return false
	}
	listener.ItemUpdated(*item)

	simCtx, cancelSim := context.WithCancel(ctx)
	var simDone sync.WaitGroup
	simDone.Add(1)
	go func() {
		defer simDone.Done()
		s.simulateProgress(simCtx, key, listener)
	}()

	start := time.Now()
	created, err := s.api.UploadMedia(ctx, item.FileName, payload)
	cancelSim()
	simDone.Wait()
	s.metrics.ObserveUpload(err == nil, time.Since(start))

	if err != nil {
		failed := s.markFailed(key, appErrors.FromError(err).Message)
		s.logger.Warn("file upload failed", zap.String("file_name", item.FileName), zap.Error(err))
		listener.ItemUpdated(failed)
		return false
	}

	done := s.markDone(key)
	s.logger.Debug("file uploaded", zap.String("file_name", item.FileName), zap.String("media_id", created.ID))
	listener.ItemUpdated(done)
	return true
}

// simulateProgress advances displayed progress toward the ceiling while the
// real transfer is in flight.
func (s *UploadService) simulateProgress(ctx context.Context, key string, listener BatchListener) {
	ticker := time.NewTicker(s.progressTick)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			item, bumped := s.bumpProgress(key)
			if bumped {
				listener.ItemUpdated(item)
			}
		}
	}
}

func (s *UploadService) markUploading(key string) (*models.UploadItem, []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[key]
	if !ok {
		return nil, nil
	}
	item.Status = models.UploadUploading
	item.Progress = 0
	snapshot := *item
	return &snapshot, s.payloads[key]
}

func (s *UploadService) bumpProgress(key string) (models.UploadItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[key]
	if !ok || item.Status != models.UploadUploading || item.Progress >= progressCeiling {
		return models.UploadItem{}, false
	}
	item.Progress += progressStep
	if item.Progress > progressCeiling {
		item.Progress = progressCeiling
	}
	return *item, true
}

func (s *UploadService) markDone(key string) models.UploadItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	item := s.items[key]
	item.Status = models.UploadDone
	item.Progress = 100
	delete(s.payloads, key)
	return *item
}

// markFailed leaves progress at its last value; the row stays visible so the
// user can see which file broke and re-add it.
func (s *UploadService) markFailed(key, message string) models.UploadItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	item := s.items[key]
	item.Status = models.UploadFailed
	item.Error = message
	return *item
}
