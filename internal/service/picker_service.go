package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/contentloom/console/internal/models"
)

// PickResult is the flattened selection handed back on confirm: a single id
// or an ordered id sequence depending on mode.
type PickResult struct {
	Mode SelectionMode
	ID   string
	IDs  []string
}

// recordCatalog is the slice of the catalog the picker needs.
type recordCatalog interface {
	ContentType(ctx context.Context, apiID string) (*models.ContentType, error)
	Entries(ctx context.Context, apiID string) ([]models.Record, error)
	MediaRecords(ctx context.Context) ([]models.Record, error)
}

// PickerService opens dialog-scoped selection sessions over the catalog.
type PickerService struct {
	catalog recordCatalog
	logger  *zap.Logger
}

// NewPickerService builds a picker service.
func NewPickerService(catalog recordCatalog, logger *zap.Logger) *PickerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PickerService{catalog: catalog, logger: logger}
}

// Open starts a selection session for one content type, seeded from the
// caller's current value. Fetch failures degrade to an empty candidate list
// (the dialog renders its empty state); they are logged, not retried.
func (s *PickerService) Open(ctx context.Context, apiID string, mode SelectionMode, initial ...string) *PickerSession {
	session := &PickerSession{
		apiID:        apiID,
		displayField: models.IDField,
		selection:    NewSelectionState(mode),
	}
	session.selection.Hydrate(initial...)

	ct, err := s.catalog.ContentType(ctx, apiID)
	if err != nil {
		s.logger.Warn("schema fetch failed, opening empty picker", zap.String("api_id", apiID), zap.Error(err))
		return session
	}
	session.contentType = ct
	session.displayField = ResolveDisplayField(ct)

	records, err := s.catalog.Entries(ctx, apiID)
	if err != nil {
		s.logger.Warn("record fetch failed, opening empty picker", zap.String("api_id", apiID), zap.Error(err))
		return session
	}
	session.records = records
	return session
}

// OpenMedia starts a selection session over the media library. The media
// schema is fixed, so the display field is always the file name.
func (s *PickerService) OpenMedia(ctx context.Context, mode SelectionMode, initial ...string) *PickerSession {
	session := &PickerSession{
		apiID:        "media",
		displayField: "name",
		selection:    NewSelectionState(mode),
	}
	session.selection.Hydrate(initial...)

	records, err := s.catalog.MediaRecords(ctx)
	if err != nil {
		s.logger.Warn("media fetch failed, opening empty picker", zap.Error(err))
		return session
	}
	session.records = records
	return session
}

// PickerSession is the ephemeral state of one open selection dialog. Created
// fresh on open, discarded on confirm or cancel; never persisted. Lives on
// the UI goroutine.
type PickerSession struct {
	apiID        string
	contentType  *models.ContentType
	displayField string
	records      []models.Record
	selection    *SelectionState
	query        string
	closed       bool
}

// DisplayField returns the resolved field representing records in this dialog.
func (p *PickerSession) DisplayField() string {
	return p.displayField
}

// ContentType returns the fetched schema, nil when the fetch failed.
func (p *PickerSession) ContentType() *models.ContentType {
	return p.contentType
}

// Search updates the active query.
func (p *PickerSession) Search(query string) {
	p.query = query
}

// Records returns the candidate rows matching the active query, in fetch
// order. Selection annotates rows, it never reorders them.
func (p *PickerSession) Records() []models.Record {
	return FilterRecords(p.records, p.query)
}

// Toggle flips the chosen state of one record id.
func (p *PickerSession) Toggle(id string) {
	if p.closed {
		return
	}
	p.selection.Toggle(id)
}

// IsChosen reports whether the record id is part of the current selection.
func (p *PickerSession) IsChosen(id string) bool {
	return p.selection.Contains(id)
}

// Label resolves the compact display text for a record, falling back to the
// raw id when the display field is missing or not a string.
func (p *PickerSession) Label(rec models.Record) string {
	if value, ok := rec[p.displayField].(string); ok && value != "" {
		return value
	}
	return rec.ID()
}

// LabelFor resolves a display label for a selected id. A selected id may
// point at a record outside the loaded page; it then renders as the raw id.
func (p *PickerSession) LabelFor(id string) string {
	for _, rec := range p.records {
		if rec.ID() == id {
			return p.Label(rec)
		}
	}
	return id
}

// CanConfirm reports whether confirm is enabled: a single-select dialog needs
// a choice, while confirming an empty multi-selection is the valid way to
// clear a relation.
func (p *PickerSession) CanConfirm() bool {
	if p.closed {
		return false
	}
	if p.selection.Mode() == SelectionSingle {
		return p.selection.Count() > 0
	}
	return true
}

// Confirm flattens the selection into the caller's expected shape and closes
// the session. Returns false when confirm is gated off.
func (p *PickerSession) Confirm() (PickResult, bool) {
	if !p.CanConfirm() {
		return PickResult{}, false
	}
	p.closed = true

	result := PickResult{Mode: p.selection.Mode()}
	if result.Mode == SelectionSingle {
		result.ID = p.selection.FlattenOne()
	} else {
		result.IDs = p.selection.FlattenAll()
	}
	return result, true
}

// Cancel discards all local state without notifying the caller. Always
// permitted, never has side effects.
func (p *PickerSession) Cancel() {
	p.closed = true
	p.query = ""
	p.selection.Hydrate()
}

// Closed reports whether the session was confirmed or cancelled.
func (p *PickerSession) Closed() bool {
	return p.closed
}
