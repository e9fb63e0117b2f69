// Package store is the in-memory data backing the stub backend. It exists so
// the console subsystem can be exercised without the production CMS.
package store

import (
	"sync"

	"github.com/contentloom/console/internal/models"
)

// Store holds content types, their records and the media listing.
type Store struct {
	mu      sync.RWMutex
	types   map[string]models.ContentType
	entries map[string][]models.Record
	media   []models.MediaRecord
}

// New returns an empty store.
func New() *Store {
	return &Store{
		types:   make(map[string]models.ContentType),
		entries: make(map[string][]models.Record),
	}
}

// Seeded returns a store pre-populated with two content types and a handful
// of records, enough to drive the picker dialogs.
func Seeded() *Store {
	s := New()

	s.PutContentType(models.ContentType{
		APIID:       "articles",
		DisplayName: "Articles",
		Fields: []models.Field{
			{Name: "title", Type: models.FieldTypeString},
			{Name: "body", Type: models.FieldTypeText},
			{Name: "featured", Type: models.FieldTypeBoolean},
			{Name: "author", Type: models.FieldTypeRelation},
		},
	}, []models.Record{
		{"id": "a1", "title": "Launch week recap", "body": "Everything that shipped.", "featured": true, "author": 1},
		{"id": "a2", "title": "Roadmap update", "body": "What comes next.", "featured": false, "author": 2},
		{"id": "a3", "title": "Hiring writers", "body": "We are growing the team.", "featured": false, "author": 1},
	})

	// Numeric ids on purpose; the console must normalize both representations.
	s.PutContentType(models.ContentType{
		APIID:       "authors",
		DisplayName: "Authors",
		Fields: []models.Field{
			{Name: "name", Type: models.FieldTypeString},
			{Name: "email", Type: models.FieldTypeEmail},
			{Name: "bio", Type: models.FieldTypeText},
		},
	}, []models.Record{
		{"id": 1, "name": "Ada Wong", "email": "ada@example.com", "bio": "Covers infrastructure."},
		{"id": 2, "name": "Miles Reed", "email": "miles@example.com", "bio": "Covers product."},
	})

	return s
}

// PutContentType registers a schema and its records.
func (s *Store) PutContentType(ct models.ContentType, records []models.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.types[ct.APIID] = ct
	s.entries[ct.APIID] = records
}

// ContentType looks up a schema by api id.
func (s *Store) ContentType(apiID string) (models.ContentType, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ct, ok := s.types[apiID]
	return ct, ok
}

// Entries returns one page of records for a content type.
func (s *Store) Entries(apiID string, page, limit int) ([]models.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all, ok := s.entries[apiID]
	if !ok {
		return nil, false
	}
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	offset := (page - 1) * limit
	if offset >= len(all) {
		return []models.Record{}, true
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], true
}

// Media returns a copy of the media listing in insertion order.
func (s *Store) Media() []models.MediaRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.MediaRecord, len(s.media))
	copy(out, s.media)
	return out
}

// AddMedia appends a new media record.
func (s *Store) AddMedia(m models.MediaRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.media = append(s.media, m)
}

// RemoveMedia deletes a media record by id, returning the removed record.
func (s *Store) RemoveMedia(id string) (models.MediaRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, m := range s.media {
		if m.ID == id {
			s.media = append(s.media[:i], s.media[i+1:]...)
			return m, true
		}
	}
	return models.MediaRecord{}, false
}
