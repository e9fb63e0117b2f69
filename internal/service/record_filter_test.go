package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contentloom/console/internal/models"
)

func TestFilterRecordsEmptyQueryIsIdentity(t *testing.T) {
	records := []models.Record{
		{"id": "1", "name": "Apple"},
		{"id": "2", "name": "Banana"},
	}

	for _, query := range []string{"", "   ", "\t"} {
		got := FilterRecords(records, query)
		require.Len(t, got, 2)
		assert.Equal(t, records[0], got[0])
		assert.Equal(t, records[1], got[1])
	}
}

func TestFilterRecordsCaseInsensitiveSubstring(t *testing.T) {
	records := []models.Record{
		{"id": "1", "name": "Apple"},
		{"id": "2", "name": "Banana"},
	}

	got := FilterRecords(records, "app")
	require.Len(t, got, 1)
	assert.Equal(t, "Apple", got[0]["name"])
}

func TestFilterRecordsMatchesAnyStringField(t *testing.T) {
	records := []models.Record{
		{"id": "1", "name": "Notes", "body": "quarterly numbers"},
		{"id": "2", "name": "Summary", "body": "nothing here"},
	}

	got := FilterRecords(records, "QUARTER")
	require.Len(t, got, 1)
	assert.Equal(t, "Notes", got[0]["name"])
}

func TestFilterRecordsSkipsNonStringValues(t *testing.T) {
	// 42 must not be coerced to "42".
	records := []models.Record{
		{"id": "1", "count": 42, "tags": []string{"42"}},
	}

	assert.Empty(t, FilterRecords(records, "42"))
}

func TestFilterRecordsPreservesOrder(t *testing.T) {
	records := []models.Record{
		{"id": "1", "name": "beta"},
		{"id": "2", "name": "alpha"},
		{"id": "3", "name": "alphabet"},
	}

	got := FilterRecords(records, "alpha")
	require.Len(t, got, 2)
	assert.Equal(t, "2", got[0].ID())
	assert.Equal(t, "3", got[1].ID())
}
