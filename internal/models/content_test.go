package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeIDHandlesBothBackendRepresentations(t *testing.T) {
	assert.Equal(t, "a1", NormalizeID("a1"))
	assert.Equal(t, "7", NormalizeID(float64(7)))
	assert.Equal(t, "7.5", NormalizeID(float64(7.5)))
	assert.Equal(t, "42", NormalizeID(42))
	assert.Equal(t, "42", NormalizeID(int64(42)))
	assert.Equal(t, "9", NormalizeID(json.Number("9")))
	assert.Equal(t, "", NormalizeID(nil))
	assert.Equal(t, "", NormalizeID(true))
}

func TestRecordIDNormalizesDecodedJSON(t *testing.T) {
	var rec Record
	require.NoError(t, json.Unmarshal([]byte(`{"id": 12, "title": "x"}`), &rec))
	assert.Equal(t, "12", rec.ID())

	require.NoError(t, json.Unmarshal([]byte(`{"id": "a1"}`), &rec))
	assert.Equal(t, "a1", rec.ID())
}

func TestMediaRecordUnmarshalToleratesNumericID(t *testing.T) {
	var m MediaRecord
	require.NoError(t, json.Unmarshal([]byte(`{"id": 31, "name": "logo.png", "url": "/media/31.png", "type": "image/png", "sizeBytes": 512}`), &m))
	assert.Equal(t, "31", m.ID)
	assert.Equal(t, "logo.png", m.Name)
	assert.Equal(t, int64(512), m.SizeBytes)

	require.NoError(t, json.Unmarshal([]byte(`{"id": "m-1", "name": "a.txt"}`), &m))
	assert.Equal(t, "m-1", m.ID)
}

func TestMediaRecordAsRecord(t *testing.T) {
	m := MediaRecord{ID: "m1", Name: "logo.png", URL: "/media/m1.png", Type: "image/png", SizeBytes: 99}
	rec := m.AsRecord()
	assert.Equal(t, "m1", rec.ID())
	assert.Equal(t, "logo.png", rec["name"])
}

func TestBatchSummaryAllSucceeded(t *testing.T) {
	assert.True(t, BatchSummary{SuccessCount: 3, TotalCount: 3}.AllSucceeded())
	assert.False(t, BatchSummary{SuccessCount: 2, TotalCount: 3}.AllSucceeded())
	assert.False(t, BatchSummary{}.AllSucceeded())
}
