package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/contentloom/console/internal/models"
)

func TestResolveDisplayFieldNamePriorityBeatsPosition(t *testing.T) {
	ct := &models.ContentType{Fields: []models.Field{
		{Name: "email", Type: models.FieldTypeEmail},
		{Name: "title", Type: models.FieldTypeString},
	}}

	assert.Equal(t, "title", ResolveDisplayField(ct))
}

func TestResolveDisplayFieldPriorityOrderAcrossFields(t *testing.T) {
	// "name" appears earlier in the schema but "title" wins: the priority
	// list is checked name by name, not field by field.
	ct := &models.ContentType{Fields: []models.Field{
		{Name: "name", Type: models.FieldTypeString},
		{Name: "title", Type: models.FieldTypeString},
	}}

	assert.Equal(t, "title", ResolveDisplayField(ct))
}

func TestResolveDisplayFieldCaseInsensitiveNames(t *testing.T) {
	ct := &models.ContentType{Fields: []models.Field{
		{Name: "DisplayName", Type: models.FieldTypeString},
	}}

	assert.Equal(t, "DisplayName", ResolveDisplayField(ct))
}

func TestResolveDisplayFieldTypeFallback(t *testing.T) {
	ct := &models.ContentType{Fields: []models.Field{
		{Name: "count", Type: models.FieldTypeNumber},
		{Name: "bio", Type: models.FieldTypeText},
	}}

	assert.Equal(t, "bio", ResolveDisplayField(ct))
}

func TestResolveDisplayFieldIDFallback(t *testing.T) {
	assert.Equal(t, "id", ResolveDisplayField(&models.ContentType{}))
	assert.Equal(t, "id", ResolveDisplayField(nil))
	assert.Equal(t, "id", ResolveDisplayField(&models.ContentType{Fields: []models.Field{
		{Name: "count", Type: models.FieldTypeNumber},
	}}))
}

func TestResolveDisplayFieldDeterministic(t *testing.T) {
	ct := &models.ContentType{Fields: []models.Field{
		{Name: "email", Type: models.FieldTypeEmail},
		{Name: "label", Type: models.FieldTypeString},
	}}

	first := ResolveDisplayField(ct)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ResolveDisplayField(ct))
	}
	assert.Equal(t, "label", first)
}
