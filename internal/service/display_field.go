package service

import (
	"strings"

	"github.com/contentloom/console/internal/models"
)

// displayNamePriority is checked in this literal order across all fields, not
// in schema order: a "title" anywhere beats a "name" anywhere.
var displayNamePriority = []string{"title", "name", "displayname", "label"}

// ResolveDisplayField picks the single field that represents a record of the
// given schema in compact UI surfaces. Pure function of the schema; a nil or
// empty schema resolves to the identifier field.
func ResolveDisplayField(ct *models.ContentType) string {
	if ct == nil || len(ct.Fields) == 0 {
		return models.IDField
	}

	for _, want := range displayNamePriority {
		for _, field := range ct.Fields {
			if strings.ToLower(field.Name) == want {
				return field.Name
			}
		}
	}

	for _, field := range ct.Fields {
		switch field.Type {
		case models.FieldTypeText, models.FieldTypeString, models.FieldTypeEmail:
			return field.Name
		}
	}

	return models.IDField
}
