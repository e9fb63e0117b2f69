package models

import (
	"encoding/json"
	"math"
	"strconv"
)

// IDField is the identifier key every backend record carries.
const IDField = "id"

// FieldType enumerates the backend's field kinds.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeString   FieldType = "string"
	FieldTypeEmail    FieldType = "email"
	FieldTypeNumber   FieldType = "number"
	FieldTypeBoolean  FieldType = "boolean"
	FieldTypeRelation FieldType = "relation"
	FieldTypeMedia    FieldType = "media"
)

// Field describes a single column of a content type.
type Field struct {
	Name string    `json:"name"`
	Type FieldType `json:"type"`
}

// ContentType is a backend-defined schema: an ordered field list plus a
// human-readable display name. Fetched read-only and cached by api id.
type ContentType struct {
	APIID       string  `json:"apiId,omitempty"`
	DisplayName string  `json:"displayName"`
	Fields      []Field `json:"fields"`
}

// Record is one entry of a content type. The shape is caller-defined, so it
// stays a plain map; the client never mutates a fetched record in place.
type Record map[string]interface{}

// ID returns the record identifier normalized to its string form.
func (r Record) ID() string {
	return NormalizeID(r[IDField])
}

// NormalizeID flattens the id representations the backend may emit (JSON
// strings or numbers) into a canonical string for comparison and dedup.
// Unknown types normalize to the empty string.
func NormalizeID(v interface{}) string {
	switch id := v.(type) {
	case string:
		return id
	case json.Number:
		return id.String()
	case float64:
		if id == math.Trunc(id) {
			return strconv.FormatInt(int64(id), 10)
		}
		return strconv.FormatFloat(id, 'f', -1, 64)
	case int:
		return strconv.Itoa(id)
	case int64:
		return strconv.FormatInt(id, 10)
	default:
		return ""
	}
}
