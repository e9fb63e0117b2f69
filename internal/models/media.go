package models

import "encoding/json"

// MediaRecord is the durable result of a successful upload, owned by the
// backend and read by the console as an ordinary record.
type MediaRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	URL       string `json:"url"`
	Type      string `json:"type"`
	SizeBytes int64  `json:"sizeBytes"`
}

// UnmarshalJSON tolerates numeric ids; the backend emits both.
func (m *MediaRecord) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID        json.RawMessage `json:"id"`
		Name      string          `json:"name"`
		URL       string          `json:"url"`
		Type      string          `json:"type"`
		SizeBytes int64           `json:"sizeBytes"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	m.Name = raw.Name
	m.URL = raw.URL
	m.Type = raw.Type
	m.SizeBytes = raw.SizeBytes
	m.ID = decodeRawID(raw.ID)
	return nil
}

func decodeRawID(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

// AsRecord adapts the media record for the generic picker surfaces.
func (m MediaRecord) AsRecord() Record {
	return Record{
		IDField:     m.ID,
		"name":      m.Name,
		"url":       m.URL,
		"type":      m.Type,
		"sizeBytes": m.SizeBytes,
	}
}
