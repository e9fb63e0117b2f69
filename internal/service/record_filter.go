package service

import (
	"strings"

	"github.com/contentloom/console/internal/models"
)

// FilterRecords returns the subsequence of records matching the query,
// preserving input order. A record matches when any of its string-typed values
// contains the query as a case-insensitive substring; other value kinds are
// skipped, never coerced. An empty or whitespace query returns the input
// untouched.
func FilterRecords(records []models.Record, query string) []models.Record {
	q := strings.TrimSpace(query)
	if q == "" {
		return records
	}
	q = strings.ToLower(q)

	matched := make([]models.Record, 0, len(records))
	for _, rec := range records {
		if recordMatches(rec, q) {
			matched = append(matched, rec)
		}
	}
	return matched
}

func recordMatches(rec models.Record, loweredQuery string) bool {
	for _, value := range rec {
		s, ok := value.(string)
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(s), loweredQuery) {
			return true
		}
	}
	return false
}
