package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionMultipleToggleOrder(t *testing.T) {
	s := NewSelectionState(SelectionMultiple)
	s.Toggle("a")
	s.Toggle("b")
	s.Toggle("a")

	assert.Equal(t, []string{"b"}, s.FlattenAll())
}

func TestSelectionMultipleReselectionAppendsAtEnd(t *testing.T) {
	s := NewSelectionState(SelectionMultiple)
	s.Toggle("a")
	s.Toggle("b")
	s.Toggle("c")
	s.Toggle("a")
	s.Toggle("a")

	assert.Equal(t, []string{"b", "c", "a"}, s.FlattenAll())
}

func TestSelectionSingleReplacesPriorChoice(t *testing.T) {
	s := NewSelectionState(SelectionSingle)
	s.Toggle("a")
	s.Toggle("b")

	assert.Equal(t, "b", s.FlattenOne())
	assert.Equal(t, 1, s.Count())
}

func TestSelectionSingleEmptyFlattensToEmptyString(t *testing.T) {
	s := NewSelectionState(SelectionSingle)

	assert.Equal(t, "", s.FlattenOne())
}

func TestSelectionToggleIgnoresEmptyID(t *testing.T) {
	s := NewSelectionState(SelectionMultiple)
	s.Toggle("")
	s.Toggle("a")
	s.Toggle("")

	assert.Equal(t, []string{"a"}, s.FlattenAll())
}

func TestSelectionHydrateReplacesAndFiltersEmpties(t *testing.T) {
	s := NewSelectionState(SelectionMultiple)
	s.Toggle("stale")
	s.Hydrate("", "x", "", "y")

	assert.Equal(t, []string{"x", "y"}, s.FlattenAll())
	assert.False(t, s.Contains("stale"))
}

func TestSelectionHydrateSingleKeepsFirst(t *testing.T) {
	s := NewSelectionState(SelectionSingle)
	s.Hydrate("x", "y")

	assert.Equal(t, "x", s.FlattenOne())
	assert.Equal(t, 1, s.Count())
}

func TestSelectionFlattenAllDeduplicates(t *testing.T) {
	// Hydrate does not dedupe on intake; flatten must anyway.
	s := NewSelectionState(SelectionMultiple)
	s.Hydrate("a", "b", "a")

	assert.Equal(t, []string{"a", "b"}, s.FlattenAll())
}
