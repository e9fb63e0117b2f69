package service

// SelectionMode distinguishes single-value relation pickers from ordered
// multi-select ones.
type SelectionMode string

const (
	SelectionSingle   SelectionMode = "single"
	SelectionMultiple SelectionMode = "multiple"
)

// SelectionState reconciles the set of chosen record ids for one open dialog.
// It references records by id only and is discarded when the dialog closes.
// Lives on the UI goroutine; not safe for concurrent use.
type SelectionState struct {
	mode   SelectionMode
	chosen []string
}

// NewSelectionState creates an empty selection for the given mode.
func NewSelectionState(mode SelectionMode) *SelectionState {
	if mode != SelectionSingle {
		mode = SelectionMultiple
	}
	return &SelectionState{mode: mode}
}

// Mode returns the selection mode.
func (s *SelectionState) Mode() SelectionMode {
	return s.mode
}

// Hydrate replaces the current state with the caller's existing value,
// dropping empty ids on intake. In single mode only the first id survives.
func (s *SelectionState) Hydrate(initial ...string) {
	s.chosen = s.chosen[:0]
	for _, id := range initial {
		if id == "" {
			continue
		}
		s.chosen = append(s.chosen, id)
		if s.mode == SelectionSingle {
			return
		}
	}
}

// Toggle flips the chosen state of one id. Empty ids are ignored. In multiple
// mode a re-selected id re-appends at the end rather than restoring its prior
// position; in single mode the whole selection is replaced.
func (s *SelectionState) Toggle(id string) {
	if id == "" {
		return
	}

	if s.mode == SelectionSingle {
		s.chosen = []string{id}
		return
	}

	for i, existing := range s.chosen {
		if existing == id {
			s.chosen = append(s.chosen[:i], s.chosen[i+1:]...)
			return
		}
	}
	s.chosen = append(s.chosen, id)
}

// Contains reports whether the id is currently chosen.
func (s *SelectionState) Contains(id string) bool {
	for _, existing := range s.chosen {
		if existing == id {
			return true
		}
	}
	return false
}

// Count returns the number of chosen ids.
func (s *SelectionState) Count() int {
	return len(s.chosen)
}

// FlattenOne returns the sole chosen id, or the empty string when nothing is
// chosen. Meaningful in single mode.
func (s *SelectionState) FlattenOne() string {
	if len(s.chosen) == 0 {
		return ""
	}
	return s.chosen[0]
}

// FlattenAll returns the chosen ids in toggle order, deduplicated with empty
// ids dropped, even if upstream data briefly contained one.
func (s *SelectionState) FlattenAll() []string {
	flat := make([]string, 0, len(s.chosen))
	seen := make(map[string]struct{}, len(s.chosen))
	for _, id := range s.chosen {
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		flat = append(flat, id)
	}
	return flat
}
