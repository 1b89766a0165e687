package domain

// MaxComparison is the maximum number of services compared side by side.
const MaxComparison = 3

// Selection is the transient set of service ids picked for comparison.
// It is a value type; Toggle returns a new selection.
type Selection struct {
	ids []string
}

// NewSelection builds a selection from ids, keeping the first MaxComparison
// distinct entries.
func NewSelection(ids ...string) Selection {
	var s Selection
	for _, id := range ids {
		if !s.Contains(id) {
			s = s.Toggle(id)
		}
	}
	return s
}

// Toggle removes id when selected, adds it when there is room,
// and otherwise returns the selection unchanged.
func (s Selection) Toggle(id string) Selection {
	if s.Contains(id) {
		out := make([]string, 0, len(s.ids)-1)
		for _, existing := range s.ids {
			if existing != id {
				out = append(out, existing)
			}
		}
		return Selection{ids: out}
	}
	if s.Full() {
		return s
	}
	out := make([]string, len(s.ids), len(s.ids)+1)
	copy(out, s.ids)
	return Selection{ids: append(out, id)}
}

// Contains reports whether id is selected.
func (s Selection) Contains(id string) bool {
	for _, existing := range s.ids {
		if existing == id {
			return true
		}
	}
	return false
}

// Full reports whether no more services can be added.
func (s Selection) Full() bool {
	return len(s.ids) >= MaxComparison
}

// Len returns the number of selected ids.
func (s Selection) Len() int {
	return len(s.ids)
}

// IDs returns the selected ids in selection order.
func (s Selection) IDs() []string {
	return cloneStrings(s.ids)
}
