package models

// SelectionMode describes how the selected entity is held
type SelectionMode string

const (
	SelectionModeSelected SelectionMode = "selected"
	SelectionModeEditing  SelectionMode = "editing"
)

// Selection is the single live selection across all views.
// A zero Selection (empty Type and ID) means nothing is selected.
type Selection struct {
	Type NodeType      `json:"type,omitempty"`
	ID   string        `json:"id,omitempty"`
	Mode SelectionMode `json:"mode,omitempty"`
}

// IsEmpty reports whether nothing is selected
func (s Selection) IsEmpty() bool {
	return s.ID == ""
}
