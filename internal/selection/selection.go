// Package selection tracks the single live selection of the authoring
// session and the edit lock on it. At most one entity is selected at a
// time; selecting something else simply replaces the previous selection,
// even mid-edit. Commit and cancel both close the editor and land on an
// empty selection.
package selection

import (
	"fmt"
	"sync"

	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/models"
)

// InvalidTransitionError indicates a selection action that the current
// state does not allow
type InvalidTransitionError struct {
	Action string
	Reason string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s: %s", e.Action, e.Reason)
}

// Machine is the selection state machine. The zero state is empty.
type Machine struct {
	mu      sync.Mutex
	current models.Selection
}

// NewMachine creates a machine with an empty selection
func NewMachine() *Machine {
	return &Machine{}
}

// Current returns the live selection; an empty selection means nothing
// is selected
func (m *Machine) Current() models.Selection {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Select makes an entity the live selection, replacing whatever was
// selected before, an open edit included.
func (m *Machine) Select(nodeType models.NodeType, id string) (models.Selection, error) {
	if !nodeType.IsValid() {
		return models.Selection{}, &InvalidTransitionError{Action: "select", Reason: "unknown entity type " + string(nodeType)}
	}
	if id == "" {
		return models.Selection{}, &InvalidTransitionError{Action: "select", Reason: "entity id is required"}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.current = models.Selection{Type: nodeType, ID: id, Mode: models.SelectionModeSelected}
	return m.current, nil
}

// StartEditing opens an edit on an entity. From an empty selection any
// entity can be edited directly; from a selected one, only the selected
// entity. An already open edit has to be committed or cancelled first.
func (m *Machine) StartEditing(nodeType models.NodeType, id string) (models.Selection, error) {
	if !nodeType.IsValid() {
		return models.Selection{}, &InvalidTransitionError{Action: "start editing", Reason: "unknown entity type " + string(nodeType)}
	}
	if id == "" {
		return models.Selection{}, &InvalidTransitionError{Action: "start editing", Reason: "entity id is required"}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	switch {
	case m.current.Mode == models.SelectionModeEditing:
		return models.Selection{}, &InvalidTransitionError{Action: "start editing", Reason: "an edit is already in progress"}
	case !m.current.IsEmpty() && (m.current.Type != nodeType || m.current.ID != id):
		return models.Selection{}, &InvalidTransitionError{Action: "start editing", Reason: "only the selected entity can be edited"}
	}
	m.current = models.Selection{Type: nodeType, ID: id, Mode: models.SelectionModeEditing}
	return m.current, nil
}

// Commit closes the open edit and clears the selection
func (m *Machine) Commit() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current.Mode != models.SelectionModeEditing {
		return &InvalidTransitionError{Action: "commit", Reason: "no edit is in progress"}
	}
	m.current = models.Selection{}
	return nil
}

// Cancel abandons the open edit and clears the selection
func (m *Machine) Cancel() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current.Mode != models.SelectionModeEditing {
		return &InvalidTransitionError{Action: "cancel", Reason: "no edit is in progress"}
	}
	m.current = models.Selection{}
	return nil
}

// Clear drops the live selection from any state, an open edit included.
// Clearing an already empty selection is a no-op.
func (m *Machine) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.current = models.Selection{}
	return nil
}
