package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/models"
)

func TestMachine_SelectReplacesSelection(t *testing.T) {
	m := NewMachine()
	assert.True(t, m.Current().IsEmpty())

	first, err := m.Select(models.NodeTypeTopic, "topic-1")
	require.NoError(t, err)
	assert.Equal(t, models.SelectionModeSelected, first.Mode)

	// selecting something else just moves the selection
	second, err := m.Select(models.NodeTypeLesson, "lesson-1")
	require.NoError(t, err)
	assert.Equal(t, models.NodeTypeLesson, second.Type)
	assert.Equal(t, "lesson-1", second.ID)
	assert.Equal(t, second, m.Current())
}

func TestMachine_SelectValidation(t *testing.T) {
	m := NewMachine()

	var invalid *InvalidTransitionError
	_, err := m.Select("banana", "topic-1")
	require.ErrorAs(t, err, &invalid)

	_, err = m.Select(models.NodeTypeTopic, "")
	require.ErrorAs(t, err, &invalid)
	assert.True(t, m.Current().IsEmpty())
}

func TestMachine_EditLifecycle(t *testing.T) {
	m := NewMachine()
	_, err := m.Select(models.NodeTypeTopic, "topic-1")
	require.NoError(t, err)

	sel, err := m.StartEditing(models.NodeTypeTopic, "topic-1")
	require.NoError(t, err)
	assert.Equal(t, models.SelectionModeEditing, sel.Mode)

	require.NoError(t, m.Commit())
	assert.True(t, m.Current().IsEmpty())
}

func TestMachine_EditStraightFromEmpty(t *testing.T) {
	m := NewMachine()

	sel, err := m.StartEditing(models.NodeTypeTopic, "topic-1")
	require.NoError(t, err)
	assert.Equal(t, models.SelectionModeEditing, sel.Mode)
	assert.Equal(t, "topic-1", sel.ID)
}

func TestMachine_SelectReplacesOpenEdit(t *testing.T) {
	m := NewMachine()
	_, err := m.StartEditing(models.NodeTypeTopic, "topic-1")
	require.NoError(t, err)

	// picking another entity closes the editor and moves the selection
	sel, err := m.Select(models.NodeTypeLesson, "lesson-1")
	require.NoError(t, err)
	assert.Equal(t, models.SelectionModeSelected, sel.Mode)
	assert.Equal(t, "lesson-1", sel.ID)
}

func TestMachine_ClearDropsOpenEdit(t *testing.T) {
	m := NewMachine()
	_, err := m.StartEditing(models.NodeTypeLesson, "lesson-1")
	require.NoError(t, err)

	require.NoError(t, m.Clear())
	assert.True(t, m.Current().IsEmpty())
}

func TestMachine_CancelAbandonsEdit(t *testing.T) {
	m := NewMachine()
	_, err := m.Select(models.NodeTypeLesson, "lesson-1")
	require.NoError(t, err)
	_, err = m.StartEditing(models.NodeTypeLesson, "lesson-1")
	require.NoError(t, err)

	require.NoError(t, m.Cancel())
	assert.True(t, m.Current().IsEmpty())
}

func TestMachine_InvalidTransitions(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(m *Machine)
		act     func(m *Machine) error
	}{
		{
			name: "editing a different entity than the selection",
			prepare: func(m *Machine) {
				m.Select(models.NodeTypeTopic, "topic-1")
			},
			act: func(m *Machine) error {
				_, err := m.StartEditing(models.NodeTypeTopic, "topic-2")
				return err
			},
		},
		{
			name: "opening a second edit",
			prepare: func(m *Machine) {
				m.Select(models.NodeTypeTopic, "topic-1")
				m.StartEditing(models.NodeTypeTopic, "topic-1")
			},
			act: func(m *Machine) error {
				_, err := m.StartEditing(models.NodeTypeTopic, "topic-1")
				return err
			},
		},
		{
			name:    "committing with no open edit",
			prepare: func(m *Machine) {},
			act: func(m *Machine) error {
				return m.Commit()
			},
		},
		{
			name: "cancelling a plain selection",
			prepare: func(m *Machine) {
				m.Select(models.NodeTypeTopic, "topic-1")
			},
			act: func(m *Machine) error {
				return m.Cancel()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine()
			tt.prepare(m)
			before := m.Current()

			err := tt.act(m)

			var invalid *InvalidTransitionError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, before, m.Current(), "a rejected action must not change the state")
		})
	}
}

func TestMachine_ClearIsIdempotent(t *testing.T) {
	m := NewMachine()
	require.NoError(t, m.Clear())

	_, err := m.Select(models.NodeTypeModule, "module-1")
	require.NoError(t, err)
	require.NoError(t, m.Clear())
	require.NoError(t, m.Clear())
	assert.True(t, m.Current().IsEmpty())
}
