package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rotorsim/rotorsim/core/config"
	"github.com/rotorsim/rotorsim/core/engine"
	"github.com/rotorsim/rotorsim/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) model {
	t.Helper()
	trace := &tracePath{}
	e, err := engine.New(config.DefaultSettings(), engine.WithTrace(trace.record), engine.WithLogger(logging.NewNop()))
	require.NoError(t, err)
	return newModel(e, trace)
}

func update(m model, msg tea.Msg) model {
	next, _ := m.Update(msg)
	return next.(model)
}

func typeRunes(m model, s string) model {
	return update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestTyping(t *testing.T) {
	m := newTestModel(t)
	m = typeRunes(m, "enigma")
	m = update(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = typeRunes(m, "r1")

	assert.Equal(t, "ENIGMAR", string(m.input))
	assert.Equal(t, "QMJIDOM", string(m.output))
	assert.Equal(t, 'M', m.lamp)
	assert.Equal(t, "MCR", m.machine.PositionString())
	assert.NotEmpty(t, m.trace.last)
}

func TestSpinSelectedRotor(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, 2, m.selected)

	m = update(m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "MCL", m.machine.PositionString())

	m = update(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 0, m.selected)
	m = update(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "LCL", m.machine.PositionString())

	m = update(m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 1, m.selected)
}

func TestResetAndGroup(t *testing.T) {
	m := newTestModel(t)
	m = typeRunes(m, "enigmarevealed")
	m = update(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, m.group)
	assert.Equal(t, "QMJID OMZWZ JFJR", m.tape(m.output))

	m = update(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "MCK", m.machine.PositionString())
	assert.Empty(t, m.input)
	assert.Empty(t, m.output)
	assert.Empty(t, m.trace.last)
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestView(t *testing.T) {
	m := newTestModel(t)
	m = typeRunes(m, "e")
	v := m.View()
	assert.Contains(t, v, "Rotors: B-I-II-III Position: MCL")
	assert.Contains(t, v, "E->E->T->W->J->X->N->S->Q->Q")
	assert.Contains(t, v, "IN  E")
	assert.Contains(t, v, "OUT Q")
}

func TestLetterAt(t *testing.T) {
	assert.Equal(t, "Z", letterAt(-1))
	assert.Equal(t, "A", letterAt(26))
	assert.Equal(t, "M", letterAt(12))
}
