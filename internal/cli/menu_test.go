package cli

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prabhat888/DSA-LAB-SHEETS-2301010316/response"
)

func press(t *testing.T, m MenuModel, keys ...tea.KeyMsg) MenuModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		var ok bool
		m, ok = next.(MenuModel)
		require.True(t, ok)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// answer types text and presses enter.
func answer(text string) []tea.KeyMsg {
	var keys []tea.KeyMsg
	for _, r := range text {
		if r == ' ' {
			keys = append(keys, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		keys = append(keys, runes(string(r)))
	}
	return append(keys, tea.KeyMsg{Type: tea.KeyEnter})
}

func newTestMenu() (MenuModel, *response.System) {
	sys := response.New()
	return NewMenuModel(context.Background(), sys), sys
}

func TestMenuAddAreaAndDisplay(t *testing.T) {
	m, sys := newTestMenu()

	m = press(t, m, runes("1"))
	assert.Contains(t, m.View(), "Enter area name")
	m = press(t, m, answer("Old Town")...)
	assert.Equal(t, []string{"Area Old Town added!"}, m.Output)

	m = press(t, m, runes("1"))
	m = press(t, m, answer("Docks")...)

	m = press(t, m, runes("2"))
	assert.Equal(t, []string{"Affected Areas (In-order): Docks Old Town"}, m.Output)
	assert.Equal(t, []string{"Docks", "Old Town"}, sys.Areas())
}

func TestMenuRoutesAndQueries(t *testing.T) {
	m, _ := newTestMenu()

	addRoute := func(from, to, d string) {
		m = press(t, m, runes("3"))
		m = press(t, m, answer(from)...)
		m = press(t, m, answer(to)...)
		m = press(t, m, answer(d)...)
	}
	addRoute("A", "B", "4")
	assert.Equal(t, []string{"Route A -> B with distance 4 added!"}, m.Output)
	addRoute("A", "C", "1")
	addRoute("C", "B", "2")
	addRoute("X", "Y", "1")

	m = press(t, m, runes("4"))
	m = press(t, m, answer("A")...)
	assert.Equal(t, []string{"BFS Path: A B C"}, m.Output)

	m = press(t, m, runes("5"))
	m = press(t, m, answer("A")...)
	assert.Equal(t, []string{
		"Shortest paths:",
		"To A: 0",
		"To B: 3",
		"To C: 1",
		"To X: unreachable",
		"To Y: unreachable",
	}, m.Output)
}

func TestMenuErrors(t *testing.T) {
	m, _ := newTestMenu()

	m = press(t, m, runes("3"))
	m = press(t, m, answer("A")...)
	m = press(t, m, answer("B")...)
	m = press(t, m, answer("far")...)
	require.Error(t, m.Err)
	assert.Contains(t, m.View(), "not a whole number")

	m = press(t, m, runes("3"))
	m = press(t, m, answer("A")...)
	m = press(t, m, answer("B")...)
	m = press(t, m, answer("-2")...)
	assert.ErrorIs(t, m.Err, response.ErrNegativeDistance)

	m = press(t, m, runes("1"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.ErrorIs(t, m.Err, response.ErrEmptyArea)
}

func TestMenuNavigation(t *testing.T) {
	m, _ := newTestMenu()

	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.Cursor)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.Cursor)

	// enter on "Add route" starts prompting; esc cancels
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, m.View(), "Enter starting area")
	m = press(t, m, runes("A"), runes("b"), tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "A", m.input)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotContains(t, m.View(), "Enter starting area")
	assert.False(t, m.Done)
}

func TestMenuExit(t *testing.T) {
	m, _ := newTestMenu()

	next, cmd := m.Update(runes("6"))
	require.NotNil(t, cmd)
	assert.True(t, next.(MenuModel).Done)
	assert.Empty(t, next.(MenuModel).View())

	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.True(t, next.(MenuModel).Done)

	// "q" while typing is part of the answer, not a quit
	m = press(t, m, runes("1"), runes("q"))
	assert.False(t, m.Done)
}
