package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/accesskit-go/capture"
)

func browseSteps() []capture.Step {
	return capture.Replay([]capture.Record{
		{Line: 1, Update: window("OK")},
		{Line: 2, Update: window("Cancel")},
	})
}

func key(s string) tea.KeyMsg {
	switch s {
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestBrowseNavigation(t *testing.T) {
	m := newBrowseModel("capture.jsonl", browseSteps())
	assert.Equal(t, "Loading...", m.View())

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	require.True(t, m.ready)

	view := m.View()
	assert.Contains(t, view, "capture.jsonl")
	assert.Contains(t, view, "#1   +2 -0 ~0")
	assert.Contains(t, view, "#2   +0 -0 ~1")
	assert.Contains(t, m.detail(), "+ node 1")
	assert.Contains(t, m.detail(), `2 button "OK"`)

	m.Update(key("j"))
	assert.Equal(t, 1, m.selected)
	assert.Contains(t, m.detail(), "~ node 2: label")
	assert.Contains(t, m.detail(), `2 button "Cancel"`)

	m.Update(key("down"))
	assert.Equal(t, 1, m.selected, "stays on the last record")

	m.Update(key("k"))
	assert.Equal(t, 0, m.selected)
	m.Update(key("up"))
	assert.Equal(t, 0, m.selected)
}

func TestBrowseUpdatePane(t *testing.T) {
	m := newBrowseModel("capture.jsonl", browseSteps())
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	m.Update(key("tab"))
	assert.Equal(t, paneUpdate, m.pane)
	assert.Contains(t, m.detail(), "label: OK")

	m.Update(key("tab"))
	assert.Equal(t, paneTree, m.pane)
}

func TestBrowseQuit(t *testing.T) {
	m := newBrowseModel("capture.jsonl", browseSteps())
	for _, k := range []tea.KeyMsg{key("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(k)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestBrowseEmpty(t *testing.T) {
	m := newBrowseModel("empty.jsonl", nil)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	assert.Equal(t, "capture file is empty", m.detail())
	assert.NotPanics(t, func() { m.View() })
}
