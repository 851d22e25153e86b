package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestHandleTextInputNarrowsItems(t *testing.T) {
	m := NewModel(Config{}, nil)
	current := m.currentLevel()
	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("stream")}) {
		t.Fatalf("expected runes to be consumed")
	}
	if current.Filter != "stream" {
		t.Fatalf("expected filter stream, got %q", current.Filter)
	}
	if len(current.Items) != 1 || current.Items[0].ID != "stream" {
		t.Fatalf("expected single stream item, got %#v", current.Items)
	}
	want := current.FullIndexOf("stream")
	if m.nav.SelectedIndex() != want {
		t.Fatalf("expected navigator highlight %d, got %d", want, m.nav.SelectedIndex())
	}
}

func TestHandleTextInputClearFilter(t *testing.T) {
	m := NewModel(Config{}, nil)
	current := m.currentLevel()
	m.handleTextInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("drive")})
	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyCtrlU}) {
		t.Fatalf("expected ctrl+u to be consumed")
	}
	if current.Filter != "" {
		t.Fatalf("expected filter cleared, got %q", current.Filter)
	}
	if len(current.Items) != len(current.Full) {
		t.Fatalf("expected full item list restored")
	}
}

func TestHandleTextInputClearOnEmptyFilterIgnored(t *testing.T) {
	m := NewModel(Config{}, nil)
	if m.handleTextInput(tea.KeyMsg{Type: tea.KeyCtrlU}) {
		t.Fatalf("expected ctrl+u ignored with no filter")
	}
}

func TestHandleTextInputBackspace(t *testing.T) {
	m := NewModel(Config{}, nil)
	current := m.currentLevel()
	m.handleTextInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("op")})
	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyBackspace}) {
		t.Fatalf("expected backspace to be consumed")
	}
	if current.Filter != "o" {
		t.Fatalf("expected filter o, got %q", current.Filter)
	}
	m.handleTextInput(tea.KeyMsg{Type: tea.KeyBackspace})
	if current.Filter != "" {
		t.Fatalf("expected filter emptied, got %q", current.Filter)
	}
	if m.handleTextInput(tea.KeyMsg{Type: tea.KeyBackspace}) {
		t.Fatalf("expected backspace ignored on empty filter")
	}
}

func TestHandleTextInputIgnoredWhileLoading(t *testing.T) {
	m := NewModel(Config{}, nil)
	m.loading = true
	if m.handleTextInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}) {
		t.Fatalf("expected input ignored while loading")
	}
}

func TestFilterCursorMovement(t *testing.T) {
	m := NewModel(Config{}, nil)
	current := m.currentLevel()
	m.handleTextInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("disc")})
	m.handleTextInput(tea.KeyMsg{Type: tea.KeySpace})
	m.handleTextInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("menu")})
	if got := current.FilterCursorPos(); got != 9 {
		t.Fatalf("expected cursor at end, got %d", got)
	}
	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyLeft}) {
		t.Fatalf("expected left to be consumed")
	}
	if got := current.FilterCursorPos(); got != 8 {
		t.Fatalf("expected cursor 8, got %d", got)
	}
	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyCtrlA}) {
		t.Fatalf("expected ctrl+a to be consumed")
	}
	if got := current.FilterCursorPos(); got != 0 {
		t.Fatalf("expected cursor at start, got %d", got)
	}
	if m.handleTextInput(tea.KeyMsg{Type: tea.KeyLeft}) {
		t.Fatalf("expected left ignored at start")
	}
	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyCtrlE}) {
		t.Fatalf("expected ctrl+e to be consumed")
	}
	if got := current.FilterCursorPos(); got != 9 {
		t.Fatalf("expected cursor back at end, got %d", got)
	}
}
