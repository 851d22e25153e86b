package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/bluray-menu-control/internal/menu"
)

func TestHandleEscapeKeyFromRootQuits(t *testing.T) {
	m := NewModel(Config{}, nil)
	cmd := m.handleEscapeKey()
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	msg := cmd()
	if _, ok := msg.(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg, got %T", msg)
	}
}

func TestHandleEscapeKeyPopsLevelAndRestoresCursor(t *testing.T) {
	m := NewModel(Config{}, nil)
	parent := m.currentLevel()
	parent.Cursor = 1

	chapters := menu.ChapterMenu()
	lvl := newLevel(chapters.Name, chapters.Name, chapters.Items, nil)
	m.pushLevel(lvl, chapters)
	parent.LastCursor = 2
	m.errMsg = "previous error"

	cmd := m.handleEscapeKey()
	if cmd != nil {
		t.Fatalf("expected no command when popping a level")
	}
	if len(m.stack) != 1 {
		t.Fatalf("expected stack to shrink to 1, got %d", len(m.stack))
	}
	if parent.Cursor != 2 {
		t.Fatalf("expected parent cursor restored to 2, got %d", parent.Cursor)
	}
	if parent.LastCursor != -1 {
		t.Fatalf("expected parent LastCursor reset, got %d", parent.LastCursor)
	}
	if m.errMsg != "" {
		t.Fatalf("expected error message cleared, got %q", m.errMsg)
	}
	if depth := m.nav.HistoryDepth(); depth != 0 {
		t.Fatalf("expected empty history after pop, got depth %d", depth)
	}
	if m.nav.SelectedIndex() != 2 {
		t.Fatalf("expected navigator highlight restored to 2, got %d", m.nav.SelectedIndex())
	}
}

func TestPushLevelMirrorsHistory(t *testing.T) {
	m := NewModel(Config{}, nil)
	chapters := menu.ChapterMenu()
	lvl := newLevel(chapters.Name, chapters.Name, chapters.Items, nil)
	m.pushLevel(lvl, chapters)

	if got, want := len(m.stack), 2; got != want {
		t.Fatalf("expected stack depth %d, got %d", want, got)
	}
	if got, want := m.nav.HistoryDepth(), len(m.stack)-1; got != want {
		t.Fatalf("expected history depth %d, got %d", want, got)
	}
	if got := m.nav.Current().Name; got != chapters.Name {
		t.Fatalf("expected navigator on %q, got %q", chapters.Name, got)
	}
	if got := len(m.nav.Current().Items); got != len(chapters.Items) {
		t.Fatalf("expected %d navigator items, got %d", len(chapters.Items), got)
	}
}

func TestHandleOpenMenuMsgPushesLevel(t *testing.T) {
	m := NewModel(Config{}, nil)
	settings := menu.SettingsMenu()

	cmd := m.handleOpenMenuMsg(menu.OpenMenuMsg{Menu: settings})
	if cmd != nil {
		t.Fatalf("expected no follow-up command")
	}
	if len(m.stack) != 2 {
		t.Fatalf("expected stack depth 2, got %d", len(m.stack))
	}
	if m.nav.HistoryDepth() != 1 {
		t.Fatalf("expected history depth 1, got %d", m.nav.HistoryDepth())
	}
	if got := m.currentLevel().ID; got != settings.Name {
		t.Fatalf("expected level %q, got %q", settings.Name, got)
	}
}

func TestHandleReplaceMenuMsgKeepsHistory(t *testing.T) {
	m := NewModel(Config{}, nil)
	m.handleOpenMenuMsg(menu.OpenMenuMsg{Menu: menu.SettingsMenu()})
	depthBefore := m.nav.HistoryDepth()
	stackBefore := len(m.stack)

	replacement := menu.ChapterMenu()
	m.handleReplaceMenuMsg(menu.ReplaceMenuMsg{Menu: replacement})

	if len(m.stack) != stackBefore {
		t.Fatalf("expected stack depth unchanged at %d, got %d", stackBefore, len(m.stack))
	}
	if m.nav.HistoryDepth() != depthBefore {
		t.Fatalf("expected history depth unchanged at %d, got %d", depthBefore, m.nav.HistoryDepth())
	}
	if got := m.nav.Current().Name; got != replacement.Name {
		t.Fatalf("expected navigator on %q, got %q", replacement.Name, got)
	}
	if m.nav.SelectedIndex() != 0 {
		t.Fatalf("expected highlight reset after replace, got %d", m.nav.SelectedIndex())
	}
}

func TestHandleGoBackMsgAtRootIsNoOp(t *testing.T) {
	m := NewModel(Config{}, nil)
	cmd := m.handleGoBackMsg(menu.GoBackMsg{})
	if cmd != nil {
		t.Fatalf("expected no command at root")
	}
	if len(m.stack) != 1 {
		t.Fatalf("expected stack depth 1, got %d", len(m.stack))
	}
	if m.nav.HistoryDepth() != 0 {
		t.Fatalf("expected history depth 0, got %d", m.nav.HistoryDepth())
	}
}

func TestHandleGoBackMsgPopsLevel(t *testing.T) {
	m := NewModel(Config{}, nil)
	m.handleOpenMenuMsg(menu.OpenMenuMsg{Menu: menu.ChapterMenu()})

	m.handleGoBackMsg(menu.GoBackMsg{})
	if len(m.stack) != 1 {
		t.Fatalf("expected stack depth 1 after back, got %d", len(m.stack))
	}
	if m.nav.HistoryDepth() != 0 {
		t.Fatalf("expected history depth 0 after back, got %d", m.nav.HistoryDepth())
	}
	if got := m.currentLevel().ID; got != "root" {
		t.Fatalf("expected root level, got %q", got)
	}
}

func TestMoveCursorWrapsThroughNavigator(t *testing.T) {
	m := NewModel(Config{}, nil)
	current := m.currentLevel()
	count := len(current.Items)
	if count == 0 {
		t.Fatalf("expected root items")
	}

	m.moveCursorUp()
	if current.Cursor != count-1 {
		t.Fatalf("expected wrap to last item %d, got %d", count-1, current.Cursor)
	}
	if m.nav.SelectedIndex() != count-1 {
		t.Fatalf("expected navigator at %d, got %d", count-1, m.nav.SelectedIndex())
	}

	m.moveCursorDown()
	if current.Cursor != 0 {
		t.Fatalf("expected wrap back to 0, got %d", current.Cursor)
	}
	if m.nav.SelectedIndex() != 0 {
		t.Fatalf("expected navigator back at 0, got %d", m.nav.SelectedIndex())
	}
}

func TestMoveCursorWithFilterTracksFullIndex(t *testing.T) {
	m := NewModel(Config{}, nil)
	current := m.currentLevel()
	current.SetFilter("stream", 0)
	if len(current.Items) != 1 {
		t.Fatalf("expected single filtered item, got %d", len(current.Items))
	}

	m.moveCursorDown()
	if current.Cursor != 0 {
		t.Fatalf("expected filtered cursor to stay at 0, got %d", current.Cursor)
	}
	want := current.FullIndexOf("stream")
	if m.nav.SelectedIndex() != want {
		t.Fatalf("expected navigator on full index %d, got %d", want, m.nav.SelectedIndex())
	}
}

func TestRefreshLevelRebuildsNavigatorMenu(t *testing.T) {
	m := NewModel(Config{}, nil)
	items := []menu.Item{{ID: "one", Label: "one"}, {ID: "two", Label: "two"}}
	lvl := newLevel("playlist", "playlist", items, nil)
	m.pushLevel(lvl, levelMenu(lvl))
	lvl.Cursor = 1

	updated := []menu.Item{{ID: "one", Label: "one"}, {ID: "two", Label: "two"}, {ID: "three", Label: "three"}}
	m.refreshLevel("playlist", updated)

	if got := len(m.nav.Current().Items); got != 3 {
		t.Fatalf("expected navigator menu with 3 items, got %d", got)
	}
	if m.nav.SelectedIndex() != 1 {
		t.Fatalf("expected highlight kept at 1, got %d", m.nav.SelectedIndex())
	}
}
