package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/bluray-menu-control/internal/logging"
	"github.com/atomicstack/bluray-menu-control/internal/logging/events"
	"github.com/atomicstack/bluray-menu-control/internal/menu"
	"github.com/atomicstack/bluray-menu-control/internal/ui/command"
	uistate "github.com/atomicstack/bluray-menu-control/internal/ui/state"
)

// levelMenu builds the navigator view of a screen: the unfiltered item list
// under the level's identifier. The navigator history therefore mirrors the
// level stack entry for entry.
func levelMenu(l *level) menu.Menu {
	return menu.Menu{Name: l.ID, Items: uistate.CloneItems(l.Full)}
}

// pushLevel appends a screen and records the one it covers in the navigator
// history.
func (m *Model) pushLevel(l *level, nav menu.Menu) {
	if parent := m.currentLevel(); parent != nil {
		parent.LastCursor = parent.Cursor
	}
	m.applyNodeSettings(l)
	m.syncViewport(l)
	m.stack = append(m.stack, l)
	m.nav.PushAndReplace(nav)
}

// popLevel drops the top screen, restores the parent cursor, and rewinds the
// navigator by one menu.
func (m *Model) popLevel() {
	if len(m.stack) <= 1 {
		return
	}
	current := m.currentLevel()
	parent := m.stack[len(m.stack)-2]
	m.stack = m.stack[:len(m.stack)-1]
	m.nav.Back()
	if parent != nil {
		if parent.LastCursor >= 0 && parent.LastCursor < len(parent.Items) {
			parent.Cursor = parent.LastCursor
		} else if idx := parent.IndexOf(current.ID); idx >= 0 {
			parent.Cursor = idx
		} else if len(parent.Items) > 0 {
			parent.Cursor = len(parent.Items) - 1
		}
		parent.LastCursor = -1
		m.syncViewport(parent)
		m.syncNavCursor(parent)
	}
}

// replaceLevel swaps the top screen in place, leaving history untouched.
func (m *Model) replaceLevel(l *level, nav menu.Menu) {
	m.applyNodeSettings(l)
	m.syncViewport(l)
	if len(m.stack) == 0 {
		m.stack = []*level{l}
	} else {
		m.stack[len(m.stack)-1] = l
	}
	m.nav.SetCurrent(nav)
}

// syncNavCursor maps the screen cursor (which runs over the filtered view)
// back onto the navigator's unfiltered selection.
func (m *Model) syncNavCursor(l *level) {
	if l == nil || l != m.currentLevel() {
		return
	}
	if idx := l.SelectedFullIndex(); idx >= 0 {
		m.nav.Highlight(idx)
	}
}

func (m *Model) handleEscapeKey() tea.Cmd {
	current := m.currentLevel()
	if current == nil || len(m.stack) <= 1 {
		return tea.Quit
	}
	events.UI.MenuBack(current.ID, m.nav.HistoryDepth())
	m.popLevel()
	m.errMsg = ""
	m.forceClearInfo()
	return nil
}

func (m *Model) handleEnterKey() tea.Cmd {
	if m.loading {
		return nil
	}
	current := m.currentLevel()
	if current == nil || len(current.Items) == 0 {
		return nil
	}
	ctx := m.menuContext()
	m.syncNavCursor(current)
	item, ok := m.nav.SelectCurrent()
	if !ok {
		item = current.Items[current.Cursor]
	}
	events.UI.MenuEnter(current.ID, item.ID, item.Label, current.Filter)
	beforeCursor := current.FilterCursorPos()
	current.SetFilter("", 0)
	m.noteFilterCursorChange(current, beforeCursor)
	m.syncNavCursor(current)

	// Entries inside a fabricated disc menu carry their own action.
	if item.Action != "" {
		m.loading = true
		m.pendingID = item.ID
		m.pendingLabel = item.Label
		m.errMsg = ""
		m.forceClearInfo()
		return m.bus.Execute(ctx, command.Request{
			ID:      item.ID,
			Label:   item.Label,
			Handler: dispatchEntryAction,
			Item:    item,
		})
	}

	node := current.Node
	if node == nil {
		node, _ = m.registry.Find(current.ID)
	}
	if node != nil {
		if child, ok := node.Children[item.ID]; ok {
			if child.Loader != nil {
				current.LastCursor = current.Cursor
				m.loading = true
				m.pendingID = child.ID
				m.pendingLabel = item.Label
				m.errMsg = ""
				m.forceClearInfo()
				return m.loadMenuCmd(child.ID, item.Label, child.Loader)
			}
			if child.Action != nil {
				m.loading = true
				m.pendingID = child.ID
				m.pendingLabel = item.Label
				m.errMsg = ""
				m.forceClearInfo()
				return m.bus.Execute(ctx, command.Request{ID: child.ID, Label: item.Label, Handler: child.Action, Item: item})
			}
		}
		if node.Action != nil {
			m.loading = true
			m.pendingID = node.ID
			m.pendingLabel = item.Label
			m.errMsg = ""
			m.forceClearInfo()
			return m.bus.Execute(ctx, command.Request{ID: node.ID, Label: item.Label, Handler: node.Action, Item: item})
		}
	}
	m.setInfo(fmt.Sprintf("Selected %s (no action defined yet)", item.Label))
	return nil
}

func dispatchEntryAction(ctx menu.Context, item menu.Item) tea.Cmd {
	return menu.DispatchEntryAction(ctx, item)
}

func (m *Model) moveCursorUp() {
	m.moveCursor(-1)
}

func (m *Model) moveCursorDown() {
	m.moveCursor(1)
}

// moveCursor shifts the selection with wraparound. Without a filter the
// navigator drives the movement directly; with one the filtered view moves
// and the navigator is re-pointed at the chosen entry.
func (m *Model) moveCursor(delta int) {
	current := m.currentLevel()
	if current == nil {
		return
	}
	n := len(current.Items)
	if n == 0 {
		return
	}
	if strings.TrimSpace(current.Filter) == "" {
		if idx := m.nav.Move(delta); idx >= 0 {
			current.Cursor = idx
		}
	} else {
		current.Cursor = ((current.Cursor+delta)%n + n) % n
		m.syncNavCursor(current)
	}
	events.UI.MenuCursor(current.ID, current.Cursor)
	m.syncViewport(current)
}

func (m *Model) moveCursorPageUp() {
	if current := m.currentLevel(); current != nil {
		if moved := current.MoveCursorPageUp(m.maxVisibleItems()); moved {
			events.UI.MenuCursor(current.ID, current.Cursor)
			m.syncNavCursor(current)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorPageDown() {
	if current := m.currentLevel(); current != nil {
		if moved := current.MoveCursorPageDown(m.maxVisibleItems()); moved {
			events.UI.MenuCursor(current.ID, current.Cursor)
			m.syncNavCursor(current)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorHome() {
	if current := m.currentLevel(); current != nil {
		if moved := current.MoveCursorHome(); moved {
			events.UI.MenuCursor(current.ID, current.Cursor)
			m.syncNavCursor(current)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorEnd() {
	if current := m.currentLevel(); current != nil {
		if moved := current.MoveCursorEnd(); moved {
			events.UI.MenuCursor(current.ID, current.Cursor)
			m.syncNavCursor(current)
		}
		m.syncViewport(current)
	}
}

func (m *Model) syncViewport(l *level) {
	if l == nil {
		return
	}
	l.EnsureCursorVisible(m.maxVisibleItems())
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.mode != ModeMenu {
		return nil
	}
	if m.handleTextInput(keyMsg) {
		return nil
	}
	switch keyMsg.String() {
	case "ctrl+c", "q":
		return tea.Quit
	case "esc":
		return m.handleEscapeKey()
	case "enter":
		return m.handleEnterKey()
	case "up":
		m.moveCursorUp()
	case "down":
		m.moveCursorDown()
	case "pgup":
		m.moveCursorPageUp()
	case "pgdown":
		m.moveCursorPageDown()
	case "home":
		m.moveCursorHome()
	case "end":
		m.moveCursorEnd()
	}
	return nil
}

func (m *Model) handleCategoryLoadedMsg(msg tea.Msg) tea.Cmd {
	update, ok := msg.(categoryLoadedMsg)
	if !ok {
		return nil
	}
	if update.id != m.pendingID {
		return nil
	}
	m.loading = false
	m.pendingID = ""
	m.pendingLabel = ""
	if update.err != nil {
		m.errMsg = update.err.Error()
		return nil
	}
	m.errMsg = ""
	node, _ := m.registry.Find(update.id)
	lvl := newLevel(update.id, update.title, update.items, node)
	m.pushLevel(lvl, levelMenu(lvl))
	if len(lvl.Items) == 0 {
		m.setInfo("No entries found.")
	} else if m.infoMsg != "" {
		m.clearInfo()
	}
	return nil
}

// handleOpenMenuMsg pushes a fabricated disc menu onto the stack.
func (m *Model) handleOpenMenuMsg(msg tea.Msg) tea.Cmd {
	open, ok := msg.(menu.OpenMenuMsg)
	if !ok {
		return nil
	}
	m.loading = false
	m.pendingID = ""
	m.pendingLabel = ""
	m.errMsg = ""
	lvl := newLevel(open.Menu.Name, open.Menu.Name, open.Menu.Items, nil)
	m.pushLevel(lvl, open.Menu)
	if len(lvl.Items) == 0 {
		m.setInfo("No entries found.")
	}
	return nil
}

// handleReplaceMenuMsg swaps the current menu without touching history, the
// way a disc's main-menu entry does.
func (m *Model) handleReplaceMenuMsg(msg tea.Msg) tea.Cmd {
	replace, ok := msg.(menu.ReplaceMenuMsg)
	if !ok {
		return nil
	}
	m.loading = false
	m.pendingID = ""
	m.pendingLabel = ""
	m.errMsg = ""
	lvl := newLevel(replace.Menu.Name, replace.Menu.Name, replace.Menu.Items, nil)
	m.replaceLevel(lvl, replace.Menu)
	return nil
}

// handleGoBackMsg serves a menu's own back entry. At the root it is a no-op.
func (m *Model) handleGoBackMsg(tea.Msg) tea.Cmd {
	m.loading = false
	m.pendingID = ""
	m.pendingLabel = ""
	if len(m.stack) <= 1 {
		return nil
	}
	if current := m.currentLevel(); current != nil {
		events.UI.MenuBack(current.ID, m.nav.HistoryDepth())
	}
	m.popLevel()
	return nil
}

func (m *Model) handleNoticeMsg(msg tea.Msg) tea.Cmd {
	notice, ok := msg.(menu.NoticeMsg)
	if !ok {
		return nil
	}
	m.loading = false
	m.pendingID = ""
	m.pendingLabel = ""
	m.setInfo(notice.Text)
	return nil
}

func (m *Model) applyNodeSettings(l *level) {
	if l == nil || l.Node != nil {
		return
	}
	if node, ok := m.registry.Find(l.ID); ok {
		l.Node = node
	}
}

func (m *Model) findLevelByID(id string) *level {
	for _, lvl := range m.stack {
		if lvl.ID == id {
			m.applyNodeSettings(lvl)
			return lvl
		}
	}
	return nil
}

func (m *Model) applyRootMenuOverride(requested string) {
	trimmed := strings.TrimSpace(requested)
	if trimmed == "" {
		m.rootMenuID = ""
		m.rootTitle = defaultRootTitle
		return
	}
	if m.registry == nil {
		return
	}
	id := strings.ToLower(trimmed)
	node, ok := m.registry.Find(id)
	if !ok {
		m.errMsg = fmt.Sprintf("Unknown root menu %q", trimmed)
		m.rootMenuID = ""
		m.rootTitle = defaultRootTitle
		return
	}

	items := []menu.Item(nil)
	if node.Loader != nil {
		loaded, err := node.Loader(m.menuContext())
		if err != nil {
			logging.Error(err)
			m.errMsg = fmt.Sprintf("Failed to load %s menu: %v", id, err)
		} else {
			items = loaded
			m.errMsg = ""
		}
	} else {
		m.errMsg = ""
	}

	title := strings.TrimSpace(headerSegmentCleaner.Replace(node.ID))
	root := newLevel(node.ID, title, items, node)
	m.applyNodeSettings(root)
	m.syncViewport(root)
	m.stack = []*level{root}
	m.nav = menu.NewNavigator()
	m.nav.SetCurrent(levelMenu(root))
	m.rootMenuID = node.ID

	segment := headerSegmentForLevel(root)
	if segment == "" {
		segment = title
	}
	if segment == "" {
		segment = node.ID
	}
	m.rootTitle = segment
}

func (m *Model) currentLevel() *level {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}
