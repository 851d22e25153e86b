package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/bluray-menu-control/internal/backend"
	"github.com/atomicstack/bluray-menu-control/internal/logging/events"
	"github.com/atomicstack/bluray-menu-control/internal/menu"
)

// Both messages carry the watcher they came from so that events from a
// stopped watcher (after a disc swap) can be discarded.
type backendEventMsg struct {
	watcher *backend.Watcher
	event   backend.Event
}

type backendDoneMsg struct {
	watcher *backend.Watcher
}

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{watcher: w}
		}
		return backendEventMsg{watcher: w, event: evt}
	}
}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok || eventMsg.watcher != m.backend {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	done, ok := msg.(backendDoneMsg)
	if !ok || done.watcher != m.backend {
		return nil
	}
	m.backend = nil
	return nil
}

func (m *Model) applyBackendEvent(evt backend.Event) {
	if m.backendState == nil {
		m.backendState = make(map[backend.Kind]error)
	}
	m.backendState[evt.Kind] = evt.Err
	if evt.Err != nil {
		m.backendLastErr = evt.Err.Error()
		return
	}

	res := m.dispatcher.Handle(evt)
	ctx := m.menuContext()

	if res.PlaylistsUpdated {
		m.refreshLevel("playlist", menu.PlaylistEntriesToItems(ctx.Playlists))
	}
	if res.StreamsUpdated {
		m.refreshLevel("stream", menu.StreamEntriesToItems(ctx.Streams))
	}
	if res.ApplicationsUpdated {
		items := []menu.Item(nil)
		if ctx.BDJSupported {
			items = menu.ApplicationEntriesToItems(ctx.Applications)
		}
		m.refreshLevel("bdj", items)
	}
	if res.PlaylistsUpdated || res.StreamsUpdated || res.ApplicationsUpdated {
		events.Disc.Scan(m.disc.Root(), len(ctx.Playlists), len(ctx.Streams), len(ctx.Applications))
	}

	if warn, _ := m.hasBackendIssue(); !warn {
		m.backendLastErr = ""
	}
}

// refreshLevel replaces the items of an on-screen category level. When the
// level is on top, the navigator's current menu is rebuilt around the same
// selection.
func (m *Model) refreshLevel(id string, items []menu.Item) {
	lvl := m.findLevelByID(id)
	if lvl == nil {
		return
	}
	lvl.UpdateItems(items)
	if len(lvl.Items) > 0 {
		m.clearInfo()
	}
	m.syncViewport(lvl)
	if lvl == m.currentLevel() {
		m.nav.SetCurrent(levelMenu(lvl))
		m.syncNavCursor(lvl)
	}
}

func (m *Model) hasBackendIssue() (bool, string) {
	for _, err := range m.backendState {
		if err != nil {
			msg := m.backendLastErr
			if msg == "" {
				msg = err.Error()
			}
			return true, msg
		}
	}
	return false, ""
}

// handleDiscOpenedMsg swaps in a new disc: the watcher is replaced and the
// stores emptied until its first snapshots arrive.
func (m *Model) handleDiscOpenedMsg(msg tea.Msg) tea.Cmd {
	opened, ok := msg.(menu.DiscOpenedMsg)
	if !ok {
		return nil
	}
	m.loading = false
	m.pendingID = ""
	m.pendingLabel = ""
	m.errMsg = ""

	m.disc.SetRoot(opened.Root)
	m.playlists.SetEntries(nil)
	m.streams.SetEntries(nil)
	m.applications.SetEntries(nil)
	m.applications.SetSupported(false)
	m.backendState = map[backend.Kind]error{}
	m.backendLastErr = ""

	if m.backend != nil {
		m.backend.Stop()
	}
	m.backend = backend.NewWatcher(opened.Root, m.pollInterval)
	events.Disc.Load(opened.Root)

	m.resetToRoot()
	m.setInfo(fmt.Sprintf("Opened disc %s", opened.Root))
	return waitForBackendEvent(m.backend)
}

// resetToRoot collapses the stack back to the root screen, honouring any
// configured root menu override.
func (m *Model) resetToRoot() {
	root := newLevel("root", "Disc Menu", menu.RootItems(), m.registry.Root())
	m.syncViewport(root)
	m.stack = []*level{root}
	m.nav = menu.NewNavigator()
	m.nav.SetCurrent(levelMenu(root))
	m.applyRootMenuOverride(m.rootRequested)
}
