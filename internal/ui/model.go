package ui

import (
	"reflect"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/bluray-menu-control/internal/backend"
	"github.com/atomicstack/bluray-menu-control/internal/data/dispatcher"
	"github.com/atomicstack/bluray-menu-control/internal/menu"
	"github.com/atomicstack/bluray-menu-control/internal/state"
	"github.com/atomicstack/bluray-menu-control/internal/theme"
	"github.com/atomicstack/bluray-menu-control/internal/ui/command"
	uistate "github.com/atomicstack/bluray-menu-control/internal/ui/state"
)

type level = uistate.Level

type Mode int

const (
	ModeMenu Mode = iota
	ModeDiscForm
)

const (
	menuHeaderSeparator = "→"
	defaultRootTitle    = "disc menu"
	defaultPollInterval = 2 * time.Second
)

var styles = theme.Default()

var headerSegmentCleaner = strings.NewReplacer("_", " ", "-", " ")

type msgHandler func(tea.Msg) tea.Cmd

func newLevel(id, title string, items []menu.Item, node *menu.Node) *level {
	return uistate.NewLevel(id, title, items, node)
}

// Config carries the UI settings resolved from flags and environment.
type Config struct {
	Width         int
	Height        int
	ShowFooter    bool
	Verbose       bool
	RootMenu      string
	LibraryRoot   string
	PlayerCommand string
	PlayerArgs    []string
	PollInterval  time.Duration
}

// Model implements the Bubble Tea model for the disc menu popup.
type Model struct {
	stack             []*level
	nav               *menu.Navigator
	loading           bool
	pendingID         string
	pendingLabel      string
	errMsg            string
	infoMsg           string
	infoExpire        time.Time
	width             int
	height            int
	fixedWidth        bool
	fixedHeight       bool
	backend           *backend.Watcher
	backendState      map[backend.Kind]error
	backendLastErr    string
	showFooter        bool
	verbose           bool
	discForm          *menu.DiscForm
	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler

	registry      *menu.Registry
	bus           *command.Bus
	mode          Mode
	rootMenuID    string
	rootRequested string
	rootTitle     string
	libraryRoot   string
	playerCommand string
	playerArgs    []string
	pollInterval  time.Duration
	playlists     state.PlaylistStore
	streams       state.StreamStore
	applications  state.ApplicationStore
	disc          state.DiscStore
	dispatcher    *dispatcher.Dispatcher
}

// NewModel initialises the UI state with the root menu and configuration.
// The watcher may be nil when no disc is loaded yet.
func NewModel(cfg Config, watcher *backend.Watcher) *Model {
	registry := menu.BuildRegistry()
	playlists := state.NewPlaylistStore()
	streams := state.NewStreamStore()
	applications := state.NewApplicationStore()
	disc := state.NewDiscStore()
	if watcher != nil {
		disc.SetRoot(watcher.Root())
	}
	interval := cfg.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}
	root := newLevel("root", "Disc Menu", menu.RootItems(), registry.Root())
	nav := menu.NewNavigator()
	nav.SetCurrent(menu.Menu{Name: root.ID, Items: uistate.CloneItems(root.Full)})
	m := &Model{
		stack:         []*level{root},
		nav:           nav,
		registry:      registry,
		bus:           command.New(),
		backend:       watcher,
		backendState:  map[backend.Kind]error{},
		showFooter:    cfg.ShowFooter,
		verbose:       cfg.Verbose,
		mode:          ModeMenu,
		rootRequested: cfg.RootMenu,
		rootTitle:     defaultRootTitle,
		libraryRoot:   cfg.LibraryRoot,
		playerCommand: cfg.PlayerCommand,
		playerArgs:    cfg.PlayerArgs,
		pollInterval:  interval,
		playlists:     playlists,
		streams:       streams,
		applications:  applications,
		disc:          disc,
		dispatcher:    dispatcher.New(playlists, streams, applications),
	}
	m.syncViewport(root)
	if cfg.Width > 0 {
		m.width = cfg.Width
		m.fixedWidth = true
	}
	if cfg.Height > 0 {
		m.height = cfg.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.applyRootMenuOverride(cfg.RootMenu)
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if m.mode == ModeDiscForm {
		if handled, cmd := m.handleDiscForm(msg); handled {
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
			return m, m.finishUpdate(cmds)
		}
	}

	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}

	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):         m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):  m.handleWindowSizeMsg,
		reflect.TypeOf(categoryLoadedMsg{}):  m.handleCategoryLoadedMsg,
		reflect.TypeOf(menu.ActionResult{}):  m.handleActionResultMsg,
		reflect.TypeOf(menu.NoticeMsg{}):     m.handleNoticeMsg,
		reflect.TypeOf(menu.OpenMenuMsg{}):   m.handleOpenMenuMsg,
		reflect.TypeOf(menu.ReplaceMenuMsg{}): m.handleReplaceMenuMsg,
		reflect.TypeOf(menu.GoBackMsg{}):     m.handleGoBackMsg,
		reflect.TypeOf(menu.DiscPrompt{}):    m.handleDiscPromptMsg,
		reflect.TypeOf(menu.DiscOpenedMsg{}): m.handleDiscOpenedMsg,
		reflect.TypeOf(backendEventMsg{}):    m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):     m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) menuContext() menu.Context {
	return menu.Context{
		DiscRoot:      m.disc.Root(),
		LibraryRoot:   m.libraryRoot,
		PlayerCommand: m.playerCommand,
		PlayerArgs:    m.playerArgs,
		Playlists:     m.playlists.Entries(),
		Streams:       m.streams.Entries(),
		Applications:  m.applications.Entries(),
		BDJSupported:  m.applications.Supported(),
	}
}
