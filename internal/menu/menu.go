package menu

import (
	"fmt"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/bluray-menu-control/internal/bluray"
)

// Item represents a selectable menu entry. Action carries a disc-menu action
// identifier from the closed set below; navigation-only items leave it empty.
// Target is an optional action payload such as a chapter number.
type Item struct {
	ID     string
	Label  string
	Action string
	Target interface{}
}

// Menu is an ordered list of items under a name, as handed to the navigator.
type Menu struct {
	Name  string
	Items []Item
	Type  bluray.MenuType
}

// Context carries runtime data needed by loader functions and actions.
type Context struct {
	DiscRoot      string
	LibraryRoot   string
	PlayerCommand string
	PlayerArgs    []string
	Playlists     []PlaylistEntry
	Streams       []StreamEntry
	Applications  []ApplicationEntry
	BDJSupported  bool
}

// PlaylistEntry references one playlist with its fabricated menu.
type PlaylistEntry struct {
	Name string
	Path string
	Size int64
	Menu Menu
}

// StreamEntry references one stream file.
type StreamEntry struct {
	Name string
	Path string
	Size int64
}

// ApplicationEntry references one BD-J application with its interactive menu.
type ApplicationEntry struct {
	Name string
	Path string
	Menu Menu
}

// Loader populates submenu entries on demand.
type Loader func(Context) ([]Item, error)

type Action func(Context, Item) tea.Cmd

// ActionResult communicates the outcome of executing a menu action.
type ActionResult struct {
	Info string
	Err  error
}

// OpenMenuMsg asks the UI to push the given menu onto the navigation stack.
type OpenMenuMsg struct {
	Menu Menu
}

// ReplaceMenuMsg asks the UI to swap the current menu without growing history.
type ReplaceMenuMsg struct {
	Menu Menu
}

// GoBackMsg asks the UI to pop one menu off the navigation stack.
type GoBackMsg struct{}

// NoticeMsg surfaces a transient status line without quitting.
type NoticeMsg struct {
	Text string
}

// DiscPrompt requests interactive input of a disc path.
type DiscPrompt struct {
	Context Context
	Initial string
}

// DiscOpenedMsg reports a newly resolved disc root to load.
type DiscOpenedMsg struct {
	Root string
}

// validActions is the closed set of recognised disc-menu action identifiers.
var validActions = map[string]struct{}{
	bluray.ActionPlayMain:       {},
	bluray.ActionPlayAll:        {},
	bluray.ActionPlayChapter:    {},
	bluray.ActionChapters:       {},
	bluray.ActionSettings:       {},
	bluray.ActionSpecial:        {},
	bluray.ActionMainMenu:       {},
	bluray.ActionBack:           {},
	bluray.ActionBDJPlayMain:    {},
	bluray.ActionBDJInteractive: {},
	bluray.ActionBDJChapters:    {},
	bluray.ActionBDJSpecial:     {},
	bluray.ActionBDJSettings:    {},
	bluray.ActionFallbackMenu:   {},
	actionAudioSettings:         {},
	actionSubtitleSettings:      {},
	actionDisplaySettings:       {},
	actionPlayBonus:             {},
	actionPlayMakingOf:          {},
	actionPlayCommentary:        {},
}

// Submenu-only action identifiers; recognised but inert placeholders, as in
// the original settings/special menus.
const (
	actionAudioSettings    = "audio_settings"
	actionSubtitleSettings = "subtitle_settings"
	actionDisplaySettings  = "display_settings"
	actionPlayBonus        = "play_bonus"
	actionPlayMakingOf     = "play_making_of"
	actionPlayCommentary   = "play_commentary"
)

// MenuFromEntries converts fabricated disc entries into a Menu, rejecting
// unknown action identifiers. This is the boundary where collaborators'
// menus are validated.
func MenuFromEntries(name string, menuType bluray.MenuType, entries []bluray.MenuEntry) (Menu, error) {
	items := make([]Item, 0, len(entries))
	for i, entry := range entries {
		if _, ok := validActions[entry.Action]; !ok {
			return Menu{}, fmt.Errorf("menu %s: unknown action %q", name, entry.Action)
		}
		items = append(items, Item{
			ID:     entryID(entry, i),
			Label:  entry.Title,
			Action: entry.Action,
			Target: entry.Target,
		})
	}
	return Menu{Name: name, Items: items, Type: menuType}, nil
}

func entryID(entry bluray.MenuEntry, index int) string {
	if target, ok := entry.Target.(int); ok {
		return fmt.Sprintf("%s:%d", entry.Action, target)
	}
	if entry.Action != "" {
		return fmt.Sprintf("%s:%d", entry.Action, index)
	}
	return fmt.Sprintf("item:%d", index)
}

// RootItems returns the top-level menu entries.
func RootItems() []Item {
	return []Item{
		{ID: "playlist", Label: "playlist"},
		{ID: "stream", Label: "stream"},
		{ID: "bdj", Label: "bdj"},
		{ID: "drive", Label: "drive"},
		{ID: "library", Label: "library"},
		{ID: "open", Label: "open"},
	}
}

// CategoryLoaders lists submenu loaders keyed by root item ID.
func CategoryLoaders() map[string]Loader {
	return map[string]Loader{
		"playlist": loadPlaylistMenu,
		"stream":   loadStreamMenu,
		"bdj":      loadApplicationMenu,
		"drive":    loadDriveMenu,
		"library":  loadLibraryMenu,
	}
}

// ActionHandlers maps menu identifiers to their execution logic.
func ActionHandlers() map[string]Action {
	return map[string]Action{
		"playlist": PlaylistOpenAction,
		"stream":   StreamPlayAction,
		"bdj":      ApplicationOpenAction,
		"drive":    DriveOpenAction,
		"library":  LibraryOpenAction,
		"open":     DiscPromptAction,
	}
}

func prettyLabel(id string) string {
	if id == "" {
		return id
	}
	parts := strings.FieldsFunc(id, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	for i, part := range parts {
		if part == "" {
			continue
		}
		runes := []rune(part)
		if i == 0 {
			runes[0] = unicode.ToUpper(runes[0])
		}
		for j := 1; j < len(runes); j++ {
			runes[j] = unicode.ToLower(runes[j])
		}
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}
