package menu

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/bluray-menu-control/internal/bluray"
	"github.com/atomicstack/bluray-menu-control/internal/logging"
)

func loadApplicationMenu(ctx Context) ([]Item, error) {
	if !ctx.BDJSupported {
		return nil, nil
	}
	return ApplicationEntriesToItems(ctx.Applications), nil
}

// ApplicationEntriesFromBluray converts detected BD-J applications, each with
// its fabricated interactive menu.
func ApplicationEntriesFromBluray(apps []bluray.Application) []ApplicationEntry {
	entries := make([]ApplicationEntry, 0, len(apps))
	for _, app := range apps {
		m, err := MenuFromEntries(app.Name, bluray.MenuInteractive, app.Entries)
		if err != nil {
			logging.Error(err)
			continue
		}
		entries = append(entries, ApplicationEntry{Name: app.Name, Path: app.Path, Menu: m})
	}
	return entries
}

func ApplicationEntriesToItems(entries []ApplicationEntry) []Item {
	items := make([]Item, 0, len(entries))
	for _, entry := range entries {
		items = append(items, Item{ID: entry.Name, Label: fmt.Sprintf("[BD-J] %s", entry.Name)})
	}
	return items
}

func ApplicationOpenAction(ctx Context, item Item) tea.Cmd {
	entry, ok := findApplication(ctx, item.ID)
	if !ok {
		return func() tea.Msg {
			return ActionResult{Err: fmt.Errorf("unknown application %s", item.ID)}
		}
	}
	return func() tea.Msg {
		return OpenMenuMsg{Menu: entry.Menu}
	}
}

func findApplication(ctx Context, name string) (ApplicationEntry, bool) {
	for _, entry := range ctx.Applications {
		if entry.Name == name {
			return entry, true
		}
	}
	return ApplicationEntry{}, false
}
