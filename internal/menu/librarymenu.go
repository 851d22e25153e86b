package menu

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/bluray-menu-control/internal/library"
	"github.com/atomicstack/bluray-menu-control/internal/logging/events"
)

func loadLibraryMenu(ctx Context) ([]Item, error) {
	discs, err := library.Scan(ctx.LibraryRoot)
	if err != nil {
		return nil, err
	}
	items := make([]Item, 0, len(discs))
	for _, disc := range discs {
		items = append(items, Item{ID: disc.Root, Label: disc.Name})
	}
	return items, nil
}

// LibraryOpenAction loads the chosen library disc.
func LibraryOpenAction(ctx Context, item Item) tea.Cmd {
	return func() tea.Msg {
		events.Disc.Load(item.ID)
		return DiscOpenedMsg{Root: item.ID}
	}
}
