package menu

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/bluray-menu-control/internal/bluray"
	"github.com/atomicstack/bluray-menu-control/internal/logging/events"
)

func loadDriveMenu(Context) ([]Item, error) {
	drives := bluray.AvailableDrives()
	items := make([]Item, 0, len(drives))
	for _, drive := range drives {
		items = append(items, Item{
			ID:    drive.Root,
			Label: fmt.Sprintf("%s: drive", drive.Letter),
		})
	}
	return items, nil
}

// DriveOpenAction loads the disc found on the chosen drive.
func DriveOpenAction(ctx Context, item Item) tea.Cmd {
	return func() tea.Msg {
		events.Disc.Load(item.ID)
		return DiscOpenedMsg{Root: item.ID}
	}
}
