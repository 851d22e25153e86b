package menu

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/atomicstack/bluray-menu-control/internal/bluray"
	"github.com/atomicstack/bluray-menu-control/internal/format/table"
	"github.com/atomicstack/bluray-menu-control/internal/logging"
)

func loadPlaylistMenu(ctx Context) ([]Item, error) {
	return PlaylistEntriesToItems(ctx.Playlists), nil
}

// PlaylistEntriesFromBluray converts scanned playlists, fabricating each
// navigation menu. Playlists whose entries fail validation fall back to the
// minimal play/back menu rather than disappearing.
func PlaylistEntriesFromBluray(playlists []bluray.Playlist) []PlaylistEntry {
	entries := make([]PlaylistEntry, 0, len(playlists))
	for _, pl := range playlists {
		m, err := MenuFromEntries(pl.Name, bluray.MenuStandard, pl.Entries)
		if err != nil {
			logging.Error(err)
			m, _ = MenuFromEntries(pl.Name, bluray.MenuStandard, bluray.FallbackEntries())
		}
		entries = append(entries, PlaylistEntry{
			Name: pl.Name,
			Path: pl.Path,
			Size: pl.Size,
			Menu: m,
		})
	}
	return entries
}

// PlaylistEntriesToItems produces the aligned table shown on the playlist
// screen.
func PlaylistEntriesToItems(entries []PlaylistEntry) []Item {
	if len(entries) == 0 {
		return nil
	}
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{
			entry.Name,
			humanize.IBytes(uint64(entry.Size)),
			fmt.Sprintf("%d entries", len(entry.Menu.Items)),
		})
	}
	aligned := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignRight, table.AlignRight})
	items := make([]Item, len(aligned))
	for i, label := range aligned {
		items[i] = Item{ID: entries[i].Name, Label: label}
	}
	return items
}

func PlaylistOpenAction(ctx Context, item Item) tea.Cmd {
	entry, ok := findPlaylist(ctx, item.ID)
	if !ok {
		return func() tea.Msg {
			return ActionResult{Err: fmt.Errorf("unknown playlist %s", item.ID)}
		}
	}
	return func() tea.Msg {
		return OpenMenuMsg{Menu: entry.Menu}
	}
}

func findPlaylist(ctx Context, name string) (PlaylistEntry, bool) {
	for _, entry := range ctx.Playlists {
		if entry.Name == name {
			return entry, true
		}
	}
	return PlaylistEntry{}, false
}
