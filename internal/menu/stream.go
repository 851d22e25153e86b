package menu

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/atomicstack/bluray-menu-control/internal/bluray"
	"github.com/atomicstack/bluray-menu-control/internal/format/table"
	"github.com/atomicstack/bluray-menu-control/internal/logging/events"
	"github.com/atomicstack/bluray-menu-control/internal/player"
)

func loadStreamMenu(ctx Context) ([]Item, error) {
	return StreamEntriesToItems(ctx.Streams), nil
}

func StreamEntriesFromBluray(streams []bluray.Stream) []StreamEntry {
	entries := make([]StreamEntry, 0, len(streams))
	for _, st := range streams {
		entries = append(entries, StreamEntry{Name: st.Name, Path: st.Path, Size: st.Size})
	}
	return entries
}

func StreamEntriesToItems(entries []StreamEntry) []Item {
	if len(entries) == 0 {
		return nil
	}
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{entry.Name, humanize.IBytes(uint64(entry.Size))})
	}
	aligned := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignRight})
	items := make([]Item, len(aligned))
	for i, label := range aligned {
		items[i] = Item{ID: entries[i].Name, Label: label}
	}
	return items
}

// StreamPlayAction launches the configured player on the chosen stream.
func StreamPlayAction(ctx Context, item Item) tea.Cmd {
	entry, ok := findStream(ctx, item.ID)
	if !ok {
		return func() tea.Msg {
			return ActionResult{Err: fmt.Errorf("unknown stream %s", item.ID)}
		}
	}
	return playStreamCommand(ctx, entry, 0)
}

func playStreamCommand(ctx Context, entry StreamEntry, chapter int) tea.Cmd {
	return func() tea.Msg {
		launcher := player.New(ctx.PlayerCommand, ctx.PlayerArgs...)
		events.Player.Launch(launcher.Command(), entry.Path, chapter)
		if err := launcher.Launch(entry.Path, chapter); err != nil {
			events.Player.LaunchFailed(launcher.Command(), entry.Path, err)
			return ActionResult{Err: err}
		}
		if chapter > 0 {
			return ActionResult{Info: fmt.Sprintf("Playing %s from chapter %d", entry.Name, chapter)}
		}
		return ActionResult{Info: fmt.Sprintf("Playing %s", entry.Name)}
	}
}

func findStream(ctx Context, name string) (StreamEntry, bool) {
	for _, entry := range ctx.Streams {
		if entry.Name == name {
			return entry, true
		}
	}
	return StreamEntry{}, false
}

// mainStream picks the largest stream on the disc, matching the main-feature
// heuristic used by the scanner.
func mainStream(ctx Context) (StreamEntry, bool) {
	if len(ctx.Streams) == 0 {
		return StreamEntry{}, false
	}
	return ctx.Streams[0], true
}
