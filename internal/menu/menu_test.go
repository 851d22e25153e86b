package menu

import (
	"strings"
	"testing"

	"github.com/atomicstack/bluray-menu-control/internal/bluray"
)

func TestMenuFromEntriesRejectsUnknownAction(t *testing.T) {
	entries := []bluray.MenuEntry{
		{Title: "Play", Action: bluray.ActionPlayMain},
		{Title: "Eject", Action: "eject_disc"},
	}
	if _, err := MenuFromEntries("00000", bluray.MenuStandard, entries); err == nil {
		t.Fatalf("expected validation error for unknown action")
	}
}

func TestMenuFromEntriesChapterIDs(t *testing.T) {
	entries := []bluray.MenuEntry{
		{Title: "Chapter 3", Action: bluray.ActionPlayChapter, Target: 3},
	}
	m, err := MenuFromEntries("00000", bluray.MenuStandard, entries)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if m.Items[0].ID != "play_chapter:3" {
		t.Fatalf("expected target-derived ID, got %s", m.Items[0].ID)
	}
}

func TestPlaylistEntriesFromBlurayFallsBack(t *testing.T) {
	playlists := []bluray.Playlist{{
		Name: "00001",
		Path: "/disc/BDMV/PLAYLIST/00001.mpls",
		Size: 4096,
		Entries: []bluray.MenuEntry{
			{Title: "Bogus", Action: "bogus_action"},
		},
	}}
	entries := PlaylistEntriesFromBluray(playlists)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fallback := bluray.FallbackEntries()
	if len(entries[0].Menu.Items) != len(fallback) {
		t.Fatalf("expected fallback menu, got %+v", entries[0].Menu.Items)
	}
	if entries[0].Menu.Items[0].Action != bluray.ActionPlayMain {
		t.Fatalf("expected fallback to start with play, got %s", entries[0].Menu.Items[0].Action)
	}
}

func TestChapterMenuShape(t *testing.T) {
	m := ChapterMenu()
	if len(m.Items) != chapterMenuSize+1 {
		t.Fatalf("expected %d items, got %d", chapterMenuSize+1, len(m.Items))
	}
	first := m.Items[0]
	if first.Action != bluray.ActionPlayChapter || first.Target != 1 {
		t.Fatalf("expected first chapter entry, got %+v", first)
	}
	last := m.Items[len(m.Items)-1]
	if last.Action != bluray.ActionBack {
		t.Fatalf("expected trailing back entry, got %+v", last)
	}
}

func TestSubmenusEndWithBack(t *testing.T) {
	for _, m := range []Menu{SettingsMenu(), SpecialMenu()} {
		last := m.Items[len(m.Items)-1]
		if last.Action != bluray.ActionBack {
			t.Fatalf("menu %s missing back entry", m.Name)
		}
	}
}

func TestDispatchBack(t *testing.T) {
	cmd := DispatchEntryAction(Context{}, Item{Action: bluray.ActionBack})
	if _, ok := cmd().(GoBackMsg); !ok {
		t.Fatalf("expected GoBackMsg")
	}
}

func TestDispatchChaptersOpensSubmenu(t *testing.T) {
	cmd := DispatchEntryAction(Context{}, Item{Action: bluray.ActionChapters})
	msg, ok := cmd().(OpenMenuMsg)
	if !ok || msg.Menu.Name != "Chapters" {
		t.Fatalf("expected chapter submenu, got %+v", msg)
	}
}

func TestDispatchMainMenuReplaces(t *testing.T) {
	main, err := MenuFromEntries("00000", bluray.MenuStandard, bluray.FallbackEntries())
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	ctx := Context{Playlists: []PlaylistEntry{{Name: "00000", Menu: main}}}

	cmd := DispatchEntryAction(ctx, Item{Action: bluray.ActionMainMenu})
	msg, ok := cmd().(ReplaceMenuMsg)
	if !ok || msg.Menu.Name != "00000" {
		t.Fatalf("expected main menu replacement, got %+v", msg)
	}

	cmd = DispatchEntryAction(Context{}, Item{Action: bluray.ActionMainMenu})
	if result, ok := cmd().(ActionResult); !ok || result.Err == nil {
		t.Fatalf("expected error without playlists")
	}
}

func TestDispatchInvalidChapterTarget(t *testing.T) {
	cmd := DispatchEntryAction(Context{}, Item{Action: bluray.ActionPlayChapter, Target: "three"})
	if result, ok := cmd().(ActionResult); !ok || result.Err == nil {
		t.Fatalf("expected error for invalid chapter target")
	}
}

func TestDispatchPlaceholderNotices(t *testing.T) {
	cmd := DispatchEntryAction(Context{}, Item{Action: actionAudioSettings})
	msg, ok := cmd().(NoticeMsg)
	if !ok || !strings.Contains(msg.Text, "Audio settings") {
		t.Fatalf("expected notice for placeholder action, got %+v", msg)
	}

	cmd = DispatchEntryAction(Context{}, Item{Action: bluray.ActionBDJInteractive})
	if _, ok := cmd().(NoticeMsg); !ok {
		t.Fatalf("expected notice for interactive mode")
	}
}

func TestDispatchPlayWithoutStreams(t *testing.T) {
	cmd := DispatchEntryAction(Context{}, Item{Action: bluray.ActionPlayMain})
	if result, ok := cmd().(ActionResult); !ok || result.Err == nil {
		t.Fatalf("expected error without streams")
	}
}

func TestApplicationLoaderRequiresSupport(t *testing.T) {
	ctx := Context{Applications: []ApplicationEntry{{Name: "00000"}}}
	items, err := loadApplicationMenu(ctx)
	if err != nil || items != nil {
		t.Fatalf("expected no items without BD-J support, got %v %v", items, err)
	}

	ctx.BDJSupported = true
	items, err = loadApplicationMenu(ctx)
	if err != nil || len(items) != 1 {
		t.Fatalf("expected 1 item, got %v %v", items, err)
	}
	if !strings.HasPrefix(items[0].Label, "[BD-J]") {
		t.Fatalf("expected BD-J badge, got %q", items[0].Label)
	}
}

func TestRegistryWiring(t *testing.T) {
	reg := BuildRegistry()

	rootItems, err := reg.Root().Loader(Context{})
	if err != nil || len(rootItems) == 0 {
		t.Fatalf("expected root items, got %v %v", rootItems, err)
	}

	for _, id := range []string{"playlist", "stream", "bdj", "drive", "library"} {
		node, ok := reg.Find(id)
		if !ok || node.Loader == nil || node.Action == nil {
			t.Fatalf("category %s missing loader or action", id)
		}
	}

	open, ok := reg.Child("root", "open")
	if !ok || open.Action == nil {
		t.Fatalf("open node missing action")
	}
	if open.Loader != nil {
		t.Fatalf("open node should not load a submenu")
	}
}

func TestPrettyLabel(t *testing.T) {
	cases := map[string]string{
		"audio_settings": "Audio settings",
		"play_making_of": "Play making of",
		"back":           "Back",
	}
	for id, want := range cases {
		if got := prettyLabel(id); got != want {
			t.Fatalf("prettyLabel(%q) = %q, want %q", id, got, want)
		}
	}
}
