package menu

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/bluray-menu-control/internal/bluray"
)

// chapterMenuSize is the fixed chapter count offered by the chapter screen.
const chapterMenuSize = 10

// DispatchEntryAction executes a disc-menu action chosen inside a fabricated
// menu. Every identifier admitted by MenuFromEntries has a branch here.
func DispatchEntryAction(ctx Context, item Item) tea.Cmd {
	switch item.Action {
	case bluray.ActionPlayMain, bluray.ActionPlayAll, bluray.ActionBDJPlayMain:
		return playMainCommand(ctx, 0)
	case bluray.ActionPlayChapter:
		chapter, ok := item.Target.(int)
		if !ok || chapter < 1 {
			return resultCmd(ActionResult{Err: fmt.Errorf("invalid chapter target %v", item.Target)})
		}
		return playMainCommand(ctx, chapter)
	case bluray.ActionChapters, bluray.ActionBDJChapters:
		return openMenuCmd(ChapterMenu())
	case bluray.ActionSettings, bluray.ActionBDJSettings:
		return openMenuCmd(SettingsMenu())
	case bluray.ActionSpecial, bluray.ActionBDJSpecial:
		return openMenuCmd(SpecialMenu())
	case bluray.ActionMainMenu, bluray.ActionFallbackMenu:
		main, ok := MainMenu(ctx)
		if !ok {
			return resultCmd(ActionResult{Err: fmt.Errorf("no playlists on disc")})
		}
		return func() tea.Msg { return ReplaceMenuMsg{Menu: main} }
	case bluray.ActionBack:
		return func() tea.Msg { return GoBackMsg{} }
	case bluray.ActionBDJInteractive:
		return noticeCmd("BD-J interactive mode requires a Java runtime")
	case actionAudioSettings, actionSubtitleSettings, actionDisplaySettings,
		actionPlayBonus, actionPlayMakingOf, actionPlayCommentary:
		return noticeCmd(fmt.Sprintf("%s is not available on this disc", prettyLabel(item.Action)))
	default:
		return resultCmd(ActionResult{Err: fmt.Errorf("unknown action %q", item.Action)})
	}
}

func playMainCommand(ctx Context, chapter int) tea.Cmd {
	entry, ok := mainStream(ctx)
	if !ok {
		return resultCmd(ActionResult{Err: fmt.Errorf("no streams on disc")})
	}
	return playStreamCommand(ctx, entry, chapter)
}

// MainMenu returns the fabricated menu of the main playlist.
func MainMenu(ctx Context) (Menu, bool) {
	if len(ctx.Playlists) == 0 {
		return Menu{}, false
	}
	return ctx.Playlists[0].Menu, true
}

// ChapterMenu lists a fixed run of chapters plus a way back.
func ChapterMenu() Menu {
	items := make([]Item, 0, chapterMenuSize+1)
	for i := 1; i <= chapterMenuSize; i++ {
		items = append(items, Item{
			ID:     fmt.Sprintf("%s:%d", bluray.ActionPlayChapter, i),
			Label:  fmt.Sprintf("Chapter %d", i),
			Action: bluray.ActionPlayChapter,
			Target: i,
		})
	}
	items = append(items, backItem())
	return Menu{Name: "Chapters", Items: items}
}

// SettingsMenu lists playback settings categories.
func SettingsMenu() Menu {
	return Menu{Name: "Settings", Items: append(actionItems(
		actionAudioSettings,
		actionSubtitleSettings,
		actionDisplaySettings,
	), backItem())}
}

// SpecialMenu lists bonus material entries.
func SpecialMenu() Menu {
	return Menu{Name: "Special Features", Items: append(actionItems(
		actionPlayBonus,
		actionPlayMakingOf,
		actionPlayCommentary,
	), backItem())}
}

func actionItems(actions ...string) []Item {
	items := make([]Item, 0, len(actions)+1)
	for _, action := range actions {
		items = append(items, Item{ID: action, Label: prettyLabel(action), Action: action})
	}
	return items
}

func backItem() Item {
	return Item{ID: bluray.ActionBack, Label: "Back", Action: bluray.ActionBack}
}

func resultCmd(result ActionResult) tea.Cmd {
	return func() tea.Msg { return result }
}

func openMenuCmd(m Menu) tea.Cmd {
	return func() tea.Msg { return OpenMenuMsg{Menu: m} }
}

func noticeCmd(text string) tea.Cmd {
	return func() tea.Msg { return NoticeMsg{Text: text} }
}
