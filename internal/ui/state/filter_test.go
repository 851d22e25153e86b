package state

import (
	"testing"

	"github.com/atomicstack/bluray-menu-control/internal/menu"
)

func TestSetFilterTracksCursorAndRestoresPosition(t *testing.T) {
	level := newTestLevel("main", "chapters", "settings")
	level.Cursor = 2
	level.SetFilter("chapters", len("chapters"))

	if level.Cursor != 0 {
		t.Fatalf("expected filtered cursor at 0, got %d", level.Cursor)
	}
	if len(level.Items) != 1 || level.Items[0].ID != "chapters" {
		t.Fatalf("expected only 'chapters' to remain, got %#v", level.Items)
	}

	level.SetFilter("", 0)
	if level.Cursor != 2 {
		t.Fatalf("expected cursor restored to 2, got %d", level.Cursor)
	}
	if level.LastCursor != -1 {
		t.Fatalf("expected last cursor reset, got %d", level.LastCursor)
	}
}

func TestInsertAndDeleteFilterText(t *testing.T) {
	level := newTestLevel("alpha")

	if !level.InsertFilterText("ab") {
		t.Fatal("expected insert to succeed")
	}
	if level.Filter != "ab" || level.FilterCursor != 2 {
		t.Fatalf("unexpected filter state %q/%d", level.Filter, level.FilterCursor)
	}

	level.FilterCursor = 1
	if !level.InsertFilterText("z") {
		t.Fatal("expected insert in middle to succeed")
	}
	if level.Filter != "azb" || level.FilterCursor != 2 {
		t.Fatalf("unexpected filter state %q/%d", level.Filter, level.FilterCursor)
	}

	if !level.DeleteFilterRuneBackward() {
		t.Fatal("expected rune deletion to succeed")
	}
	if level.Filter != "ab" || level.FilterCursor != 1 {
		t.Fatalf("unexpected filter state after delete %q/%d", level.Filter, level.FilterCursor)
	}

	level.SetFilter("abc def", len("abc def"))
	if !level.DeleteFilterWordBackward() {
		t.Fatal("expected word deletion to succeed")
	}
	if level.Filter != "abc " {
		t.Fatalf("expected trailing word removed, got %q", level.Filter)
	}

	level.SetFilter("abc", 0)
	if level.DeleteFilterRuneBackward() {
		t.Fatal("expected delete at start to fail")
	}
}

func TestFilterCursorNavigation(t *testing.T) {
	level := newTestLevel("one", "two")
	level.SetFilter("one two", len("one two"))

	if !level.MoveFilterCursorWordBackward() || level.FilterCursor != 4 {
		t.Fatalf("expected word backward to 4, got %d", level.FilterCursor)
	}
	if !level.MoveFilterCursorWordForward() || level.FilterCursor != len("one two") {
		t.Fatalf("expected word forward to end, got %d", level.FilterCursor)
	}
	if !level.MoveFilterCursorRuneBackward() || level.FilterCursor != len("one two")-1 {
		t.Fatalf("expected rune backward, got %d", level.FilterCursor)
	}
	if !level.MoveFilterCursorStart() || level.FilterCursor != 0 {
		t.Fatalf("expected cursor at start, got %d", level.FilterCursor)
	}
	if !level.MoveFilterCursorEnd() || level.FilterCursor != len("one two") {
		t.Fatalf("expected cursor at end, got %d", level.FilterCursor)
	}
}

func TestFilterItems(t *testing.T) {
	items := []menu.Item{
		{ID: "00000", Label: "Play main feature"},
		{ID: "00001", Label: "Chapter select"},
	}
	filtered := FilterItems(items, "chap")
	if len(filtered) != 1 || filtered[0].ID != "00001" {
		t.Fatalf("unexpected filtered results %#v", filtered)
	}
	if len(FilterItems(items, "nomatch")) != 0 {
		t.Fatal("expected empty results when nothing matches")
	}
	if got := FilterItems(items, ""); len(got) != 2 {
		t.Fatalf("expected clone of all items for empty query, got %#v", got)
	}
}

func TestBestMatchIndex(t *testing.T) {
	items := []menu.Item{
		{ID: "play_main", Label: "Play main feature"},
		{ID: "chapters", Label: "Chapter select"},
		{ID: "settings", Label: "Settings"},
	}

	if idx := BestMatchIndex(items, "Settings"); idx != 2 {
		t.Fatalf("expected exact label match index 2, got %d", idx)
	}
	if idx := BestMatchIndex(items, "chapters"); idx != 1 {
		t.Fatalf("expected ID match index 1, got %d", idx)
	}
	if idx := BestMatchIndex(items, "ch"); idx != 1 {
		t.Fatalf("expected prefix match index 1, got %d", idx)
	}
	if idx := BestMatchIndex(items, "zzz"); idx != 0 {
		t.Fatalf("expected fallback index 0, got %d", idx)
	}
	if idx := BestMatchIndex(nil, "anything"); idx != -1 {
		t.Fatalf("expected -1 for empty slice, got %d", idx)
	}
}
