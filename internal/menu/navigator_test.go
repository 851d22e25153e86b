package menu

import "testing"

func testMenu(name string, count int) Menu {
	items := make([]Item, 0, count)
	for i := 0; i < count; i++ {
		items = append(items, Item{ID: itoa(i), Label: itoa(i)})
	}
	return Menu{Name: name, Items: items}
}

func itoa(i int) string {
	return string(rune('a' + i))
}

func TestSetCurrentResetsSelection(t *testing.T) {
	nav := NewNavigator()
	nav.SetCurrent(testMenu("first", 4))
	nav.Move(2)
	nav.SetCurrent(testMenu("second", 3))
	if nav.SelectedIndex() != 0 {
		t.Fatalf("expected selection reset to 0, got %d", nav.SelectedIndex())
	}
	if nav.Current().Name != "second" {
		t.Fatalf("expected current menu second, got %s", nav.Current().Name)
	}
}

func TestMoveWrapsAround(t *testing.T) {
	nav := NewNavigator()
	nav.SetCurrent(testMenu("m", 4))

	// A full lap of forward moves lands back on the first entry.
	for i := 0; i < 4; i++ {
		nav.Move(1)
	}
	if nav.SelectedIndex() != 0 {
		t.Fatalf("expected full lap to return to 0, got %d", nav.SelectedIndex())
	}

	if got := nav.Move(-1); got != 3 {
		t.Fatalf("expected backward wrap to 3, got %d", got)
	}
	if got := nav.Move(1); got != 0 {
		t.Fatalf("expected forward wrap to 0, got %d", got)
	}
}

func TestMoveLargeDeltas(t *testing.T) {
	nav := NewNavigator()
	nav.SetCurrent(testMenu("m", 3))
	if got := nav.Move(7); got != 1 {
		t.Fatalf("expected index 1 after +7 on 3 entries, got %d", got)
	}
	if got := nav.Move(-8); got != 2 {
		t.Fatalf("expected index 2 after -8, got %d", got)
	}
}

func TestMoveEmptyMenu(t *testing.T) {
	nav := NewNavigator()
	nav.SetCurrent(Menu{Name: "empty"})
	if got := nav.Move(1); got != 0 {
		t.Fatalf("expected index to stay 0 for empty menu, got %d", got)
	}
	if nav.SelectedIndex() != 0 {
		t.Fatalf("expected selection untouched, got %d", nav.SelectedIndex())
	}
}

func TestSelectCurrent(t *testing.T) {
	nav := NewNavigator()
	nav.SetCurrent(testMenu("m", 3))
	nav.Move(1)
	item, ok := nav.SelectCurrent()
	if !ok || item.ID != itoa(1) {
		t.Fatalf("expected item b, got %+v ok=%v", item, ok)
	}

	nav.SetCurrent(Menu{Name: "empty"})
	if _, ok := nav.SelectCurrent(); ok {
		t.Fatalf("expected no selection in empty menu")
	}
}

func TestHighlight(t *testing.T) {
	nav := NewNavigator()
	nav.SetCurrent(testMenu("m", 3))
	nav.Highlight(2)
	if nav.SelectedIndex() != 2 {
		t.Fatalf("expected highlight 2, got %d", nav.SelectedIndex())
	}
	nav.Highlight(5)
	nav.Highlight(-1)
	if nav.SelectedIndex() != 2 {
		t.Fatalf("expected out-of-range highlight ignored, got %d", nav.SelectedIndex())
	}
}

func TestPushAndReplaceThenBack(t *testing.T) {
	nav := NewNavigator()
	nav.SetCurrent(testMenu("a", 3))
	nav.Move(2)
	nav.PushAndReplace(testMenu("b", 2))

	if nav.Current().Name != "b" || nav.SelectedIndex() != 0 {
		t.Fatalf("expected fresh menu b at index 0, got %s/%d", nav.Current().Name, nav.SelectedIndex())
	}
	if nav.HistoryDepth() != 1 {
		t.Fatalf("expected history depth 1, got %d", nav.HistoryDepth())
	}

	nav.Move(1)
	restored, ok := nav.Back()
	if !ok || restored.Name != "a" {
		t.Fatalf("expected to restore menu a, got %+v ok=%v", restored.Name, ok)
	}
	if nav.SelectedIndex() != 0 {
		t.Fatalf("expected restored selection reset to 0, got %d", nav.SelectedIndex())
	}
	if nav.HistoryDepth() != 0 {
		t.Fatalf("expected empty history after back, got %d", nav.HistoryDepth())
	}
}

func TestBackOnEmptyHistory(t *testing.T) {
	nav := NewNavigator()
	nav.SetCurrent(testMenu("a", 2))
	nav.Move(1)

	if _, ok := nav.Back(); ok {
		t.Fatalf("expected back to fail with empty history")
	}
	if nav.Current().Name != "a" || nav.SelectedIndex() != 1 {
		t.Fatalf("expected state untouched, got %s/%d", nav.Current().Name, nav.SelectedIndex())
	}
}

func TestPushAndReplaceWithoutCurrentMenu(t *testing.T) {
	nav := NewNavigator()
	nav.PushAndReplace(testMenu("first", 2))
	if nav.HistoryDepth() != 0 {
		t.Fatalf("expected nothing pushed before a menu exists, got depth %d", nav.HistoryDepth())
	}
	if nav.Current().Name != "first" {
		t.Fatalf("expected menu first, got %s", nav.Current().Name)
	}
}

func TestDeepHistory(t *testing.T) {
	nav := NewNavigator()
	nav.SetCurrent(testMenu("root", 2))
	nav.PushAndReplace(testMenu("one", 2))
	nav.PushAndReplace(testMenu("two", 2))
	if nav.HistoryDepth() != 2 {
		t.Fatalf("expected depth 2, got %d", nav.HistoryDepth())
	}
	nav.Back()
	nav.Back()
	if nav.Current().Name != "root" || nav.HistoryDepth() != 0 {
		t.Fatalf("expected to unwind to root, got %s depth=%d", nav.Current().Name, nav.HistoryDepth())
	}
}
