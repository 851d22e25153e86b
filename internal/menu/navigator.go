package menu

// Navigator tracks the active menu, the highlighted entry, and the trail of
// menus the user descended through. All methods are total: calls against an
// empty menu or an empty history leave state untouched instead of failing.
// It is driven from the UI event loop and is not safe for concurrent use.
type Navigator struct {
	current    Menu
	hasCurrent bool
	selected   int
	history    []Menu
}

// NewNavigator returns a navigator with no menu and no history.
func NewNavigator() *Navigator {
	return &Navigator{}
}

// SetCurrent replaces the active menu and resets the highlight to the first
// entry. History is left untouched.
func (n *Navigator) SetCurrent(m Menu) {
	n.current = m
	n.hasCurrent = true
	n.selected = 0
}

// Move shifts the highlight by delta with wraparound and returns the new
// index. With no entries the highlight stays at 0 and 0 is returned.
func (n *Navigator) Move(delta int) int {
	count := len(n.current.Items)
	if count == 0 {
		return n.selected
	}
	n.selected = ((n.selected+delta)%count + count) % count
	return n.selected
}

// Highlight jumps the cursor straight to index, ignoring out-of-range values.
func (n *Navigator) Highlight(index int) {
	if index < 0 || index >= len(n.current.Items) {
		return
	}
	n.selected = index
}

// SelectCurrent returns the highlighted item. The second result is false when
// the active menu has no entries.
func (n *Navigator) SelectCurrent() (Item, bool) {
	if len(n.current.Items) == 0 {
		return Item{}, false
	}
	return n.current.Items[n.selected], true
}

// PushAndReplace records the active menu in history, then makes m current
// with the highlight reset to the first entry. With no active menu nothing is
// pushed; this is the only mutator that grows history.
func (n *Navigator) PushAndReplace(m Menu) {
	if n.hasCurrent {
		n.history = append(n.history, n.current)
	}
	n.SetCurrent(m)
}

// Back restores the most recent menu from history with its highlight reset.
// It reports false, leaving everything unchanged, when history is empty.
func (n *Navigator) Back() (Menu, bool) {
	if len(n.history) == 0 {
		return Menu{}, false
	}
	last := n.history[len(n.history)-1]
	n.history = n.history[:len(n.history)-1]
	n.SetCurrent(last)
	return last, true
}

// Current returns the active menu.
func (n *Navigator) Current() Menu {
	return n.current
}

// SelectedIndex returns the highlight position within the active menu.
func (n *Navigator) SelectedIndex() int {
	return n.selected
}

// HistoryDepth returns how many menus are stacked beneath the active one.
func (n *Navigator) HistoryDepth() int {
	return len(n.history)
}
