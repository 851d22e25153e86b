package state

import (
	"strings"

	"github.com/atomicstack/bluray-menu-control/internal/menu"
)

// Level encapsulates per-screen state such as cursor position, filter, and
// viewport. Items is the filtered view of Full.
type Level struct {
	ID             string
	Title          string
	Items          []menu.Item
	Full           []menu.Item
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	Node           *menu.Node
	ViewportOffset int
}

// NewLevel constructs a Level for the provided items and registry node.
func NewLevel(id, title string, items []menu.Item, node *menu.Node) *Level {
	l := &Level{
		ID:         id,
		Title:      title,
		Cursor:     -1,
		LastCursor: -1,
		Node:       node,
	}
	l.UpdateItems(items)
	return l
}

// IndexOf returns the index for a given item identifier.
func (l *Level) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, item := range l.Items {
		if item.ID == id {
			return i
		}
	}
	if idx := strings.LastIndex(id, ":"); idx >= 0 {
		suffix := id[idx+1:]
		for i, item := range l.Items {
			if item.ID == suffix {
				return i
			}
		}
	}
	return -1
}

// FullIndexOf returns the index of an item identifier in the unfiltered list.
func (l *Level) FullIndexOf(id string) int {
	for i, item := range l.Full {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// SelectedFullIndex maps the cursor position in the filtered view back to the
// unfiltered item list.
func (l *Level) SelectedFullIndex() int {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return -1
	}
	return l.FullIndexOf(l.Items[l.Cursor].ID)
}

// UpdateItems refreshes the level items, keeping the viewport stable when
// possible.
func (l *Level) UpdateItems(items []menu.Item) {
	prevOffset := l.ViewportOffset
	l.Full = CloneItems(items)
	l.applyFilter()
	if len(l.Items) == 0 {
		l.ViewportOffset = 0
		return
	}
	if prevOffset < 0 {
		prevOffset = 0
	}
	if prevOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
		return
	}
	l.ViewportOffset = prevOffset
}
