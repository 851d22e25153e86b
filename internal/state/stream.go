package state

import "github.com/atomicstack/bluray-menu-control/internal/menu"

type StreamStore interface {
	Entries() []menu.StreamEntry
	SetEntries([]menu.StreamEntry)
}

type streamStore struct {
	entries []menu.StreamEntry
}

func NewStreamStore() StreamStore {
	return &streamStore{}
}

func (s *streamStore) Entries() []menu.StreamEntry {
	return cloneStreamEntries(s.entries)
}

func (s *streamStore) SetEntries(entries []menu.StreamEntry) {
	s.entries = cloneStreamEntries(entries)
}

func cloneStreamEntries(entries []menu.StreamEntry) []menu.StreamEntry {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]menu.StreamEntry, len(entries))
	copy(dup, entries)
	return dup
}
