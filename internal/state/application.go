package state

import "github.com/atomicstack/bluray-menu-control/internal/menu"

type ApplicationStore interface {
	Entries() []menu.ApplicationEntry
	SetEntries([]menu.ApplicationEntry)
	Supported() bool
	SetSupported(bool)
}

type applicationStore struct {
	entries   []menu.ApplicationEntry
	supported bool
}

func NewApplicationStore() ApplicationStore {
	return &applicationStore{}
}

func (s *applicationStore) Entries() []menu.ApplicationEntry {
	return cloneApplicationEntries(s.entries)
}

func (s *applicationStore) SetEntries(entries []menu.ApplicationEntry) {
	s.entries = cloneApplicationEntries(entries)
}

func (s *applicationStore) Supported() bool {
	return s.supported
}

func (s *applicationStore) SetSupported(supported bool) {
	s.supported = supported
}

func cloneApplicationEntries(entries []menu.ApplicationEntry) []menu.ApplicationEntry {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]menu.ApplicationEntry, len(entries))
	copy(dup, entries)
	return dup
}
