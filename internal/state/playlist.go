package state

import "github.com/atomicstack/bluray-menu-control/internal/menu"

type PlaylistStore interface {
	Entries() []menu.PlaylistEntry
	SetEntries([]menu.PlaylistEntry)
}

type playlistStore struct {
	entries []menu.PlaylistEntry
}

func NewPlaylistStore() PlaylistStore {
	return &playlistStore{}
}

func (s *playlistStore) Entries() []menu.PlaylistEntry {
	return clonePlaylistEntries(s.entries)
}

func (s *playlistStore) SetEntries(entries []menu.PlaylistEntry) {
	s.entries = clonePlaylistEntries(entries)
}

func clonePlaylistEntries(entries []menu.PlaylistEntry) []menu.PlaylistEntry {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]menu.PlaylistEntry, len(entries))
	copy(dup, entries)
	return dup
}
