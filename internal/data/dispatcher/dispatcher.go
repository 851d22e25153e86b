// Package dispatcher routes backend snapshots into the state stores.
package dispatcher

import (
	"github.com/atomicstack/bluray-menu-control/internal/backend"
	"github.com/atomicstack/bluray-menu-control/internal/bluray"
	"github.com/atomicstack/bluray-menu-control/internal/menu"
	"github.com/atomicstack/bluray-menu-control/internal/state"
)

type Result struct {
	PlaylistsUpdated    bool
	StreamsUpdated      bool
	ApplicationsUpdated bool
}

type Dispatcher struct {
	playlists    state.PlaylistStore
	streams      state.StreamStore
	applications state.ApplicationStore
}

func New(p state.PlaylistStore, s state.StreamStore, a state.ApplicationStore) *Dispatcher {
	return &Dispatcher{playlists: p, streams: s, applications: a}
}

func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		return res
	}
	switch evt.Kind {
	case backend.KindPlaylists:
		if snapshot, ok := evt.Data.(bluray.PlaylistSnapshot); ok {
			d.playlists.SetEntries(menu.PlaylistEntriesFromBluray(snapshot.Playlists))
			res.PlaylistsUpdated = true
		}
	case backend.KindStreams:
		if snapshot, ok := evt.Data.(bluray.StreamSnapshot); ok {
			d.streams.SetEntries(menu.StreamEntriesFromBluray(snapshot.Streams))
			res.StreamsUpdated = true
		}
	case backend.KindApplications:
		if snapshot, ok := evt.Data.(bluray.ApplicationSnapshot); ok {
			d.applications.SetEntries(menu.ApplicationEntriesFromBluray(snapshot.Applications))
			d.applications.SetSupported(snapshot.Supported)
			res.ApplicationsUpdated = true
		}
	}
	return res
}
