// Package backend keeps disc snapshots fresh: each data kind is polled on a
// fixed interval, and filesystem notifications trigger early rescans.
package backend

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/atomicstack/bluray-menu-control/internal/bluray"
	"github.com/atomicstack/bluray-menu-control/internal/logging/events"
)

// Kind represents the type of data emitted by the backend watcher.
type Kind int

const (
	KindPlaylists Kind = iota
	KindStreams
	KindApplications
)

// Event conveys updated data or an error from a disc rescan.
type Event struct {
	Kind Kind
	Data interface{}
	Err  error
}

// Watcher rescans a BDMV root at a fixed interval and publishes events.
// Filesystem changes under the disc shorten the wait via a debounced kick.
type Watcher struct {
	root     string
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	kicks  map[Kind]chan struct{}
	wg     sync.WaitGroup
}

// NewWatcher starts watching the given BDMV root.
func NewWatcher(root string, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		root:     root,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
		kicks: map[Kind]chan struct{}{
			KindPlaylists:    make(chan struct{}, 1),
			KindStreams:      make(chan struct{}, 1),
			KindApplications: make(chan struct{}, 1),
		},
	}

	w.startPoller(KindPlaylists, fetchPlaylists)
	w.startPoller(KindStreams, fetchStreams)
	w.startPoller(KindApplications, fetchApplications)
	w.startNotifier()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Root returns the watched BDMV directory.
func (w *Watcher) Root() string {
	return w.root
}

// Events returns the channel of rescan events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. Pollers exit after their current rescan; use
// Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until all watcher goroutines have exited and the events channel
// is closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) startPoller(kind Kind, fetch func(string) (interface{}, error)) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		emit := func() bool {
			data, err := fetch(w.root)
			select {
			case <-w.ctx.Done():
				return false
			case w.events <- Event{Kind: kind, Data: data, Err: err}:
				return true
			}
		}

		if !emit() {
			return
		}

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-w.ctx.Done():
				return
			case <-ticker.C:
				if !emit() {
					return
				}
			case <-w.kicks[kind]:
				if !emit() {
					return
				}
			}
		}
	}()
}

// startNotifier wires filesystem notifications into the poller kick
// channels. Losing the notifier is not fatal; the interval rescans remain.
func (w *Watcher) startNotifier() {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		events.Disc.WatchError(w.root, err)
		return
	}

	for _, dir := range []string{
		w.root,
		filepath.Join(w.root, "PLAYLIST"),
		filepath.Join(w.root, "STREAM"),
		filepath.Join(w.root, "BDJO"),
		filepath.Join(w.root, "JAR"),
	} {
		// Missing optional directories (BDJO, JAR) are fine.
		if err := fsw.Add(dir); err != nil && dir == w.root {
			events.Disc.WatchError(w.root, err)
		}
	}

	debounce := newDebouncer(debounceDelay, w.kick)

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer fsw.Close()
		defer debounce.stop()

		for {
			select {
			case <-w.ctx.Done():
				return
			case evt, ok := <-fsw.Events:
				if !ok {
					return
				}
				for _, kind := range kindsForPath(evt.Name) {
					debounce.signal(kind)
				}
			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				events.Disc.WatchError(w.root, err)
			}
		}
	}()
}

func (w *Watcher) kick(kind Kind) {
	select {
	case w.kicks[kind] <- struct{}{}:
	default:
	}
}

// kindsForPath maps a changed path to the data kinds it invalidates.
func kindsForPath(path string) []Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mpls":
		return []Kind{KindPlaylists}
	case ".m2ts":
		return []Kind{KindStreams}
	case ".bdjo", ".jar":
		return []Kind{KindApplications}
	}
	switch filepath.Base(filepath.Dir(path)) {
	case "PLAYLIST":
		return []Kind{KindPlaylists}
	case "STREAM":
		return []Kind{KindStreams}
	case "BDJO", "JAR":
		return []Kind{KindApplications}
	}
	return []Kind{KindPlaylists, KindStreams, KindApplications}
}

func fetchPlaylists(root string) (interface{}, error) {
	playlists, err := bluray.NewParser(root).Playlists()
	if err != nil {
		return nil, err
	}
	return bluray.PlaylistSnapshot{Root: root, Playlists: playlists}, nil
}

func fetchStreams(root string) (interface{}, error) {
	streams, err := bluray.NewParser(root).Streams()
	if err != nil {
		return nil, err
	}
	return bluray.StreamSnapshot{Root: root, Streams: streams}, nil
}

func fetchApplications(root string) (interface{}, error) {
	parser := bluray.NewParser(root)
	apps, err := parser.Applications()
	if err != nil {
		return nil, err
	}
	return bluray.ApplicationSnapshot{
		Root:         root,
		Supported:    parser.HasBDJSupport(),
		Applications: apps,
	}, nil
}
