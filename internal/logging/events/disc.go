package events

import "github.com/atomicstack/bluray-menu-control/internal/logging"

type DiscTracer struct{}

var Disc = DiscTracer{}

func (DiscTracer) Load(root string) {
	logging.Trace("disc.load", map[string]interface{}{"root": root})
}

func (DiscTracer) LoadFailed(path string, err error) {
	payload := map[string]interface{}{"path": path}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("disc.load.failed", payload)
}

func (DiscTracer) Scan(root string, playlists, streams, applications int) {
	logging.Trace("disc.scan", map[string]interface{}{
		"root":         root,
		"playlists":    playlists,
		"streams":      streams,
		"applications": applications,
	})
}

func (DiscTracer) WatchError(root string, err error) {
	if err == nil {
		return
	}
	logging.Trace("disc.watch.error", map[string]interface{}{"root": root, "error": err.Error()})
}

func (DiscTracer) PromptOpen() {
	logging.Trace("disc.open.prompt", nil)
}

func (DiscTracer) PromptCancel(reason string) {
	logging.Trace("disc.open.cancel", map[string]interface{}{"reason": reason})
}

func (DiscTracer) PromptSubmit(path string) {
	logging.Trace("disc.open.submit", map[string]interface{}{"path": path})
}
