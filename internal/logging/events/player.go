package events

import "github.com/atomicstack/bluray-menu-control/internal/logging"

type PlayerTracer struct{}

var Player = PlayerTracer{}

func (PlayerTracer) Launch(command, media string, chapter int) {
	payload := map[string]interface{}{"command": command, "media": media}
	if chapter > 0 {
		payload["chapter"] = chapter
	}
	logging.Trace("player.launch", payload)
}

func (PlayerTracer) LaunchFailed(command, media string, err error) {
	payload := map[string]interface{}{"command": command, "media": media}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("player.launch.failed", payload)
}
