// Package player starts the external media player. Playback itself (render,
// pause, seek, chapter timing) belongs to that player, not this process.
package player

import (
	"fmt"
	"os/exec"
	"strings"
)

// DefaultCommand is used when no player binary is configured.
const DefaultCommand = "mpv"

// Launcher describes how to invoke the external media player.
type Launcher struct {
	command string
	args    []string
}

// New builds a launcher for the given command line. Empty commands fall back
// to DefaultCommand; extra arguments are passed before the media path.
func New(command string, args ...string) Launcher {
	trimmed := strings.TrimSpace(command)
	if trimmed == "" {
		trimmed = DefaultCommand
	}
	return Launcher{command: trimmed, args: args}
}

// Command returns the configured player binary.
func (l Launcher) Command() string {
	return l.command
}

// Argv returns the full argument vector for playing the given media path.
// A chapter of 1 or higher adds a chapter start flag.
func (l Launcher) Argv(media string, chapter int) []string {
	argv := make([]string, 0, len(l.args)+3)
	argv = append(argv, l.command)
	argv = append(argv, l.args...)
	if chapter >= 1 {
		argv = append(argv, fmt.Sprintf("--chapter=%d", chapter))
	}
	argv = append(argv, media)
	return argv
}

// Launch starts the player detached for the given media path. The popup does
// not wait for playback to finish.
func (l Launcher) Launch(media string, chapter int) error {
	if strings.TrimSpace(media) == "" {
		return fmt.Errorf("media path required")
	}
	argv := l.Argv(media, chapter)
	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", l.command, err)
	}
	return cmd.Process.Release()
}
