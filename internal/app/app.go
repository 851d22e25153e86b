package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/bluray-menu-control/internal/backend"
	"github.com/atomicstack/bluray-menu-control/internal/bluray"
	"github.com/atomicstack/bluray-menu-control/internal/player"
	"github.com/atomicstack/bluray-menu-control/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	DiscPath      string
	LibraryRoot   string
	PlayerCommand string
	PlayerArgs    []string
	Width         int
	Height        int
	ShowFooter    bool
	Verbose       bool
	RootMenu      string
	PollInterval  time.Duration
}

const defaultPollInterval = 2 * time.Second

// Run bootstraps and executes the Bubble Tea program. When no disc path is
// given the first detected drive is used; failing that, the UI starts without
// a disc and the open form takes over.
func Run(cfg Config) error {
	interval := cfg.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}

	var watcher *backend.Watcher
	if root, err := resolveInitialDisc(cfg.DiscPath); err != nil {
		return err
	} else if root != "" {
		watcher = backend.NewWatcher(root, interval)
		defer watcher.Stop()
	}

	command := strings.TrimSpace(cfg.PlayerCommand)
	if command == "" {
		command = player.DefaultCommand
	}

	model := ui.NewModel(ui.Config{
		Width:         cfg.Width,
		Height:        cfg.Height,
		ShowFooter:    cfg.ShowFooter,
		Verbose:       cfg.Verbose,
		RootMenu:      cfg.RootMenu,
		LibraryRoot:   cfg.LibraryRoot,
		PlayerCommand: command,
		PlayerArgs:    cfg.PlayerArgs,
		PollInterval:  interval,
	}, watcher)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// resolveInitialDisc picks the startup disc root. An explicit path must
// resolve; auto-detection failures are not fatal.
func resolveInitialDisc(path string) (string, error) {
	if strings.TrimSpace(path) != "" {
		root, err := bluray.ResolveDiscRoot(path)
		if err != nil {
			return "", fmt.Errorf("resolve disc path: %w", err)
		}
		return root, nil
	}
	if drives := bluray.AvailableDrives(); len(drives) > 0 {
		return drives[0].Root, nil
	}
	return "", nil
}
