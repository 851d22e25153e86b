package config

import (
	"testing"
	"time"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.DiscPath != "" || cfg.App.Width != 0 || cfg.App.ShowFooter {
		t.Fatalf("unexpected defaults %#v", cfg.App)
	}
	if cfg.Logging.Trace {
		t.Fatalf("expected trace disabled by default")
	}
}

func TestLoadArgsFlagsOverrideEnv(t *testing.T) {
	env := []string{
		"BLURAY_MENU_CONTROL_DISC=/env/disc",
		"BLURAY_MENU_CONTROL_WIDTH=80",
		"BLURAY_MENU_CONTROL_FOOTER=true",
	}
	cfg, err := LoadArgs([]string{"-disc", "/flag/disc", "-width", "120"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.DiscPath != "/flag/disc" {
		t.Fatalf("expected flag to win, got %q", cfg.App.DiscPath)
	}
	if cfg.App.Width != 120 {
		t.Fatalf("expected width 120, got %d", cfg.App.Width)
	}
	if !cfg.App.ShowFooter {
		t.Fatalf("expected footer from environment")
	}
}

func TestLoadArgsPlayerAndArgs(t *testing.T) {
	cfg, err := LoadArgs([]string{"-player", "vlc", "--", "--fullscreen"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.PlayerCommand != "vlc" {
		t.Fatalf("expected player vlc, got %q", cfg.App.PlayerCommand)
	}
	if len(cfg.App.PlayerArgs) != 1 || cfg.App.PlayerArgs[0] != "--fullscreen" {
		t.Fatalf("unexpected player args %#v", cfg.App.PlayerArgs)
	}
}

func TestLoadArgsPollInterval(t *testing.T) {
	cfg, err := LoadArgs([]string{"-poll", "500ms"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.PollInterval != 500*time.Millisecond {
		t.Fatalf("expected 500ms, got %s", cfg.App.PollInterval)
	}
}

func TestLoadArgsRejectsNegativeWidth(t *testing.T) {
	if _, err := LoadArgs([]string{"-width", "-1"}, nil); err == nil {
		t.Fatalf("expected error for negative width")
	}
}
