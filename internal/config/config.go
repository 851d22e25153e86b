package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/bluray-menu-control/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
}

const (
	envDiscPath   = "BLURAY_MENU_CONTROL_DISC"
	envLibrary    = "BLURAY_MENU_CONTROL_LIBRARY"
	envPlayer     = "BLURAY_MENU_CONTROL_PLAYER"
	envRootMenu   = "BLURAY_MENU_CONTROL_ROOT"
	envWidth      = "BLURAY_MENU_CONTROL_WIDTH"
	envHeight     = "BLURAY_MENU_CONTROL_HEIGHT"
	envShowFooter = "BLURAY_MENU_CONTROL_FOOTER"
	envVerbose    = "BLURAY_MENU_CONTROL_VERBOSE"
	envTrace      = "BLURAY_MENU_CONTROL_TRACE"
	envLogFile    = "BLURAY_MENU_CONTROL_LOG_FILE"
	envPoll       = "BLURAY_MENU_CONTROL_POLL"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("bluray-menu-control", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	disc := fs.String("disc", envOrDefault(env, envDiscPath, ""), "path to a disc directory or its BDMV folder (auto-detects drives when empty)")
	library := fs.String("library", envOrDefault(env, envLibrary, ""), "directory scanned for disc folders on the library menu")
	playerCmd := fs.String("player", envOrDefault(env, envPlayer, ""), "media player command used to launch streams (default mpv)")
	rootMenu := fs.String("root", envOrDefault(env, envRootMenu, ""), "open a category directly instead of the top menu")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print success messages for actions")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	poll := fs.Duration("poll", envOrDuration(env, envPoll, 0), "disc rescan interval (0 uses the built-in default)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *poll < 0 {
		return Config{}, fmt.Errorf("poll interval must be >= 0 (got %s)", *poll)
	}

	cfg := Config{
		App: app.Config{
			DiscPath:      *disc,
			LibraryRoot:   *library,
			PlayerCommand: *playerCmd,
			PlayerArgs:    fs.Args(),
			RootMenu:      *rootMenu,
			Width:         *width,
			Height:        *height,
			ShowFooter:    *footer,
			Verbose:       *verbose,
			PollInterval:  *poll,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
		},
		Flags: map[string]string{
			"disc":    *disc,
			"library": *library,
			"player":  *playerCmd,
			"root":    *rootMenu,
			"width":   strconv.Itoa(*width),
			"height":  strconv.Itoa(*height),
			"footer":  strconv.FormatBool(*footer),
			"trace":   strconv.FormatBool(*trace),
			"verbose": strconv.FormatBool(*verbose),
			"logFile": *logFile,
			"poll":    poll.String(),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	// Additional validation hooks can be placed here as configuration evolves.
	return nil
}
