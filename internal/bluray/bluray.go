// Package bluray reads Blu-ray disc folder structures (BDMV trees) and
// fabricates menu structures for them. Parsing is heuristic: playlist menus
// are keyed on file size and filename globs, never on the binary MPLS/BDJO
// contents. Real container decoding is out of scope.
package bluray

import (
	"fmt"
	"os"
	"path/filepath"
)

// MenuType distinguishes fabricated standard menus from BD-J interactive ones.
type MenuType string

const (
	MenuStandard    MenuType = "standard"
	MenuInteractive MenuType = "interactive"
)

// Action identifiers attached to fabricated menu entries. This is the closed
// set recognised by the UI layer; entries carrying anything else are rejected
// at the boundary.
const (
	ActionPlayMain    = "play_main"
	ActionPlayAll     = "play_all"
	ActionPlayChapter = "play_chapter"
	ActionChapters    = "chapters"
	ActionSettings    = "settings"
	ActionSpecial     = "special"
	ActionMainMenu    = "main_menu"
	ActionBack        = "back"

	ActionBDJPlayMain    = "bdj_play_main"
	ActionBDJInteractive = "bdj_interactive_menu"
	ActionBDJChapters    = "bdj_chapters"
	ActionBDJSpecial     = "bdj_special"
	ActionBDJSettings    = "bdj_settings"
	ActionFallbackMenu   = "fallback_menu"
)

// MenuEntry is a single fabricated menu line for a playlist or BD-J
// application. Target carries an optional payload such as a chapter number.
type MenuEntry struct {
	Title  string
	Action string
	Target interface{}
}

// Playlist describes one PLAYLIST/*.mpls file and its fabricated menu.
type Playlist struct {
	Name    string
	Path    string
	Size    int64
	Entries []MenuEntry
}

// Stream describes one STREAM/*.m2ts file.
type Stream struct {
	Name string
	Path string
	Size int64
}

// Application describes one BDJO/*.bdjo file treated as a BD-J application.
type Application struct {
	Name    string
	Path    string
	Entries []MenuEntry
}

// PlaylistSnapshot carries the result of a playlist rescan.
type PlaylistSnapshot struct {
	Root      string
	Playlists []Playlist
}

// StreamSnapshot carries the result of a stream rescan.
type StreamSnapshot struct {
	Root    string
	Streams []Stream
}

// ApplicationSnapshot carries the result of a BD-J rescan.
type ApplicationSnapshot struct {
	Root         string
	Supported    bool
	Applications []Application
}

const bdmvDirName = "BDMV"

// ResolveDiscRoot accepts either a BDMV directory or a folder containing one
// and returns the BDMV directory itself.
func ResolveDiscRoot(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("disc path is empty")
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat disc path: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("disc path %s is not a directory", path)
	}
	if filepath.Base(path) == bdmvDirName {
		return path, nil
	}
	nested := filepath.Join(path, bdmvDirName)
	if info, err := os.Stat(nested); err == nil && info.IsDir() {
		return nested, nil
	}
	return "", fmt.Errorf("%s does not contain a %s directory", path, bdmvDirName)
}
