package bluray

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	// Playlists smaller than this are treated as simple top menus rather
	// than main content with chapter stops.
	simplePlaylistMaxSize = 1000

	// Fabricated chapter counts derived from playlist size are clamped to
	// this range.
	minChapterCount = 1
	maxChapterCount = 20

	// Number of leading bytes sampled from a large playlist. The contents
	// are not decoded; a failed read downgrades the playlist to the
	// fallback menu.
	playlistProbeBytes = 100
)

// Parser exposes the heuristic view of a single BDMV directory.
type Parser struct {
	root        string
	playlistDir string
	streamDir   string
	clipInfoDir string
	jarDir      string
	bdjoDir     string
}

// NewParser creates a parser rooted at the given BDMV directory.
func NewParser(root string) *Parser {
	return &Parser{
		root:        root,
		playlistDir: filepath.Join(root, "PLAYLIST"),
		streamDir:   filepath.Join(root, "STREAM"),
		clipInfoDir: filepath.Join(root, "CLIPINF"),
		jarDir:      filepath.Join(root, "JAR"),
		bdjoDir:     filepath.Join(root, "BDJO"),
	}
}

// Root returns the BDMV directory this parser reads.
func (p *Parser) Root() string {
	return p.root
}

// Valid reports whether the root carries the minimum Blu-ray structure:
// PLAYLIST, STREAM and CLIPINF directories.
func (p *Parser) Valid() bool {
	for _, dir := range []string{p.playlistDir, p.streamDir, p.clipInfoDir} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			return false
		}
	}
	return true
}

// Playlists returns every PLAYLIST/*.mpls file with its fabricated menu,
// largest first. A missing PLAYLIST directory yields an empty slice.
func (p *Parser) Playlists() ([]Playlist, error) {
	matches, err := filepath.Glob(filepath.Join(p.playlistDir, "*.mpls"))
	if err != nil {
		return nil, fmt.Errorf("glob playlists: %w", err)
	}
	playlists := make([]Playlist, 0, len(matches))
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		playlists = append(playlists, Playlist{
			Name:    stem(path),
			Path:    path,
			Size:    info.Size(),
			Entries: p.playlistEntries(path, info.Size()),
		})
	}
	sortBySizeDesc(playlists, func(pl Playlist) (int64, string) { return pl.Size, pl.Name })
	return playlists, nil
}

// Streams returns every STREAM/*.m2ts file, largest first.
func (p *Parser) Streams() ([]Stream, error) {
	matches, err := filepath.Glob(filepath.Join(p.streamDir, "*.m2ts"))
	if err != nil {
		return nil, fmt.Errorf("glob streams: %w", err)
	}
	streams := make([]Stream, 0, len(matches))
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		streams = append(streams, Stream{Name: stem(path), Path: path, Size: info.Size()})
	}
	sortBySizeDesc(streams, func(s Stream) (int64, string) { return s.Size, s.Name })
	return streams, nil
}

// MainPlaylist returns the largest playlist, if any.
func (p *Parser) MainPlaylist() (Playlist, bool) {
	playlists, err := p.Playlists()
	if err != nil || len(playlists) == 0 {
		return Playlist{}, false
	}
	return playlists[0], true
}

// MainStream returns the largest stream file, if any.
func (p *Parser) MainStream() (Stream, bool) {
	streams, err := p.Streams()
	if err != nil || len(streams) == 0 {
		return Stream{}, false
	}
	return streams[0], true
}

// playlistEntries fabricates the menu for one playlist. Small files become a
// simple top menu; larger files become a chapter list sized by the file
// size heuristic. Unreadable files fall back to a minimal play/back menu.
func (p *Parser) playlistEntries(path string, size int64) []MenuEntry {
	if size < simplePlaylistMaxSize {
		return []MenuEntry{
			{Title: "Play main feature", Action: ActionPlayMain},
			{Title: "Chapter select", Action: ActionChapters},
			{Title: "Settings", Action: ActionSettings},
		}
	}
	if err := probeFile(path); err != nil {
		return FallbackEntries()
	}
	chapters := int(size / 1000)
	if chapters < minChapterCount {
		chapters = minChapterCount
	}
	if chapters > maxChapterCount {
		chapters = maxChapterCount
	}
	entries := make([]MenuEntry, 0, chapters+3)
	entries = append(entries, MenuEntry{Title: "Play all", Action: ActionPlayAll})
	for i := 1; i <= chapters; i++ {
		entries = append(entries, MenuEntry{
			Title:  fmt.Sprintf("Chapter %d", i),
			Action: ActionPlayChapter,
			Target: i,
		})
	}
	entries = append(entries,
		MenuEntry{Title: "Special features", Action: ActionSpecial},
		MenuEntry{Title: "Main menu", Action: ActionMainMenu},
	)
	return entries
}

// FallbackEntries is the menu served when a playlist cannot be read.
func FallbackEntries() []MenuEntry {
	return []MenuEntry{
		{Title: "Play", Action: ActionPlayMain},
		{Title: "Back", Action: ActionBack},
	}
}

func probeFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	buf := make([]byte, playlistProbeBytes)
	if _, err := f.Read(buf); err != nil && err != io.EOF {
		return err
	}
	return nil
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func sortBySizeDesc[T any](items []T, key func(T) (int64, string)) {
	sort.SliceStable(items, func(i, j int) bool {
		si, ni := key(items[i])
		sj, nj := key(items[j])
		if si != sj {
			return si > sj
		}
		return ni < nj
	})
}
