// Package testutil builds throwaway BDMV directory trees for tests.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// DiscSpec describes the files to place inside a synthetic BDMV tree. Map
// keys are file names, values are file sizes in bytes.
type DiscSpec struct {
	Playlists map[string]int
	Streams   map[string]int
	JARs      map[string]int
	BDJOs     map[string]int

	// SkipDirs lists BDMV subdirectories to omit, for building invalid
	// disc structures.
	SkipDirs []string
}

// BuildDisc writes a BDMV tree under a temp directory and returns the BDMV
// path itself.
func BuildDisc(t *testing.T, spec DiscSpec) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "BDMV")

	skip := make(map[string]bool, len(spec.SkipDirs))
	for _, dir := range spec.SkipDirs {
		skip[dir] = true
	}
	for _, dir := range []string{"PLAYLIST", "STREAM", "CLIPINF", "JAR", "BDJO"} {
		if skip[dir] {
			continue
		}
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}

	writeAll(t, filepath.Join(root, "PLAYLIST"), spec.Playlists, []byte("MPLS"))
	writeAll(t, filepath.Join(root, "STREAM"), spec.Streams, []byte("M2TS"))
	writeAll(t, filepath.Join(root, "JAR"), spec.JARs, []byte("PK"))
	writeAll(t, filepath.Join(root, "BDJO"), spec.BDJOs, []byte("BDJO"))
	return root
}

func writeAll(t *testing.T, dir string, files map[string]int, magic []byte) {
	t.Helper()
	for name, size := range files {
		data := magic
		if pad := size - len(magic); pad > 0 {
			data = append(bytes.Clone(magic), bytes.Repeat([]byte{0}, pad)...)
		} else if size < len(magic) {
			data = magic[:size]
		}
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
}
