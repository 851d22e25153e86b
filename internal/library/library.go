// Package library discovers disc folders underneath a configured library
// root.
package library

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"sync"

	"github.com/charlievieth/fastwalk"

	"github.com/atomicstack/bluray-menu-control/internal/bluray"
)

// Disc is a discovered disc folder; Root points at its BDMV directory.
type Disc struct {
	Name string
	Root string
}

// Scan walks the library root and returns every folder holding a valid BDMV
// structure, sorted by name. An empty root yields no discs.
func Scan(root string) ([]Disc, error) {
	if root == "" {
		return nil, nil
	}

	var (
		mu    sync.Mutex
		discs []Disc
	)
	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are skipped, not fatal.
			return nil
		}
		if !d.IsDir() || d.Name() != "BDMV" {
			return nil
		}
		if bluray.NewParser(path).Valid() {
			mu.Lock()
			discs = append(discs, Disc{
				Name: filepath.Base(filepath.Dir(path)),
				Root: path,
			})
			mu.Unlock()
		}
		return filepath.SkipDir
	})
	if err != nil {
		return nil, fmt.Errorf("walk library %s: %w", root, err)
	}
	sort.Slice(discs, func(i, j int) bool { return discs[i].Name < discs[j].Name })
	return discs, nil
}
