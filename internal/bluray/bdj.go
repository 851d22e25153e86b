package bluray

import (
	"fmt"
	"path/filepath"
	"sort"
)

// HasBDJSupport reports whether the disc carries both JAR archives and BDJO
// objects. Both must match at least one file.
func (p *Parser) HasBDJSupport() bool {
	jars, err := filepath.Glob(filepath.Join(p.jarDir, "*.jar"))
	if err != nil || len(jars) == 0 {
		return false
	}
	objects, err := filepath.Glob(filepath.Join(p.bdjoDir, "*.bdjo"))
	return err == nil && len(objects) > 0
}

// Applications lists the disc's BD-J applications, one per BDJO/*.bdjo file.
// Each application exposes the same fixed interactive menu; this mirrors the
// original demo behaviour and is not real BD-J execution.
func (p *Parser) Applications() ([]Application, error) {
	if !p.HasBDJSupport() {
		return nil, nil
	}
	matches, err := filepath.Glob(filepath.Join(p.bdjoDir, "*.bdjo"))
	if err != nil {
		return nil, fmt.Errorf("glob bdjo objects: %w", err)
	}
	sort.Strings(matches)
	apps := make([]Application, 0, len(matches))
	for _, path := range matches {
		apps = append(apps, Application{
			Name:    stem(path),
			Path:    path,
			Entries: bdjEntries(),
		})
	}
	return apps, nil
}

func bdjEntries() []MenuEntry {
	return []MenuEntry{
		{Title: "Play main feature", Action: ActionBDJPlayMain},
		{Title: "Interactive menu", Action: ActionBDJInteractive},
		{Title: "Chapter select", Action: ActionBDJChapters},
		{Title: "Special features", Action: ActionBDJSpecial},
		{Title: "Settings", Action: ActionBDJSettings},
		{Title: "Back to standard menu", Action: ActionFallbackMenu},
	}
}
