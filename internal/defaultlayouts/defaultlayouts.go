// Package defaultlayouts embeds the layouts totalmapper ships out of the
// box, so the CLI can list and print them without touching the filesystem.
package defaultlayouts

import (
	"embed"
	"fmt"
	"sort"
)

//go:embed layouts/*.json
var files embed.FS

// names are the built-in layouts. List returns them sorted.
var names = []string{
	"caps-for-movement",
	"easy-symbols",
	"caps-q-for-esc",
	"easy-symbols-tab-for-movement",
	"super-dvorak",
}

// List returns the names of all built-in layouts.
func List() []string {
	out := make([]string, len(names))
	copy(out, names)
	sort.Strings(out)
	return out
}

// Load returns the raw JSON text of the named built-in layout.
func Load(name string) (string, error) {
	data, err := files.ReadFile("layouts/" + name + ".json")
	if err != nil {
		return "", fmt.Errorf("no such default layout %q", name)
	}
	return string(data), nil
}
