// Package levels provides level loading for the orb puzzle.
// This package depends on core but core does not depend on levels.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/vovakirdan/orbs/internal/orbs/core"
	"github.com/vovakirdan/orbs/internal/orbs/levels/formats"
)

//go:embed data/*.yaml
var embedded embed.FS

// ErrNotFound is returned when no level matches an ID.
var ErrNotFound = errors.New("level not found")

// Level represents a complete level definition.
type Level struct {
	ID       string
	Name     string
	Entries  []core.Entry
	Par      int
	Metadata map[string]string
	FilePath string
}

// ToBoard creates a fresh Board from the level.
// Objects are placed in file order, which fixes the board iteration order.
func (l *Level) ToBoard() *core.Board {
	fl := formats.Level{Entries: l.Entries}
	return fl.ToBoard()
}

// Orbs returns the number of orbs the level starts with.
func (l *Level) Orbs() int {
	n := 0
	for _, e := range l.Entries {
		if e.Object == core.Orb {
			n++
		}
	}
	return n
}

// Loader handles loading levels from a file system.
type Loader struct {
	FS   fs.FS
	Root string
}

// NewLoader creates a loader reading levels from a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{FS: os.DirFS(root), Root: "."}
}

// Embedded returns a loader for the levels compiled into the binary.
func Embedded() *Loader {
	return &Loader{FS: embedded, Root: "data"}
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.FS, l.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(p))
		if !isSupportedExtension(ext) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			// Skip invalid files
			return nil
		}

		levels = append(levels, level)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	// Sort by ID for determinism
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// LoadFile loads a single level file, relative to the loader's file system.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.FS, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}
	return parse(data, p)
}

// LoadPath loads a level file from an arbitrary path on disk.
func LoadPath(p string) (Level, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}
	return parse(data, p)
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// Resolve loads a level by ID, or from disk when ref names a level file.
func (l *Loader) Resolve(ref string) (Level, error) {
	if isSupportedExtension(strings.ToLower(path.Ext(ref))) {
		if _, err := os.Stat(ref); err == nil {
			return LoadPath(ref)
		}
	}
	return l.LoadByID(ref)
}

func parse(data []byte, p string) (Level, error) {
	ext := strings.ToLower(path.Ext(p))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}

	return Level{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Entries:  parsed.Entries,
		Par:      parsed.Par,
		Metadata: parsed.Metadata,
		FilePath: p,
	}, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
