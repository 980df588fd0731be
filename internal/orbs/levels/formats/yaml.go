// Package formats provides pluggable level file format parsers.
package formats

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/orbs/internal/orbs/core"
	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
// A level may describe its objects as an explicit list, as an ASCII layout,
// or both; explicit objects are placed first.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Layout   string            `yaml:"layout,omitempty"`
	Objects  []YAMLObject      `yaml:"objects,omitempty"`
	Par      int               `yaml:"par,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLObject represents a single object in YAML format.
type YAMLObject struct {
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
	Type string `yaml:"type"` // orb, goal, block, breakable
}

// Level represents a parsed level ready for use.
type Level struct {
	ID       string
	Name     string
	Entries  []core.Entry // placement order
	Par      int          // published move count, 0 if unknown
	Metadata map[string]string
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Level{}, errors.New("missing level id")
	}

	level := Level{
		ID:       yl.ID,
		Name:     yl.Name,
		Par:      yl.Par,
		Metadata: yl.Metadata,
	}
	if level.Name == "" {
		level.Name = yl.ID
	}

	// Build through a board so duplicates are rejected the same way play does.
	b := core.NewBoard()
	for i, o := range yl.Objects {
		obj, ok := core.ParseObjectName(strings.TrimSpace(o.Type))
		if !ok {
			return Level{}, fmt.Errorf("object %d: unknown type %q", i, o.Type)
		}
		if err := b.PlaceObject(obj, core.C(o.X, o.Y)); err != nil {
			return Level{}, fmt.Errorf("object %d: %w", i, err)
		}
	}

	if yl.Layout != "" {
		rows := strings.Split(strings.TrimRight(yl.Layout, "\n"), "\n")
		lb, err := core.ParseLayout(rows)
		if err != nil {
			return Level{}, err
		}
		for _, e := range lb.Entries() {
			if err := b.PlaceObject(e.Object, e.At); err != nil {
				return Level{}, fmt.Errorf("layout: %w", err)
			}
		}
	}

	if b.Count() == 0 {
		return Level{}, errors.New("level has no objects")
	}
	level.Entries = b.Entries()
	return level, nil
}

// MarshalYAML encodes a level as an explicit object list.
func MarshalYAML(l Level) ([]byte, error) {
	yl := YAMLLevel{
		ID:       l.ID,
		Name:     l.Name,
		Par:      l.Par,
		Metadata: l.Metadata,
	}
	for _, e := range l.Entries {
		yl.Objects = append(yl.Objects, YAMLObject{X: e.At.X, Y: e.At.Y, Type: objectName(e.Object)})
	}
	return yaml.Marshal(yl)
}

func objectName(o core.Object) string {
	switch o {
	case core.Orb:
		return "orb"
	case core.Goal:
		return "goal"
	case core.Block:
		return "block"
	default:
		return "breakable"
	}
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}

// ToBoard creates a Board from the level data.
func (l *Level) ToBoard() *core.Board {
	b := core.NewBoard()
	for _, e := range l.Entries {
		// Entries came from a board, so they never collide.
		_ = b.PlaceObject(e.Object, e.At)
	}
	return b
}
