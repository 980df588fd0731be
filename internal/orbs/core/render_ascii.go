package core

import (
	"fmt"
	"strings"
)

// Glyphs maps objects to the characters used when drawing a board.
type Glyphs map[Object]rune

// DefaultGlyphs returns o/G/B/X.
func DefaultGlyphs() Glyphs {
	g := make(Glyphs, len(Objects))
	for _, o := range Objects {
		g[o] = o.Glyph()
	}
	return g
}

// RenderASCII draws the board framed by '-' and '|' borders, one line per
// row. The drawing always includes the origin, so an empty board is "--",
// "||", "--".
//
// Example:
//
//	-------
//	|    B|
//	| X   |
//	|X  B |
//	-------
func RenderASCII(b *Board) string {
	return RenderWith(b, DefaultGlyphs())
}

// RenderWith is RenderASCII with custom glyphs. Missing glyphs fall back
// to the defaults.
func RenderWith(b *Board, glyphs Glyphs) string {
	rows := renderRows(b, glyphs)
	width := 0
	if len(rows) > 0 {
		width = len([]rune(rows[0]))
	}

	var sb strings.Builder
	border := strings.Repeat("-", width+2)
	sb.WriteString(border + "\n")
	for _, row := range rows {
		sb.WriteString("|" + row + "|\n")
	}
	sb.WriteString(border + "\n")
	return sb.String()
}

// RenderCompact renders the board without a frame, using '.' for empty cells.
func RenderCompact(b *Board) string {
	rows := renderRows(b, DefaultGlyphs())
	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString(strings.ReplaceAll(row, " ", "."))
		sb.WriteString("\n")
	}
	return sb.String()
}

// renderRows returns the unframed rows, each padded to the same width.
func renderRows(b *Board, glyphs Glyphs) []string {
	lo, hi, ok := b.Bounds()
	if !ok {
		return []string{""}
	}
	x0, y0 := min(lo.X, 0), min(lo.Y, 0)

	rows := make([]string, 0, hi.Y-y0+1)
	line := make([]rune, hi.X-x0+1)
	for y := y0; y <= hi.Y; y++ {
		for x := x0; x <= hi.X; x++ {
			line[x-x0] = ' '
			if o, ok := b.objects[C(x, y)]; ok {
				line[x-x0] = glyphFor(glyphs, o)
			}
		}
		rows = append(rows, string(line))
	}
	return rows
}

func glyphFor(glyphs Glyphs, o Object) rune {
	if r, ok := glyphs[o]; ok {
		return r
	}
	return o.Glyph()
}

// ParseLayout builds a board from text rows using the RenderASCII glyphs.
// Row i is y = i and column j is x = j. ' ' and '.' are empty cells.
// A frame as produced by RenderASCII is stripped first. Objects are placed
// row by row, left to right.
func ParseLayout(rows []string) (*Board, error) {
	rows = stripFrame(rows)

	b := NewBoard()
	for y, row := range rows {
		for x, r := range []rune(row) {
			if r == ' ' || r == '.' {
				continue
			}
			obj, ok := ParseObject(r)
			if !ok {
				return nil, fmt.Errorf("layout: unknown glyph %q at %s", r, C(x, y))
			}
			if err := b.PlaceObject(obj, C(x, y)); err != nil {
				return nil, fmt.Errorf("layout: %w", err)
			}
		}
	}
	return b, nil
}

// MustParseLayout is ParseLayout for fixed layouts; it panics on error.
func MustParseLayout(rows ...string) *Board {
	b, err := ParseLayout(rows)
	if err != nil {
		panic(err)
	}
	return b
}

// stripFrame removes a RenderASCII frame if every row carries one.
func stripFrame(rows []string) []string {
	if len(rows) < 2 || !isBorder(rows[0]) || !isBorder(rows[len(rows)-1]) {
		return rows
	}
	inner := rows[1 : len(rows)-1]
	out := make([]string, len(inner))
	for i, row := range inner {
		if len(row) < 2 || row[0] != '|' || row[len(row)-1] != '|' {
			return rows
		}
		out[i] = row[1 : len(row)-1]
	}
	return out
}

func isBorder(row string) bool {
	return len(row) >= 2 && strings.Trim(row, "-") == ""
}
