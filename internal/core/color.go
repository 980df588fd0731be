package core

// Color represents a semantic foreground color for a screen cell.
// The platform layer maps colors to terminal styles.
type Color uint8

// Predefined colors for board and HUD elements.
const (
	ColorDefault Color = iota
	ColorOrb
	ColorGoal
	ColorBlock
	ColorBreakable
	ColorCursor
	ColorDim
	ColorTitle
	ColorSuccess
	ColorWarning
)

// String returns the color name.
func (c Color) String() string {
	switch c {
	case ColorOrb:
		return "orb"
	case ColorGoal:
		return "goal"
	case ColorBlock:
		return "block"
	case ColorBreakable:
		return "breakable"
	case ColorCursor:
		return "cursor"
	case ColorDim:
		return "dim"
	case ColorTitle:
		return "title"
	case ColorSuccess:
		return "success"
	case ColorWarning:
		return "warning"
	default:
		return "default"
	}
}
