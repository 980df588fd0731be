// Package config provides YAML-based configuration loading and assist
// presets for the orb puzzle.
package config

// OrbsConfig contains all configuration for the orbs binary.
type OrbsConfig struct {
	Solver SolverConfig `yaml:"solver"`
	Render RenderConfig `yaml:"render"`
	Play   PlayConfig   `yaml:"play"`
	Paths  PathsConfig  `yaml:"paths"`
	Server ServerConfig `yaml:"server"`
}

// SolverConfig controls how solutions are computed and reported.
type SolverConfig struct {
	Cache     bool `yaml:"cache"`      // Reuse stored solutions for identical boards
	ShowStats bool `yaml:"show_stats"` // Print search statistics after solving
}

// RenderConfig defines how boards are drawn.
type RenderConfig struct {
	CellWidth int          `yaml:"cell_width"` // Terminal columns per board cell
	Glyphs    GlyphConfig  `yaml:"glyphs"`
	Colors    ColorsConfig `yaml:"colors"`
}

// GlyphConfig holds one character per object kind.
type GlyphConfig struct {
	Orb       string `yaml:"orb"`
	Goal      string `yaml:"goal"`
	Block     string `yaml:"block"`
	Breakable string `yaml:"breakable"`
	Empty     string `yaml:"empty"`
}

// ColorsConfig holds lipgloss color strings (ANSI number or hex).
type ColorsConfig struct {
	Orb       string `yaml:"orb"`
	Goal      string `yaml:"goal"`
	Block     string `yaml:"block"`
	Breakable string `yaml:"breakable"`
	Cursor    string `yaml:"cursor"`
}

// PlayConfig defines interactive play parameters.
type PlayConfig struct {
	TickRate         int          `yaml:"tick_rate"`          // UI ticks per second
	ReplayIntervalMS int          `yaml:"replay_interval_ms"` // Delay between replayed moves
	Assist           AssistConfig `yaml:"assist"`
}

// AssistConfig limits the help a player gets.
type AssistConfig struct {
	Hints int  `yaml:"hints"` // Hints per attempt, -1 = unlimited
	Undo  bool `yaml:"undo"`
}

// PathsConfig locates external data.
type PathsConfig struct {
	Levels string `yaml:"levels"` // Extra level directory, empty = embedded only
	DB     string `yaml:"db"`
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKeyPath        string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// AssistPreset represents a named assist level.
type AssistPreset string

const (
	AssistOff     AssistPreset = "off"
	AssistNormal  AssistPreset = "normal"
	AssistRelaxed AssistPreset = "relaxed"
)

// ParseAssistPreset validates a preset name.
func ParseAssistPreset(s string) (AssistPreset, bool) {
	switch p := AssistPreset(s); p {
	case AssistOff, AssistNormal, AssistRelaxed:
		return p, true
	}
	return "", false
}

// ApplyAssistPreset modifies the config based on an assist preset.
func ApplyAssistPreset(cfg *OrbsConfig, preset AssistPreset) {
	switch preset {
	case AssistOff:
		cfg.Play.Assist = AssistConfig{Hints: 0, Undo: false}
	case AssistNormal:
		cfg.Play.Assist = AssistConfig{Hints: 3, Undo: true}
	case AssistRelaxed:
		cfg.Play.Assist = AssistConfig{Hints: -1, Undo: true}
	}
}
