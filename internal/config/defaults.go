package config

import (
	_ "embed"
)

//go:embed defaults/orbs.yaml
var defaultOrbsYAML []byte

// DefaultOrbsConfig returns the default configuration.
func DefaultOrbsConfig() OrbsConfig {
	return OrbsConfig{
		Solver: SolverConfig{
			Cache:     true,
			ShowStats: false,
		},
		Render: RenderConfig{
			CellWidth: 2,
			Glyphs: GlyphConfig{
				Orb:       "o",
				Goal:      "G",
				Block:     "B",
				Breakable: "X",
				Empty:     "·",
			},
			Colors: ColorsConfig{
				Orb:       "51",
				Goal:      "226",
				Block:     "245",
				Breakable: "208",
				Cursor:    "205",
			},
		},
		Play: PlayConfig{
			TickRate:         30,
			ReplayIntervalMS: 400,
			Assist: AssistConfig{
				Hints: 3,
				Undo:  true,
			},
		},
		Paths: PathsConfig{
			Levels: "",
			DB:     "~/.orbs/orbs.db",
		},
		Server: ServerConfig{
			Address:            ":23235",
			HostKeyPath:        "",
			IdleTimeoutMinutes: 30,
		},
	}
}
