package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg OrbsConfig
	if err := yaml.Unmarshal(defaultOrbsYAML, &cfg); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultOrbsConfig() {
		t.Errorf("embedded defaults differ from DefaultOrbsConfig:\n%+v\n%+v", cfg, DefaultOrbsConfig())
	}
}

func TestLoadCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orbs.yaml")
	body := "play:\n  replay_interval_ms: 150\nsolver:\n  cache: false\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Play.ReplayIntervalMS != 150 {
		t.Errorf("expected replay interval 150, got %d", cfg.Play.ReplayIntervalMS)
	}
	if cfg.Solver.Cache {
		t.Error("expected cache disabled")
	}
	// Untouched keys keep their defaults
	if cfg.Play.TickRate != DefaultOrbsConfig().Play.TickRate {
		t.Errorf("expected default tick rate, got %d", cfg.Play.TickRate)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("play: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed file")
	}
}

func TestNormalize(t *testing.T) {
	cfg := DefaultOrbsConfig()
	cfg.Play.TickRate = 0
	cfg.Render.CellWidth = 0
	cfg.Paths.DB = ""

	got := normalize(cfg)
	if got.Play.TickRate <= 0 || got.Render.CellWidth != 1 || got.Paths.DB == "" {
		t.Errorf("normalize left invalid values: %+v", got)
	}
}

func TestApplyAssistPreset(t *testing.T) {
	testCases := []struct {
		preset AssistPreset
		want   AssistConfig
	}{
		{AssistOff, AssistConfig{Hints: 0, Undo: false}},
		{AssistNormal, AssistConfig{Hints: 3, Undo: true}},
		{AssistRelaxed, AssistConfig{Hints: -1, Undo: true}},
	}
	for _, tc := range testCases {
		cfg := DefaultOrbsConfig()
		ApplyAssistPreset(&cfg, tc.preset)
		if cfg.Play.Assist != tc.want {
			t.Errorf("%s: expected %+v, got %+v", tc.preset, tc.want, cfg.Play.Assist)
		}
	}

	if _, ok := ParseAssistPreset("hard"); ok {
		t.Error("unknown preset should not parse")
	}
}

func TestExpandHome(t *testing.T) {
	got, err := ExpandHome("/tmp/x.db")
	if err != nil || got != "/tmp/x.db" {
		t.Errorf("absolute path changed: %q, %v", got, err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err = ExpandHome("~/.orbs/orbs.db")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(home, ".orbs", "orbs.db") {
		t.Errorf("unexpected expansion %q", got)
	}
}
