package main

import (
	"errors"
	"os"
	"sort"

	"golang.org/x/term"

	"github.com/vovakirdan/orbs/internal/config"
	"github.com/vovakirdan/orbs/internal/core"
	"github.com/vovakirdan/orbs/internal/orbs/levels"
	"github.com/vovakirdan/orbs/internal/storage"
)

// extraLoader returns the loader for the configured level directory.
func extraLoader() (*levels.Loader, error) {
	if cfg.Paths.Levels == "" {
		return nil, nil
	}
	dir, err := config.ExpandHome(cfg.Paths.Levels)
	if err != nil {
		return nil, err
	}
	return levels.NewLoader(dir), nil
}

// loadLevels returns the embedded levels plus the configured directory.
// A level in the directory replaces an embedded level with the same ID.
func loadLevels() ([]levels.Level, error) {
	lvls, err := levels.Embedded().LoadAll()
	if err != nil {
		return nil, err
	}

	extra, err := extraLoader()
	if err != nil || extra == nil {
		return lvls, err
	}
	more, err := extra.LoadAll()
	if err != nil {
		return nil, err
	}

	byID := make(map[string]levels.Level, len(lvls)+len(more))
	for _, lvl := range lvls {
		byID[lvl.ID] = lvl
	}
	for _, lvl := range more {
		byID[lvl.ID] = lvl
	}
	merged := make([]levels.Level, 0, len(byID))
	for _, lvl := range byID {
		merged = append(merged, lvl)
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].ID < merged[j].ID })
	return merged, nil
}

// resolveLevel loads a level by file path or ID.
func resolveLevel(ref string) (levels.Level, error) {
	extra, err := extraLoader()
	if err != nil {
		return levels.Level{}, err
	}
	if extra != nil {
		lvl, err := extra.Resolve(ref)
		if err == nil || !errors.Is(err, levels.ErrNotFound) {
			return lvl, err
		}
	}
	return levels.Embedded().Resolve(ref)
}

// openStore opens the database, or returns nil with a warning.
func openStore() *storage.Store {
	store, err := storage.Open(cfg.Paths.DB)
	if err != nil {
		logger.Warn("could not open database", "path", cfg.Paths.DB, "error", err)
		return nil
	}
	return store
}

// runtimeConfig sizes the screen from the current terminal.
func runtimeConfig() core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.TickRate = cfg.Play.TickRate
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	return rc
}

// openStoreIf opens the database only when enabled.
func openStoreIf(enabled bool) *storage.Store {
	if !enabled {
		return nil
	}
	return openStore()
}
