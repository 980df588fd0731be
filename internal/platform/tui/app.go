package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/orbs/internal/core"
	"github.com/vovakirdan/orbs/internal/orbs/levels"
)

// App manages a full play session: picker -> game -> picker.
// It is the top-level model for `orbs play` without a level and for SSH
// sessions.
type App struct {
	env      *Env
	levels   []levels.Level
	config   core.RuntimeConfig
	picker   PickerModel
	game     *Model
	quitting bool
}

// NewApp creates a session over lvls.
func NewApp(lvls []levels.Level, env *Env, cfg core.RuntimeConfig) App {
	return App{
		env:    env,
		levels: lvls,
		config: cfg,
		picker: NewPickerModel(lvls, env, cfg.ScreenW, cfg.ScreenH),
	}
}

// Init initializes the session.
func (a App) Init() tea.Cmd {
	return a.picker.Init()
}

// Update handles messages for the session.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		a.config.ScreenW = wsm.Width
		a.config.ScreenH = wsm.Height
	}

	if a.game != nil {
		return a.updateGame(msg)
	}
	return a.updatePicker(msg)
}

func (a App) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := a.picker.Update(msg)
	if p, ok := next.(PickerModel); ok {
		a.picker = p
	}

	if a.picker.IsQuitting() {
		a.quitting = true
		return a, tea.Quit
	}

	if lvl := a.picker.Selected(); lvl != nil {
		model := NewModel(a.env.NewGame(*lvl), a.env, a.config)
		model.embedded = true
		a.game = &model
		a.env.logger().Info("level started", "level", lvl.ID, "player", a.env.Player)
		return a, a.game.Init()
	}

	return a, cmd
}

func (a App) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := a.game.Update(msg)
	if g, ok := next.(Model); ok {
		a.game = &g
	}

	if a.game.IsQuitting() {
		a.quitting = true
		return a, tea.Quit
	}

	if a.game.BackToPicker() {
		cursor := a.picker.Cursor()
		a.game = nil
		// Rebuild so the Best column reflects the attempt just played
		a.picker = NewPickerModel(a.levels, a.env, a.config.ScreenW, a.config.ScreenH)
		a.picker.SetCursor(cursor)
		return a, a.picker.Init()
	}

	return a, cmd
}

// View renders the current view.
func (a App) View() string {
	if a.quitting {
		return ""
	}
	if a.game != nil {
		return a.game.View()
	}
	return a.picker.View()
}

// InGame reports whether a level is being played.
func (a App) InGame() bool {
	return a.game != nil
}

// RunApp starts a local session with the level picker.
func RunApp(lvls []levels.Level, env *Env, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(NewApp(lvls, env, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
