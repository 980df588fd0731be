package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/orbs/internal/config"
	"github.com/vovakirdan/orbs/internal/core"
	"github.com/vovakirdan/orbs/internal/orbs"
	"github.com/vovakirdan/orbs/internal/orbs/levels"
	"github.com/vovakirdan/orbs/internal/storage"
)

// Env holds what every model of one session shares.
type Env struct {
	Store  *storage.Store // May be nil; attempts are then not recorded
	Solver *orbs.Service  // May be nil; the plain solver is used
	Config config.OrbsConfig
	Theme  Theme
	Player string
	Logger *log.Logger
}

func (e *Env) logger() *log.Logger {
	if e.Logger == nil {
		return log.New(io.Discard)
	}
	return e.Logger
}

// NewGame creates a game for lvl configured from the environment.
func (e *Env) NewGame(lvl levels.Level) *orbs.Game {
	opts := orbs.OptionsFromConfig(e.Config)
	opts.Async = true
	if e.Solver != nil {
		opts.Solve = e.Solver.SolveFunc(lvl.ID)
	}
	return orbs.New(lvl, opts)
}

// Model is the Bubble Tea model for playing one level.
type Model struct {
	game       *orbs.Game
	screen     *core.Screen
	env        *Env
	config     core.RuntimeConfig
	keys       GameKeyMap
	help       help.Model
	inputFrame core.InputFrame
	state      core.GameState
	embedded   bool // Back returns to the picker instead of quitting
	quitting   bool
	back       bool
	recorded   bool // The current attempt has been stored
}

// NewModel creates a Bubble Tea model for the given game.
func NewModel(game *orbs.Game, env *Env, cfg core.RuntimeConfig) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = env.Config.Play.TickRate
	}
	m := Model{
		game:       game,
		env:        env,
		config:     cfg,
		keys:       DefaultGameKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
	m.help.Width = cfg.ScreenW
	m.screen = core.NewScreen(cfg.ScreenW, m.boardHeight())
	return m
}

// boardHeight is the screen height left after the help view.
func (m Model) boardHeight() int {
	return max(m.config.ScreenH-lipgloss.Height(m.help.View(m.keys)), 1)
}

func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = m.boardHeight()
	return cfg
}

// Init starts the level and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case TickMsg:
		return m.handleTick()

	case solveDoneMsg:
		m.game.CompleteSolve(orbs.SolveResult(msg))
		return m, nil
	}

	return m, nil
}

func (m *Model) resize() {
	h := m.boardHeight()
	m.screen.Resize(m.config.ScreenW, h)
	m.game.Resize(m.config.ScreenW, h)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.recordAttempt(false)
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.recordAttempt(false)
		if !m.embedded {
			m.quitting = true
			return m, tea.Quit
		}
		m.back = true
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil
	}

	if a := m.keys.Action(msg); a != core.ActionNone {
		if a == core.ActionRestart {
			m.recordAttempt(false)
		}
		m.inputFrame.Set(a)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.back || m.quitting {
		return m, nil
	}

	if m.inputFrame.Has(core.ActionRestart) {
		m.recorded = false
	}

	result := m.game.Step(m.inputFrame)
	m.state = result.State
	if result.Finished {
		m.recordAttempt(true)
	}

	m.inputFrame.Clear()
	if req, ok := m.game.TakeSolveRequest(); ok {
		return m, tea.Batch(tickCmd(m.config.TickRate), solveCmd(req))
	}
	return m, tickCmd(m.config.TickRate)
}

// recordAttempt stores the current attempt once. Attempts finished by the
// auto-replay and unsolved attempts without moves are not stored.
func (m *Model) recordAttempt(solved bool) {
	if m.recorded || m.env.Store == nil {
		return
	}
	st := m.game.State()
	if st.Replay || (!solved && st.Moves == 0) {
		return
	}
	// Solved attempts are recorded on the tick they finish
	if st.Solved && !solved {
		return
	}

	m.recorded = true
	_, err := m.env.Store.SaveAttempt(storage.Attempt{
		LevelID: m.game.ID(),
		Player:  m.env.Player,
		Moves:   st.Moves,
		Hints:   st.Hints,
		Solved:  solved,
	})
	if err != nil {
		m.env.logger().Warn("could not save attempt", "level", m.game.ID(), "error", err)
		return
	}
	m.env.logger().Debug("attempt saved",
		"level", m.game.ID(),
		"player", m.env.Player,
		"moves", st.Moves,
		"solved", solved,
	)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen, m.env.Theme) + "\n" + m.help.View(m.keys)
}

// IsQuitting reports whether the user asked to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToPicker reports whether the user asked to return to the level list.
func (m Model) BackToPicker() bool {
	return m.back
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.state
}

// Run plays a single level in the local terminal.
func Run(lvl levels.Level, env *Env, cfg core.RuntimeConfig) error {
	model := NewModel(env.NewGame(lvl), env, cfg)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
