package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/orbs/internal/orbs/levels"
)

// PickerModel is the Bubble Tea model for the level list.
type PickerModel struct {
	levels   []levels.Level
	table    table.Model
	keys     PickerKeyMap
	help     help.Model
	env      *Env
	width    int
	height   int
	selected *levels.Level
	quitting bool
}

// NewPickerModel creates a picker over lvls sized to the terminal.
func NewPickerModel(lvls []levels.Level, env *Env, width, height int) PickerModel {
	columns := []table.Column{
		{Title: "ID", Width: 12},
		{Title: "Name", Width: 22},
		{Title: "Orbs", Width: 5},
		{Title: "Par", Width: 4},
		{Title: "Best", Width: 5},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(pickerRows(lvls, env)),
		table.WithFocused(true),
	)
	styles := table.DefaultStyles()
	styles.Header = env.Theme.TableHeader
	styles.Selected = env.Theme.TableSelected
	t.SetStyles(styles)

	m := PickerModel{
		levels: lvls,
		table:  t,
		keys:   DefaultPickerKeyMap(),
		help:   help.New(),
		env:    env,
	}
	m.setSize(width, height)
	return m
}

// pickerRows builds one row per level with the player's best solved attempt.
func pickerRows(lvls []levels.Level, env *Env) []table.Row {
	rows := make([]table.Row, 0, len(lvls))
	for _, lvl := range lvls {
		par := "-"
		if lvl.Par > 0 {
			par = strconv.Itoa(lvl.Par)
		}
		best := "-"
		if env.Store != nil {
			a, found, err := env.Store.BestAttempt(lvl.ID)
			if err != nil {
				env.logger().Warn("could not load best attempt", "level", lvl.ID, "error", err)
			} else if found {
				best = strconv.Itoa(a.Moves)
			}
		}
		rows = append(rows, table.Row{lvl.ID, lvl.Name, strconv.Itoa(lvl.Orbs()), par, best})
	}
	return rows
}

func (m *PickerModel) setSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	// Title, description, help and margins take 6 lines
	m.table.SetHeight(max(height-6, 3))
}

// Init initializes the picker.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
		case key.Matches(msg, m.keys.Up):
			m.table.MoveUp(1)
		case key.Matches(msg, m.keys.Down):
			m.table.MoveDown(1)
		case key.Matches(msg, m.keys.Select):
			if i := m.table.Cursor(); i >= 0 && i < len(m.levels) {
				lvl := m.levels[i]
				m.selected = &lvl
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil
	}

	return m, nil
}

// View renders the picker.
func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}

	title := m.env.Theme.MenuTitle.Render("O R B S")
	desc := m.env.Theme.MenuDescription.Render("Slide every orb into a goal. Pick a level:")
	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		desc,
		"",
		m.table.View(),
		"",
		m.help.View(m.keys),
	)

	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Selected returns the chosen level, or nil while the user is browsing.
func (m PickerModel) Selected() *levels.Level {
	return m.selected
}

// Cursor returns the highlighted row.
func (m PickerModel) Cursor() int {
	return m.table.Cursor()
}

// SetCursor highlights row i.
func (m *PickerModel) SetCursor(i int) {
	m.table.SetCursor(i)
}

// IsQuitting reports whether the user closed the picker.
func (m PickerModel) IsQuitting() bool {
	return m.quitting
}
