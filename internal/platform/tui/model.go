package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-splash/internal/core"
	"github.com/vovakirdan/tui-splash/internal/registry"
)

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// TaskDoneMsg reports the wrapped command's completion to the UI.
type TaskDoneMsg struct {
	Err error
}

// Model is the Bubble Tea model hosting a splash widget. The widget's
// logical scene never resizes; the model centers it in whatever terminal
// it gets and shows a notice when the terminal is too small for it.
type Model struct {
	widget   registry.Widget
	screen   *core.Screen
	keys     KeyMap
	config   core.RuntimeConfig
	input    core.InputFrame
	status   string  // Extra line under the scene, set by the command layer
	task     tea.Cmd // Optional background job; its completion quits the UI
	taskErr  error
	termW    int
	termH    int
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given widget.
func NewModel(w registry.Widget, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	cols, rows := w.Size()
	return Model{
		widget: w,
		screen: core.NewScreen(cols, rows),
		keys:   DefaultKeyMap(),
		config: cfg,
		input:  core.NewInputFrame(),
	}
}

// WithStatus returns a copy of the model with a status line under the scene.
func (m Model) WithStatus(status string) Model {
	m.status = status
	return m
}

// WithTask returns a copy of the model that also runs a background command
// and quits once it finishes.
func (m Model) WithTask(task tea.Cmd) Model {
	m.task = task
	return m
}

// TaskErr returns the wrapped command's error after the UI exits.
func (m Model) TaskErr() error {
	return m.taskErr
}

// Init initializes the widget and starts the tick loop.
func (m Model) Init() tea.Cmd {
	// The widget sits behind an interface, so the reset outlives this
	// value receiver
	m.widget.Reset(m.config)

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if m.task != nil {
		cmds = append(cmds, m.task)
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.termW = msg.Width
		m.termH = msg.Height
		return m, nil

	case TickMsg:
		return m.handleTick()

	case TaskDoneMsg:
		m.taskErr = msg.Err
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, m.keys.Jump):
		m.input.Set(core.ActionJump)
	}

	return m, nil
}

// handleTick advances the widget by one simulation tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Stop rescheduling once shutdown has started
	if m.quitting {
		return m, nil
	}

	m.widget.Step(m.input)
	m.input.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current scene to a text file.
func (m *Model) saveScreenshot() {
	m.widget.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".splash", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.widget.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, session continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	cols, rows := m.widget.Size()

	var content string
	if m.termW > 0 && (m.termW < cols || m.termH < rows) {
		content = fmt.Sprintf("terminal too small\nneed %dx%d, have %dx%d", cols, rows, m.termW, m.termH)
	} else {
		m.widget.Render(m.screen)
		content = RenderScreen(m.screen)
		if m.status != "" {
			content = lipgloss.JoinVertical(lipgloss.Center, content, statusStyle.Render(m.status))
		}
	}

	if m.termW > 0 && m.termH > 0 {
		return lipgloss.Place(m.termW, m.termH, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// RunModel starts the Bubble Tea program and returns the final model, so
// callers can inspect the wrapped command's outcome.
func RunModel(m Model) (Model, error) {
	p := tea.NewProgram(m, tea.WithAltScreen())

	fm, err := p.Run()
	if err != nil {
		return m, err
	}
	if out, ok := fm.(Model); ok {
		return out, nil
	}
	return m, nil
}

// Run starts the splash UI for a widget and blocks until it quits.
func Run(w registry.Widget, cfg core.RuntimeConfig) error {
	_, err := RunModel(NewModel(w, cfg))
	return err
}
