package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/five82/listviz/internal/config"
	"github.com/five82/listviz/internal/logging"
	"github.com/five82/listviz/internal/prefs"
	"github.com/five82/listviz/internal/visualizer"
)

// inputFocus names the text field receiving keys.
type inputFocus int

const (
	focusNone inputFocus = iota
	focusValue
	focusPosition
)

// Options configures the UI.
type Options struct {
	Config        config.Config
	Logger        zerolog.Logger
	ThemeName     string
	HideReference bool
	PrefsPath     string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	logger    zerolog.Logger
	prefsPath string
	keys      keyMap
	help      help.Model

	// UI state
	theme         Theme
	width         int
	height        int
	ready         bool
	focus         inputFocus
	showHelp      bool
	showReference bool

	// Data state
	state         visualizer.State
	valueInput    textinput.Model
	positionInput textinput.Model
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == (config.Config{}) {
		cfg = config.Default()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = themeOrder[0]
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	value := textinput.New()
	value.Placeholder = valuePlaceholder
	value.Prompt = ""
	value.CharLimit = valueCharLimit

	position := textinput.New()
	position.Placeholder = positionPlaceholder
	position.Prompt = ""
	position.CharLimit = positionCharLimit

	return Model{
		logger:        logging.Component(opts.Logger, "ui"),
		prefsPath:     prefsPath,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		theme:         GetTheme(themeName),
		showReference: !opts.HideReference,
		state:         visualizer.New(cfg.Timing(), cfg.OverlapPolicy),
		valueInput:    value,
		positionInput: position,
	}
}

// State returns the visualizer state behind the screen.
func (m Model) State() visualizer.State {
	return m.state
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case taskDueMsg:
		return m.handleTaskDue(msg)
	}

	// Cursor blink and other input housekeeping
	return m.updateFocusedInput(msg)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	// Show help overlay if active
	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.focus != focusNone {
		return m.handleInputKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Reference):
		m.showReference = !m.showReference
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.FocusValue, m.keys.NextField):
		return m, m.setFocus(focusValue)

	case key.Matches(msg, m.keys.FocusPosition):
		return m, m.setFocus(focusPosition)
	}

	if op, ok := m.keys.operationFor(msg); ok {
		return m.press(op)
	}
	return m, nil
}

// handleInputKey routes keys to the focused field. Enter and esc leave
// the field; tab moves to the other one.
func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm, m.keys.Escape):
		return m, m.setFocus(focusNone)

	case key.Matches(msg, m.keys.NextField):
		if m.focus == focusValue {
			return m, m.setFocus(focusPosition)
		}
		return m, m.setFocus(focusValue)
	}

	if m.focus == focusPosition && msg.Type == tea.KeyRunes && !positionRunes(msg.Runes) {
		return m, nil
	}
	return m.updateFocusedInput(msg)
}

func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusValue:
		m.valueInput, cmd = m.valueInput.Update(msg)
	case focusPosition:
		m.positionInput, cmd = m.positionInput.Update(msg)
	}
	return m, cmd
}

// setFocus moves keyboard focus between the fields.
func (m *Model) setFocus(f inputFocus) tea.Cmd {
	m.focus = f
	m.valueInput.Blur()
	m.positionInput.Blur()
	switch f {
	case focusValue:
		return m.valueInput.Focus()
	case focusPosition:
		return m.positionInput.Focus()
	}
	return nil
}

// press runs an operation button against the current field contents and
// schedules the tasks it returns.
func (m Model) press(op visualizer.Op) (tea.Model, tea.Cmd) {
	current := m.state.
		SetValueInput(m.valueInput.Value()).
		SetPositionInput(m.positionInput.Value())

	next, tasks := current.Press(op)
	m.state = next
	m.syncInputs()

	if len(tasks) == 0 {
		m.logger.Debug().Str("op", op.String()).Msg("operation ignored")
		return m, nil
	}
	m.logger.Debug().
		Str("op", op.String()).
		Int("length", next.Nodes.Len()).
		Ints("highlight", next.Highlight).
		Int("pending", len(next.Pending())).
		Msg("operation accepted")
	return m, scheduleTasks(tasks)
}

// handleTaskDue applies a timer that has elapsed. Timers of tasks that were
// superseded arrive here too and are dropped by Fire.
func (m Model) handleTaskDue(msg taskDueMsg) (tea.Model, tea.Cmd) {
	next, ok := m.state.Fire(msg.id)
	if !ok {
		m.logger.Debug().Uint64("task", uint64(msg.id)).Msg("stale task ignored")
		return m, nil
	}
	m.state = next
	m.syncInputs()
	m.logger.Debug().
		Uint64("task", uint64(msg.id)).
		Int("length", next.Nodes.Len()).
		Str("message", next.Message).
		Msg("task fired")
	return m, nil
}

// syncInputs copies field contents cleared by the state back into the
// text inputs.
func (m *Model) syncInputs() {
	if m.valueInput.Value() != m.state.ValueInput {
		m.valueInput.SetValue(m.state.ValueInput)
	}
	if m.positionInput.Value() != m.state.PositionInput {
		m.positionInput.SetValue(m.state.PositionInput)
	}
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, HideReference: !m.showReference}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warn().Err(err).Msg("save prefs")
	}
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	f := newFrame(m.theme, m.width)

	var b strings.Builder
	b.WriteString(f.renderHeader(m.state))
	b.WriteString("\n\n")
	b.WriteString(f.renderBody(m.state, m.renderFields(f), m.showReference))
	b.WriteString("\n\n")
	b.WriteString(f.styles.Footer.Width(f.width).Render(m.help.View(m.keys)))
	return b.String()
}

// renderFields renders the live text inputs with their labels.
func (m Model) renderFields(f frame) string {
	label := func(text string, focused bool) string {
		style := f.styles.MutedText
		if focused {
			style = f.styles.AccentText.Bold(true)
		}
		return style.Render(padRight(text, fieldLabelWidth))
	}
	return label("Value", m.focus == focusValue) + m.valueInput.View() + "\n" +
		label("Position", m.focus == focusPosition) + m.positionInput.View()
}

// Messages

type taskDueMsg struct {
	id visualizer.TaskID
}

// Commands

func scheduleTasks(tasks []visualizer.Task) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(tasks))
	for _, task := range tasks {
		id := task.ID
		cmds = append(cmds, tea.Tick(task.Delay, func(time.Time) tea.Msg {
			return taskDueMsg{id: id}
		}))
	}
	return tea.Batch(cmds...)
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
