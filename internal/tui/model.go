// Package tui renders the progress of a build in the terminal.
package tui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/turbo/internal/ui/style"
)

const (
	statusRunning   = "running"
	statusCompleted = "completed"
	statusFailed    = "failed"
)

// UnitState is the progress of one unit.
type UnitState struct {
	ID     string
	Name   string
	Status string
	Logs   bytes.Buffer
}

// Model is the Bubble Tea model showing every started unit and the output of the unit
// that started last.
type Model struct {
	units   []*UnitState
	byID    map[string]*UnitState
	active  string
	logs    viewport.Model
	spinner spinner.Model
	styles  styles
	height  int
	ended   bool
}

// NewModel creates an empty model.
func NewModel() *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot

	st := newStyles()
	s.Style = st.running

	return &Model{
		byID:    make(map[string]*UnitState),
		logs:    viewport.New(0, 0),
		spinner: s,
		styles:  st,
	}
}

// Init starts the spinner.
func (m *Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		listWidth := int(float64(msg.Width) * unitListWidthRatio)
		m.logs.Width = msg.Width - listWidth - logPaneBorderWidth
		m.logs.Height = msg.Height - 2
		m.height = msg.Height
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case MsgUnitStarted:
		m.handleUnitStarted(msg)
	case MsgUnitOutput:
		m.handleUnitOutput(msg)
	case MsgUnitCompleted:
		m.handleUnitCompleted(msg)
	case MsgBuildEnded:
		m.ended = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) handleUnitStarted(msg MsgUnitStarted) {
	u, ok := m.byID[msg.ID]
	if !ok {
		u = &UnitState{ID: msg.ID, Name: msg.Name}
		m.units = append(m.units, u)
		m.byID[msg.ID] = u
	}
	u.Status = statusRunning

	// Focus follows activity.
	m.active = msg.ID
	m.showLogs(u)
}

func (m *Model) handleUnitOutput(msg MsgUnitOutput) {
	u, ok := m.byID[msg.ID]
	if !ok {
		return
	}
	u.Logs.Write(msg.Data)
	if u.ID == m.active {
		m.showLogs(u)
	}
}

func (m *Model) handleUnitCompleted(msg MsgUnitCompleted) {
	u, ok := m.byID[msg.ID]
	if !ok {
		return
	}
	if msg.Err != nil {
		u.Status = statusFailed
	} else {
		u.Status = statusCompleted
	}
}

func (m *Model) showLogs(u *UnitState) {
	m.logs.SetContent(u.Logs.String())
	m.logs.GotoBottom()
}

// Units returns the units in start order.
func (m *Model) Units() []*UnitState {
	return m.units
}

// Ended reports whether the build finished.
func (m *Model) Ended() bool {
	return m.ended
}

// View renders the unit list, next to the active unit's output once the terminal size
// is known.
func (m *Model) View() string {
	list := m.unitList()
	if m.height == 0 || m.ended {
		return list
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.styles.list.Render(list), m.logPane())
}

func (m *Model) unitList() string {
	var s strings.Builder
	for _, u := range m.units {
		var icon string
		switch u.Status {
		case statusCompleted:
			icon = m.styles.done.Render(style.Check)
		case statusFailed:
			icon = m.styles.failed.Render(style.Cross)
		default:
			icon = m.spinner.View()
		}
		fmt.Fprintf(&s, "%s %s\n", icon, u.Name)
	}
	return s.String()
}

func (m *Model) logPane() string {
	header := "LOGS (waiting...)"
	if u, ok := m.byID[m.active]; ok {
		header = "LOGS: " + u.Name
	}
	return m.styles.logs.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.styles.title.Render(header),
		m.logs.View(),
	))
}
