package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fahmaliyi/mypw/vault"
)

type tuiState int

const (
	stateTable tuiState = iota
	stateShowEntry
	stateAddEntry
)

const (
	inputService = iota
	inputUsername
	inputPassword
)

type model struct {
	session   *session
	items     []vault.ListItem
	cursor    int
	state     tuiState
	inputs    []textinput.Model
	overwrite bool
	selected  string
	revealed  bool
	msg       string
	err       string
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	msgStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	tuiErrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	selectedStyle = lipgloss.NewStyle().Background(lipgloss.Color("57")).Foreground(lipgloss.Color("0"))
	helpStyle     = lipgloss.NewStyle().Faint(true)
)

// runTUI starts the interactive browser over an unlocked session.
func runTUI(s *session) error {
	m := model{
		session: s,
		items:   s.contents.List(),
		state:   stateTable,
	}
	_, err := tea.NewProgram(m).Run()
	return err
}

func newAddInputs() []textinput.Model {
	service := textinput.New()
	service.Placeholder = "Service"
	service.Focus()

	username := textinput.New()
	username.Placeholder = "Username"

	password := textinput.New()
	password.Placeholder = "Password"
	password.EchoMode = textinput.EchoPassword

	return []textinput.Model{service, username, password}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateShowEntry:
		return m.updateShowEntry(msg)
	case stateAddEntry:
		return m.updateAddEntry(msg)
	default:
		return m.updateTable(msg)
	}
}

func (m model) View() string {
	switch m.state {
	case stateShowEntry:
		return m.viewShowEntry()
	case stateAddEntry:
		return m.viewAddEntry()
	default:
		return m.viewTable()
	}
}

// --- Table ---

func (m model) updateTable(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.msg, m.err = "", ""
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "j", "down":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "enter":
			if len(m.items) > 0 {
				m.selected = m.items[m.cursor].Service
				m.revealed = false
				m.state = stateShowEntry
			}
		case "a":
			m.inputs = newAddInputs()
			m.overwrite = false
			m.state = stateAddEntry
			return m, textinput.Blink
		case "d":
			if len(m.items) == 0 {
				break
			}
			service := m.items[m.cursor].Service
			if err := m.session.contents.Remove(service); err != nil {
				m.err = err.Error()
				break
			}
			if err := m.session.persist(); err != nil {
				m.err = err.Error()
				break
			}
			m.items = m.session.contents.List()
			if m.cursor >= len(m.items) && m.cursor > 0 {
				m.cursor--
			}
			m.msg = fmt.Sprintf("Deleted %q", service)
		case "c":
			if len(m.items) == 0 {
				break
			}
			e, err := m.session.contents.Get(m.items[m.cursor].Service)
			if err != nil {
				m.err = err.Error()
				break
			}
			if err := copyAndForget(e.Password, m.session.clipboardTimeout()); err != nil {
				m.err = "clipboard unavailable"
				break
			}
			m.msg = fmt.Sprintf("Password copied, clears in %ds", m.session.cfg.ClipboardClearSeconds)
		}
	}
	return m, nil
}

func (m model) viewTable() string {
	s := titleStyle.Render("mypw vault") + "\n\n"
	if len(m.items) == 0 {
		s += helpStyle.Render("Vault is empty. Press 'a' to add an entry.") + "\n"
	}
	for i, item := range m.items {
		line := fmt.Sprintf("%-24s  %-32s", item.Service, item.Username)
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		s += line + "\n"
	}
	if m.msg != "" {
		s += "\n" + msgStyle.Render(m.msg)
	}
	if m.err != "" {
		s += "\n" + tuiErrStyle.Render(m.err)
	}
	s += "\n" + helpStyle.Render("j/k move · enter show · a add · d delete · c copy · q quit")
	return s
}

// --- Show entry ---

func (m model) updateShowEntry(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			m.state = stateTable
			m.selected = ""
			m.revealed = false
			m.msg = ""
		case "v":
			m.revealed = !m.revealed
		case "c":
			e, err := m.session.contents.Get(m.selected)
			if err == nil {
				if err := copyAndForget(e.Password, m.session.clipboardTimeout()); err == nil {
					m.msg = fmt.Sprintf("Password copied, clears in %ds", m.session.cfg.ClipboardClearSeconds)
				}
			}
		case "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) viewShowEntry() string {
	e, err := m.session.contents.Get(m.selected)
	if err != nil {
		return tuiErrStyle.Render("entry vanished") + "\n"
	}
	password := "********"
	if m.revealed {
		password = e.Password
	}
	s := titleStyle.Render(m.selected) + "\n\n"
	s += fmt.Sprintf("Username: %s\nPassword: %s\n", e.Username, password)
	if m.msg != "" {
		s += "\n" + msgStyle.Render(m.msg)
	}
	s += "\n" + helpStyle.Render("v reveal · c copy · esc back")
	return s
}

// --- Add entry ---

func (m model) updateAddEntry(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	for i := range m.inputs {
		if m.inputs[i].Focused() {
			m.inputs[i], cmd = m.inputs[i].Update(msg)
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.state = stateTable
			m.err = ""
		case "ctrl+c":
			return m, tea.Quit
		case "tab", "down":
			m.focusNext(false)
		case "shift+tab", "up":
			m.focusNext(true)
		case "ctrl+g":
			password, err := vault.Generate(20, vault.AllClasses())
			if err != nil {
				m.err = err.Error()
				break
			}
			m.inputs[inputPassword].SetValue(password)
			m.msg = "Password generated"
		case "enter":
			if !m.inputs[inputPassword].Focused() {
				m.focusNext(false)
				break
			}
			return m.saveAddEntry()
		}
	}
	return m, cmd
}

func (m *model) focusNext(backward bool) {
	n := len(m.inputs)
	for i := 0; i < n; i++ {
		if m.inputs[i].Focused() {
			m.inputs[i].Blur()
			if backward {
				m.inputs[(i-1+n)%n].Focus()
			} else {
				m.inputs[(i+1)%n].Focus()
			}
			break
		}
	}
}

func (m model) saveAddEntry() (tea.Model, tea.Cmd) {
	service := m.inputs[inputService].Value()
	if service == "" {
		m.err = "Service name cannot be empty"
		return m, nil
	}

	// Overwrite policy lives here, not in the core: first save attempt on an
	// existing service only warns, the second one goes through.
	if m.session.contents.Has(service) && !m.overwrite {
		m.overwrite = true
		m.err = fmt.Sprintf("Service %q already exists. Press enter again to overwrite.", vault.NormalizeService(service))
		return m, nil
	}

	m.session.contents.Upsert(service, vault.Entry{
		Username: m.inputs[inputUsername].Value(),
		Password: m.inputs[inputPassword].Value(),
	})
	if err := m.session.persist(); err != nil {
		m.err = err.Error()
		return m, nil
	}

	m.items = m.session.contents.List()
	m.state = stateTable
	m.err = ""
	m.msg = fmt.Sprintf("Added %q", vault.NormalizeService(service))
	return m, nil
}

func (m model) viewAddEntry() string {
	s := titleStyle.Render("Add new entry") + "\n\n"
	for _, ti := range m.inputs {
		s += fmt.Sprintf("%s: %s\n", ti.Placeholder, ti.View())
	}
	if m.msg != "" {
		s += "\n" + msgStyle.Render(m.msg)
	}
	if m.err != "" {
		s += "\n" + tuiErrStyle.Render(m.err)
	}
	s += "\n" + helpStyle.Render("tab next field · ctrl+g generate password · enter save · esc cancel")
	return s
}
