package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rxtech-lab/argo-backtest/internal/backtest/engine/engine_v1/datasource"
	"github.com/rxtech-lab/argo-backtest/internal/series"
	"github.com/rxtech-lab/argo-backtest/internal/types"
)

// Application states.
const (
	StateSecuritySelect = iota
	StateBarsDisplay
	StateDateInput
)

// Model is the main Bubble Tea model of the daily bar browser.
type Model struct {
	state        int
	source       datasource.DataSource
	precision    int
	securityList list.Model
	dateInput    textinput.Model
	barTable     table.Model
	security     types.Security
	bars         *series.Series
	loading      bool
	err          error
	width        int
	height       int
}

// NewModel creates a new Model browsing source.
func NewModel(source datasource.DataSource, precision int) Model {
	return Model{
		state:        StateSecuritySelect,
		source:       source,
		precision:    precision,
		securityList: NewSecurityList(nil),
		dateInput:    NewDateInput(),
		barTable:     NewBarTable(),
		loading:      true,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return loadSecurities(m.source)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			// the date input and the list filter take q as text
			if m.state != StateDateInput && !m.securityList.SettingFilter() {
				return m, tea.Quit
			}
		case "esc":
			if m.state != StateSecuritySelect {
				return m.handleEsc()
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.securityList.SetSize(msg.Width, msg.Height-4)
		m.barTable.SetWidth(msg.Width)
		m.barTable.SetHeight(msg.Height - 6)
		return m, nil

	case SecuritiesLoadedMsg:
		m.loading = false
		m.err = nil
		cmd := m.securityList.SetItems(securityItems(msg.Securities))
		return m, cmd

	case BarsLoadedMsg:
		m.loading = false
		m.err = nil
		m.security = msg.Security
		m.bars = msg.Bars
		m.barTable.SetRows(BarRows(msg.Bars))
		m.barTable.GotoBottom()
		m.state = StateBarsDisplay
		return m, nil

	case LoadErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil
	}

	// Delegate to state-specific update
	switch m.state {
	case StateSecuritySelect:
		return m.updateSecuritySelect(msg)
	case StateBarsDisplay:
		return m.updateBarsDisplay(msg)
	case StateDateInput:
		return m.updateDateInput(msg)
	}

	return m, nil
}

func (m Model) handleEsc() (tea.Model, tea.Cmd) {
	switch m.state {
	case StateDateInput:
		m.dateInput.Reset()
		m.dateInput.Blur()
		m.err = nil
		m.state = StateBarsDisplay
	case StateBarsDisplay:
		m.bars = nil
		m.security = types.Security{}
		m.barTable.SetRows(nil)
		m.err = nil
		m.state = StateSecuritySelect
	}

	return m, nil
}

func (m Model) updateSecuritySelect(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" && !m.securityList.SettingFilter() {
		if item, ok := m.securityList.SelectedItem().(securityItem); ok {
			m.loading = true
			return m, loadBars(m.source, item.security, m.precision)
		}
	}

	var cmd tea.Cmd
	m.securityList, cmd = m.securityList.Update(msg)
	return m, cmd
}

func (m Model) updateBarsDisplay(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "g" {
		m.state = StateDateInput
		m.dateInput.Focus()
		return m, textinput.Blink
	}

	var cmd tea.Cmd
	m.barTable, cmd = m.barTable.Update(msg)
	return m, cmd
}

func (m Model) updateDateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		date, err := ParseDate(m.dateInput.Value())
		if err != nil {
			m.err = err
			return m, nil
		}

		index := m.bars.StartIndex(date)
		if index >= m.bars.Len() {
			m.err = fmt.Errorf("no bar on or after %s", date)
			return m, nil
		}

		m.barTable.SetCursor(index)
		m.dateInput.Reset()
		m.dateInput.Blur()
		m.err = nil
		m.state = StateBarsDisplay
		return m, nil
	}

	var cmd tea.Cmd
	m.dateInput, cmd = m.dateInput.Update(msg)
	return m, cmd
}

func loadSecurities(source datasource.DataSource) tea.Cmd {
	return func() tea.Msg {
		securities, err := source.ListSecurities(context.Background())
		if err != nil {
			return LoadErrorMsg{Err: err}
		}

		return SecuritiesLoadedMsg{Securities: securities}
	}
}

func loadBars(source datasource.DataSource, security types.Security, precision int) tea.Cmd {
	return func() tea.Msg {
		data, err := source.LoadDailyBars(context.Background(), security.Code)
		if err != nil {
			return LoadErrorMsg{Err: err}
		}

		return BarsLoadedMsg{Security: security, Bars: series.New(data.Data, precision)}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	var s strings.Builder

	switch m.state {
	case StateSecuritySelect:
		s.WriteString(TitleStyle.Render("Argo Backtest - Daily Bars"))
		s.WriteString("\n\n")

		if m.loading {
			s.WriteString("Loading...\n")
		} else {
			s.WriteString(m.securityList.View())
		}

		s.WriteString("\n")
		s.WriteString(HelpStyle.Render("Press Enter to select, / to filter, q to quit"))

	case StateBarsDisplay, StateDateInput:
		s.WriteString(TitleStyle.Render(fmt.Sprintf("%s %s (%s)", m.security.Code, m.security.Name, m.security.Exchange)))
		s.WriteString("\n\n")

		if m.bars == nil || m.bars.Len() == 0 {
			s.WriteString("No daily bars\n")
		} else {
			s.WriteString(m.barTable.View())
		}

		s.WriteString("\n")

		if m.state == StateDateInput {
			s.WriteString("Jump to date (YYYYMMDD):\n")
			s.WriteString(m.dateInput.View())
			s.WriteString("\n")
			s.WriteString(HelpStyle.Render("Press Enter to jump, Esc to cancel"))
		} else {
			s.WriteString(HelpStyle.Render("g: go to date | Esc: back | q: quit"))
		}
	}

	if m.err != nil {
		s.WriteString("\n\n")
		s.WriteString(ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	return s.String()
}
