package tui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/daybook-cli/daybook/internal/constants"
	"github.com/daybook-cli/daybook/internal/models"
	"github.com/daybook-cli/daybook/internal/stats"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
		m.help.Width = size.Width
	}

	switch m.state {
	case constants.StateAddTodo, constants.StateAddMoney, constants.StateEditHighlight:
		return m.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEsc {
		m.state = m.previousState
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.applyForm()
	case huh.StateAborted:
		m.state = m.previousState
	}
	return m, cmd
}

func (m *Model) applyForm() {
	var err error
	switch m.state {
	case constants.StateAddTodo:
		_, err = m.store.AddTodo(m.todoForm.Text)
	case constants.StateAddMoney:
		amount, _ := strconv.ParseFloat(strings.TrimSpace(m.moneyForm.Amount), 64)
		entryType, typeErr := models.ParseEntryType(m.moneyForm.Type)
		if typeErr != nil {
			entryType = models.EntryExpense
		}
		_, err = m.store.AddMoneyEntry(amount, m.moneyForm.Description, entryType, m.moneyForm.Category)
	case constants.StateEditHighlight:
		err = m.store.UpdateHighlight(strings.TrimSpace(m.highlightForm.Text))
	}

	if err != nil {
		m.formError = err.Error()
	} else {
		m.formError = ""
		m.refresh()
	}
	m.state = m.previousState
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "tab":
		m.state = nextTab(m.state)
		return m, nil
	case "shift+tab":
		m.state = prevTab(m.state)
		return m, nil
	case "?":
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch m.state {
	case constants.StateToday:
		return m.handleTodayKey(msg)
	case constants.StateHistory:
		return m.handleHistoryKey(msg)
	case constants.StateStats:
		return m.handleStatsKey(msg)
	}
	return m, nil
}

func (m Model) handleTodayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.todoCursor > 0 {
			m.todoCursor--
		}
	case "down", "j":
		if m.todoCursor < len(m.record.Todos)-1 {
			m.todoCursor++
		}
	case " ", "enter":
		if m.todoCursor < len(m.record.Todos) {
			if err := m.store.ToggleTodo(m.record.Todos[m.todoCursor].ID); err == nil {
				m.refresh()
			}
		}
	case "x":
		if m.todoCursor < len(m.record.Todos) {
			if err := m.store.RemoveTodo(m.record.Todos[m.todoCursor].ID); err == nil {
				m.refresh()
			}
		}
	case "a":
		m.previousState = m.state
		m.state = constants.StateAddTodo
		m.todoForm = &TodoFormModel{}
		m.form = newTodoForm(m.todoForm)
		return m, m.form.Init()
	case "m":
		m.previousState = m.state
		m.state = constants.StateAddMoney
		m.moneyForm = &MoneyFormModel{Type: string(models.EntryExpense), Category: models.DefaultCategory}
		m.form = newMoneyForm(m.moneyForm)
		return m, m.form.Init()
	case "e":
		m.previousState = m.state
		m.state = constants.StateEditHighlight
		m.highlightForm = &HighlightFormModel{Text: m.record.Highlight}
		m.form = newHighlightForm(m.highlightForm)
		return m, m.form.Init()
	case "+":
		if _, err := m.store.AdjustWater(constants.WaterStep); err == nil {
			m.refresh()
		}
	case "-":
		if _, err := m.store.AdjustWater(-constants.WaterStep); err == nil {
			m.refresh()
		}
	case "0", "1", "2", "3", "4", "5":
		rating, _ := strconv.Atoi(msg.String())
		if err := m.store.UpdateDayRating(rating); err == nil {
			m.refresh()
		}
	}
	return m, nil
}

func (m Model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.historyCursor > 0 {
			m.historyCursor--
		}
	case "down", "j":
		if m.historyCursor < len(m.history)-1 {
			m.historyCursor++
		}
	}
	return m, nil
}

func (m Model) handleStatsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "p" {
		switch m.window {
		case stats.WindowDaily:
			m.window = stats.WindowWeekly
		case stats.WindowWeekly:
			m.window = stats.WindowMonthly
		default:
			m.window = stats.WindowDaily
		}
	}
	return m, nil
}

func nextTab(state constants.SessionState) constants.SessionState {
	switch state {
	case constants.StateToday:
		return constants.StateHistory
	case constants.StateHistory:
		return constants.StateStats
	default:
		return constants.StateToday
	}
}

func prevTab(state constants.SessionState) constants.SessionState {
	switch state {
	case constants.StateToday:
		return constants.StateStats
	case constants.StateStats:
		return constants.StateHistory
	default:
		return constants.StateToday
	}
}
