package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/daybook-cli/daybook/internal/constants"
	"github.com/daybook-cli/daybook/internal/models"
	"github.com/daybook-cli/daybook/internal/planner"
	"github.com/daybook-cli/daybook/internal/stats"
)

type TodoFormModel struct {
	Text string
}

type MoneyFormModel struct {
	Amount      string
	Description string
	Type        string
	Category    string
}

type HighlightFormModel struct {
	Text string
}

type Model struct {
	store         *planner.Store
	state         constants.SessionState
	previousState constants.SessionState
	keys          KeyMap
	help          help.Model
	record        models.DayRecord
	history       []models.DayRecord
	window        stats.Window
	todoCursor    int
	historyCursor int
	form          *huh.Form
	todoForm      *TodoFormModel
	moneyForm     *MoneyFormModel
	highlightForm *HighlightFormModel
	formError     string
	quitting      bool
	width         int
	height        int
}

func NewModel(store *planner.Store) Model {
	record := store.LoadToday()
	history, err := store.ListAll()
	if err != nil {
		history = []models.DayRecord{}
	}
	return Model{
		store:   store,
		state:   constants.StateToday,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		record:  record,
		history: history,
		window:  stats.WindowWeekly,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) refresh() {
	if cur := m.store.Current(); cur != nil {
		m.record = *cur
	}
	if history, err := m.store.ListAll(); err == nil {
		m.history = history
	}
	if m.todoCursor >= len(m.record.Todos) {
		m.todoCursor = len(m.record.Todos) - 1
	}
	if m.todoCursor < 0 {
		m.todoCursor = 0
	}
}

func newTodoForm(fm *TodoFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Todo").
				Value(&fm.Text).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("todo text cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

func newMoneyForm(fm *MoneyFormModel) *huh.Form {
	categoryOptions := make([]huh.Option[string], len(models.Categories))
	for i, c := range models.Categories {
		categoryOptions[i] = huh.NewOption(c, c)
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Type").
				Options(
					huh.NewOption("Expense", string(models.EntryExpense)),
					huh.NewOption("Income", string(models.EntryIncome)),
				).
				Value(&fm.Type),
			huh.NewInput().
				Title("Amount").
				Value(&fm.Amount).
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
					if err != nil {
						return fmt.Errorf("amount must be a number")
					}
					if v <= 0 {
						return fmt.Errorf("amount must be positive")
					}
					return nil
				}),
			huh.NewInput().
				Title("Description").
				Value(&fm.Description).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("description cannot be empty")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOptions...).
				Value(&fm.Category),
		),
	).WithTheme(huh.ThemeDracula())
}

func newHighlightForm(fm *HighlightFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Highlight of the day").
				Value(&fm.Text),
		),
	).WithTheme(huh.ThemeDracula())
}
