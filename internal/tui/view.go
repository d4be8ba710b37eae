package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/daybook-cli/daybook/internal/constants"
	"github.com/daybook-cli/daybook/internal/models"
	"github.com/daybook-cli/daybook/internal/stats"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateToday:
		content = m.viewToday()
	case constants.StateHistory:
		content = m.viewHistory()
	case constants.StateStats:
		content = m.viewStats()
	case constants.StateAddTodo, constants.StateAddMoney, constants.StateEditHighlight:
		content = m.form.View()
	}

	var banner string
	if m.formError != "" {
		banner = dangerStyle.Render("Error: " + m.formError)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		banner,
		content,
		m.help.View(m.keys),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	tabTitles := []string{"Today", "History", "Stats"}
	for i, title := range tabTitles {
		if m.state == constants.SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewToday() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.record.Date) + "\n\n")

	b.WriteString(titleStyle.Render("Todos") + "\n")
	if len(m.record.Todos) == 0 {
		b.WriteString(mutedStyle.Render("  nothing yet, press a to add") + "\n")
	}
	for i, todo := range m.record.Todos {
		cursor := "  "
		if i == m.todoCursor {
			cursor = selectedStyle.Render("> ")
		}
		mark := "[ ] "
		line := todo.Text
		if todo.Completed {
			mark = "[x] "
			line = doneStyle.Render(line)
		}
		b.WriteString(cursor + mark + line + "\n")
	}

	b.WriteString("\n" + titleStyle.Render("Water") + "\n")
	b.WriteString(fmt.Sprintf("  %s %.2f / %.2f L\n", waterGauge(m.record), m.record.WaterIntake, m.record.WaterGoal))

	income, expense, balance := stats.FinancialTotals([]models.DayRecord{m.record})
	b.WriteString("\n" + titleStyle.Render("Money") + "\n")
	b.WriteString("  " + incomeStyle.Render(fmt.Sprintf("+%.2f", income)) +
		"  " + expenseStyle.Render(fmt.Sprintf("-%.2f", expense)) +
		fmt.Sprintf("  = %.2f\n", balance))

	b.WriteString("\n" + titleStyle.Render("Day") + "\n")
	if m.record.DayRating > 0 {
		b.WriteString("  " + strings.Repeat("★", m.record.DayRating) + strings.Repeat("☆", constants.MaxDayRating-m.record.DayRating) + "\n")
	} else {
		b.WriteString(mutedStyle.Render("  not rated, press 1-5") + "\n")
	}
	if m.record.Highlight != "" {
		b.WriteString("  " + m.record.Highlight + "\n")
	} else {
		b.WriteString(mutedStyle.Render("  no highlight, press e") + "\n")
	}

	return docStyle.Render(b.String())
}

func (m Model) viewHistory() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("History") + "\n\n")

	if len(m.history) == 0 {
		b.WriteString(mutedStyle.Render("No days recorded yet.") + "\n")
		return docStyle.Render(b.String())
	}

	for i, rec := range m.history {
		cursor := "  "
		if i == m.historyCursor {
			cursor = selectedStyle.Render("> ")
		}
		rating := mutedStyle.Render("-")
		if rec.DayRating > 0 {
			rating = fmt.Sprintf("★%d", rec.DayRating)
		}
		b.WriteString(fmt.Sprintf("%s%-12s todos %d/%-3d water %5.2f L  %s\n",
			cursor, rec.Date, rec.CompletedTodos(), len(rec.Todos), rec.WaterIntake, rating))
	}

	if m.historyCursor < len(m.history) {
		rec := m.history[m.historyCursor]
		if rec.Highlight != "" {
			b.WriteString("\n" + mutedStyle.Render("Highlight: "+rec.Highlight) + "\n")
		}
	}
	return docStyle.Render(b.String())
}

func (m Model) viewStats() string {
	var b strings.Builder
	referenceDate := m.store.TodayKey()
	filtered := stats.FilterByWindow(m.history, m.window, referenceDate)

	b.WriteString(titleStyle.Render(fmt.Sprintf("Stats: %s", m.window)) + mutedStyle.Render("  (p to change period)") + "\n\n")

	completed, total, percentage := stats.TaskCompletionRate(filtered)
	b.WriteString(fmt.Sprintf("  Task completion   %.1f%%  (%d of %d)\n", percentage, completed, total))

	income, expense, balance := stats.FinancialTotals(filtered)
	b.WriteString("  Finances          " + incomeStyle.Render(fmt.Sprintf("+%.2f", income)) +
		"  " + expenseStyle.Render(fmt.Sprintf("-%.2f", expense)) +
		fmt.Sprintf("  = %.2f\n", balance))

	b.WriteString(fmt.Sprintf("  Hydration         %.1f L / day\n", stats.AverageWaterIntake(filtered)))

	if rating := stats.AverageDayRating(filtered); rating > 0 {
		b.WriteString(fmt.Sprintf("  Day rating        %.1f / 5\n", rating))
	} else {
		b.WriteString("  Day rating        " + mutedStyle.Render("no rated days") + "\n")
	}

	b.WriteString("\n" + titleStyle.Render("Last 7 days") + "\n")
	for _, day := range stats.Last7Days(m.history, referenceDate) {
		date, _ := time.Parse(constants.DateFormat, day.Date)
		label := date.Format("Mon 02")
		if day.Record == nil {
			b.WriteString("  " + label + "  " + mutedStyle.Render("no data") + "\n")
			continue
		}
		rec := day.Record
		water := " "
		if rec.WaterGoalMet() {
			water = "💧"
		}
		rating := ""
		if rec.DayRating > 0 {
			rating = fmt.Sprintf(" ★%d", rec.DayRating)
		}
		b.WriteString(fmt.Sprintf("  %s  %d/%d todos %s%s\n", label, rec.CompletedTodos(), len(rec.Todos), water, rating))
	}

	return docStyle.Render(b.String())
}

func waterGauge(rec models.DayRecord) string {
	cups := int(rec.WaterGoal / constants.WaterStep)
	if cups > 40 {
		cups = 40
	}
	filled := int(rec.WaterIntake / constants.WaterStep)
	if filled > cups {
		filled = cups
	}
	return selectedStyle.Render(strings.Repeat("▰", filled)) + mutedStyle.Render(strings.Repeat("▱", cups-filled))
}
