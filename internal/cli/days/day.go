package days

import (
	"fmt"
	"strings"

	"github.com/daybook-cli/daybook/internal/cli"
	"github.com/daybook-cli/daybook/internal/models"
	"github.com/daybook-cli/daybook/internal/stats"
)

type DayCmd struct {
	Date string `arg:"" optional:"" help:"Day to show (YYYY-MM-DD, default today)."`
}

func (c *DayCmd) Run(ctx *cli.Context) error {
	rec, err := ctx.LoadDay(c.Date)
	if err != nil {
		return err
	}

	fmt.Printf("Day: %s\n", rec.Date)

	fmt.Printf("\nTodos (%d/%d done):\n", rec.CompletedTodos(), len(rec.Todos))
	if len(rec.Todos) == 0 {
		fmt.Println("  (none)")
	}
	for _, todo := range rec.Todos {
		mark := " "
		if todo.Completed {
			mark = "x"
		}
		fmt.Printf("  [%s] %s  (id %s)\n", mark, todo.Text, todo.ID)
	}

	planned := plannedSlots(rec)
	fmt.Printf("\nSchedule (%d hours planned):\n", len(planned))
	if len(planned) == 0 {
		fmt.Println("  (empty)")
	}
	for _, slot := range planned {
		fmt.Printf("  %02d:00  %s\n", slot.Hour, slot.Activity)
	}

	income, expense, balance := stats.FinancialTotals([]models.DayRecord{rec})
	fmt.Printf("\nMoney: %d entries, earned %.2f, spent %.2f, balance %.2f\n",
		len(rec.MoneyEntries), income, expense, balance)

	fmt.Printf("Water: %.2f / %.2f L\n", rec.WaterIntake, rec.WaterGoal)
	if rec.ExerciseHours > 0 {
		fmt.Printf("Exercise: %.1f h\n", rec.ExerciseHours)
	}

	if meals := formatMeals(rec.MealPlan); meals != "" {
		fmt.Printf("Meals: %s\n", meals)
	}

	if rec.DayRating > 0 {
		fmt.Printf("Rating: %s\n", strings.Repeat("★", rec.DayRating))
	}
	if rec.Highlight != "" {
		fmt.Printf("Highlight: %s\n", rec.Highlight)
	}
	return nil
}

func plannedSlots(rec models.DayRecord) []models.TimeSlot {
	var planned []models.TimeSlot
	for _, slot := range rec.TimeSlots {
		if slot.Activity != "" {
			planned = append(planned, slot)
		}
	}
	return planned
}

func formatMeals(plan models.MealPlan) string {
	var parts []string
	if plan.Breakfast != "" {
		parts = append(parts, "breakfast: "+plan.Breakfast)
	}
	if plan.Lunch != "" {
		parts = append(parts, "lunch: "+plan.Lunch)
	}
	if plan.Dinner != "" {
		parts = append(parts, "dinner: "+plan.Dinner)
	}
	if plan.Snacks != "" {
		parts = append(parts, "snacks: "+plan.Snacks)
	}
	return strings.Join(parts, ", ")
}
