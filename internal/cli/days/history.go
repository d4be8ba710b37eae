package days

import (
	"fmt"

	"github.com/daybook-cli/daybook/internal/cli"
	"github.com/daybook-cli/daybook/internal/models"
	"github.com/daybook-cli/daybook/internal/stats"
)

type HistoryCmd struct {
	Limit int `short:"n" help:"Show at most this many days (0 = all)." default:"0"`
}

func (c *HistoryCmd) Validate() error {
	if c.Limit < 0 {
		return fmt.Errorf("limit cannot be negative")
	}
	return nil
}

func (c *HistoryCmd) Run(ctx *cli.Context) error {
	records, err := ctx.Store.ListAll()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("No days recorded yet.")
		return nil
	}
	if c.Limit > 0 && len(records) > c.Limit {
		records = records[:c.Limit]
	}

	fmt.Printf("%-12s %-10s %-10s %-10s %-7s %s\n", "DATE", "TODOS", "BALANCE", "WATER", "RATING", "HIGHLIGHT")
	for _, rec := range records {
		_, _, balance := stats.FinancialTotals([]models.DayRecord{rec})
		rating := "-"
		if rec.DayRating > 0 {
			rating = fmt.Sprintf("%d/5", rec.DayRating)
		}
		highlight := rec.Highlight
		if len(highlight) > 40 {
			highlight = highlight[:37] + "..."
		}
		fmt.Printf("%-12s %d/%-8d %-10.2f %-10.2f %-7s %s\n",
			rec.Date, rec.CompletedTodos(), len(rec.Todos), balance, rec.WaterIntake, rating, highlight)
	}
	return nil
}
