package statistics

import (
	"fmt"
	"time"

	"github.com/daybook-cli/daybook/internal/cli"
	"github.com/daybook-cli/daybook/internal/constants"
	"github.com/daybook-cli/daybook/internal/stats"
)

type StatsCmd struct {
	Period string `short:"p" help:"Aggregation window (daily|weekly|monthly)." default:"weekly"`
	Date   string `short:"d" help:"Reference date (YYYY-MM-DD, default today)."`
}

func (c *StatsCmd) Validate() error {
	if _, err := stats.ParseWindow(c.Period); err != nil {
		return err
	}
	return nil
}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	window, err := stats.ParseWindow(c.Period)
	if err != nil {
		return err
	}
	referenceDate, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	records, err := ctx.Store.ListAll()
	if err != nil {
		return err
	}
	filtered := stats.FilterByWindow(records, window, referenceDate)

	fmt.Printf("Statistics (%s, as of %s, %d days):\n\n", window, referenceDate, len(filtered))

	completed, total, percentage := stats.TaskCompletionRate(filtered)
	fmt.Printf("  Task completion:  %.1f%% (%d of %d tasks)\n", percentage, completed, total)

	income, expense, balance := stats.FinancialTotals(filtered)
	fmt.Printf("  Finances:         earned %.2f, spent %.2f, balance %.2f\n", income, expense, balance)

	fmt.Printf("  Hydration:        %.1f L average per day\n", stats.AverageWaterIntake(filtered))

	if rating := stats.AverageDayRating(filtered); rating > 0 {
		fmt.Printf("  Day rating:       %.1f / 5 average\n", rating)
	} else {
		fmt.Printf("  Day rating:       no rated days\n")
	}

	fmt.Println("\nLast 7 days:")
	for _, day := range stats.Last7Days(records, referenceDate) {
		date, _ := time.Parse(constants.DateFormat, day.Date)
		label := date.Format("Mon 02")
		if day.Record == nil {
			fmt.Printf("  %s  (no data)\n", label)
			continue
		}
		rec := day.Record
		rating := ""
		if rec.DayRating > 0 {
			rating = fmt.Sprintf("  ★%d", rec.DayRating)
		}
		fmt.Printf("  %s  todos %d/%d, water %.2f/%.2f L%s\n",
			label, rec.CompletedTodos(), len(rec.Todos), rec.WaterIntake, rec.WaterGoal, rating)
	}
	return nil
}
