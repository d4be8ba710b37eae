package money

import (
	"fmt"
	"strings"

	"github.com/daybook-cli/daybook/internal/cli"
	"github.com/daybook-cli/daybook/internal/models"
	"github.com/daybook-cli/daybook/internal/stats"
)

type MoneyAddCmd struct {
	Amount      float64  `arg:"" help:"Amount (always positive; use --type for direction)."`
	Description []string `arg:"" help:"What the money was for."`
	Type        string   `short:"t" help:"Entry type (expense|income)." default:"expense"`
	Category    string   `short:"c" help:"Category label." default:"Food"`
	Date        string   `short:"d" help:"Day to record on (YYYY-MM-DD, default today)."`
}

func (c *MoneyAddCmd) Validate() error {
	if c.Amount <= 0 {
		return fmt.Errorf("amount must be positive")
	}
	if strings.TrimSpace(strings.Join(c.Description, " ")) == "" {
		return fmt.Errorf("description cannot be empty")
	}
	if _, err := models.ParseEntryType(c.Type); err != nil {
		return err
	}
	return nil
}

func (c *MoneyAddCmd) Run(ctx *cli.Context) error {
	if _, err := ctx.LoadDay(c.Date); err != nil {
		return err
	}
	entryType, err := models.ParseEntryType(c.Type)
	if err != nil {
		return err
	}
	entry, err := ctx.Store.AddMoneyEntry(c.Amount, strings.Join(c.Description, " "), entryType, c.Category)
	if err != nil {
		return err
	}
	fmt.Printf("Recorded %s of %.2f (%s, id %s)\n", entry.Type, entry.Amount, entry.Category, entry.ID)
	return nil
}

type MoneyListCmd struct {
	Date string `short:"d" help:"Day to list (YYYY-MM-DD, default today)."`
}

func (c *MoneyListCmd) Run(ctx *cli.Context) error {
	rec, err := ctx.LoadDay(c.Date)
	if err != nil {
		return err
	}
	if len(rec.MoneyEntries) == 0 {
		fmt.Printf("No money entries for %s.\n", rec.Date)
		return nil
	}
	for _, entry := range rec.MoneyEntries {
		sign := "-"
		if entry.Type == models.EntryIncome {
			sign = "+"
		}
		fmt.Printf("%s%-10.2f %-14s %-30s id=%s\n", sign, entry.Amount, entry.Category, entry.Description, entry.ID)
	}
	income, expense, balance := stats.FinancialTotals([]models.DayRecord{rec})
	fmt.Printf("\nEarned %.2f, spent %.2f, balance %.2f\n", income, expense, balance)
	return nil
}

type MoneyDeleteCmd struct {
	ID   string `arg:"" help:"Money entry id."`
	Date string `short:"d" help:"Day the entry belongs to (YYYY-MM-DD, default today)."`
}

func (c *MoneyDeleteCmd) Run(ctx *cli.Context) error {
	if _, err := ctx.LoadDay(c.Date); err != nil {
		return err
	}
	if err := ctx.Store.RemoveMoneyEntry(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted money entry %s.\n", c.ID)
	return nil
}
