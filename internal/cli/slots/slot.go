package slots

import (
	"fmt"
	"strings"

	"github.com/daybook-cli/daybook/internal/cli"
	"github.com/daybook-cli/daybook/internal/constants"
)

type SlotSetCmd struct {
	Hour     int      `arg:"" help:"Hour of day (0-23)."`
	Activity []string `arg:"" help:"Activity for that hour."`
	Date     string   `short:"d" help:"Day to edit (YYYY-MM-DD, default today)."`
}

func (c *SlotSetCmd) Validate() error {
	if c.Hour < 0 || c.Hour >= constants.HoursPerDay {
		return fmt.Errorf("hour must be between 0 and 23")
	}
	if strings.TrimSpace(strings.Join(c.Activity, " ")) == "" {
		return fmt.Errorf("activity cannot be empty; use 'slot clear' to unset an hour")
	}
	return nil
}

func (c *SlotSetCmd) Run(ctx *cli.Context) error {
	if _, err := ctx.LoadDay(c.Date); err != nil {
		return err
	}
	activity := strings.Join(c.Activity, " ")
	if err := ctx.Store.SetSlotActivity(c.Hour, activity); err != nil {
		return err
	}
	fmt.Printf("Set %02d:00 to %q.\n", c.Hour, activity)
	return nil
}

type SlotClearCmd struct {
	Hour int    `arg:"" help:"Hour of day (0-23)."`
	Date string `short:"d" help:"Day to edit (YYYY-MM-DD, default today)."`
}

func (c *SlotClearCmd) Validate() error {
	if c.Hour < 0 || c.Hour >= constants.HoursPerDay {
		return fmt.Errorf("hour must be between 0 and 23")
	}
	return nil
}

func (c *SlotClearCmd) Run(ctx *cli.Context) error {
	if _, err := ctx.LoadDay(c.Date); err != nil {
		return err
	}
	if err := ctx.Store.SetSlotActivity(c.Hour, ""); err != nil {
		return err
	}
	fmt.Printf("Cleared %02d:00.\n", c.Hour)
	return nil
}

type SlotListCmd struct {
	Date string `short:"d" help:"Day to list (YYYY-MM-DD, default today)."`
	All  bool   `short:"a" help:"Include empty hours."`
}

func (c *SlotListCmd) Run(ctx *cli.Context) error {
	rec, err := ctx.LoadDay(c.Date)
	if err != nil {
		return err
	}
	shown := 0
	for _, slot := range rec.TimeSlots {
		if slot.Activity == "" && !c.All {
			continue
		}
		fmt.Printf("%02d:00  %s\n", slot.Hour, slot.Activity)
		shown++
	}
	if shown == 0 {
		fmt.Printf("No hours planned for %s.\n", rec.Date)
	}
	return nil
}
