package trackers

import (
	"fmt"
	"strings"

	"github.com/daybook-cli/daybook/internal/cli"
	"github.com/daybook-cli/daybook/internal/constants"
)

type WaterAddCmd struct {
	Litres float64 `arg:"" optional:"" help:"Litres to add." default:"0.25"`
	Date   string  `short:"d" help:"Day to edit (YYYY-MM-DD, default today)."`
}

func (c *WaterAddCmd) Validate() error {
	if c.Litres <= 0 {
		return fmt.Errorf("litres must be positive")
	}
	return nil
}

func (c *WaterAddCmd) Run(ctx *cli.Context) error {
	if _, err := ctx.LoadDay(c.Date); err != nil {
		return err
	}
	intake, err := ctx.Store.AdjustWater(c.Litres)
	if err != nil {
		return err
	}
	cur := ctx.Store.Current()
	fmt.Printf("Water intake: %.2f / %.2f L\n", intake, cur.WaterGoal)
	return nil
}

type WaterSubCmd struct {
	Litres float64 `arg:"" optional:"" help:"Litres to remove." default:"0.25"`
	Date   string  `short:"d" help:"Day to edit (YYYY-MM-DD, default today)."`
}

func (c *WaterSubCmd) Validate() error {
	if c.Litres <= 0 {
		return fmt.Errorf("litres must be positive")
	}
	return nil
}

func (c *WaterSubCmd) Run(ctx *cli.Context) error {
	if _, err := ctx.LoadDay(c.Date); err != nil {
		return err
	}
	intake, err := ctx.Store.AdjustWater(-c.Litres)
	if err != nil {
		return err
	}
	cur := ctx.Store.Current()
	fmt.Printf("Water intake: %.2f / %.2f L\n", intake, cur.WaterGoal)
	return nil
}

type WaterGoalCmd struct {
	Litres float64 `arg:"" help:"Daily goal in litres."`
	Date   string  `short:"d" help:"Day to edit (YYYY-MM-DD, default today)."`
}

func (c *WaterGoalCmd) Validate() error {
	if c.Litres <= 0 {
		return fmt.Errorf("goal must be positive")
	}
	return nil
}

func (c *WaterGoalCmd) Run(ctx *cli.Context) error {
	if _, err := ctx.LoadDay(c.Date); err != nil {
		return err
	}
	if err := ctx.Store.SetWaterGoal(c.Litres); err != nil {
		return err
	}
	fmt.Printf("Water goal set to %.2f L.\n", c.Litres)
	return nil
}

type MealSetCmd struct {
	Breakfast string `help:"Breakfast plan."`
	Lunch     string `help:"Lunch plan."`
	Dinner    string `help:"Dinner plan."`
	Snacks    string `help:"Snacks."`
	Date      string `short:"d" help:"Day to edit (YYYY-MM-DD, default today)."`
}

func (c *MealSetCmd) Run(ctx *cli.Context) error {
	rec, err := ctx.LoadDay(c.Date)
	if err != nil {
		return err
	}
	plan := rec.MealPlan
	updated := false
	if c.Breakfast != "" {
		plan.Breakfast = c.Breakfast
		updated = true
	}
	if c.Lunch != "" {
		plan.Lunch = c.Lunch
		updated = true
	}
	if c.Dinner != "" {
		plan.Dinner = c.Dinner
		updated = true
	}
	if c.Snacks != "" {
		plan.Snacks = c.Snacks
		updated = true
	}
	if !updated {
		fmt.Println("No meals specified. Use --breakfast, --lunch, --dinner or --snacks.")
		return nil
	}
	if err := ctx.Store.UpdateMealPlan(plan); err != nil {
		return err
	}
	fmt.Println("Meal plan updated.")
	return nil
}

type ExerciseCmd struct {
	Hours float64 `arg:"" help:"Hours exercised."`
	Date  string  `short:"d" help:"Day to edit (YYYY-MM-DD, default today)."`
}

func (c *ExerciseCmd) Validate() error {
	if c.Hours < 0 {
		return fmt.Errorf("hours cannot be negative")
	}
	return nil
}

func (c *ExerciseCmd) Run(ctx *cli.Context) error {
	if _, err := ctx.LoadDay(c.Date); err != nil {
		return err
	}
	if err := ctx.Store.UpdateExerciseHours(c.Hours); err != nil {
		return err
	}
	fmt.Printf("Exercise set to %.1f h.\n", c.Hours)
	return nil
}

type RateCmd struct {
	Rating int    `arg:"" help:"Rating for the day (1-5, 0 clears)."`
	Date   string `short:"d" help:"Day to rate (YYYY-MM-DD, default today)."`
}

func (c *RateCmd) Validate() error {
	if c.Rating < 0 || c.Rating > constants.MaxDayRating {
		return fmt.Errorf("rating must be between 0 and %d", constants.MaxDayRating)
	}
	return nil
}

func (c *RateCmd) Run(ctx *cli.Context) error {
	if _, err := ctx.LoadDay(c.Date); err != nil {
		return err
	}
	if err := ctx.Store.UpdateDayRating(c.Rating); err != nil {
		return err
	}
	if c.Rating == 0 {
		fmt.Println("Rating cleared.")
	} else {
		fmt.Printf("Rated the day %s.\n", strings.Repeat("★", c.Rating))
	}
	return nil
}

type HighlightCmd struct {
	Text []string `arg:"" optional:"" help:"Highlight text (empty clears)."`
	Date string   `short:"d" help:"Day to edit (YYYY-MM-DD, default today)."`
}

func (c *HighlightCmd) Run(ctx *cli.Context) error {
	if _, err := ctx.LoadDay(c.Date); err != nil {
		return err
	}
	text := strings.TrimSpace(strings.Join(c.Text, " "))
	if err := ctx.Store.UpdateHighlight(text); err != nil {
		return err
	}
	if text == "" {
		fmt.Println("Highlight cleared.")
	} else {
		fmt.Printf("Highlight recorded: %s\n", text)
	}
	return nil
}
