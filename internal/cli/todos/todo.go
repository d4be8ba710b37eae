package todos

import (
	"fmt"
	"strings"

	"github.com/daybook-cli/daybook/internal/cli"
)

type TodoAddCmd struct {
	Text []string `arg:"" help:"Todo text."`
	Date string   `short:"d" help:"Day to add to (YYYY-MM-DD, default today)."`
}

func (c *TodoAddCmd) Validate() error {
	if strings.TrimSpace(strings.Join(c.Text, " ")) == "" {
		return fmt.Errorf("todo text cannot be empty")
	}
	return nil
}

func (c *TodoAddCmd) Run(ctx *cli.Context) error {
	if _, err := ctx.LoadDay(c.Date); err != nil {
		return err
	}
	todo, err := ctx.Store.AddTodo(strings.Join(c.Text, " "))
	if err != nil {
		return err
	}
	fmt.Printf("Added todo: %s (id %s)\n", todo.Text, todo.ID)
	return nil
}

type TodoListCmd struct {
	Date string `short:"d" help:"Day to list (YYYY-MM-DD, default today)."`
}

func (c *TodoListCmd) Run(ctx *cli.Context) error {
	rec, err := ctx.LoadDay(c.Date)
	if err != nil {
		return err
	}
	if len(rec.Todos) == 0 {
		fmt.Printf("No todos for %s.\n", rec.Date)
		return nil
	}
	for _, todo := range rec.Todos {
		mark := " "
		if todo.Completed {
			mark = "x"
		}
		fmt.Printf("[%s] %-40s id=%s priority=%d\n", mark, todo.Text, todo.ID, todo.Priority)
	}
	return nil
}

type TodoToggleCmd struct {
	ID   string `arg:"" help:"Todo id."`
	Date string `short:"d" help:"Day the todo belongs to (YYYY-MM-DD, default today)."`
}

func (c *TodoToggleCmd) Run(ctx *cli.Context) error {
	if _, err := ctx.LoadDay(c.Date); err != nil {
		return err
	}
	if err := ctx.Store.ToggleTodo(c.ID); err != nil {
		return err
	}
	cur := ctx.Store.Current()
	for _, todo := range cur.Todos {
		if todo.ID == c.ID {
			state := "pending"
			if todo.Completed {
				state = "done"
			}
			fmt.Printf("Todo %q is now %s.\n", todo.Text, state)
			break
		}
	}
	return nil
}

type TodoDeleteCmd struct {
	ID   string `arg:"" help:"Todo id."`
	Date string `short:"d" help:"Day the todo belongs to (YYYY-MM-DD, default today)."`
}

func (c *TodoDeleteCmd) Run(ctx *cli.Context) error {
	if _, err := ctx.LoadDay(c.Date); err != nil {
		return err
	}
	if err := ctx.Store.RemoveTodo(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted todo %s.\n", c.ID)
	return nil
}
