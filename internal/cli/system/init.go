package system

import (
	"fmt"

	"github.com/daybook-cli/daybook/internal/cli"
)

type InitCmd struct{}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if err := ctx.Backend.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized daybook storage at %s\n", ctx.Backend.Path())
	return nil
}
