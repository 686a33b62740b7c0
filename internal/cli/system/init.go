package system

import (
	"fmt"

	"github.com/goalpost/goalpost/internal/cli"
	"github.com/goalpost/goalpost/internal/models"
)

type InitCmd struct {
	User string `short:"u" help:"User identifier to track under." required:""`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	ctx.Cfg.UserID = c.User
	if err := ctx.Cfg.Save(ctx.ConfigPath); err != nil {
		return err
	}

	rec := models.NewUserRecord(c.User)
	if err := ctx.Store.SaveRecord(c.User, rec); err != nil {
		return err
	}

	fmt.Printf("Initialized goalpost storage at %s for user %s\n", ctx.Store.GetConfigPath(), c.User)
	fmt.Println("Create your first goal with 'goalpost goal new'.")
	return nil
}
