package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/robfig/cron/v3"

	"github.com/goalpost/goalpost/internal/cli"
	"github.com/goalpost/goalpost/internal/logger"
	"github.com/goalpost/goalpost/internal/timeutil"
	"github.com/goalpost/goalpost/internal/tui"
)

type WatchCmd struct{}

// Run launches the live dashboard. A one-second tick re-derives schedule
// classifications; a cron job fires the daily reset at local midnight so a
// dashboard left open overnight rolls into the new day cleanly.
func (c *WatchCmd) Run(ctx *cli.Context) error {
	loc, err := timeutil.LoadLocation(ctx.Cfg.Timezone)
	if err != nil {
		return fmt.Errorf("invalid timezone %q: %w", ctx.Cfg.Timezone, err)
	}

	model := tui.NewModel(ctx.Svc, ctx.UserID(), ctx.Cfg.Timezone)
	p := tea.NewProgram(model, tea.WithAltScreen())

	scheduler := cron.New(cron.WithLocation(loc))
	_, err = scheduler.AddFunc("0 0 * * *", func() {
		if _, err := ctx.Svc.DailyReset(ctx.UserID()); err != nil {
			logger.Error("Midnight reset failed", "error", err)
		}
		p.Send(tui.ReloadMsg{})
	})
	if err != nil {
		return fmt.Errorf("failed to schedule midnight reset: %w", err)
	}

	scheduler.Start()
	defer func() {
		stopCtx := scheduler.Stop()
		<-stopCtx.Done()
	}()

	_, err = p.Run()
	return err
}
