package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/goalpost/goalpost/internal/apperr"
	"github.com/goalpost/goalpost/internal/config"
	"github.com/goalpost/goalpost/internal/constants"
	"github.com/goalpost/goalpost/internal/models"
	"github.com/goalpost/goalpost/internal/service"
	"github.com/goalpost/goalpost/internal/storage"
)

// Context is passed to every command's Run method.
type Context struct {
	Cfg        config.Config
	ConfigPath string
	Store      storage.Provider
	Svc        *service.Service
}

// UserID returns the configured user identifier.
func (c *Context) UserID() string {
	return c.Cfg.UserID
}

// ResolveGoal returns the goal with the given ID, or the single active goal
// when id is empty.
func (c *Context) ResolveGoal(id string) (models.Goal, error) {
	if id != "" {
		return c.Svc.Goal(c.UserID(), id)
	}

	rec, err := c.Svc.Record(c.UserID())
	if err != nil {
		return models.Goal{}, err
	}
	goal, ok := rec.ActiveGoal()
	if !ok {
		return models.Goal{}, apperr.NotFound("no active goal; create one with 'goalpost goal new' or pass --goal")
	}
	return goal, nil
}

// ConfirmDestructive gates an irreversible operation behind an explicit
// confirmation that cannot be accepted before a minimum delay has passed.
// The countdown runs first so a reflexive keypress cannot land on the
// confirm. assumeYes skips the interactive prompt but never the delay.
func ConfirmDestructive(warning string, assumeYes bool) (bool, error) {
	fmt.Println(warning)
	countdown(os.Stdout, constants.ConfirmDelaySeconds, time.Second)
	fmt.Print("\r                                \r")

	if assumeYes {
		return true, nil
	}

	confirmed := false
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title("Are you sure?").
			Description("This action cannot be undone.").
			Affirmative("Yes, proceed").
			Negative("Cancel").
			Value(&confirmed),
	))
	if err := form.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}

// countdown blocks for seconds ticks, printing the time left on w.
func countdown(w io.Writer, seconds int, tick time.Duration) {
	for i := seconds; i > 0; i-- {
		fmt.Fprintf(w, "\rConfirmation available in %ds...", i)
		time.Sleep(tick)
	}
}
