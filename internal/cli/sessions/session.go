package sessions

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/goalpost/goalpost/internal/cli"
	"github.com/goalpost/goalpost/internal/models"
	"github.com/goalpost/goalpost/internal/timeutil"
)

type SessionAddCmd struct {
	Minutes int    `arg:"" help:"Session length in minutes, ending now."`
	Note    string `short:"n" help:"What the session was spent on."`
	Goal    string `short:"g" help:"Goal ID, defaults to the active goal."`
}

func (c *SessionAddCmd) Validate() error {
	if c.Minutes <= 0 {
		return fmt.Errorf("session length must be greater than zero")
	}
	return nil
}

func (c *SessionAddCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}

	endedAt := time.Now().UTC()
	startedAt := endedAt.Add(-time.Duration(c.Minutes) * time.Minute)

	sess, err := ctx.Svc.AddSession(ctx.UserID(), goal.ID, startedAt, endedAt, c.Note)
	if err != nil {
		return err
	}
	fmt.Printf("Logged %d minute session (ID: %s)\n", sess.DurationMin, sess.ID)
	return nil
}

type SessionStartCmd struct {
	Note string `short:"n" help:"What the session is for."`
	Goal string `short:"g" help:"Goal ID, defaults to the active goal."`
}

// Run blocks while the stopwatch runs and records the session on Enter.
func (c *SessionStartCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}

	startedAt := time.Now().UTC()
	fmt.Println("Stopwatch running. Press Enter to stop and record.")
	fmt.Scanln()
	endedAt := time.Now().UTC()

	sess, err := ctx.Svc.AddSession(ctx.UserID(), goal.ID, startedAt, endedAt, c.Note)
	if err != nil {
		return err
	}
	fmt.Printf("Logged %d minute session (ID: %s)\n", sess.DurationMin, sess.ID)
	return nil
}

type SessionRmCmd struct {
	Date string `arg:"" help:"Day the session belongs to (YYYY-MM-DD)."`
	ID   string `arg:"" help:"Session ID."`
	Goal string `short:"g" help:"Goal ID, defaults to the active goal."`
}

func (c *SessionRmCmd) Validate() error {
	if !timeutil.ValidateDateFormat(c.Date) {
		return fmt.Errorf("invalid date (expected YYYY-MM-DD): %s", c.Date)
	}
	return nil
}

func (c *SessionRmCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}
	if err := ctx.Svc.DeleteSession(ctx.UserID(), goal.ID, c.Date, c.ID); err != nil {
		return err
	}
	fmt.Printf("Removed session %s from %s\n", c.ID, c.Date)
	return nil
}

type ProgressLogCmd struct {
	Satisfaction string   `short:"s" help:"How the day went (great|good|okay|poor)."`
	Note         []string `arg:"" optional:"" help:"Progress note."`
	Date         string   `help:"Day to log (YYYY-MM-DD), defaults to today."`
	Goal         string   `short:"g" help:"Goal ID, defaults to the active goal."`
}

func (c *ProgressLogCmd) Validate() error {
	if c.Date != "" && !timeutil.ValidateDateFormat(c.Date) {
		return fmt.Errorf("invalid date (expected YYYY-MM-DD): %s", c.Date)
	}
	switch models.Satisfaction(c.Satisfaction) {
	case "", models.SatisfactionGreat, models.SatisfactionGood, models.SatisfactionOkay, models.SatisfactionPoor:
		return nil
	}
	return fmt.Errorf("satisfaction must be great, good, okay, or poor")
}

func (c *ProgressLogCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}

	err = ctx.Svc.LogProgress(ctx.UserID(), goal.ID, c.Date,
		models.Satisfaction(c.Satisfaction), strings.Join(c.Note, " "))
	if err != nil {
		return err
	}
	fmt.Println("Progress logged.")
	return nil
}

type ProgressShowCmd struct {
	Days int    `short:"d" help:"How many recent days to show." default:"7"`
	Goal string `short:"g" help:"Goal ID, defaults to the active goal."`
}

func (c *ProgressShowCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}

	dates := make([]string, 0, len(goal.DailyProgress))
	for date := range goal.DailyProgress {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	if len(dates) == 0 {
		fmt.Println("No progress logged yet.")
		return nil
	}

	shown := 0
	for _, date := range dates {
		if shown >= c.Days {
			break
		}
		day := goal.DailyProgress[date]
		sat := string(day.Satisfaction)
		if sat == "" {
			sat = "-"
		}
		fmt.Printf("%s  %-5s  %3dm effort  %s\n", date, sat, day.EffortTimeMin, day.Note)
		shown++
	}
	return nil
}
