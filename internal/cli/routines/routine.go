package routines

import (
	"fmt"
	"strings"

	"github.com/goalpost/goalpost/internal/cli"
	"github.com/goalpost/goalpost/internal/models"
	"github.com/goalpost/goalpost/internal/schedule"
	"github.com/goalpost/goalpost/internal/service"
	"github.com/goalpost/goalpost/internal/timeutil"
)

func parseCategory(s string) (models.RoutineCategory, error) {
	cat := models.RoutineCategory(strings.ToLower(s))
	for _, c := range models.Categories() {
		if c == cat {
			return cat, nil
		}
	}
	return "", fmt.Errorf("unknown routine category %q (expected bath|exercise|meal|teeth|nap)", s)
}

func defaultIcon(cat models.RoutineCategory) models.RoutineIcon {
	switch cat {
	case models.RoutineBath:
		return models.IconBath
	case models.RoutineMeal:
		return models.IconMeal
	case models.RoutineTeeth:
		return models.IconTeeth
	case models.RoutineNap:
		return models.IconNap
	default:
		return models.IconExercise
	}
}

type RoutineAddCmd struct {
	Category string `arg:"" help:"Routine category (bath|exercise|meal|teeth|nap)."`
	Label    string `arg:"" help:"Schedule label."`
	Time     string `short:"t" help:"Time of day (HH:MM)." required:""`
	Duration int    `short:"d" help:"Expected duration in minutes." default:"30"`
	Goal     string `short:"g" help:"Goal ID, defaults to the active goal."`
}

func (c *RoutineAddCmd) Validate() error {
	if _, err := parseCategory(c.Category); err != nil {
		return err
	}
	if !timeutil.ValidateTimeFormat(c.Time) {
		return fmt.Errorf("invalid time format (expected HH:MM): %s", c.Time)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be greater than zero")
	}
	return nil
}

func (c *RoutineAddCmd) Run(ctx *cli.Context) error {
	cat, _ := parseCategory(c.Category)
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}

	item, err := ctx.Svc.AddSchedule(ctx.UserID(), goal.ID, cat, service.AddScheduleInput{
		Label:       c.Label,
		Time:        c.Time,
		DurationMin: c.Duration,
		Icon:        defaultIcon(cat),
	})
	if err != nil {
		return err
	}
	fmt.Printf("Added %s schedule: %s at %s (ID: %s)\n", cat, item.Label, item.Time, item.ID)
	return nil
}

type RoutineListCmd struct {
	Goal string `short:"g" help:"Goal ID, defaults to the active goal."`
}

func (c *RoutineListCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}

	now, err := timeutil.NowInTimezone(ctx.Cfg.Timezone)
	if err != nil {
		return err
	}

	empty := true
	for _, cat := range models.Categories() {
		items := goal.Routines.List(cat)
		if len(items) == 0 {
			continue
		}
		empty = false
		fmt.Printf("%s:\n", cat)
		for _, ann := range schedule.Annotate(items, now) {
			fmt.Printf("  %s  %s  %-20s %s\n", ann.Item.ID, ann.Item.Time, ann.Item.Label, statusLabel(ann))
		}
	}
	if empty {
		fmt.Println("No routine schedules. Add one with 'goalpost routine add'.")
		return nil
	}

	water := goal.Routines.Water
	fmt.Printf("water: %d/%d glasses\n", water.Completed, water.Goal)
	return nil
}

func statusLabel(ann schedule.Annotation) string {
	switch ann.Status {
	case schedule.StatusCompleted:
		return "Completed Today"
	case schedule.StatusInProgress:
		return "In Progress"
	case schedule.StatusMissed:
		return "Missed"
	default:
		return fmt.Sprintf("%s remaining", ann.RemainingLabel())
	}
}

type RoutineEditCmd struct {
	Category string `arg:"" help:"Routine category."`
	ID       string `arg:"" help:"Schedule ID."`
	Label    string `short:"l" help:"New label."`
	Time     string `short:"t" help:"New time of day (HH:MM)."`
	Duration int    `short:"d" help:"New duration in minutes."`
	Goal     string `short:"g" help:"Goal ID, defaults to the active goal."`
}

func (c *RoutineEditCmd) Validate() error {
	if _, err := parseCategory(c.Category); err != nil {
		return err
	}
	if c.Time != "" && !timeutil.ValidateTimeFormat(c.Time) {
		return fmt.Errorf("invalid time format (expected HH:MM): %s", c.Time)
	}
	if c.Label == "" && c.Time == "" && c.Duration == 0 {
		return fmt.Errorf("nothing to change; pass --label, --time, and/or --duration")
	}
	return nil
}

func (c *RoutineEditCmd) Run(ctx *cli.Context) error {
	cat, _ := parseCategory(c.Category)
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}

	in := service.UpdateScheduleInput{}
	if c.Label != "" {
		in.Label = &c.Label
	}
	if c.Time != "" {
		in.Time = &c.Time
	}
	if c.Duration > 0 {
		in.DurationMin = &c.Duration
	}

	if err := ctx.Svc.UpdateSchedule(ctx.UserID(), goal.ID, cat, c.ID, in); err != nil {
		return err
	}
	fmt.Printf("Updated %s schedule %s\n", cat, c.ID)
	return nil
}

type RoutineDoneCmd struct {
	Category string `arg:"" help:"Routine category."`
	ID       string `arg:"" help:"Schedule ID."`
	Goal     string `short:"g" help:"Goal ID, defaults to the active goal."`
}

func (c *RoutineDoneCmd) Run(ctx *cli.Context) error {
	cat, err := parseCategory(c.Category)
	if err != nil {
		return err
	}
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}

	if err := ctx.Svc.ToggleSchedule(ctx.UserID(), goal.ID, cat, c.ID); err != nil {
		return err
	}
	fmt.Printf("Toggled %s schedule %s\n", cat, c.ID)
	return nil
}

type RoutineRmCmd struct {
	Category string `arg:"" help:"Routine category."`
	ID       string `arg:"" help:"Schedule ID."`
	Goal     string `short:"g" help:"Goal ID, defaults to the active goal."`
}

func (c *RoutineRmCmd) Run(ctx *cli.Context) error {
	cat, err := parseCategory(c.Category)
	if err != nil {
		return err
	}
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}

	if err := ctx.Svc.DeleteSchedule(ctx.UserID(), goal.ID, cat, c.ID); err != nil {
		return err
	}
	fmt.Printf("Removed %s schedule %s\n", cat, c.ID)
	return nil
}

type WaterCmd struct {
	Glasses int    `arg:"" optional:"" help:"Glasses to log (negative to undo)." default:"1"`
	SetGoal int    `help:"Set the daily water target instead of logging."`
	Goal    string `short:"g" help:"Goal ID, defaults to the active goal."`
}

func (c *WaterCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}

	if c.SetGoal > 0 {
		if err := ctx.Svc.SetWaterGoal(ctx.UserID(), goal.ID, c.SetGoal); err != nil {
			return err
		}
		fmt.Printf("Water goal set to %d glasses/day\n", c.SetGoal)
		return nil
	}

	water, err := ctx.Svc.LogWater(ctx.UserID(), goal.ID, c.Glasses)
	if err != nil {
		return err
	}
	fmt.Printf("Water: %d/%d glasses today\n", water.Completed, water.Goal)
	return nil
}

type SleepCmd struct {
	Bedtime string `short:"b" help:"Target bedtime (HH:MM)."`
	Wake    string `short:"w" help:"Target wake time (HH:MM)."`
	Goal    string `short:"g" help:"Goal ID, defaults to the active goal."`
}

func (c *SleepCmd) Validate() error {
	if c.Bedtime == "" && c.Wake == "" {
		return fmt.Errorf("nothing to set; pass --bedtime and/or --wake")
	}
	if c.Bedtime != "" && !timeutil.ValidateTimeFormat(c.Bedtime) {
		return fmt.Errorf("invalid bedtime (expected HH:MM): %s", c.Bedtime)
	}
	if c.Wake != "" && !timeutil.ValidateTimeFormat(c.Wake) {
		return fmt.Errorf("invalid wake time (expected HH:MM): %s", c.Wake)
	}
	return nil
}

func (c *SleepCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}

	if err := ctx.Svc.SetSleep(ctx.UserID(), goal.ID, c.Bedtime, c.Wake); err != nil {
		return err
	}
	fmt.Println("Sleep window updated.")
	return nil
}
