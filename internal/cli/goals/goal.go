package goals

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/goalpost/goalpost/internal/cli"
	"github.com/goalpost/goalpost/internal/models"
	"github.com/goalpost/goalpost/internal/service"
	"github.com/goalpost/goalpost/internal/timeutil"
)

type GoalNewCmd struct {
	Name        string `arg:"" optional:"" help:"Goal name. Omit to fill in interactively."`
	Description string `short:"d" help:"Goal description."`
	Start       string `help:"Start date (YYYY-MM-DD), defaults to today."`
	End         string `short:"e" help:"Deadline (YYYY-MM-DD)."`
}

func (c *GoalNewCmd) Validate() error {
	if c.Start != "" && !timeutil.ValidateDateFormat(c.Start) {
		return fmt.Errorf("invalid start date (expected YYYY-MM-DD): %s", c.Start)
	}
	if c.End != "" && !timeutil.ValidateDateFormat(c.End) {
		return fmt.Errorf("invalid end date (expected YYYY-MM-DD): %s", c.End)
	}
	return nil
}

func (c *GoalNewCmd) Run(ctx *cli.Context) error {
	// Fall back to an interactive form when the name is omitted
	if c.Name == "" {
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("What is your objective?").
				Value(&c.Name).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("a goal needs a name")
					}
					return nil
				}),
			huh.NewText().
				Title("Describe it (optional)").
				Value(&c.Description),
			huh.NewInput().
				Title("Deadline (YYYY-MM-DD, optional)").
				Value(&c.End).
				Validate(func(s string) error {
					if s != "" && !timeutil.ValidateDateFormat(s) {
						return fmt.Errorf("expected YYYY-MM-DD")
					}
					return nil
				}),
		))
		if err := form.Run(); err != nil {
			return err
		}
	}

	goal, err := ctx.Svc.CreateGoal(ctx.UserID(), service.CreateGoalInput{
		Name:        c.Name,
		Description: c.Description,
		StartDate:   c.Start,
		EndDate:     c.End,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Created goal: %s (ID: %s)\n", goal.Name, goal.ID)
	return nil
}

type GoalListCmd struct {
	All bool `short:"a" help:"Include completed and archived goals."`
}

func (c *GoalListCmd) Run(ctx *cli.Context) error {
	goals, err := ctx.Svc.ListGoals(ctx.UserID())
	if err != nil {
		return err
	}

	shown := 0
	for _, g := range goals {
		if !c.All && g.Status != models.GoalStatusActive {
			continue
		}
		deadline := g.EndDate
		if deadline == "" {
			deadline = "-"
		}
		fmt.Printf("%s  [%s]  %s (deadline: %s)\n", g.ID, g.Status, g.Name, deadline)
		shown++
	}
	if shown == 0 {
		fmt.Println("No goals. Create one with 'goalpost goal new'.")
	}
	return nil
}

type GoalShowCmd struct {
	ID string `arg:"" optional:"" help:"Goal ID, defaults to the active goal."`
}

func (c *GoalShowCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.ID)
	if err != nil {
		return err
	}

	fmt.Printf("%s [%s]\n", goal.Name, goal.Status)
	if goal.Description != "" {
		fmt.Printf("  %s\n", goal.Description)
	}
	fmt.Printf("  Started: %s", goal.StartDate)
	if goal.EndDate != "" {
		fmt.Printf("  Deadline: %s", goal.EndDate)
	}
	fmt.Println()
	fmt.Printf("  Todos: %d  Distractions: %d  Notes: %d  Resources: %d\n",
		len(goal.Todos), len(goal.Distractions), len(goal.StickyNotes), len(goal.Resources))
	fmt.Printf("  Schedules: %d  Water: %d/%d glasses\n",
		len(goal.Routines.All()), goal.Routines.Water.Completed, goal.Routines.Water.Goal)
	fmt.Printf("  Transactions: %d  Budgets: %d  Subscriptions: %d\n",
		len(goal.Finance.Transactions), len(goal.Finance.Budgets), len(goal.Finance.Subscriptions))
	return nil
}

type GoalEditCmd struct {
	ID          string `arg:"" optional:"" help:"Goal ID, defaults to the active goal."`
	Name        string `short:"n" help:"New name."`
	Description string `short:"d" help:"New description."`
	End         string `short:"e" help:"New deadline (YYYY-MM-DD); pass an empty string to clear."`
}

func (c *GoalEditCmd) Validate() error {
	if c.End != "" && !timeutil.ValidateDateFormat(c.End) {
		return fmt.Errorf("invalid end date (expected YYYY-MM-DD): %s", c.End)
	}
	return nil
}

func (c *GoalEditCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.ID)
	if err != nil {
		return err
	}

	in := service.UpdateGoalInput{}
	if c.Name != "" {
		in.Name = &c.Name
	}
	if c.Description != "" {
		in.Description = &c.Description
	}
	if c.End != "" {
		in.EndDate = &c.End
	}
	if in.Name == nil && in.Description == nil && in.EndDate == nil {
		return fmt.Errorf("nothing to change; pass --name, --description, or --end")
	}

	if err := ctx.Svc.UpdateGoal(ctx.UserID(), goal.ID, in); err != nil {
		return err
	}
	fmt.Printf("Updated goal %s\n", goal.ID)
	return nil
}

type GoalStatusCmd struct {
	ID     string `arg:"" help:"Goal ID."`
	Status string `arg:"" help:"New status (active|completed|archived)."`
}

func (c *GoalStatusCmd) Validate() error {
	switch models.GoalStatus(c.Status) {
	case models.GoalStatusActive, models.GoalStatusCompleted, models.GoalStatusArchived:
		return nil
	}
	return fmt.Errorf("status must be active, completed, or archived")
}

func (c *GoalStatusCmd) Run(ctx *cli.Context) error {
	if err := ctx.Svc.SetGoalStatus(ctx.UserID(), c.ID, models.GoalStatus(c.Status)); err != nil {
		return err
	}
	fmt.Printf("Goal %s is now %s\n", c.ID, c.Status)
	return nil
}

type GoalDeleteCmd struct {
	ID  string `arg:"" help:"Goal ID."`
	Yes bool   `short:"y" help:"Skip the confirmation prompt (still enforces the delay)."`
}

func (c *GoalDeleteCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.Svc.Goal(ctx.UserID(), c.ID)
	if err != nil {
		return err
	}

	ok, err := cli.ConfirmDestructive(fmt.Sprintf("Deleting goal %q and ALL of its tracked data.", goal.Name), c.Yes)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Cancelled.")
		return nil
	}

	if err := ctx.Svc.DeleteGoal(ctx.UserID(), c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted goal: %s\n", goal.Name)
	return nil
}
