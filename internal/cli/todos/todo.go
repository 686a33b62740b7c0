package todos

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goalpost/goalpost/internal/cli"
)

type TodoAddCmd struct {
	Text []string `arg:"" help:"Todo text."`
	Goal string   `short:"g" help:"Goal ID, defaults to the active goal."`
}

func (c *TodoAddCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}

	item, err := ctx.Svc.AddTodo(ctx.UserID(), goal.ID, strings.Join(c.Text, " "))
	if err != nil {
		return err
	}
	fmt.Printf("Added todo: %s (ID: %s)\n", item.Text, item.ID)
	return nil
}

type TodoListCmd struct {
	Goal string `short:"g" help:"Goal ID, defaults to the active goal."`
	All  bool   `short:"a" help:"Include completed todos."`
}

func (c *TodoListCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}

	items := make([]int, 0, len(goal.Todos))
	for i := range goal.Todos {
		items = append(items, i)
	}
	sort.Slice(items, func(a, b int) bool {
		return goal.Todos[items[a]].Order < goal.Todos[items[b]].Order
	})

	shown := 0
	for _, i := range items {
		item := goal.Todos[i]
		if item.Completed && !c.All {
			continue
		}
		mark := "[ ]"
		if item.Completed {
			mark = "[x]"
		}
		fmt.Printf("%s %s  %s\n", mark, item.ID, item.Text)
		shown++
	}
	if shown == 0 {
		fmt.Println("Nothing to do.")
	}
	return nil
}

type TodoEditCmd struct {
	ID   string   `arg:"" help:"Todo ID."`
	Text []string `arg:"" help:"Replacement text."`
	Goal string   `short:"g" help:"Goal ID, defaults to the active goal."`
}

func (c *TodoEditCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}

	if err := ctx.Svc.UpdateTodo(ctx.UserID(), goal.ID, c.ID, strings.Join(c.Text, " ")); err != nil {
		return err
	}
	fmt.Printf("Updated todo %s\n", c.ID)
	return nil
}

type TodoDoneCmd struct {
	ID   string `arg:"" help:"Todo ID."`
	Goal string `short:"g" help:"Goal ID, defaults to the active goal."`
}

func (c *TodoDoneCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}

	if err := ctx.Svc.ToggleTodo(ctx.UserID(), goal.ID, c.ID); err != nil {
		return err
	}
	fmt.Printf("Toggled todo %s\n", c.ID)
	return nil
}

type TodoRmCmd struct {
	ID   string `arg:"" help:"Todo ID."`
	Goal string `short:"g" help:"Goal ID, defaults to the active goal."`
}

func (c *TodoRmCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}

	if err := ctx.Svc.DeleteTodo(ctx.UserID(), goal.ID, c.ID); err != nil {
		return err
	}
	fmt.Printf("Removed todo %s\n", c.ID)
	return nil
}

type DistractionAddCmd struct {
	Text []string `arg:"" help:"Distraction text."`
	Goal string   `short:"g" help:"Goal ID, defaults to the active goal."`
}

func (c *DistractionAddCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}

	item, err := ctx.Svc.AddDistraction(ctx.UserID(), goal.ID, strings.Join(c.Text, " "))
	if err != nil {
		return err
	}
	fmt.Printf("Added to not-to-do list: %s (ID: %s)\n", item.Text, item.ID)
	return nil
}

type DistractionListCmd struct {
	Goal string `short:"g" help:"Goal ID, defaults to the active goal."`
}

func (c *DistractionListCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}

	if len(goal.Distractions) == 0 {
		fmt.Println("Not-to-do list is empty.")
		return nil
	}
	for _, item := range goal.Distractions {
		fmt.Printf("%s  %s\n", item.ID, item.Text)
	}
	return nil
}

type DistractionRmCmd struct {
	ID   string `arg:"" help:"Distraction ID."`
	Goal string `short:"g" help:"Goal ID, defaults to the active goal."`
}

func (c *DistractionRmCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}

	if err := ctx.Svc.DeleteDistraction(ctx.UserID(), goal.ID, c.ID); err != nil {
		return err
	}
	fmt.Printf("Removed distraction %s\n", c.ID)
	return nil
}
