package routines

import (
	"fmt"
	"sort"

	"github.com/goalpost/goalpost/internal/cli"
	"github.com/goalpost/goalpost/internal/models"
	"github.com/goalpost/goalpost/internal/timeutil"
)

type BlockAddCmd struct {
	Label string `arg:"" help:"What the block is reserved for."`
	Start string `arg:"" help:"Block start (HH:MM)."`
	End   string `arg:"" help:"Block end (HH:MM)."`
	Goal  string `short:"g" help:"Goal ID, defaults to the active goal."`
}

func (c *BlockAddCmd) Validate() error {
	if !timeutil.ValidateTimeFormat(c.Start) {
		return fmt.Errorf("invalid start time (expected HH:MM): %s", c.Start)
	}
	if !timeutil.ValidateTimeFormat(c.End) {
		return fmt.Errorf("invalid end time (expected HH:MM): %s", c.End)
	}
	if c.Start >= c.End {
		return fmt.Errorf("block start must be before its end")
	}
	return nil
}

func (c *BlockAddCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}

	block, err := ctx.Svc.AddTimeBlock(ctx.UserID(), goal.ID, c.Label, c.Start, c.End)
	if err != nil {
		return err
	}
	fmt.Printf("Reserved %s-%s for %q (ID: %s)\n", block.Start, block.End, block.Label, block.ID)
	return nil
}

type BlockListCmd struct {
	Goal string `short:"g" help:"Goal ID, defaults to the active goal."`
}

func (c *BlockListCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}

	if len(goal.TimeBlocks) == 0 {
		fmt.Println("No time blocks. Reserve one with 'goalpost block add'.")
		return nil
	}

	blocks := make([]models.TimeBlock, len(goal.TimeBlocks))
	copy(blocks, goal.TimeBlocks)
	sort.Slice(blocks, func(i, j int) bool { return blocks[i].Start < blocks[j].Start })

	for _, b := range blocks {
		fmt.Printf("%s  %s-%s  %s\n", b.ID, b.Start, b.End, b.Label)
	}
	return nil
}

type BlockRmCmd struct {
	ID   string `arg:"" help:"Time block ID."`
	Goal string `short:"g" help:"Goal ID, defaults to the active goal."`
}

func (c *BlockRmCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}
	if err := ctx.Svc.DeleteTimeBlock(ctx.UserID(), goal.ID, c.ID); err != nil {
		return err
	}
	fmt.Printf("Removed time block %s\n", c.ID)
	return nil
}
