package notes

import (
	"fmt"
	"strings"

	"github.com/goalpost/goalpost/internal/cli"
	"github.com/goalpost/goalpost/internal/models"
)

type NoteAddCmd struct {
	Text  []string `arg:"" help:"Note text."`
	Color string   `short:"c" help:"Note color tag."`
	Goal  string   `short:"g" help:"Goal ID, defaults to the active goal."`
}

func (c *NoteAddCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}

	note, err := ctx.Svc.AddStickyNote(ctx.UserID(), goal.ID, strings.Join(c.Text, " "), c.Color)
	if err != nil {
		return err
	}
	fmt.Printf("Added note (ID: %s)\n", note.ID)
	return nil
}

type NoteListCmd struct {
	Goal string `short:"g" help:"Goal ID, defaults to the active goal."`
}

func (c *NoteListCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}

	if len(goal.StickyNotes) == 0 {
		fmt.Println("No notes.")
		return nil
	}
	for _, n := range goal.StickyNotes {
		fmt.Printf("%s  %s\n", n.ID, n.Text)
	}
	return nil
}

type NoteEditCmd struct {
	ID    string   `arg:"" help:"Note ID."`
	Text  []string `arg:"" optional:"" help:"Replacement text."`
	Color string   `short:"c" help:"New color tag."`
	Goal  string   `short:"g" help:"Goal ID, defaults to the active goal."`
}

func (c *NoteEditCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}

	text := strings.Join(c.Text, " ")
	if text == "" && c.Color == "" {
		return fmt.Errorf("nothing to change; pass new text and/or --color")
	}
	if err := ctx.Svc.UpdateStickyNote(ctx.UserID(), goal.ID, c.ID, text, c.Color); err != nil {
		return err
	}
	fmt.Printf("Updated note %s\n", c.ID)
	return nil
}

type NoteRmCmd struct {
	ID   string `arg:"" help:"Note ID."`
	Goal string `short:"g" help:"Goal ID, defaults to the active goal."`
}

func (c *NoteRmCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}
	if err := ctx.Svc.DeleteStickyNote(ctx.UserID(), goal.ID, c.ID); err != nil {
		return err
	}
	fmt.Printf("Removed note %s\n", c.ID)
	return nil
}

type ResourceAddCmd struct {
	Title string `arg:"" help:"Resource title."`
	URL   string `short:"u" help:"Resource URL."`
	Kind  string `short:"k" help:"Resource kind (article|video|book|course|other)." default:"other"`
	Goal  string `short:"g" help:"Goal ID, defaults to the active goal."`
}

func (c *ResourceAddCmd) Validate() error {
	switch models.ResourceKind(c.Kind) {
	case models.ResourceKindArticle, models.ResourceKindVideo, models.ResourceKindBook,
		models.ResourceKindCourse, models.ResourceKindOther:
		return nil
	}
	return fmt.Errorf("kind must be article, video, book, course, or other")
}

func (c *ResourceAddCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}

	res, err := ctx.Svc.AddResource(ctx.UserID(), goal.ID, c.Title, c.URL, models.ResourceKind(c.Kind))
	if err != nil {
		return err
	}
	fmt.Printf("Added %s resource: %s (ID: %s)\n", res.Kind, res.Title, res.ID)
	return nil
}

type ResourceListCmd struct {
	Goal string `short:"g" help:"Goal ID, defaults to the active goal."`
}

func (c *ResourceListCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}

	if len(goal.Resources) == 0 {
		fmt.Println("No resources.")
		return nil
	}
	for _, r := range goal.Resources {
		mark := "[ ]"
		if r.Done {
			mark = "[x]"
		}
		fmt.Printf("%s %s  [%s] %s  %s\n", mark, r.ID, r.Kind, r.Title, r.URL)
	}
	return nil
}

type ResourceDoneCmd struct {
	ID   string `arg:"" help:"Resource ID."`
	Goal string `short:"g" help:"Goal ID, defaults to the active goal."`
}

func (c *ResourceDoneCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}
	if err := ctx.Svc.ToggleResource(ctx.UserID(), goal.ID, c.ID); err != nil {
		return err
	}
	fmt.Printf("Toggled resource %s\n", c.ID)
	return nil
}

type ResourceRmCmd struct {
	ID   string `arg:"" help:"Resource ID."`
	Goal string `short:"g" help:"Goal ID, defaults to the active goal."`
}

func (c *ResourceRmCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}
	if err := ctx.Svc.DeleteResource(ctx.UserID(), goal.ID, c.ID); err != nil {
		return err
	}
	fmt.Printf("Removed resource %s\n", c.ID)
	return nil
}

type QuoteAddCmd struct {
	Text   []string `arg:"" help:"Quote text."`
	Author string   `short:"a" help:"Attribution."`
	Goal   string   `short:"g" help:"Goal ID, defaults to the active goal."`
}

func (c *QuoteAddCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}

	quote, err := ctx.Svc.AddQuote(ctx.UserID(), goal.ID, strings.Join(c.Text, " "), c.Author)
	if err != nil {
		return err
	}
	fmt.Printf("Saved quote (ID: %s)\n", quote.ID)
	return nil
}

type QuoteListCmd struct {
	Starred bool   `short:"s" help:"Only show starred quotes."`
	Goal    string `short:"g" help:"Goal ID, defaults to the active goal."`
}

func (c *QuoteListCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}

	shown := 0
	for _, q := range goal.Quotes {
		if c.Starred && !q.Starred {
			continue
		}
		star := " "
		if q.Starred {
			star = "*"
		}
		author := q.Author
		if author == "" {
			author = "unknown"
		}
		fmt.Printf("%s %s  %q (%s)\n", star, q.ID, q.Text, author)
		shown++
	}
	if shown == 0 {
		fmt.Println("No quotes.")
	}
	return nil
}

type QuoteStarCmd struct {
	ID   string `arg:"" help:"Quote ID."`
	Goal string `short:"g" help:"Goal ID, defaults to the active goal."`
}

func (c *QuoteStarCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}
	if err := ctx.Svc.ToggleQuoteStar(ctx.UserID(), goal.ID, c.ID); err != nil {
		return err
	}
	fmt.Printf("Toggled star on quote %s\n", c.ID)
	return nil
}

type QuoteRmCmd struct {
	ID   string `arg:"" help:"Quote ID."`
	Goal string `short:"g" help:"Goal ID, defaults to the active goal."`
}

func (c *QuoteRmCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.ResolveGoal(c.Goal)
	if err != nil {
		return err
	}
	if err := ctx.Svc.DeleteQuote(ctx.UserID(), goal.ID, c.ID); err != nil {
		return err
	}
	fmt.Printf("Removed quote %s\n", c.ID)
	return nil
}
