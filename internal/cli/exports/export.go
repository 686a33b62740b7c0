package exports

import (
	"fmt"

	"github.com/goalpost/goalpost/internal/cli"
	"github.com/goalpost/goalpost/internal/export"
)

type ExportCreateCmd struct{}

func (c *ExportCreateCmd) Run(ctx *cli.Context) error {
	rec, err := ctx.Svc.Record(ctx.UserID())
	if err != nil {
		return err
	}

	mgr := export.NewManager(ctx.Store.GetConfigPath())
	path, err := mgr.Export(rec)
	if err != nil {
		return err
	}
	fmt.Printf("Exported record to %s\n", path)
	return nil
}

type ExportListCmd struct{}

func (c *ExportListCmd) Run(ctx *cli.Context) error {
	mgr := export.NewManager(ctx.Store.GetConfigPath())
	infos, err := mgr.List()
	if err != nil {
		return err
	}

	if len(infos) == 0 {
		fmt.Println("No exports. Create one with 'goalpost export create'.")
		return nil
	}
	for _, info := range infos {
		fmt.Printf("%s  %s  %d bytes\n", info.Timestamp.Format("2006-01-02 15:04:05"), info.Path, info.Size)
	}
	return nil
}

type ImportCmd struct {
	Path string `arg:"" help:"Path to an exported JSON record."`
	Yes  bool   `short:"y" help:"Skip the confirmation prompt (still enforces the delay)."`
}

func (c *ImportCmd) Run(ctx *cli.Context) error {
	mgr := export.NewManager(ctx.Store.GetConfigPath())

	// Parse and validate before prompting so a bad file never reaches the
	// overwrite step
	rec, err := mgr.Import(c.Path)
	if err != nil {
		return err
	}

	ok, err := cli.ConfirmDestructive(fmt.Sprintf(
		"Importing %s OVERWRITES all existing data for user %s.", c.Path, ctx.UserID()), c.Yes)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Cancelled.")
		return nil
	}

	if err := ctx.Store.SaveRecord(ctx.UserID(), rec); err != nil {
		return err
	}
	fmt.Printf("Imported record from %s (%d goals)\n", c.Path, len(rec.Goals))
	return nil
}
