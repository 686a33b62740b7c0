package system

import (
	"fmt"
	"strconv"

	"github.com/goalpost/goalpost/internal/cli"
	"github.com/goalpost/goalpost/internal/keyring"
	"github.com/goalpost/goalpost/internal/models"
	"github.com/goalpost/goalpost/internal/storage"
	"github.com/goalpost/goalpost/internal/timeutil"
)

type ConfigGetCmd struct{}

func (c *ConfigGetCmd) Run(ctx *cli.Context) error {
	fmt.Printf("config file: %s\n", ctx.ConfigPath)
	fmt.Printf("user:        %s\n", ctx.Cfg.UserID)
	fmt.Printf("storage:     %s\n", ctx.Cfg.Storage)
	fmt.Printf("timezone:    %s\n", ctx.Cfg.Timezone)
	fmt.Printf("water goal:  %d glasses/day\n", ctx.Cfg.WaterGoal)
	return nil
}

type ConfigSetCmd struct {
	Key   string `arg:"" help:"Setting to change (user|storage|timezone|water-goal|connection-string)."`
	Value string `arg:"" help:"New value."`
}

func (c *ConfigSetCmd) Run(ctx *cli.Context) error {
	switch c.Key {
	case "user":
		ctx.Cfg.UserID = c.Value
	case "storage":
		if storage.IsPostgresConnString(c.Value) && storage.HasEmbeddedCredentials(c.Value) {
			return fmt.Errorf("connection strings with embedded credentials are not allowed; use 'goalpost config set connection-string' to store them in the OS keyring")
		}
		ctx.Cfg.Storage = c.Value
	case "timezone":
		if _, err := timeutil.LoadLocation(c.Value); err != nil {
			return fmt.Errorf("invalid timezone %q: %w", c.Value, err)
		}
		ctx.Cfg.Timezone = c.Value
	case "water-goal":
		// Applies to goals created from here on; existing goals keep their
		// target until changed with 'goalpost water --set-goal'
		n, err := strconv.Atoi(c.Value)
		if err != nil || n <= 0 {
			return fmt.Errorf("water-goal must be a positive number of glasses, got %q", c.Value)
		}
		ctx.Cfg.WaterGoal = n
	case "connection-string":
		// Credentials go to the keyring; the config file only records that
		// postgres is in use
		if err := keyring.SetConnectionString(c.Value); err != nil {
			return err
		}
		fmt.Println("Connection string stored in OS keyring.")
		return nil
	default:
		return fmt.Errorf("unknown setting: %s", c.Key)
	}

	if err := ctx.Cfg.Save(ctx.ConfigPath); err != nil {
		return err
	}
	fmt.Printf("Set %s = %s\n", c.Key, c.Value)
	return nil
}

type DataResetCmd struct {
	Yes bool `short:"y" help:"Skip the confirmation prompt (still enforces the delay)."`
}

// Run wipes the user's entire record after the timed confirmation gate.
func (c *DataResetCmd) Run(ctx *cli.Context) error {
	ok, err := cli.ConfirmDestructive(fmt.Sprintf(
		"Resetting ALL tracked data for user %s. Every goal, log, and record will be lost.", ctx.UserID()), c.Yes)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Cancelled.")
		return nil
	}

	rec := models.NewUserRecord(ctx.UserID())
	if err := ctx.Store.SaveRecord(ctx.UserID(), rec); err != nil {
		return err
	}
	fmt.Println("All data reset to an empty state.")
	return nil
}
