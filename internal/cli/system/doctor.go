package system

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-ps"

	"github.com/goalpost/goalpost/internal/cli"
	"github.com/goalpost/goalpost/internal/keyring"
	"github.com/goalpost/goalpost/internal/timeutil"
	"github.com/goalpost/goalpost/internal/validation"
)

type DoctorCmd struct{}

// Run performs health checks: config, storage, record schema, keyring, and
// concurrent-instance detection. Writes are conditional on the record
// version, so a second running instance causes conflicts and retries rather
// than silent loss; doctor surfaces it as a warning, not a blocker.
func (c *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("goalpost doctor")

	ok := true

	if ctx.Cfg.UserID == "" {
		fmt.Println("✗ no user configured; run 'goalpost init --user <id>'")
		ok = false
	} else {
		fmt.Printf("✓ user: %s\n", ctx.Cfg.UserID)
	}

	if _, err := timeutil.LoadLocation(ctx.Cfg.Timezone); err != nil {
		fmt.Printf("✗ invalid timezone %q: %v\n", ctx.Cfg.Timezone, err)
		ok = false
	} else {
		fmt.Printf("✓ timezone: %s\n", ctx.Cfg.Timezone)
	}

	if ctx.Cfg.UserID != "" {
		rec, err := ctx.Svc.Record(ctx.Cfg.UserID)
		if err != nil {
			fmt.Printf("✗ failed to load record: %v\n", err)
			ok = false
		} else if err := validation.ValidateRecord(rec); err != nil {
			fmt.Printf("✗ record failed schema validation: %v\n", err)
			ok = false
		} else {
			fmt.Printf("✓ record loads and validates (%d goals, version %d)\n", len(rec.Goals), rec.Version)
		}
	}

	if keyring.IsAvailable() {
		fmt.Println("✓ OS keyring available")
	} else {
		fmt.Println("- OS keyring unavailable (only needed for PostgreSQL credentials)")
	}

	if n, err := countOtherInstances(); err == nil && n > 0 {
		fmt.Printf("! %d other goalpost process(es) running; concurrent writes will conflict and retry\n", n)
	}

	if !ok {
		return fmt.Errorf("doctor found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}

// countOtherInstances scans the process table for other goalpost processes.
func countOtherInstances() (int, error) {
	procs, err := ps.Processes()
	if err != nil {
		return 0, err
	}

	self := os.Getpid()
	count := 0
	for _, p := range procs {
		if p.Pid() != self && p.Executable() == "goalpost" {
			count++
		}
	}
	return count, nil
}
