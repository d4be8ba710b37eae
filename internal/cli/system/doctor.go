package system

import (
	"encoding/json"
	"fmt"

	"github.com/daybook-cli/daybook/internal/backup"
	"github.com/daybook-cli/daybook/internal/cli"
	"github.com/daybook-cli/daybook/internal/constants"
	"github.com/daybook-cli/daybook/internal/models"
)

type DoctorCmd struct{}

// Run checks the health of the stored data and reports findings without
// modifying anything.
func (c *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("daybook doctor")
	fmt.Printf("  Data path: %s\n\n", ctx.Backend.Path())

	healthy := true

	keys, err := ctx.Backend.ListKeys(constants.DayKeyPrefix)
	if err != nil {
		fmt.Printf("  ✗ Cannot list day records: %v\n", err)
		return fmt.Errorf("storage is not readable")
	}
	fmt.Printf("  ✓ Storage readable (%d day records)\n", len(keys))

	malformed := 0
	invalid := 0
	for _, key := range keys {
		value, ok, err := ctx.Backend.Get(key)
		if err != nil || !ok {
			malformed++
			continue
		}
		var rec models.DayRecord
		if err := json.Unmarshal([]byte(value), &rec); err != nil {
			malformed++
			continue
		}
		if err := rec.Validate(); err != nil {
			invalid++
		}
	}
	if malformed > 0 {
		healthy = false
		fmt.Printf("  ✗ %d records failed to parse (they will be skipped in listings)\n", malformed)
	} else {
		fmt.Println("  ✓ All records parse cleanly")
	}
	if invalid > 0 {
		healthy = false
		fmt.Printf("  ✗ %d records violate invariants (check slot counts and ranges)\n", invalid)
	} else {
		fmt.Println("  ✓ All records satisfy invariants")
	}

	mgr := backup.NewManager(ctx.Backend.Path())
	backups, err := mgr.ListBackups()
	if err != nil {
		fmt.Printf("  ✗ Cannot read backup directory: %v\n", err)
		healthy = false
	} else if len(backups) == 0 {
		fmt.Println("  - No backups yet (run 'daybook backup create')")
	} else {
		fmt.Printf("  ✓ %d backups, newest %s\n", len(backups), backups[0].Timestamp.Format("2006-01-02 15:04"))
	}

	if !healthy {
		return fmt.Errorf("issues found")
	}
	fmt.Println("\nAll checks passed.")
	return nil
}
