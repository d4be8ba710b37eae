package cli

import (
	"fmt"
	"time"

	"github.com/daybook-cli/daybook/internal/backup"
	"github.com/daybook-cli/daybook/internal/constants"
	"github.com/daybook-cli/daybook/internal/logger"
	"github.com/daybook-cli/daybook/internal/models"
	"github.com/daybook-cli/daybook/internal/planner"
	"github.com/daybook-cli/daybook/internal/storage"
)

// Context carries the shared dependencies into every command's Run method.
type Context struct {
	Backend storage.Backend
	Store   *planner.Store
}

// ResolveDate validates a user-supplied date, defaulting to today when empty.
func (c *Context) ResolveDate(date string) (string, error) {
	if date == "" {
		return c.Store.TodayKey(), nil
	}
	if _, err := time.Parse(constants.DateFormat, date); err != nil {
		return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", date, err)
	}
	return date, nil
}

// LoadDay resolves the date and makes that day the active record.
func (c *Context) LoadDay(date string) (models.DayRecord, error) {
	resolved, err := c.ResolveDate(date)
	if err != nil {
		return models.DayRecord{}, err
	}
	return c.Store.Load(resolved), nil
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Backend.Path())
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}
