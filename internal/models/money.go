package models

import (
	"fmt"
	"time"
)

// EntryType partitions money entries into income and expenses. The amount is
// always positive; the sign of a transaction is carried here, not on the amount.
type EntryType string

const (
	EntryExpense EntryType = "expense"
	EntryIncome  EntryType = "income"
)

// Categories is the closed set of money entry categories offered by the UI.
// Free-text categories are tolerated when reading stored data.
var Categories = []string{
	"Food", "Transport", "Shopping", "Entertainment", "Bills",
	"Health", "Education", "Work", "Other",
}

// DefaultCategory is used when no category is given.
const DefaultCategory = "Food"

// MoneyEntry is a single transaction on a day record. Entries are append-only:
// they are never mutated after creation, only added or removed. Date is the
// RFC3339 creation timestamp of the entry, independent of the owning record's
// calendar date.
type MoneyEntry struct {
	ID          string    `json:"id"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Type        EntryType `json:"type"`
	Category    string    `json:"category"`
	Date        string    `json:"date"`
}

func (e *MoneyEntry) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("money entry id cannot be empty")
	}
	if e.Amount <= 0 {
		return fmt.Errorf("money entry amount must be positive, got %v", e.Amount)
	}
	if e.Description == "" {
		return fmt.Errorf("money entry description cannot be empty")
	}
	if e.Type != EntryExpense && e.Type != EntryIncome {
		return fmt.Errorf("invalid money entry type: %s", e.Type)
	}
	if e.Date != "" {
		if _, err := time.Parse(time.RFC3339, e.Date); err != nil {
			return fmt.Errorf("invalid money entry timestamp (expected RFC3339): %w", err)
		}
	}
	return nil
}

// ParseEntryType parses a user-supplied entry type string.
func ParseEntryType(s string) (EntryType, error) {
	switch EntryType(s) {
	case EntryExpense:
		return EntryExpense, nil
	case EntryIncome:
		return EntryIncome, nil
	default:
		return "", fmt.Errorf("invalid entry type %q (expected expense or income)", s)
	}
}

// IsKnownCategory reports whether the category is one of the fixed set.
func IsKnownCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}
