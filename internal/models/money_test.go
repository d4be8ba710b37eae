package models

import "testing"

func TestMoneyEntry_Validate(t *testing.T) {
	valid := MoneyEntry{
		ID:          "e1",
		Amount:      9.99,
		Description: "book",
		Type:        EntryExpense,
		Category:    "Education",
		Date:        "2024-01-15T10:30:00Z",
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid entry rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*MoneyEntry)
	}{
		{"empty id", func(e *MoneyEntry) { e.ID = "" }},
		{"zero amount", func(e *MoneyEntry) { e.Amount = 0 }},
		{"negative amount", func(e *MoneyEntry) { e.Amount = -3 }},
		{"empty description", func(e *MoneyEntry) { e.Description = "" }},
		{"unknown type", func(e *MoneyEntry) { e.Type = "transfer" }},
		{"bad timestamp", func(e *MoneyEntry) { e.Date = "2024-01-15" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := valid
			tt.mutate(&entry)
			if err := entry.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}

	// Entries read from older data may have no timestamp at all.
	noDate := valid
	noDate.Date = ""
	if err := noDate.Validate(); err != nil {
		t.Errorf("entry without timestamp rejected: %v", err)
	}
}

func TestParseEntryType(t *testing.T) {
	if typ, err := ParseEntryType("expense"); err != nil || typ != EntryExpense {
		t.Errorf("expected EntryExpense, got %v (%v)", typ, err)
	}
	if typ, err := ParseEntryType("income"); err != nil || typ != EntryIncome {
		t.Errorf("expected EntryIncome, got %v (%v)", typ, err)
	}
	if _, err := ParseEntryType("Expense"); err == nil {
		t.Error("entry types are case sensitive")
	}
}

func TestIsKnownCategory(t *testing.T) {
	if !IsKnownCategory("Food") {
		t.Error("Food is a known category")
	}
	if IsKnownCategory("Groceries") {
		t.Error("Groceries is not in the fixed set")
	}
	if !IsKnownCategory(DefaultCategory) {
		t.Error("the default category must be in the fixed set")
	}
}
