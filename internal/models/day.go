package models

import (
	"fmt"
	"time"

	"github.com/daybook-cli/daybook/internal/constants"
)

// TodoItem is a single task on a day's list. IDs and priorities are assigned
// once at creation and never renumbered, even when other items are deleted.
type TodoItem struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Priority  int    `json:"priority"`
}

// TimeSlot is one hour of the day; an empty activity means the hour is unset.
type TimeSlot struct {
	Hour     int    `json:"hour"`
	Activity string `json:"activity"`
}

// MealPlan holds the four free-text meal fields for a day.
type MealPlan struct {
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
	Snacks    string `json:"snacks"`
}

// DayRecord is the complete set of tracked data for one calendar date. The
// date is the primary key; the record is always persisted and replaced as a
// whole. JSON tags define the stored wire format and must not change.
type DayRecord struct {
	ID            string       `json:"id"`
	Date          string       `json:"date"`
	Todos         []TodoItem   `json:"todos"`
	TimeSlots     []TimeSlot   `json:"timeSlots"`
	MoneyEntries  []MoneyEntry `json:"moneyEntries"`
	WaterIntake   float64      `json:"waterIntake"`
	WaterGoal     float64      `json:"waterGoal"`
	ExerciseHours float64      `json:"exerciseHours"`
	MealPlan      MealPlan     `json:"mealPlan"`
	DayRating     int          `json:"dayRating"`
	Highlight     string       `json:"highlight"`
}

// NewDayRecord returns a fresh record for the given date with all fields at
// their defaults: 24 empty time slots, no todos or money entries, a water
// goal of 8 litres and an unset (0) rating.
func NewDayRecord(date string) DayRecord {
	slots := make([]TimeSlot, constants.HoursPerDay)
	for i := range slots {
		slots[i] = TimeSlot{Hour: i}
	}
	return DayRecord{
		ID:           constants.DayKeyPrefix + date,
		Date:         date,
		Todos:        []TodoItem{},
		TimeSlots:    slots,
		MoneyEntries: []MoneyEntry{},
		WaterGoal:    constants.DefaultWaterGoal,
		MealPlan:     MealPlan{},
	}
}

func (t *TodoItem) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("todo id cannot be empty")
	}
	if t.Text == "" {
		return fmt.Errorf("todo text cannot be empty")
	}
	return nil
}

func (ts *TimeSlot) Validate() error {
	if ts.Hour < 0 || ts.Hour >= constants.HoursPerDay {
		return fmt.Errorf("slot hour must be between 0 and 23, got %d", ts.Hour)
	}
	return nil
}

func (r *DayRecord) Validate() error {
	if _, err := time.Parse(constants.DateFormat, r.Date); err != nil {
		return fmt.Errorf("invalid date format (expected YYYY-MM-DD): %w", err)
	}
	if r.DayRating < 0 || r.DayRating > constants.MaxDayRating {
		return fmt.Errorf("day rating must be between 0 and %d, got %d", constants.MaxDayRating, r.DayRating)
	}
	if r.WaterIntake < 0 {
		return fmt.Errorf("water intake cannot be negative")
	}
	if r.WaterGoal <= 0 {
		return fmt.Errorf("water goal must be positive")
	}
	if len(r.TimeSlots) != constants.HoursPerDay {
		return fmt.Errorf("expected %d time slots, got %d", constants.HoursPerDay, len(r.TimeSlots))
	}
	seen := make(map[int]bool, constants.HoursPerDay)
	for i := range r.TimeSlots {
		if err := r.TimeSlots[i].Validate(); err != nil {
			return err
		}
		if seen[r.TimeSlots[i].Hour] {
			return fmt.Errorf("duplicate time slot for hour %d", r.TimeSlots[i].Hour)
		}
		seen[r.TimeSlots[i].Hour] = true
	}
	for i := range r.Todos {
		if err := r.Todos[i].Validate(); err != nil {
			return err
		}
	}
	for i := range r.MoneyEntries {
		if err := r.MoneyEntries[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// CompletedTodos returns the number of completed todos on the record.
func (r *DayRecord) CompletedTodos() int {
	n := 0
	for i := range r.Todos {
		if r.Todos[i].Completed {
			n++
		}
	}
	return n
}

// SlotActivity returns the activity recorded for the given hour, or the
// empty string when the hour is unset or out of range.
func (r *DayRecord) SlotActivity(hour int) string {
	for i := range r.TimeSlots {
		if r.TimeSlots[i].Hour == hour {
			return r.TimeSlots[i].Activity
		}
	}
	return ""
}

// WaterGoalMet reports whether the day's intake reached its goal.
func (r *DayRecord) WaterGoalMet() bool {
	return r.WaterIntake >= r.WaterGoal
}
