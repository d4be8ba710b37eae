package planner

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/daybook-cli/daybook/internal/constants"
	"github.com/daybook-cli/daybook/internal/models"
)

// Convenience edits used by the CLI and TUI. They all operate on the active
// record through the field-level updates, so every one is a whole-record
// replace-and-persist and a no-op before the first Load.

// ErrNoActiveRecord is returned by edits that need an item to act on when no
// record has been loaded yet.
var ErrNoActiveRecord = fmt.Errorf("no active day record, load a day first")

// AddTodo appends a new todo with the next priority. IDs are millisecond
// timestamp tokens, kept unique and monotonic within the session.
func (s *Store) AddTodo(text string) (models.TodoItem, error) {
	if s.current == nil {
		return models.TodoItem{}, ErrNoActiveRecord
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return models.TodoItem{}, fmt.Errorf("todo text cannot be empty")
	}

	todo := models.TodoItem{
		ID:       s.nextTodoID(),
		Text:     text,
		Priority: len(s.current.Todos) + 1,
	}
	todos := append(append([]models.TodoItem{}, s.current.Todos...), todo)
	if err := s.UpdateTodos(todos); err != nil {
		return models.TodoItem{}, err
	}
	return todo, nil
}

// ToggleTodo flips the completion flag of the todo with the given id.
func (s *Store) ToggleTodo(id string) error {
	if s.current == nil {
		return ErrNoActiveRecord
	}
	todos := append([]models.TodoItem{}, s.current.Todos...)
	for i := range todos {
		if todos[i].ID == id {
			todos[i].Completed = !todos[i].Completed
			return s.UpdateTodos(todos)
		}
	}
	return fmt.Errorf("todo not found: %s", id)
}

// RemoveTodo deletes the todo with the given id. The ids and priorities of
// the remaining todos are left untouched.
func (s *Store) RemoveTodo(id string) error {
	if s.current == nil {
		return ErrNoActiveRecord
	}
	todos := make([]models.TodoItem, 0, len(s.current.Todos))
	found := false
	for _, t := range s.current.Todos {
		if t.ID == id {
			found = true
			continue
		}
		todos = append(todos, t)
	}
	if !found {
		return fmt.Errorf("todo not found: %s", id)
	}
	return s.UpdateTodos(todos)
}

// SetSlotActivity records an activity for the given hour; an empty activity
// clears the slot.
func (s *Store) SetSlotActivity(hour int, activity string) error {
	if s.current == nil {
		return ErrNoActiveRecord
	}
	if hour < 0 || hour >= constants.HoursPerDay {
		return fmt.Errorf("hour must be between 0 and 23, got %d", hour)
	}
	slots := append([]models.TimeSlot{}, s.current.TimeSlots...)
	for i := range slots {
		if slots[i].Hour == hour {
			slots[i].Activity = activity
			return s.UpdateTimeSlots(slots)
		}
	}
	return fmt.Errorf("no slot for hour %d", hour)
}

// AddMoneyEntry appends a transaction. The entry is timestamped with the
// session clock at creation and never mutated afterwards.
func (s *Store) AddMoneyEntry(amount float64, description string, entryType models.EntryType, category string) (models.MoneyEntry, error) {
	if s.current == nil {
		return models.MoneyEntry{}, ErrNoActiveRecord
	}
	if category == "" {
		category = models.DefaultCategory
	}
	entry := models.MoneyEntry{
		ID:          uuid.New().String(),
		Amount:      amount,
		Description: strings.TrimSpace(description),
		Type:        entryType,
		Category:    category,
		Date:        s.now().UTC().Format(time.RFC3339),
	}
	if err := entry.Validate(); err != nil {
		return models.MoneyEntry{}, err
	}
	entries := append(append([]models.MoneyEntry{}, s.current.MoneyEntries...), entry)
	if err := s.UpdateMoneyEntries(entries); err != nil {
		return models.MoneyEntry{}, err
	}
	return entry, nil
}

// RemoveMoneyEntry deletes the entry with the given id.
func (s *Store) RemoveMoneyEntry(id string) error {
	if s.current == nil {
		return ErrNoActiveRecord
	}
	entries := make([]models.MoneyEntry, 0, len(s.current.MoneyEntries))
	found := false
	for _, e := range s.current.MoneyEntries {
		if e.ID == id {
			found = true
			continue
		}
		entries = append(entries, e)
	}
	if !found {
		return fmt.Errorf("money entry not found: %s", id)
	}
	return s.UpdateMoneyEntries(entries)
}

// AdjustWater changes the day's water intake by delta litres, clamping at 0.
// It returns the new intake.
func (s *Store) AdjustWater(delta float64) (float64, error) {
	if s.current == nil {
		return 0, ErrNoActiveRecord
	}
	intake := s.current.WaterIntake + delta
	if intake < 0 {
		intake = 0
	}
	if err := s.UpdateWaterIntake(intake); err != nil {
		return s.current.WaterIntake, err
	}
	return intake, nil
}

// SetWaterGoal replaces the day's water goal.
func (s *Store) SetWaterGoal(litres float64) error {
	if s.current == nil {
		return ErrNoActiveRecord
	}
	if litres <= 0 {
		return fmt.Errorf("water goal must be positive, got %v", litres)
	}
	rec := *s.current
	rec.WaterGoal = litres
	return s.Save(rec)
}

func (s *Store) nextTodoID() string {
	ms := s.now().UnixMilli()
	if ms <= s.lastTodoID {
		ms = s.lastTodoID + 1
	}
	// Guard against ids already present on the record, e.g. after reloading
	// a day that was edited in an earlier session.
	for s.current != nil && todoIDExists(s.current.Todos, strconv.FormatInt(ms, 10)) {
		ms++
	}
	s.lastTodoID = ms
	return strconv.FormatInt(ms, 10)
}

func todoIDExists(todos []models.TodoItem, id string) bool {
	for i := range todos {
		if todos[i].ID == id {
			return true
		}
	}
	return false
}
