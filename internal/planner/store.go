// Package planner owns reading and writing persisted day records. A Store is
// a caller-owned session over a key-value backend: it holds the one active
// record the UI is editing and persists every field-level change as a whole
// record replace.
package planner

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/daybook-cli/daybook/internal/constants"
	"github.com/daybook-cli/daybook/internal/logger"
	"github.com/daybook-cli/daybook/internal/models"
	"github.com/daybook-cli/daybook/internal/storage"
)

// Store is a single-user session over the day record backend. It is not safe
// for concurrent use; the application has exactly one writer.
type Store struct {
	backend    storage.Backend
	current    *models.DayRecord
	now        func() time.Time
	lastTodoID int64
}

// New creates a Store over the given backend using the system clock.
func New(backend storage.Backend) *Store {
	return &Store{backend: backend, now: time.Now}
}

// NewWithClock creates a Store with an injected clock, for tests and for
// callers that pin "today" to something other than wall time.
func NewWithClock(backend storage.Backend, now func() time.Time) *Store {
	return &Store{backend: backend, now: now}
}

// DayKey returns the backend key for a date (day-YYYY-MM-DD).
func DayKey(date string) string {
	return constants.DayKeyPrefix + date
}

// TodayKey returns the current local calendar date in YYYY-MM-DD form.
func (s *Store) TodayKey() string {
	return s.now().Format(constants.DateFormat)
}

// DefaultRecord returns the default record for a date. It is pure and
// deterministic; loading a date twice without saving yields equal records.
func (s *Store) DefaultRecord(date string) models.DayRecord {
	return models.NewDayRecord(date)
}

// Current returns the active record, or nil before the first Load.
func (s *Store) Current() *models.DayRecord {
	return s.current
}

// Load reads the record for a date and makes it the active record. A missing
// or malformed entry is treated as "no data yet" and yields the default
// record; corruption is logged but never surfaced as an error.
func (s *Store) Load(date string) models.DayRecord {
	rec := s.read(date)
	s.current = &rec
	return rec
}

// LoadToday loads the record for the current calendar date.
func (s *Store) LoadToday() models.DayRecord {
	return s.Load(s.TodayKey())
}

// Peek reads the record for a date without changing the active record.
func (s *Store) Peek(date string) models.DayRecord {
	return s.read(date)
}

func (s *Store) read(date string) models.DayRecord {
	value, ok, err := s.backend.Get(DayKey(date))
	if err != nil {
		logger.Warn("Failed to read day record, using defaults", "date", date, "error", err)
		return models.NewDayRecord(date)
	}
	if !ok {
		return models.NewDayRecord(date)
	}
	var rec models.DayRecord
	if err := json.Unmarshal([]byte(value), &rec); err != nil {
		logger.Warn("Malformed day record, using defaults", "date", date, "error", err)
		return models.NewDayRecord(date)
	}
	return rec
}

// Save validates the record, serializes it and writes it under its date key.
// On failure the in-memory state is left unchanged, so the session still
// reflects the last successfully saved record. On success the saved record
// becomes the active record when its date matches the currently active date.
func (s *Store) Save(rec models.DayRecord) error {
	if err := rec.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid day record: %w", err)
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to serialize day record: %w", err)
	}
	if err := s.backend.Set(DayKey(rec.Date), string(data)); err != nil {
		return fmt.Errorf("failed to save day record for %s: %w", rec.Date, err)
	}
	if s.current != nil && s.current.Date == rec.Date {
		s.current = &rec
	}
	return nil
}

// ListAll returns every stored day record sorted by date descending. Entries
// that fail to parse are skipped with a logged warning rather than failing
// the whole listing.
func (s *Store) ListAll() ([]models.DayRecord, error) {
	keys, err := s.backend.ListKeys(constants.DayKeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list day records: %w", err)
	}

	records := make([]models.DayRecord, 0, len(keys))
	for _, key := range keys {
		value, ok, err := s.backend.Get(key)
		if err != nil || !ok {
			if err != nil {
				logger.Warn("Failed to read day record during listing", "key", key, "error", err)
			}
			continue
		}
		var rec models.DayRecord
		if err := json.Unmarshal([]byte(value), &rec); err != nil {
			logger.Warn("Skipping malformed day record", "key", key, "error", err)
			continue
		}
		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Date > records[j].Date
	})
	return records, nil
}

// Field-level updates. Each one copies the active record, replaces a single
// field and writes the whole record back. All of them are no-ops before the
// first Load.

func (s *Store) UpdateTodos(todos []models.TodoItem) error {
	if s.current == nil {
		return nil
	}
	rec := *s.current
	rec.Todos = todos
	return s.Save(rec)
}

func (s *Store) UpdateTimeSlots(slots []models.TimeSlot) error {
	if s.current == nil {
		return nil
	}
	if len(slots) != constants.HoursPerDay {
		return fmt.Errorf("expected %d time slots, got %d", constants.HoursPerDay, len(slots))
	}
	rec := *s.current
	rec.TimeSlots = slots
	return s.Save(rec)
}

func (s *Store) UpdateMoneyEntries(entries []models.MoneyEntry) error {
	if s.current == nil {
		return nil
	}
	rec := *s.current
	rec.MoneyEntries = entries
	return s.Save(rec)
}

func (s *Store) UpdateWaterIntake(litres float64) error {
	if s.current == nil {
		return nil
	}
	if litres < 0 {
		litres = 0
	}
	rec := *s.current
	rec.WaterIntake = litres
	return s.Save(rec)
}

func (s *Store) UpdateExerciseHours(hours float64) error {
	if s.current == nil {
		return nil
	}
	if hours < 0 {
		return fmt.Errorf("exercise hours cannot be negative")
	}
	rec := *s.current
	rec.ExerciseHours = hours
	return s.Save(rec)
}

func (s *Store) UpdateMealPlan(plan models.MealPlan) error {
	if s.current == nil {
		return nil
	}
	rec := *s.current
	rec.MealPlan = plan
	return s.Save(rec)
}

func (s *Store) UpdateDayRating(rating int) error {
	if s.current == nil {
		return nil
	}
	if rating < 0 || rating > constants.MaxDayRating {
		return fmt.Errorf("day rating must be between 0 and %d, got %d", constants.MaxDayRating, rating)
	}
	rec := *s.current
	rec.DayRating = rating
	return s.Save(rec)
}

func (s *Store) UpdateHighlight(highlight string) error {
	if s.current == nil {
		return nil
	}
	rec := *s.current
	rec.Highlight = highlight
	return s.Save(rec)
}
