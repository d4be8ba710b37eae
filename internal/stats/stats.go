// Package stats computes rollup metrics over day records: completion rates,
// financial totals and rolling averages. Every function is pure, tolerates an
// empty input and never mutates the records it is given.
package stats

import (
	"fmt"
	"time"

	"github.com/daybook-cli/daybook/internal/constants"
	"github.com/daybook-cli/daybook/internal/models"
)

// Window is a named rolling time range used to filter records for aggregation.
type Window string

const (
	WindowDaily   Window = "daily"
	WindowWeekly  Window = "weekly"
	WindowMonthly Window = "monthly"
)

// ParseWindow parses a user-supplied window name.
func ParseWindow(s string) (Window, error) {
	switch Window(s) {
	case WindowDaily, WindowWeekly, WindowMonthly:
		return Window(s), nil
	default:
		return "", fmt.Errorf("invalid period %q (expected daily, weekly or monthly)", s)
	}
}

// DaySummary pairs a calendar date with its record, if one exists. A nil
// Record means "no data" for that date, which renderers must keep distinct
// from a recorded day full of zeroes.
type DaySummary struct {
	Date   string
	Record *models.DayRecord
}

// FilterByWindow keeps the records that fall inside the window anchored at
// referenceDate: daily keeps the reference date only, weekly keeps dates at
// most 7 days back, monthly at most 30. The window has no upper bound, so
// records dated after the reference date are kept. Comparison is by calendar
// date; records with unparseable dates are dropped.
func FilterByWindow(records []models.DayRecord, window Window, referenceDate string) []models.DayRecord {
	ref, err := time.Parse(constants.DateFormat, referenceDate)
	if err != nil {
		return nil
	}

	var cutoff time.Time
	switch window {
	case WindowWeekly:
		cutoff = ref.AddDate(0, 0, -7)
	case WindowMonthly:
		cutoff = ref.AddDate(0, 0, -30)
	}

	filtered := make([]models.DayRecord, 0, len(records))
	for _, rec := range records {
		if window == WindowDaily {
			if rec.Date == referenceDate {
				filtered = append(filtered, rec)
			}
			continue
		}
		day, err := time.Parse(constants.DateFormat, rec.Date)
		if err != nil {
			continue
		}
		if !day.Before(cutoff) {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

// TaskCompletionRate sums todo completion across the records. The percentage
// is 0 when there are no todos at all.
func TaskCompletionRate(records []models.DayRecord) (completed, total int, percentage float64) {
	for i := range records {
		completed += records[i].CompletedTodos()
		total += len(records[i].Todos)
	}
	if total > 0 {
		percentage = float64(completed) / float64(total) * 100
	}
	return completed, total, percentage
}

// FinancialTotals sums money entry amounts across the records, partitioned
// by entry type. Balance is income minus expenses.
func FinancialTotals(records []models.DayRecord) (income, expense, balance float64) {
	for i := range records {
		for _, e := range records[i].MoneyEntries {
			switch e.Type {
			case models.EntryIncome:
				income += e.Amount
			case models.EntryExpense:
				expense += e.Amount
			}
		}
	}
	return income, expense, income - expense
}

// AverageWaterIntake is the arithmetic mean of water intake across the
// records, 0 when there are none.
func AverageWaterIntake(records []models.DayRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	var sum float64
	for i := range records {
		sum += records[i].WaterIntake
	}
	return sum / float64(len(records))
}

// AverageDayRating is the mean rating over rated days only. Unrated days
// (rating 0) are excluded from the average, not counted as zeroes.
func AverageDayRating(records []models.DayRecord) float64 {
	var sum float64
	var rated int
	for i := range records {
		if records[i].DayRating > 0 {
			sum += float64(records[i].DayRating)
			rated++
		}
	}
	if rated == 0 {
		return 0
	}
	return sum / float64(rated)
}

// Last7Days returns exactly seven summaries for referenceDate-6 through
// referenceDate in ascending date order, each paired with the matching record
// or nil when no record exists for that date.
func Last7Days(records []models.DayRecord, referenceDate string) []DaySummary {
	ref, err := time.Parse(constants.DateFormat, referenceDate)
	if err != nil {
		return nil
	}

	byDate := make(map[string]int, len(records))
	for i := range records {
		byDate[records[i].Date] = i
	}

	summaries := make([]DaySummary, 0, 7)
	for i := 6; i >= 0; i-- {
		date := ref.AddDate(0, 0, -i).Format(constants.DateFormat)
		summary := DaySummary{Date: date}
		if idx, ok := byDate[date]; ok {
			rec := records[idx]
			summary.Record = &rec
		}
		summaries = append(summaries, summary)
	}
	return summaries
}
