// Package services holds client-side orchestration: schedule math for
// recurring items and the household overview assembled from the
// backend's entity families.
//
// This file implements the Strategy Pattern for recurring-item schedule
// computation. Each frequency has a checker that knows how to find the
// next due date for a day-of-month rule.
package services

import (
	"fmt"
	"time"

	"hearth/internal/core"
)

// DueChecker is the strategy interface for computing when a recurring
// item next falls due.
type DueChecker interface {
	// NextDue returns the first due date strictly after `after`.
	// dayOfMonth is clamped to the last day of short months (a rule on
	// the 31st fires on Feb 28/29). anchorMonth fixes the phase for
	// multi-month frequencies: a bi-monthly item anchored in March is
	// due in March, May, July and so on.
	NextDue(after time.Time, dayOfMonth int, anchorMonth time.Month) core.Date
}

// periodChecker implements DueChecker for any whole-month period that
// divides a year, which covers every supported frequency.
type periodChecker struct {
	stepMonths int
}

func (c periodChecker) NextDue(after time.Time, dayOfMonth int, anchorMonth time.Month) core.Date {
	// Month indices on the anchor's phase. Every step divides 12, so
	// the phase is stable across years.
	phase := (int(anchorMonth) - 1) % c.stepMonths

	idx := after.Year()*12 + int(after.Month()) - 1
	for idx%c.stepMonths != phase {
		idx--
	}

	for {
		year, month := idx/12, time.Month(idx%12+1)
		day := clampDay(dayOfMonth, year, month)
		due := core.NewDate(year, int(month), day)
		if due.After(after) {
			return due
		}
		idx += c.stepMonths
	}
}

// clampDay bounds a day-of-month rule to the days the month actually has.
func clampDay(day, year int, month time.Month) int {
	if day < 1 {
		return 1
	}
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day > lastDay {
		return lastDay
	}
	return day
}

// dueStrategies maps frequencies to their checkers. The registry gives
// O(1) lookup and lets new frequencies register without modification
// here.
var dueStrategies = map[core.Frequency]DueChecker{
	core.Monthly:      periodChecker{stepMonths: 1},
	core.BiMonthly:    periodChecker{stepMonths: 2},
	core.Quarterly:    periodChecker{stepMonths: 3},
	core.SemiAnnually: periodChecker{stepMonths: 6},
	core.Yearly:       periodChecker{stepMonths: 12},
}

// periodMonths mirrors dueStrategies for monthly-equivalent amount math.
var periodMonths = map[core.Frequency]int64{
	core.Monthly:      1,
	core.BiMonthly:    2,
	core.Quarterly:    3,
	core.SemiAnnually: 6,
	core.Yearly:       12,
}

// GetDueChecker returns the checker for a frequency, or an error for an
// unknown one.
func GetDueChecker(frequency core.Frequency) (DueChecker, error) {
	checker, ok := dueStrategies[frequency]
	if !ok {
		return nil, fmt.Errorf("unknown frequency: %s", frequency)
	}
	return checker, nil
}

// RegisterDueChecker registers a checker for a new frequency.
func RegisterDueChecker(frequency core.Frequency, checker DueChecker) {
	dueStrategies[frequency] = checker
}

// MonthlyEquivalentCents spreads a per-period amount over its period,
// rounding down. Unknown frequencies count as monthly.
func MonthlyEquivalentCents(amountCents int64, frequency core.Frequency) int64 {
	months, ok := periodMonths[frequency]
	if !ok || months < 1 {
		return amountCents
	}
	return amountCents / months
}

// anchorMonth extracts the phase month from a server timestamp,
// defaulting to January when the timestamp is absent or unparseable.
func anchorMonth(createdAt string) time.Month {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, createdAt); err == nil {
			return t.Month()
		}
	}
	return time.January
}
