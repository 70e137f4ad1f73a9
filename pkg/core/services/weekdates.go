package services

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/staffrota/shift-scheduler/pkg/core/scheduler"
)

// WeekDates returns the seven calendar dates of the schedule week containing
// weekOf, Monday first, matching the canonical day order of the schedule.
func WeekDates(weekOf time.Time) ([]time.Time, error) {
	return weekDatesFrom(weekStart(weekOf), "")
}

// WeekDatesFromRule expands a custom recurrence rule into the week's dates,
// anchored to the Monday of the week containing weekOf. The rule's first
// seven occurrences become the dates for Monday through Sunday.
func WeekDatesFromRule(ruleStr string, weekOf time.Time) ([]time.Time, error) {
	return weekDatesFrom(weekStart(weekOf), ruleStr)
}

func weekDatesFrom(start time.Time, ruleStr string) ([]time.Time, error) {
	var r *rrule.RRule
	var err error

	if ruleStr == "" {
		r, err = rrule.NewRRule(rrule.ROption{
			Freq:    rrule.DAILY,
			Count:   scheduler.NumDays,
			Dtstart: start,
		})
	} else {
		r, err = rrule.StrToRRule(ruleStr)
		if err == nil {
			r.DTStart(start)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build week recurrence: %w", err)
	}

	// Take the first seven occurrences; the rule may be unbounded
	dates := make([]time.Time, 0, scheduler.NumDays)
	next := r.Iterator()
	for len(dates) < scheduler.NumDays {
		date, ok := next()
		if !ok {
			return nil, fmt.Errorf("week recurrence produced only %d of %d dates", len(dates), scheduler.NumDays)
		}
		dates = append(dates, date)
	}

	return dates, nil
}

// weekStart returns midnight on the Monday of the week containing t
func weekStart(t time.Time) time.Time {
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	monday := t.AddDate(0, 0, -daysSinceMonday)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, t.Location())
}
