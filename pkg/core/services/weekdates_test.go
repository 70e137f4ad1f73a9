package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekDates_MondayFirst(t *testing.T) {
	// 2026-09-02 is a Wednesday; its week starts Monday 2026-08-31
	anchor := time.Date(2026, 9, 2, 15, 30, 0, 0, time.UTC)

	dates, err := WeekDates(anchor)
	require.NoError(t, err)
	require.Len(t, dates, 7)

	assert.Equal(t, "2026-08-31", dates[0].Format("2006-01-02"))
	assert.Equal(t, time.Monday, dates[0].Weekday())
	assert.Equal(t, time.Sunday, dates[6].Weekday())

	for i := 1; i < len(dates); i++ {
		assert.Equal(t, dates[i-1].AddDate(0, 0, 1), dates[i], "dates must be consecutive")
	}
}

func TestWeekDates_AnchorAlreadyMonday(t *testing.T) {
	anchor := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	dates, err := WeekDates(anchor)
	require.NoError(t, err)
	assert.Equal(t, "2026-08-31", dates[0].Format("2006-01-02"))
}

func TestWeekDatesFromRule(t *testing.T) {
	anchor := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	// An unbounded daily rule still yields exactly seven dates
	dates, err := WeekDatesFromRule("FREQ=DAILY", anchor)
	require.NoError(t, err)
	require.Len(t, dates, 7)
	assert.Equal(t, time.Monday, dates[0].Weekday())
}

func TestWeekDatesFromRule_TooFewOccurrences(t *testing.T) {
	anchor := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	_, err := WeekDatesFromRule("FREQ=DAILY;COUNT=3", anchor)
	assert.Error(t, err)
}

func TestWeekDatesFromRule_InvalidRule(t *testing.T) {
	_, err := WeekDatesFromRule("NOT_A_RULE", time.Now())
	assert.Error(t, err)
}
