package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDay(t *testing.T) {
	day, err := ParseDay("Monday")
	assert.NoError(t, err)
	assert.Equal(t, Monday, day)

	day, err = ParseDay("Sunday")
	assert.NoError(t, err)
	assert.Equal(t, Sunday, day)
}

func TestParseDay_Invalid(t *testing.T) {
	_, err := ParseDay("Funday")
	assert.ErrorIs(t, err, ErrInvalidDay)

	// Matching is exact, not case-insensitive
	_, err = ParseDay("monday")
	assert.ErrorIs(t, err, ErrInvalidDay)

	_, err = ParseDay("")
	assert.ErrorIs(t, err, ErrInvalidDay)
}

func TestParseShift(t *testing.T) {
	shift, err := ParseShift("Afternoon")
	assert.NoError(t, err)
	assert.Equal(t, Afternoon, shift)

	_, err = ParseShift("Midnight")
	assert.ErrorIs(t, err, ErrInvalidShift)
}

func TestDayString(t *testing.T) {
	assert.Equal(t, "Wednesday", Wednesday.String())
	assert.Equal(t, "Day(42)", Day(42).String())
}

func TestShiftString(t *testing.T) {
	assert.Equal(t, "Evening", Evening.String())
	assert.Equal(t, "Shift(-1)", Shift(-1).String())
}

func TestValid(t *testing.T) {
	assert.True(t, Monday.Valid())
	assert.True(t, Sunday.Valid())
	assert.False(t, Day(7).Valid())
	assert.False(t, Day(-1).Valid())

	assert.True(t, Morning.Valid())
	assert.True(t, Evening.Valid())
	assert.False(t, Shift(3).Valid())
}

func TestCanonicalOrder(t *testing.T) {
	days := Days()
	assert.Len(t, days, NumDays)
	assert.Equal(t, Monday, days[0])
	assert.Equal(t, Sunday, days[6])

	shifts := Shifts()
	assert.Len(t, shifts, NumShifts)
	assert.Equal(t, Morning, shifts[0])
	assert.Equal(t, Evening, shifts[2])
}

func TestDefaultRules(t *testing.T) {
	rules := DefaultRules()
	assert.Equal(t, 5, rules.MaxShiftsPerWeek)
	assert.Equal(t, 2, rules.MinEmployeesPerShift)
	assert.Equal(t, 9, rules.MinTotalEmployees)
}
