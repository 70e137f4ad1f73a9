package scheduler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkloadText_FlagsMax(t *testing.T) {
	text := WorkloadTextOf([]string{"Alice", "Bob"}, map[string]int{"Alice": 5, "Bob": 3}, 5)

	assert.Contains(t, text, "Employee Workload:")
	assert.Contains(t, text, "Alice: 5 shifts (MAX)")
	assert.Contains(t, text, "Bob: 3 shifts")
	assert.NotContains(t, text, "Bob: 3 shifts (MAX)")
}

func TestWorkloadText_ZeroForUnassigned(t *testing.T) {
	text := WorkloadTextOf([]string{"Alice"}, map[string]int{}, 5)

	assert.Contains(t, text, "Alice: 0 shifts")
}

func TestScheduleText_OmitsEmptyShiftLines(t *testing.T) {
	var week WeekSchedule
	week[Monday][Morning] = []string{"Alice", "Bob"}

	text := ScheduleTextOf(week)

	assert.Contains(t, text, "Weekly Schedule:")
	assert.Contains(t, text, "Monday:")
	assert.Contains(t, text, "  Morning: Alice, Bob")
	assert.NotContains(t, text, "Afternoon:")
	assert.NotContains(t, text, "Evening:")

	// Every day gets a header even when nothing is scheduled
	assert.Contains(t, text, "Sunday:")
}

func TestReportText_SuccessBanner(t *testing.T) {
	e := New(DefaultRules())
	for _, name := range []string{"E1", "E2", "E3", "E4", "E5", "E6", "E7", "E8", "E9"} {
		e.AddEmployee(name)
	}

	report, err := e.GenerateSchedule()
	require.NoError(t, err)

	text := report.Text()
	assert.True(t, strings.HasPrefix(text, "Schedule successfully generated!\n\n"))
	assert.Contains(t, text, "Employee Workload:")
	assert.Contains(t, text, "Weekly Schedule:")
}

func TestEngineScheduleText_TracksLastGeneration(t *testing.T) {
	e := New(DefaultRules())
	for _, name := range []string{"E1", "E2", "E3", "E4", "E5", "E6", "E7", "E8", "E9"} {
		e.AddEmployee(name)
	}

	// Before any generation the schedule renders empty
	assert.NotContains(t, e.ScheduleText(), "Morning:")

	_, err := e.GenerateSchedule()
	require.NoError(t, err)

	assert.Contains(t, e.ScheduleText(), "Morning:")
}

func TestPreferencesText(t *testing.T) {
	e := New(DefaultRules())
	e.AddEmployee("Quiet")
	e.AddPreference("Alice", Monday, Morning)
	e.AddPreference("Alice", Monday, Evening)
	e.AddPreference("Bob", Friday, Afternoon)

	text := e.PreferencesText()

	assert.Contains(t, text, "Current Preferences:")
	assert.Contains(t, text, "Alice:\n  Monday: Morning, Evening\n")
	assert.Contains(t, text, "Bob:\n  Friday: Afternoon\n")

	// Employees without preferences are not listed
	assert.NotContains(t, text, "Quiet")
}
