package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddEmployee_Idempotent(t *testing.T) {
	r := NewRoster()
	r.AddEmployee("Alice")
	r.AddEmployee("Alice")

	assert.Equal(t, 1, r.Count())
	assert.Equal(t, []string{"Alice"}, r.Employees())
}

func TestAddEmployee_RegistrationOrder(t *testing.T) {
	r := NewRoster()
	r.AddEmployee("Carol")
	r.AddEmployee("Alice")
	r.AddEmployee("Bob")

	// Registration order, not lexical order
	assert.Equal(t, []string{"Carol", "Alice", "Bob"}, r.Employees())
}

func TestAddPreference_RegistersImplicitly(t *testing.T) {
	r := NewRoster()
	ok := r.AddPreference("Dave", Monday, Morning)

	assert.True(t, ok)
	assert.True(t, r.Contains("Dave"))
	assert.Equal(t, 1, r.Count())
}

func TestAddPreference_Idempotent(t *testing.T) {
	r := NewRoster()
	r.AddPreference("Dave", Monday, Morning)
	r.AddPreference("Dave", Monday, Morning)

	assert.Equal(t, []Shift{Morning}, r.PreferredShifts("Dave", Monday))
}

func TestAddPreference_PriorityOrder(t *testing.T) {
	r := NewRoster()
	r.AddPreference("Dave", Monday, Evening)
	r.AddPreference("Dave", Monday, Morning)

	// Insertion order is priority order
	assert.Equal(t, []Shift{Evening, Morning}, r.PreferredShifts("Dave", Monday))
}

func TestAddPreference_DayOrderIsFirstMention(t *testing.T) {
	r := NewRoster()
	r.AddPreference("Dave", Friday, Morning)
	r.AddPreference("Dave", Monday, Evening)
	r.AddPreference("Dave", Friday, Evening)

	assert.Equal(t, []Day{Friday, Monday}, r.PreferredDays("Dave"))
}

func TestAddPreference_InvalidValues(t *testing.T) {
	r := NewRoster()

	assert.False(t, r.AddPreference("Dave", Day(99), Morning))
	assert.False(t, r.AddPreference("Dave", Monday, Shift(99)))

	// An ignored preference must not register the employee either
	assert.False(t, r.Contains("Dave"))
	assert.Equal(t, 0, r.Count())
}

func TestPreferences_EmptyWhenNone(t *testing.T) {
	r := NewRoster()
	r.AddEmployee("Alice")

	prefs := r.Preferences("Alice")
	assert.NotNil(t, prefs)
	assert.Empty(t, prefs)

	// Unknown employees also get an empty map, not an error
	assert.Empty(t, r.Preferences("Nobody"))
}

func TestPreferences_ReturnsCopy(t *testing.T) {
	r := NewRoster()
	r.AddPreference("Dave", Monday, Morning)

	prefs := r.Preferences("Dave")
	prefs[Monday][0] = Evening

	assert.Equal(t, []Shift{Morning}, r.PreferredShifts("Dave", Monday))
}

func TestRemove(t *testing.T) {
	r := NewRoster()
	r.AddEmployee("Alice")
	r.AddPreference("Bob", Tuesday, Afternoon)
	r.AddEmployee("Carol")

	r.Remove("Bob")

	assert.Equal(t, 2, r.Count())
	assert.Equal(t, []string{"Alice", "Carol"}, r.Employees())
	assert.False(t, r.Contains("Bob"))
	assert.Empty(t, r.Preferences("Bob"))
}

func TestRemove_UnknownIsNoop(t *testing.T) {
	r := NewRoster()
	r.AddEmployee("Alice")

	r.Remove("Nobody")

	assert.Equal(t, 1, r.Count())
}

func TestHasPreferences(t *testing.T) {
	r := NewRoster()
	r.AddEmployee("Alice")
	r.AddPreference("Bob", Monday, Morning)

	assert.False(t, r.HasPreferences("Alice"))
	assert.True(t, r.HasPreferences("Bob"))
}
