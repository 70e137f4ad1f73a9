package scheduler

import (
	"errors"
	"fmt"
)

// Day is one of the seven days of the scheduling week.
type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday

	// NumDays is the number of days in a scheduling week
	NumDays = 7
)

// Shift is one of the three shift times within a day.
type Shift int

const (
	Morning Shift = iota
	Afternoon
	Evening

	// NumShifts is the number of shifts per day
	NumShifts = 3
)

var dayNames = [NumDays]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

var shiftNames = [NumShifts]string{"Morning", "Afternoon", "Evening"}

// ErrInvalidDay is returned when a string does not name a day of the week
var ErrInvalidDay = errors.New("invalid day")

// ErrInvalidShift is returned when a string does not name a shift time
var ErrInvalidShift = errors.New("invalid shift")

// Days returns all days in canonical order (Monday first).
// Both scheduling passes iterate days in this order.
func Days() []Day {
	return []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// Shifts returns all shift times in canonical order (Morning first).
func Shifts() []Shift {
	return []Shift{Morning, Afternoon, Evening}
}

// Valid reports whether d is one of the seven defined days
func (d Day) Valid() bool {
	return d >= Monday && d <= Sunday
}

func (d Day) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Day(%d)", int(d))
	}
	return dayNames[d]
}

// Valid reports whether s is one of the three defined shift times
func (s Shift) Valid() bool {
	return s >= Morning && s <= Evening
}

func (s Shift) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Shift(%d)", int(s))
	}
	return shiftNames[s]
}

// ParseDay converts a day name to its Day value.
// Matching is exact: "Monday" parses, "monday" and "Funday" do not.
func ParseDay(name string) (Day, error) {
	for i, dn := range dayNames {
		if dn == name {
			return Day(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDay, name)
}

// ParseShift converts a shift name to its Shift value.
func ParseShift(name string) (Shift, error) {
	for i, sn := range shiftNames {
		if sn == name {
			return Shift(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidShift, name)
}

// Rules holds the staffing constraints the engine enforces.
// The zero value is not useful; start from DefaultRules.
type Rules struct {
	// MaxShiftsPerWeek is the most shifts any employee may work in one week
	MaxShiftsPerWeek int

	// MinEmployeesPerShift is the staffing floor for every (day, shift) slot
	MinEmployeesPerShift int

	// MinTotalEmployees is the smallest roster for which generation is attempted
	MinTotalEmployees int
}

// DefaultRules returns the standard staffing constraints:
// at most 5 shifts per employee per week, at least 2 employees on every
// shift, and a roster of at least 9 employees before generation is attempted.
func DefaultRules() Rules {
	return Rules{
		MaxShiftsPerWeek:     5,
		MinEmployeesPerShift: 2,
		MinTotalEmployees:    9,
	}
}
