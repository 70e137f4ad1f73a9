package scheduler

import "fmt"

// InsufficientRosterError is returned by GenerateSchedule when the roster is
// too small to attempt generation. No schedule state is mutated.
type InsufficientRosterError struct {
	// Count is the number of registered employees
	Count int

	// Required is the minimum roster size from the engine's rules
	Required int
}

func (e *InsufficientRosterError) Error() string {
	return fmt.Sprintf("at least %d employees are required to generate a schedule (current number of employees: %d)",
		e.Required, e.Count)
}

// StaffingError is returned when the backfill pass cannot raise a slot to
// minimum staffing from any eligible candidate. It carries the partial
// schedule and workload at the point of failure for diagnosis.
type StaffingError struct {
	// Day and Shift identify the slot that could not be staffed
	Day   Day
	Shift Shift

	// Schedule is the partial schedule at the point of failure
	Schedule WeekSchedule

	// Workload is the per-employee shift count at the point of failure
	Workload map[string]int
}

func (e *StaffingError) Error() string {
	return fmt.Sprintf("unable to meet minimum staffing requirement for %s %s shift", e.Day, e.Shift)
}
