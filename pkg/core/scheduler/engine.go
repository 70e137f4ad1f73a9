package scheduler

import "sort"

// Engine is the scheduling engine: a roster of employees and preferences
// plus the assignment state of the most recent generation run.
//
// An Engine is a plain in-memory value with no internal locking. It is owned
// by a single caller; wrap it in a mutex if multiple goroutines share one.
type Engine struct {
	rules  Rules
	roster *Roster
	state  *assignmentState
}

// New creates an engine with an empty roster and the given rules
func New(rules Rules) *Engine {
	return &Engine{
		rules:  rules,
		roster: NewRoster(),
		state:  newAssignmentState(rules),
	}
}

// Rules returns the staffing constraints the engine enforces
func (e *Engine) Rules() Rules {
	return e.rules
}

// AddEmployee registers an employee; duplicates are ignored
func (e *Engine) AddEmployee(name string) {
	e.roster.AddEmployee(name)
}

// AddPreference records a (day, shift) preference for the employee,
// registering them if needed. Invalid day or shift values are ignored;
// the return value reports whether the preference was accepted.
func (e *Engine) AddPreference(name string, day Day, shift Shift) bool {
	return e.roster.AddPreference(name, day, shift)
}

// RemovePreferences deletes the employee's preferences, removes them from
// the roster, and purges them from the last generated schedule and its
// derived counters.
func (e *Engine) RemovePreferences(name string) {
	e.roster.Remove(name)
	e.state.remove(name)
}

// Preferences returns a copy of the employee's preferred shifts keyed by
// day; empty when the employee has none.
func (e *Engine) Preferences(name string) map[Day][]Shift {
	return e.roster.Preferences(name)
}

// Employees returns all registered names in registration order
func (e *Engine) Employees() []string {
	return e.roster.Employees()
}

// EmployeeCount returns the number of registered employees
func (e *Engine) EmployeeCount() int {
	return e.roster.Count()
}

// GenerateSchedule builds a fresh weekly schedule from the current roster.
//
// Generation runs in two passes. The preference pass gives each employee at
// most one preferred slot per day, and only ever starts an empty slot. The
// backfill pass then tops every slot up to minimum staffing, always choosing
// the least-loaded eligible employee.
//
// On success the returned report holds deep copies of the schedule and
// workload. On failure the error is either *InsufficientRosterError (roster
// below minimum, nothing mutated) or *StaffingError (a slot could not be
// staffed; carries the partial schedule for diagnosis).
func (e *Engine) GenerateSchedule() (*ScheduleReport, error) {
	if e.roster.Count() < e.rules.MinTotalEmployees {
		return nil, &InsufficientRosterError{
			Count:    e.roster.Count(),
			Required: e.rules.MinTotalEmployees,
		}
	}

	e.state.clear()

	e.assignPreferred()

	if err := e.backfill(); err != nil {
		return nil, err
	}

	return &ScheduleReport{
		Schedule:  e.state.snapshotSchedule(),
		Workload:  e.state.snapshotWorkload(),
		Employees: e.roster.Employees(),
		Rules:     e.rules,
	}, nil
}

// assignPreferred is the preference pass. Employees are visited in
// registration order and their preferred days in the order the days were
// recorded, so the pass is reproducible for identical input. For each day
// the first preferred shift that is assignable and still empty wins; a
// preference assignment never joins a non-empty slot, which keeps slots
// open for even coverage during backfill.
func (e *Engine) assignPreferred() {
	for _, name := range e.roster.Employees() {
		for _, day := range e.roster.PreferredDays(name) {
			for _, shift := range e.roster.PreferredShifts(name, day) {
				if !e.state.canAssign(name, day, shift) {
					continue
				}
				if len(e.state.schedule[day][shift]) > 0 {
					continue
				}
				e.state.assign(name, day, shift)
				break
			}
		}
	}
}

// backfill is the completion pass: every slot is raised to minimum staffing
// by repeatedly assigning the least-loaded eligible employee. Ties on
// workload break by name so selection does not depend on registration order.
func (e *Engine) backfill() *StaffingError {
	for _, day := range Days() {
		for _, shift := range Shifts() {
			for len(e.state.schedule[day][shift]) < e.rules.MinEmployeesPerShift {
				candidates := e.eligibleCandidates(day, shift)

				if len(candidates) == 0 {
					candidates = e.relaxedCandidates(day)
				}

				if len(candidates) == 0 {
					return &StaffingError{
						Day:      day,
						Shift:    shift,
						Schedule: e.state.snapshotSchedule(),
						Workload: e.state.snapshotWorkload(),
					}
				}

				sort.Slice(candidates, func(i, j int) bool {
					wi := e.state.workload[candidates[i]]
					wj := e.state.workload[candidates[j]]
					if wi != wj {
						return wi < wj
					}
					return candidates[i] < candidates[j]
				})

				e.state.assign(candidates[0], day, shift)
			}
		}
	}
	return nil
}

// eligibleCandidates returns every employee canAssign accepts for the slot
func (e *Engine) eligibleCandidates(day Day, shift Shift) []string {
	var candidates []string
	for _, name := range e.roster.Employees() {
		if e.state.canAssign(name, day, shift) {
			candidates = append(candidates, name)
		}
	}
	return candidates
}

// relaxedCandidates is the fallback pool: under the weekly cap and not yet
// working that day, without the per-slot membership check. While the daily
// sets stay consistent this pool matches eligibleCandidates exactly; it
// exists to catch any divergence between the two checks.
func (e *Engine) relaxedCandidates(day Day) []string {
	var candidates []string
	for _, name := range e.roster.Employees() {
		if e.state.workload[name] >= e.rules.MaxShiftsPerWeek {
			continue
		}
		if _, working := e.state.daily[day][name]; working {
			continue
		}
		candidates = append(candidates, name)
	}
	return candidates
}
