package scheduler

// preferenceSet holds one employee's weekly shift preferences.
// Day order and per-day shift order both record insertion order:
// the first shift added for a day is that day's highest priority.
type preferenceSet struct {
	dayOrder []Day
	shifts   [NumDays][]Shift
}

func (p *preferenceSet) add(day Day, shift Shift) {
	existing := p.shifts[day]
	if len(existing) == 0 {
		p.dayOrder = append(p.dayOrder, day)
	}
	for _, s := range existing {
		if s == shift {
			// Already recorded; adding again has no effect
			return
		}
	}
	p.shifts[day] = append(existing, shift)
}

// Roster is the cumulative set of known employees and their preferences.
// Employees are identified by name and iterated in registration order so
// schedule generation is reproducible for identical input.
type Roster struct {
	order   []string
	members map[string]struct{}
	prefs   map[string]*preferenceSet
}

// NewRoster creates an empty roster
func NewRoster() *Roster {
	return &Roster{
		members: make(map[string]struct{}),
		prefs:   make(map[string]*preferenceSet),
	}
}

// AddEmployee registers an employee without preferences.
// Registering the same name twice has no effect.
func (r *Roster) AddEmployee(name string) {
	if _, ok := r.members[name]; ok {
		return
	}
	r.members[name] = struct{}{}
	r.order = append(r.order, name)
}

// AddPreference records that the employee would like to work the given shift
// on the given day, registering the employee if needed. Invalid day or shift
// values are ignored and reported with a false return. Re-adding an existing
// (day, shift) preference is a no-op.
func (r *Roster) AddPreference(name string, day Day, shift Shift) bool {
	if !day.Valid() || !shift.Valid() {
		return false
	}

	r.AddEmployee(name)

	set, ok := r.prefs[name]
	if !ok {
		set = &preferenceSet{}
		r.prefs[name] = set
	}
	set.add(day, shift)
	return true
}

// Remove deletes the employee and their preferences from the roster.
// Removing an unknown name has no effect.
func (r *Roster) Remove(name string) {
	if _, ok := r.members[name]; !ok {
		return
	}
	delete(r.members, name)
	delete(r.prefs, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Contains reports whether the employee is registered
func (r *Roster) Contains(name string) bool {
	_, ok := r.members[name]
	return ok
}

// Count returns the number of registered employees
func (r *Roster) Count() int {
	return len(r.order)
}

// Employees returns all registered names in registration order
func (r *Roster) Employees() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Preferences returns a copy of the employee's preferred shifts keyed by day.
// Employees with no recorded preferences get an empty map, not an error.
func (r *Roster) Preferences(name string) map[Day][]Shift {
	out := make(map[Day][]Shift)
	set, ok := r.prefs[name]
	if !ok {
		return out
	}
	for _, day := range set.dayOrder {
		shifts := make([]Shift, len(set.shifts[day]))
		copy(shifts, set.shifts[day])
		out[day] = shifts
	}
	return out
}

// PreferredDays returns the days the employee has preferences for, in the
// order the days were first mentioned.
func (r *Roster) PreferredDays(name string) []Day {
	set, ok := r.prefs[name]
	if !ok {
		return nil
	}
	out := make([]Day, len(set.dayOrder))
	copy(out, set.dayOrder)
	return out
}

// PreferredShifts returns the employee's preferred shifts for one day in
// priority order.
func (r *Roster) PreferredShifts(name string, day Day) []Shift {
	set, ok := r.prefs[name]
	if !ok || !day.Valid() {
		return nil
	}
	out := make([]Shift, len(set.shifts[day]))
	copy(out, set.shifts[day])
	return out
}

// HasPreferences reports whether the employee has at least one recorded preference
func (r *Roster) HasPreferences(name string) bool {
	set, ok := r.prefs[name]
	return ok && len(set.dayOrder) > 0
}
