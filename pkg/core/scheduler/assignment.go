package scheduler

// WeekSchedule is a full week's assignments: one ordered employee list per
// (day, shift) slot, indexed by the Day and Shift enums.
type WeekSchedule [NumDays][NumShifts][]string

// Slot returns the employees assigned to the given day and shift,
// in assignment order.
func (w WeekSchedule) Slot(day Day, shift Shift) []string {
	return w[day][shift]
}

// CountOf returns how many slots across the week contain the employee
func (w WeekSchedule) CountOf(name string) int {
	count := 0
	for _, day := range Days() {
		for _, shift := range Shifts() {
			for _, assigned := range w[day][shift] {
				if assigned == name {
					count++
				}
			}
		}
	}
	return count
}

// assignmentState is the in-progress schedule for one generation run:
// the slot table plus the derived per-day assignment sets and per-employee
// workload counters. It is rebuilt from scratch on every generation.
type assignmentState struct {
	rules    Rules
	schedule WeekSchedule
	daily    [NumDays]map[string]struct{}
	workload map[string]int
}

func newAssignmentState(rules Rules) *assignmentState {
	s := &assignmentState{rules: rules}
	s.clear()
	return s
}

// clear resets the state to exactly its post-construction shape:
// 21 empty slots, empty daily sets, zero workload counters.
func (s *assignmentState) clear() {
	for _, day := range Days() {
		s.daily[day] = make(map[string]struct{})
		for _, shift := range Shifts() {
			s.schedule[day][shift] = nil
		}
	}
	s.workload = make(map[string]int)
}

// canAssign reports whether the employee may be placed in the given slot:
// not already working that day, under the weekly cap, and not already in
// the slot itself. The slot membership check is redundant while the daily
// set is consistent, but is kept as a defensive guard.
func (s *assignmentState) canAssign(name string, day Day, shift Shift) bool {
	if _, working := s.daily[day][name]; working {
		return false
	}
	if s.workload[name] >= s.rules.MaxShiftsPerWeek {
		return false
	}
	for _, assigned := range s.schedule[day][shift] {
		if assigned == name {
			return false
		}
	}
	return true
}

// assign places the employee in the slot unconditionally and updates the
// derived structures. Callers must check canAssign first; the split between
// checking and assigning lets the two passes apply different eligibility
// rules around the same primitive.
func (s *assignmentState) assign(name string, day Day, shift Shift) {
	s.schedule[day][shift] = append(s.schedule[day][shift], name)
	s.daily[day][name] = struct{}{}
	s.workload[name]++
}

// remove purges the employee from every slot, daily set, and workload
// counter. Used when an employee leaves the roster so no stale state
// survives in the last generated schedule.
func (s *assignmentState) remove(name string) {
	for _, day := range Days() {
		delete(s.daily[day], name)
		for _, shift := range Shifts() {
			slot := s.schedule[day][shift]
			for i, assigned := range slot {
				if assigned == name {
					s.schedule[day][shift] = append(slot[:i], slot[i+1:]...)
					break
				}
			}
		}
	}
	delete(s.workload, name)
}

// snapshotSchedule returns a deep copy of the slot table
func (s *assignmentState) snapshotSchedule() WeekSchedule {
	var out WeekSchedule
	for _, day := range Days() {
		for _, shift := range Shifts() {
			slot := make([]string, len(s.schedule[day][shift]))
			copy(slot, s.schedule[day][shift])
			out[day][shift] = slot
		}
	}
	return out
}

// snapshotWorkload returns a copy of the workload counters
func (s *assignmentState) snapshotWorkload() map[string]int {
	out := make(map[string]int, len(s.workload))
	for name, count := range s.workload {
		out[name] = count
	}
	return out
}
