package scheduler

import (
	"fmt"
	"strings"
)

// ScheduleReport is the result of a successful generation run. The schedule
// and workload are deep copies; later engine mutations do not affect them.
type ScheduleReport struct {
	// Schedule maps every (day, shift) slot to its assigned employees
	Schedule WeekSchedule

	// Workload is the number of shifts assigned to each employee
	Workload map[string]int

	// Employees lists the roster in registration order, for stable rendering
	Employees []string

	// Rules are the constraints the schedule was generated under
	Rules Rules
}

// Text renders the full success report: the workload summary followed by
// the week's schedule.
func (r *ScheduleReport) Text() string {
	var sb strings.Builder
	sb.WriteString("Schedule successfully generated!\n\n")
	sb.WriteString(workloadText(r.Employees, r.Workload, r.Rules.MaxShiftsPerWeek))
	sb.WriteString("\n")
	sb.WriteString(scheduleText(r.Schedule))
	return sb.String()
}

// WorkloadText renders the per-employee workload summary, flagging anyone
// at the weekly cap.
func (r *ScheduleReport) WorkloadText() string {
	return workloadText(r.Employees, r.Workload, r.Rules.MaxShiftsPerWeek)
}

// ScheduleText renders the week's schedule as indented day/shift lines
func (r *ScheduleReport) ScheduleText() string {
	return scheduleText(r.Schedule)
}

// ScheduleText renders the engine's current (most recently generated)
// schedule. Empty shift lines are omitted; after a successful generation no
// slot is empty.
func (e *Engine) ScheduleText() string {
	return scheduleText(e.state.schedule)
}

// WorkloadText renders the per-employee workload of the engine's current
// schedule.
func (e *Engine) WorkloadText() string {
	return workloadText(e.roster.Employees(), e.state.workload, e.rules.MaxShiftsPerWeek)
}

// PreferencesText renders every employee's recorded preferences, one
// employee per block, days in the order they were recorded.
func (e *Engine) PreferencesText() string {
	var sb strings.Builder
	sb.WriteString("Current Preferences:\n")
	for _, name := range e.roster.Employees() {
		if !e.roster.HasPreferences(name) {
			continue
		}
		sb.WriteString(name)
		sb.WriteString(":\n")
		for _, day := range e.roster.PreferredDays(name) {
			names := make([]string, 0, NumShifts)
			for _, shift := range e.roster.PreferredShifts(name, day) {
				names = append(names, shift.String())
			}
			fmt.Fprintf(&sb, "  %s: %s\n", day, strings.Join(names, ", "))
		}
	}
	return sb.String()
}

// ScheduleTextOf renders any schedule snapshot, including the partial
// schedule carried by a StaffingError.
func ScheduleTextOf(schedule WeekSchedule) string {
	return scheduleText(schedule)
}

// WorkloadTextOf renders a workload snapshot for the given employees in the
// given order.
func WorkloadTextOf(employees []string, workload map[string]int, maxShifts int) string {
	return workloadText(employees, workload, maxShifts)
}

func workloadText(employees []string, workload map[string]int, maxShifts int) string {
	var sb strings.Builder
	sb.WriteString("Employee Workload:\n")
	for _, name := range employees {
		shifts := workload[name]
		maxFlag := ""
		if shifts >= maxShifts {
			maxFlag = " (MAX)"
		}
		fmt.Fprintf(&sb, "%s: %d shifts%s\n", name, shifts, maxFlag)
	}
	return sb.String()
}

func scheduleText(schedule WeekSchedule) string {
	var sb strings.Builder
	sb.WriteString("Weekly Schedule:\n\n")
	for _, day := range Days() {
		sb.WriteString(day.String())
		sb.WriteString(":\n")
		for _, shift := range Shifts() {
			assigned := schedule[day][shift]
			if len(assigned) == 0 {
				continue
			}
			fmt.Fprintf(&sb, "  %s: %s\n", shift, strings.Join(assigned, ", "))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
