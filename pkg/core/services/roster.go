package services

import (
	"go.uber.org/zap"

	"github.com/staffrota/shift-scheduler/pkg/core/scheduler"
	"github.com/staffrota/shift-scheduler/pkg/rosterfile"
)

// SkippedPreference records a roster file entry that named an unknown day
// or shift. Skipped entries mirror the engine's silent-ignore semantics but
// stay visible to the caller.
type SkippedPreference struct {
	Employee string
	Day      string
	Shift    string
	Reason   string
}

// LoadResult summarizes applying a roster file to an engine
type LoadResult struct {
	Employees   int
	Preferences int
	Skipped     []SkippedPreference
}

// LoadRoster reads the roster file at path and applies it to the engine.
// Preferences with invalid day or shift names are skipped and reported,
// never fatal.
func LoadRoster(path string, engine *scheduler.Engine, logger *zap.Logger) (*LoadResult, error) {
	doc, err := rosterfile.Load(path)
	if err != nil {
		return nil, err
	}

	result := &LoadResult{}
	for _, emp := range doc.Employees {
		engine.AddEmployee(emp.Name)
		result.Employees++

		for _, pref := range emp.Preferences {
			day, err := scheduler.ParseDay(pref.Day)
			if err != nil {
				result.Skipped = append(result.Skipped, SkippedPreference{
					Employee: emp.Name, Day: pref.Day, Shift: pref.Shift,
					Reason: err.Error(),
				})
				continue
			}
			shift, err := scheduler.ParseShift(pref.Shift)
			if err != nil {
				result.Skipped = append(result.Skipped, SkippedPreference{
					Employee: emp.Name, Day: pref.Day, Shift: pref.Shift,
					Reason: err.Error(),
				})
				continue
			}
			if engine.AddPreference(emp.Name, day, shift) {
				result.Preferences++
			}
		}
	}

	logger.Debug("Roster loaded",
		zap.String("path", path),
		zap.Int("employees", result.Employees),
		zap.Int("preferences", result.Preferences),
		zap.Int("skipped", len(result.Skipped)))

	return result, nil
}

// SaveRoster writes the engine's current roster to the roster file at path.
// Days are written in canonical Monday-first order; shift order within a
// day preserves preference priority.
func SaveRoster(path string, engine *scheduler.Engine, logger *zap.Logger) error {
	doc := &rosterfile.Document{}

	for _, name := range engine.Employees() {
		emp := rosterfile.Employee{Name: name}

		prefs := engine.Preferences(name)
		for _, day := range scheduler.Days() {
			for _, shift := range prefs[day] {
				emp.Preferences = append(emp.Preferences, rosterfile.Preference{
					Day:   day.String(),
					Shift: shift.String(),
				})
			}
		}

		doc.Employees = append(doc.Employees, emp)
	}

	if err := rosterfile.Save(path, doc); err != nil {
		return err
	}

	logger.Debug("Roster saved",
		zap.String("path", path),
		zap.Int("employees", len(doc.Employees)))

	return nil
}
