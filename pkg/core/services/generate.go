package services

import (
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/staffrota/shift-scheduler/pkg/core/scheduler"
)

// GenerateResult contains the outcome of a schedule generation run
type GenerateResult struct {
	// RunID uniquely identifies this generation run in logs and output
	RunID string

	// Report is the successful schedule report
	Report *scheduler.ScheduleReport

	// Text is the rendered report, ready to display
	Text string
}

// GenerateSchedule runs the engine's two-pass generation and renders the
// result. Scheduling failures come back as the engine's structured errors
// (*scheduler.InsufficientRosterError, *scheduler.StaffingError) so callers
// can present the diagnostics.
func GenerateSchedule(engine *scheduler.Engine, logger *zap.Logger) (*GenerateResult, error) {
	runID := uuid.New().String()

	logger.Info("Generating schedule",
		zap.String("run_id", runID),
		zap.Int("employees", engine.EmployeeCount()))

	report, err := engine.GenerateSchedule()
	if err != nil {
		var rosterErr *scheduler.InsufficientRosterError
		var staffingErr *scheduler.StaffingError

		switch {
		case errors.As(err, &rosterErr):
			logger.Warn("Roster below minimum",
				zap.String("run_id", runID),
				zap.Int("count", rosterErr.Count),
				zap.Int("required", rosterErr.Required))
		case errors.As(err, &staffingErr):
			logger.Warn("Slot could not be staffed",
				zap.String("run_id", runID),
				zap.String("day", staffingErr.Day.String()),
				zap.String("shift", staffingErr.Shift.String()))
		}

		return nil, err
	}

	logger.Info("Schedule generated",
		zap.String("run_id", runID),
		zap.Int("employees", len(report.Employees)))

	return &GenerateResult{
		RunID:  runID,
		Report: report,
		Text:   report.Text(),
	}, nil
}
