package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/staffrota/shift-scheduler/pkg/core/scheduler"
	"github.com/staffrota/shift-scheduler/pkg/core/services"
)

// GenerateCmd creates the generate command
func GenerateCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the weekly schedule from the current roster",
		Long: `Run the two-pass scheduler: a preference pass that places employees into
preferred empty slots, then a backfill pass that raises every slot to minimum
staffing by least current workload.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			weekOf, _ := cmd.Flags().GetString("week-of")

			app.Logger.Debug("generate command", zap.String("week_of", weekOf))

			result, err := services.GenerateSchedule(app.Engine, app.Logger)
			if err != nil {
				return renderFailure(app, err)
			}

			fmt.Printf("\n✓ Run %s\n\n", result.RunID)
			fmt.Print(result.Text)

			return renderWeekDates(app, weekOf)
		},
	}

	cmd.Flags().String("week-of", "", "Date (2006-01-02) inside the week to show calendar dates for")

	return cmd
}

// renderFailure prints the structured scheduling failure and keeps the
// process exit clean; a refused schedule is a reported outcome, not a crash.
func renderFailure(app *AppContext, err error) error {
	var rosterErr *scheduler.InsufficientRosterError
	if errors.As(err, &rosterErr) {
		fmt.Printf("\n❌ Schedule not generated: %v\n", rosterErr)
		return nil
	}

	var staffingErr *scheduler.StaffingError
	if errors.As(err, &staffingErr) {
		fmt.Printf("\n❌ Schedule not generated: %v\n\n", staffingErr)
		fmt.Println("Current schedule state:")
		fmt.Print(scheduler.ScheduleTextOf(staffingErr.Schedule))
		fmt.Print(scheduler.WorkloadTextOf(app.Engine.Employees(), staffingErr.Workload, app.Engine.Rules().MaxShiftsPerWeek))
		return nil
	}

	return err
}

// renderWeekDates prints the calendar dates of the scheduled week when the
// caller asked for them.
func renderWeekDates(app *AppContext, weekOf string) error {
	if weekOf == "" {
		return nil
	}

	anchor, err := time.Parse("2006-01-02", weekOf)
	if err != nil {
		return fmt.Errorf("invalid --week-of date: %w", err)
	}

	var dates []time.Time
	if app.Cfg.WeekRRule != "" {
		dates, err = services.WeekDatesFromRule(app.Cfg.WeekRRule, anchor)
	} else {
		dates, err = services.WeekDates(anchor)
	}
	if err != nil {
		return err
	}

	fmt.Println("Week dates:")
	for i, day := range scheduler.Days() {
		fmt.Printf("  %-9s %s\n", day.String()+":", dates[i].Format("2006-01-02"))
	}
	fmt.Println()

	return nil
}
