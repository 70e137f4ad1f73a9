package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/staffrota/shift-scheduler/pkg/core/scheduler"
	"github.com/staffrota/shift-scheduler/pkg/core/services"
)

// WeekDatesCmd creates the weekDates command
func WeekDatesCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "weekDates [date]",
		Short: "Show the calendar dates of a schedule week (defaults to the current week)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			anchor := time.Now()
			if len(args) > 0 {
				parsed, err := time.Parse("2006-01-02", args[0])
				if err != nil {
					return fmt.Errorf("invalid date: %w", err)
				}
				anchor = parsed
			}

			var dates []time.Time
			var err error
			if app.Cfg.WeekRRule != "" {
				dates, err = services.WeekDatesFromRule(app.Cfg.WeekRRule, anchor)
			} else {
				dates, err = services.WeekDates(anchor)
			}
			if err != nil {
				return err
			}

			fmt.Println()
			for i, day := range scheduler.Days() {
				fmt.Printf("%-10s %s\n", day.String()+":", dates[i].Format("2006-01-02"))
			}
			fmt.Println()

			return nil
		},
	}
}
