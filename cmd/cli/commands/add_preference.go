package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/staffrota/shift-scheduler/pkg/core/scheduler"
)

// AddPreferenceCmd creates the addPreference command
func AddPreferenceCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "addPreference <name> <day> <shift>",
		Short: "Record a preferred (day, shift) slot for an employee",
		Long: `Record that an employee would prefer to work a given shift on a given day.
Preferences are ordered: the first shift added for a day is that day's highest
priority. Unknown day or shift names are ignored.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			day, err := scheduler.ParseDay(args[1])
			if err != nil {
				fmt.Printf("⚠️  Preference ignored: %v\n", err)
				return nil
			}
			shift, err := scheduler.ParseShift(args[2])
			if err != nil {
				fmt.Printf("⚠️  Preference ignored: %v\n", err)
				return nil
			}

			app.Engine.AddPreference(name, day, shift)
			app.Logger.Info("Preference added",
				zap.String("name", name),
				zap.String("day", day.String()),
				zap.String("shift", shift.String()))

			if err := app.saveRoster(); err != nil {
				return err
			}

			fmt.Printf("✓ Preference recorded: %s → %s %s\n", name, day, shift)
			return nil
		},
	}
}
