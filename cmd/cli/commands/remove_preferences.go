package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RemovePreferencesCmd creates the removePreferences command
func RemovePreferencesCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "removePreferences <name>",
		Short: "Remove an employee and all their preferences from the roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			app.Engine.RemovePreferences(name)
			app.Logger.Info("Employee removed", zap.String("name", name))

			if err := app.saveRoster(); err != nil {
				return err
			}

			fmt.Printf("✓ Employee %q removed (%d on roster)\n", name, app.Engine.EmployeeCount())
			return nil
		},
	}
}
