package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ListEmployeesCmd creates the listEmployees command
func ListEmployeesCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listEmployees",
		Short: "List all registered employees and their preference counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			employees := app.Engine.Employees()

			fmt.Printf("\nFound %d employees:\n\n", len(employees))
			for _, name := range employees {
				prefs := app.Engine.Preferences(name)
				count := 0
				for _, shifts := range prefs {
					count += len(shifts)
				}
				if count == 0 {
					fmt.Printf("- %s (no preferences)\n", name)
				} else {
					fmt.Printf("- %s (%d preferences across %d days)\n", name, count, len(prefs))
				}
			}

			return nil
		},
	}
}
