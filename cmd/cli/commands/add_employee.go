package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// AddEmployeeCmd creates the addEmployee command
func AddEmployeeCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "addEmployee <name>",
		Short: "Register an employee without preferences",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			app.Engine.AddEmployee(name)
			app.Logger.Info("Employee added", zap.String("name", name))

			if err := app.saveRoster(); err != nil {
				return err
			}

			fmt.Printf("✓ Employee %q registered (%d on roster)\n", name, app.Engine.EmployeeCount())
			return nil
		},
	}
}
