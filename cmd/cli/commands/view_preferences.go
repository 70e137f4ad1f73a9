package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ViewPreferencesCmd creates the viewPreferences command
func ViewPreferencesCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "viewPreferences",
		Short: "Show the recorded preferences for every employee",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println()
			fmt.Print(app.Engine.PreferencesText())
			return nil
		},
	}
}
