package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/staffrota/shift-scheduler/cmd/cli/commands"
	"github.com/staffrota/shift-scheduler/internal/config"
	"github.com/staffrota/shift-scheduler/pkg/core/scheduler"
	"github.com/staffrota/shift-scheduler/pkg/core/services"
	"github.com/staffrota/shift-scheduler/pkg/utils/logging"
)

var (
	env        string
	configPath string
	app        *commands.AppContext
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "staffrota",
		Short: "Staffrota - weekly employee shift scheduling",
		Long:  `A CLI tool for managing an employee roster, shift preferences, and weekly schedule generation.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "dev", "Environment name used for log files")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: staffrota_config.yaml in cwd or home)")

	rootCmd.AddCommand(commands.AddEmployeeCmd(appRef()))
	rootCmd.AddCommand(commands.AddPreferenceCmd(appRef()))
	rootCmd.AddCommand(commands.RemovePreferencesCmd(appRef()))
	rootCmd.AddCommand(commands.ListEmployeesCmd(appRef()))
	rootCmd.AddCommand(commands.ViewPreferencesCmd(appRef()))
	rootCmd.AddCommand(commands.GenerateCmd(appRef()))
	rootCmd.AddCommand(commands.WeekDatesCmd(appRef()))
	rootCmd.AddCommand(commands.InteractiveCmd(appRef()))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// appRef returns the shared AppContext, created empty here and populated by
// initApp once flags are parsed.
func appRef() *commands.AppContext {
	if app == nil {
		app = &commands.AppContext{}
	}
	return app
}

// initApp sets up the logger, loads configuration, builds the engine, and
// loads the roster file if one exists.
func initApp() error {
	ctx := appRef()

	logger, err := logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	ctx.Logger = logger

	var cfg *config.Config
	if configPath != "" {
		cfg, err = config.LoadFromPath(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	ctx.Cfg = cfg

	ctx.Engine = scheduler.New(cfg.SchedulerRules())

	// A missing roster file just means a fresh start
	result, err := services.LoadRoster(cfg.RosterPath, ctx.Engine, logger)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug("No roster file found, starting empty")
			return nil
		}
		return fmt.Errorf("failed to load roster: %w", err)
	}

	for _, skipped := range result.Skipped {
		fmt.Printf("⚠️  Skipped preference for %s (%s %s): %s\n",
			skipped.Employee, skipped.Day, skipped.Shift, skipped.Reason)
	}

	return nil
}
