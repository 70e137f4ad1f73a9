package commands

import (
	"go.uber.org/zap"

	"github.com/staffrota/shift-scheduler/internal/config"
	"github.com/staffrota/shift-scheduler/pkg/core/scheduler"
	"github.com/staffrota/shift-scheduler/pkg/core/services"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg    *config.Config
	Engine *scheduler.Engine
	Logger *zap.Logger
}

// saveRoster persists the engine's roster after a mutating command
func (app *AppContext) saveRoster() error {
	return services.SaveRoster(app.Cfg.RosterPath, app.Engine, app.Logger)
}
