package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/staffrota/shift-scheduler/pkg/core/scheduler"
)

const configFileName = "staffrota_config.yaml"

// RulesConfig overrides the default staffing constraints
type RulesConfig struct {
	MaxShiftsPerWeek     int `yaml:"maxShiftsPerWeek" validate:"min=1"`
	MinEmployeesPerShift int `yaml:"minEmployeesPerShift" validate:"min=1"`
	MinTotalEmployees    int `yaml:"minTotalEmployees" validate:"min=1"`
}

// Config represents the application configuration
type Config struct {
	// RosterPath is where the CLI persists the roster between invocations
	RosterPath string `yaml:"rosterPath" validate:"required"`

	// WeekRRule optionally overrides how the seven schedule dates are
	// generated when rendering a dated week (default: daily from Monday)
	WeekRRule string `yaml:"weekRRule,omitempty"`

	// Rules optionally overrides the default staffing constraints
	Rules *RulesConfig `yaml:"rules,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Default returns the configuration used when no config file exists
func Default() *Config {
	return &Config{
		RosterPath: "roster.yaml",
	}
}

// Load loads the configuration from staffrota_config.yaml, looking in the
// current directory first and then the user's home directory. A missing
// file is not an error; defaults are returned.
func Load() (*Config, error) {
	path, found, err := findConfigFile()
	if err != nil {
		return nil, err
	}
	if !found {
		return Default(), nil
	}
	return LoadFromPath(path)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration struct, the week rrule syntax, and that
// the staffing rules describe a week that can be staffed at all.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if cfg.WeekRRule != "" {
		if _, err := rrule.StrToRRule(cfg.WeekRRule); err != nil {
			return fmt.Errorf("invalid weekRRule: %w", err)
		}
	}

	if cfg.Rules != nil {
		rules := cfg.SchedulerRules()
		needed := scheduler.NumDays * scheduler.NumShifts * rules.MinEmployeesPerShift
		capacity := rules.MinTotalEmployees * rules.MaxShiftsPerWeek
		if capacity < needed {
			return fmt.Errorf("infeasible rules: a minimum roster of %d employees at %d shifts each covers %d assignments but the week needs %d",
				rules.MinTotalEmployees, rules.MaxShiftsPerWeek, capacity, needed)
		}
	}

	return nil
}

// SchedulerRules converts the configuration to engine rules, falling back
// to the defaults when no override is set.
func (c *Config) SchedulerRules() scheduler.Rules {
	if c.Rules == nil {
		return scheduler.DefaultRules()
	}
	return scheduler.Rules{
		MaxShiftsPerWeek:     c.Rules.MaxShiftsPerWeek,
		MinEmployeesPerShift: c.Rules.MinEmployeesPerShift,
		MinTotalEmployees:    c.Rules.MinTotalEmployees,
	}
}

// findConfigFile searches for the config file in the current directory and
// then the home directory.
func findConfigFile() (string, bool, error) {
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, true, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", false, fmt.Errorf("failed to get home directory: %w", err)
	}

	homePath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homePath); err == nil {
		return homePath, true, nil
	}

	return "", false, nil
}
