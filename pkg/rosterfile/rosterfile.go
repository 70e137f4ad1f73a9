// Package rosterfile reads and writes the YAML roster document the CLI uses
// to carry employees and preferences between invocations. The scheduling
// core itself never touches the filesystem.
package rosterfile

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Preference is one (day, shift) preference entry. Day and shift are kept as
// strings in the document; parsing against the closed day/shift sets happens
// when the document is applied to an engine.
type Preference struct {
	Day   string `yaml:"day" validate:"required"`
	Shift string `yaml:"shift" validate:"required"`
}

// Employee is one roster entry. Preference order in the document is
// priority order.
type Employee struct {
	Name        string       `yaml:"name" validate:"required"`
	Preferences []Preference `yaml:"preferences,omitempty" validate:"dive"`
}

// Document is the top-level roster file structure
type Document struct {
	Employees []Employee `yaml:"employees" validate:"dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load reads and validates a roster document from path
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse roster file: %w", err)
	}

	if err := validate.Struct(&doc); err != nil {
		return nil, fmt.Errorf("roster file validation failed: %w", err)
	}

	return &doc, nil
}

// Save writes the document to path, creating or truncating the file
func Save(path string, doc *Document) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal roster file: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write roster file: %w", err)
	}

	return nil
}
