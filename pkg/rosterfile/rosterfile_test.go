package rosterfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	content := `
employees:
  - name: Alice
    preferences:
      - day: Monday
        shift: Morning
  - name: Bob
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	doc, err := Load(path)
	require.NoError(t, err)
	require.Len(t, doc.Employees, 2)
	assert.Equal(t, "Alice", doc.Employees[0].Name)
	assert.Equal(t, []Preference{{Day: "Monday", Shift: "Morning"}}, doc.Employees[0].Preferences)
	assert.Empty(t, doc.Employees[1].Preferences)
}

func TestLoad_MissingName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	content := `
employees:
  - preferences:
      - day: Monday
        shift: Morning
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := Load(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoad_IncompletePreference(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	content := `
employees:
  - name: Alice
    preferences:
      - day: Monday
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte("employees: [unclosed"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	doc := &Document{
		Employees: []Employee{
			{Name: "Alice", Preferences: []Preference{
				{Day: "Friday", Shift: "Evening"},
				{Day: "Friday", Shift: "Morning"},
			}},
			{Name: "Bob"},
		},
	}

	path := filepath.Join(t.TempDir(), "roster.yaml")
	require.NoError(t, Save(path, doc))

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, doc, reloaded)
}
