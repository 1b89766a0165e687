package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cloudcompass/internal/core/domain"
)

func TestSettingsCmd_Show(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "settings")

	require.NoError(t, err)
	assert.Contains(t, out, "Source: Built-in catalog")
	assert.Contains(t, out, "Format: table")
	assert.Contains(t, out, "Default target: GCP")
	assert.Contains(t, out, "Default complexity: Medium (Some integration)")
	assert.Contains(t, out, "Configuration is valid.")
}

func TestSettingsCmd_ShowWarnsOnMissingPath(t *testing.T) {
	s := setupTestServices(t)
	require.NoError(t, s.Settings.Set("catalog.source", "file"))

	out, err := execute(t, "settings", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "Warning:")
	assert.Contains(t, out, "settings wizard")
}

func TestSettingsCmd_Set(t *testing.T) {
	s := setupTestServices(t)

	out, err := execute(t, "settings", "set", "planner.default_complexity", "complex")

	require.NoError(t, err)
	assert.Contains(t, out, "planner.default_complexity set to complex")
	settings, err := s.Settings.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.ComplexityComplex, settings.Planner.Complexity)
}

func TestSettingsCmd_SetInvalid(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "settings", "set", "output.format", "xml")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = execute(t, "settings", "set", "no.such.key", "x")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsCmd_Keys(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "settings", "keys")

	require.NoError(t, err)
	assert.Contains(t, out, "catalog.source")
	assert.Contains(t, out, "default: builtin")
	assert.Contains(t, out, "planner.default_complexity")
	assert.Equal(t, 8, strings.Count(out, "default:"))
}

func TestSettingsCmd_NoService(t *testing.T) {
	SetServices(nil)

	_, err := execute(t, "settings", "keys")

	assert.EqualError(t, err, "settings service not configured")
}

func TestSettingsCmd_WizardDefaults(t *testing.T) {
	s := setupTestServices(t)
	rootCmd.SetIn(strings.NewReader("\n\n\n"))

	out, err := execute(t, "settings", "wizard")

	require.NoError(t, err)
	assert.Contains(t, out, "Catalog source set to: Built-in catalog")
	assert.Contains(t, out, "All settings are valid and saved.")
	settings, err := s.Settings.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.ComplexityMedium, settings.Planner.Complexity)
}

func TestSettingsCmd_WizardFileSource(t *testing.T) {
	s := setupTestServices(t)
	rootCmd.SetIn(strings.NewReader("2\n/tmp/catalog.yaml\n2\n3\n"))

	_, err := execute(t, "settings", "wizard")

	require.NoError(t, err)
	settings, err := s.Settings.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.CatalogSourceFile, settings.Catalog.Source)
	assert.Equal(t, "/tmp/catalog.yaml", settings.Catalog.Path)
	assert.Equal(t, domain.OutputJSON, settings.Output.Format)
	assert.Equal(t, domain.ComplexityComplex, settings.Planner.Complexity)
}

func TestSettingsCmd_WizardFileSourceNeedsPath(t *testing.T) {
	setupTestServices(t)
	rootCmd.SetIn(strings.NewReader("2\n\n"))

	_, err := execute(t, "settings", "wizard")

	assert.EqualError(t, err, "a catalog file path is required")
}

func TestParseChoice(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		maxVal     int
		defaultVal int
		expected   int
	}{
		{
			name:       "Empty input returns default",
			input:      "",
			maxVal:     5,
			defaultVal: 1,
			expected:   1,
		},
		{
			name:       "Valid choice within range",
			input:      "3",
			maxVal:     5,
			defaultVal: 1,
			expected:   3,
		},
		{
			name:       "Choice below minimum returns default",
			input:      "0",
			maxVal:     5,
			defaultVal: 1,
			expected:   1,
		},
		{
			name:       "Choice above maximum returns default",
			input:      "6",
			maxVal:     5,
			defaultVal: 1,
			expected:   1,
		},
		{
			name:       "Invalid input returns default",
			input:      "abc",
			maxVal:     5,
			defaultVal: 2,
			expected:   2,
		},
		{
			name:       "Negative number returns default",
			input:      "-1",
			maxVal:     5,
			defaultVal: 1,
			expected:   1,
		},
		{
			name:       "Whitespace returns default",
			input:      "   ",
			maxVal:     5,
			defaultVal: 1,
			expected:   1,
		},
		{
			name:       "Maximum value is valid",
			input:      "5",
			maxVal:     5,
			defaultVal: 1,
			expected:   5,
		},
		{
			name:       "Minimum value is valid",
			input:      "1",
			maxVal:     5,
			defaultVal: 3,
			expected:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := parseChoice(tt.input, tt.maxVal, tt.defaultVal)
			assert.Equal(t, tt.expected, result)
		})
	}
}
