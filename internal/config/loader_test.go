package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FullFile(t *testing.T) {
	// --- Arrange ---
	src := `
		language   = "en"
		log_level  = "debug"
		log_format = "json"

		diagnostics {
			format = "yaml"
			color  = false
			width  = 100
		}

		checks {
			semantic = false
		}
	`
	path := filepath.Join(t.TempDir(), "fscheck.hcl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0600))

	// --- Act ---
	settings, err := Load(context.Background(), path)

	// --- Assert ---
	require.NoError(t, err)
	require.NotNil(t, settings.Language)
	assert.Equal(t, "en", *settings.Language)
	assert.Equal(t, "debug", *settings.LogLevel)
	assert.Equal(t, "json", *settings.LogFormat)
	require.NotNil(t, settings.Diagnostics)
	assert.Equal(t, "yaml", *settings.Diagnostics.Format)
	assert.False(t, *settings.Diagnostics.Color)
	assert.Equal(t, 100, *settings.Diagnostics.Width)
	require.NotNil(t, settings.Checks)
	assert.False(t, *settings.Checks.Semantic)
}

func TestParse_PartialFileLeavesUnsetFieldsNil(t *testing.T) {
	settings, err := Parse(context.Background(), "fscheck.hcl", []byte(`
		diagnostics {
			width = 60
		}
	`))

	require.NoError(t, err)
	assert.Nil(t, settings.Language)
	assert.Nil(t, settings.LogLevel)
	assert.Nil(t, settings.Checks)
	require.NotNil(t, settings.Diagnostics)
	assert.Nil(t, settings.Diagnostics.Format)
	assert.Equal(t, 60, *settings.Diagnostics.Width)
}

func TestParse_EmptyFile(t *testing.T) {
	settings, err := Parse(context.Background(), "fscheck.hcl", nil)

	require.NoError(t, err)
	assert.Equal(t, &Settings{}, settings)
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		src     string
		message string
	}{
		{name: "syntax error", src: `language = `, message: "failed to parse"},
		{name: "unknown attribute", src: `langauge = "en"`, message: "failed to decode"},
		{name: "unknown block", src: `output { }`, message: "failed to decode"},
		{name: "wrong type", src: `diagnostics { width = "wide" }`, message: "failed to decode"},
		{name: "duplicate block", src: "checks {}\nchecks {}", message: "failed to decode"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			settings, err := Parse(context.Background(), "fscheck.hcl", []byte(tc.src))

			require.Error(t, err)
			assert.Nil(t, settings)
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "absent.hcl"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse settings file")
}
