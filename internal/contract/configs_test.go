package contract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/surveyrank/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawInputFixture(t *testing.T) *ConfigRawInput {
	t.Helper()
	path := filepath.Join(t.TempDir(), "survey.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n"), 0o644))
	return &ConfigRawInput{
		SurveyPathStr: path,
		Output:        "text",
		Precision:     DefaultPrecision,
		LabelWrap:     DefaultLabelWrap,
		Color:         "yes",
	}
}

// TestProcessAndValidate tests raw input conversion and defaulting.
func TestProcessAndValidate(t *testing.T) {
	t.Run("happy path with defaults", func(t *testing.T) {
		cfg := &Config{}
		input := rawInputFixture(t)
		require.NoError(t, ProcessAndValidate(cfg, input))

		assert.Equal(t, schema.TextOut, cfg.Output)
		assert.Equal(t, DefaultChartFile, cfg.ChartFile)
		assert.Equal(t, DefaultLabelWrap, cfg.LabelWrap)
		assert.Equal(t, schema.NoneBackend, cfg.HistoryBackend)
		assert.True(t, cfg.UseColors)
		assert.True(t, filepath.IsAbs(cfg.SurveyPath))
	})

	t.Run("missing survey path", func(t *testing.T) {
		input := rawInputFixture(t)
		input.SurveyPathStr = ""
		err := ProcessAndValidate(&Config{}, input)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "survey file path")
	})

	t.Run("unreadable survey path", func(t *testing.T) {
		input := rawInputFixture(t)
		input.SurveyPathStr = filepath.Join(t.TempDir(), "absent.csv")
		err := ProcessAndValidate(&Config{}, input)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not readable")
	})

	t.Run("invalid output mode", func(t *testing.T) {
		input := rawInputFixture(t)
		input.Output = "xml"
		err := ProcessAndValidate(&Config{}, input)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "output mode")
	})

	t.Run("output mode is case-insensitive", func(t *testing.T) {
		cfg := &Config{}
		input := rawInputFixture(t)
		input.Output = "JSON"
		require.NoError(t, ProcessAndValidate(cfg, input))
		assert.Equal(t, schema.JSONOut, cfg.Output)
	})

	t.Run("strict and lenient conflict", func(t *testing.T) {
		input := rawInputFixture(t)
		input.Strict = true
		input.Lenient = true
		err := ProcessAndValidate(&Config{}, input)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mutually exclusive")
	})

	t.Run("limit bounds", func(t *testing.T) {
		input := rawInputFixture(t)
		input.Limit = MaxResultLimit + 1
		require.Error(t, ProcessAndValidate(&Config{}, input))

		input = rawInputFixture(t)
		input.Limit = -1
		require.Error(t, ProcessAndValidate(&Config{}, input))
	})

	t.Run("invalid history backend", func(t *testing.T) {
		input := rawInputFixture(t)
		input.HistoryBackend = "oracle"
		err := ProcessAndValidate(&Config{}, input)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "history backend")
	})

	t.Run("color off", func(t *testing.T) {
		cfg := &Config{}
		input := rawInputFixture(t)
		input.Color = "no"
		require.NoError(t, ProcessAndValidate(cfg, input))
		assert.False(t, cfg.UseColors)
	})
}

// TestParseBoolish tests lenient boolean parsing.
func TestParseBoolish(t *testing.T) {
	assert.True(t, parseBoolish("yes", false))
	assert.True(t, parseBoolish("TRUE", false))
	assert.True(t, parseBoolish("1", false))
	assert.False(t, parseBoolish("no", true))
	assert.False(t, parseBoolish("off", true))
	assert.True(t, parseBoolish("banana", true))
	assert.False(t, parseBoolish("", false))
}
