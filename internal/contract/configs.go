package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/huangsam/surveyrank/schema"
)

// Default values for configuration.
const (
	DefaultPrecision = 2
	DefaultLabelWrap = 50
	DefaultChartFile = "outputs/program_rankings.png"
	MaxResultLimit   = 1000
)

// Config holds the runtime configuration for one pipeline run.
// This struct remains the "final, validated" config.
type Config struct {
	SurveyPath string // Path to the survey export (xlsx or csv)
	Sheet      string // Worksheet name for xlsx input; empty means first sheet

	Output     schema.OutputMode
	OutputFile string
	ChartFile  string
	NoChart    bool

	Limit     int // Max entries to emit; 0 means all
	Precision int
	Width     int // Terminal width override (0 = auto-detect)
	LabelWrap int // Chart label wrap width in characters

	Strict  bool // Invalid cells abort the run
	Lenient bool // Empty column families warn instead of failing

	HistoryBackend   schema.DatabaseBackend
	HistoryDBConnect string // Please use env var as this is plaintext

	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config
// file). Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	SurveyPathStr string

	Sheet            string `mapstructure:"sheet"`
	Output           string `mapstructure:"output"`
	OutputFile       string `mapstructure:"output-file"`
	ChartFile        string `mapstructure:"chart-file"`
	NoChart          bool   `mapstructure:"no-chart"`
	Limit            int    `mapstructure:"limit"`
	Precision        int    `mapstructure:"precision"`
	Width            int    `mapstructure:"width"`
	LabelWrap        int    `mapstructure:"label-wrap"`
	Strict           bool   `mapstructure:"strict"`
	Lenient          bool   `mapstructure:"lenient"`
	HistoryBackend   string `mapstructure:"history-backend"`
	HistoryDBConnect string `mapstructure:"history-db-connect"`
	Color            string `mapstructure:"color"`
}

// ProcessAndValidate converts the raw input into the final validated config.
// It resolves the survey path, parses enums, and enforces bounds.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	surveyPath := input.SurveyPathStr
	if surveyPath == "" {
		return fmt.Errorf("a survey file path is required")
	}
	absPath, err := filepath.Abs(surveyPath)
	if err != nil {
		return fmt.Errorf("cannot resolve survey path %q: %w", surveyPath, err)
	}
	if info, err := os.Stat(absPath); err != nil {
		return fmt.Errorf("survey file %q is not readable: %w", surveyPath, err)
	} else if info.IsDir() {
		return fmt.Errorf("survey path %q is a directory", surveyPath)
	}
	cfg.SurveyPath = absPath
	cfg.Sheet = input.Sheet

	output := schema.OutputMode(strings.ToLower(strings.TrimSpace(input.Output)))
	if output == "" {
		output = schema.TextOut
	}
	if _, ok := schema.ValidOutputModes[output]; !ok {
		return fmt.Errorf("invalid output mode %q: must be text, csv, json or parquet", input.Output)
	}
	cfg.Output = output
	cfg.OutputFile = input.OutputFile

	cfg.ChartFile = input.ChartFile
	if cfg.ChartFile == "" {
		cfg.ChartFile = DefaultChartFile
	}
	cfg.NoChart = input.NoChart

	if input.Limit < 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit %d outside [0,%d]", input.Limit, MaxResultLimit)
	}
	cfg.Limit = input.Limit

	if input.Precision < 0 || input.Precision > 10 {
		return fmt.Errorf("precision %d outside [0,10]", input.Precision)
	}
	cfg.Precision = input.Precision
	cfg.Width = input.Width

	cfg.LabelWrap = input.LabelWrap
	if cfg.LabelWrap <= 0 {
		cfg.LabelWrap = DefaultLabelWrap
	}

	if input.Strict && input.Lenient {
		return fmt.Errorf("--strict and --lenient are mutually exclusive")
	}
	cfg.Strict = input.Strict
	cfg.Lenient = input.Lenient

	backend := schema.DatabaseBackend(strings.ToLower(strings.TrimSpace(input.HistoryBackend)))
	if backend == "" {
		backend = schema.NoneBackend
	}
	if _, ok := schema.ValidHistoryBackends[backend]; !ok {
		return fmt.Errorf("invalid history backend %q: must be none, sqlite, mysql or postgresql", input.HistoryBackend)
	}
	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = input.HistoryDBConnect

	cfg.UseColors = parseBoolish(input.Color, true)

	return nil
}

// parseBoolish interprets yes/no/true/false/1/0 with a default for
// anything unrecognized.
func parseBoolish(value string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "true", "1", "on":
		return true
	case "no", "false", "0", "off":
		return false
	default:
		return fallback
	}
}
