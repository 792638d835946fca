package contract

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Rating label constants.
const (
	ExcellentValue = "Excellent" // mean rating >= 4.5
	GoodValue      = "Good"      // mean rating >= 3.5
	FairValue      = "Fair"      // mean rating >= 2.5
	PoorValue      = "Poor"      // everything below
)

// Color variables for console output.
var (
	ExcellentColor = color.New(color.FgGreen, color.Bold) // top of the scale
	GoodColor      = color.New(color.FgCyan)              // solid standing
	FairColor      = color.New(color.FgYellow)            // middling, worth a look
	PoorColor      = color.New(color.FgRed, color.Bold)   // bottom of the scale
)

// GetPlainLabel returns a plain text label bucketing a mean rating on the
// 1-5 scale. This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(mean float64) string {
	switch {
	case mean >= 4.5:
		return ExcellentValue
	case mean >= 3.5:
		return GoodValue
	case mean >= 2.5:
		return FairValue
	default:
		return PoorValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the
// appropriate color.
func GetColorLabel(mean float64) string {
	text := GetPlainLabel(mean)

	switch text {
	case ExcellentValue:
		return ExcellentColor.Sprint(text)
	case GoodValue:
		return GoodColor.Sprint(text)
	case FairValue:
		return FairColor.Sprint(text)
	default: // "Poor"
		return PoorColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. An empty path means stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning %s: %v\n", msg, err)
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "Warning %s\n", msg)
}
