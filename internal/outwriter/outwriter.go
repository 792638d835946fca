// Package outwriter has output and writer logic for ranking results.
package outwriter

import (
	"os"

	"github.com/huangsam/surveyrank/internal/contract"
	"golang.org/x/term"
)

// GetMaxTableNameWidth calculates the maximum width for course names in
// table output based on terminal width and table configuration.
func GetMaxTableNameWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default for narrow terminals and CI
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for Rank, Mean, Count and Label columns with
	// borders and padding
	baseWidth := 40

	available := termWidth - baseWidth
	if available < 15 {
		return 15
	}
	if available > 70 {
		return 70
	}
	return available
}
