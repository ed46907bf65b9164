package outwriter

import (
	"os"

	"golang.org/x/term"

	"github.com/trustgate/trustgate/internal/contract"
)

// GetMaxTableCellWidth calculates the maximum width for free-form cells
// (flag messages, column lists) in table output based on terminal width.
func GetMaxTableCellWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the fixed label column plus borders and padding
	available := termWidth - 30
	if available < 20 {
		return 20
	}
	if available > 100 {
		return 100
	}
	return available
}
