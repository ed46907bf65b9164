package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/trustgate/trustgate/schema"
)

// Color variables for console output.
var (
	DecisionReadyColor  = color.New(color.FgGreen, color.Bold) // the dataset is safe to act on.
	ReviewColor         = color.New(color.FgCyan)              // informational, human review advised.
	RiskPresentColor    = color.New(color.FgYellow)            // standard caution, not bold.
	NotTrustworthyColor = color.New(color.FgRed, color.Bold)   // standard danger.
)

// GetPlainTierLabel returns the plain text label for a trust tier. This is
// the core logic used for CSV, JSON, and table printing.
func GetPlainTierLabel(tier schema.TrustTier) string {
	return string(tier)
}

// GetColorTierLabel returns a colored tier label for console output (table).
func GetColorTierLabel(tier schema.TrustTier) string {
	text := GetPlainTierLabel(tier)

	switch tier {
	case schema.TierDecisionReady:
		return DecisionReadyColor.Sprint(text)
	case schema.TierReviewRecommended:
		return ReviewColor.Sprint(text)
	case schema.TierRiskPresent:
		return RiskPresentColor.Sprint(text)
	default: // "Not Trustworthy"
		return NotTrustworthyColor.Sprint(text)
	}
}

// GetColorSensitivityLabel returns a colored sensitivity label for console
// output. High reuses the danger color since both mean "stop and look".
func GetColorSensitivityLabel(level schema.SensitivityLevel) string {
	switch level {
	case schema.SensitivityHigh:
		return NotTrustworthyColor.Sprint(string(level))
	case schema.SensitivityModerate:
		return RiskPresentColor.Sprint(string(level))
	default:
		return ReviewColor.Sprint(string(level))
	}
}

// ParseTierName maps a user-supplied tier name to its canonical TrustTier.
// Both the display form ("Decision-Ready") and a compact lowercase form
// ("decision-ready") are accepted.
func ParseTierName(s string) (schema.TrustTier, error) {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", "-"))
	switch normalized {
	case "decision-ready":
		return schema.TierDecisionReady, nil
	case "review-recommended":
		return schema.TierReviewRecommended, nil
	case "risk-present":
		return schema.TierRiskPresent, nil
	case "not-trustworthy":
		return schema.TierNotTrustworthy, nil
	default:
		return "", fmt.Errorf("unknown tier '%s', must be decision-ready, review-recommended, risk-present, not-trustworthy", s)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout for an empty path.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// TruncateCell truncates a table cell to a maximum width with an ellipsis
// suffix. Requires maxWidth > 3 so there is room for both content and the
// "..." marker.
func TruncateCell(s string, maxWidth int) string {
	runes := []rune(s)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return s
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}
