package outwriter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trustgate/trustgate/schema"
)

func TestGenerateExecutiveSummary(t *testing.T) {
	summary := GenerateExecutiveSummary(fixtureProfile(), fixtureBundle(), ReportTitle)

	assert.True(t, strings.HasPrefix(summary, ReportTitle+"\n"))
	assert.Contains(t, summary, strings.Repeat("=", 60))

	// All nine numbered sections appear in order.
	sections := []string{
		"1. Dataset Overview",
		"2. Enterprise Data Trust Index (EDTI)",
		"3. Component Scores",
		"4. Risk Heatmap (higher = more risk)",
		"5. Structural Reliability",
		"6. Governance & Sensitivity",
		"7. Operational Stability",
		"8. Logical Integrity",
		"9. Preparation & Analytical Utility",
	}
	last := -1
	for _, section := range sections {
		idx := strings.Index(summary, section)
		assert.Greater(t, idx, last, "section %q out of order", section)
		last = idx
	}

	assert.Contains(t, summary, "Rows: 100, Columns: 5")
	assert.Contains(t, summary, "Score: 0.84")
	assert.Contains(t, summary, "Tier: Decision-Ready")
	assert.Contains(t, summary, "Classification: Moderate")
	assert.Contains(t, summary, "--- End of Executive Summary ---")
}

func TestGenerateExecutiveSummaryNoTrust(t *testing.T) {
	bundle := fixtureBundle()
	bundle.Trust = nil

	summary := GenerateExecutiveSummary(fixtureProfile(), bundle, ReportTitle)
	assert.Equal(t, "No trust result available.", summary)
}

func TestGenerateExecutiveSummaryCapsFlagLists(t *testing.T) {
	bundle := fixtureBundle()
	for i := 0; i < 15; i++ {
		bundle.Structural.StructuralRiskFlags = append(
			bundle.Structural.StructuralRiskFlags, fmt.Sprintf("flag %d", i))
	}

	summary := GenerateExecutiveSummary(fixtureProfile(), bundle, ReportTitle)
	assert.Contains(t, summary, "flag 7")
	assert.NotContains(t, summary, "flag 12")
}

func TestWriteReportResultsJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	cfg := textConfig()
	cfg.Output = schema.JSONOut
	cfg.OutputFile = path

	require.NoError(t, WriteReportResults(fixtureProfile(), fixtureBundle(), cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, ReportTitle, decoded["title"])
	assert.Contains(t, decoded["summary"], "1. Dataset Overview")
}

func TestWriteReportResultsText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	cfg := textConfig()
	cfg.OutputFile = path

	require.NoError(t, WriteReportResults(fixtureProfile(), fixtureBundle(), cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), ReportTitle)
}

func TestHeadOf(t *testing.T) {
	items := []string{"a", "b", "c"}
	assert.Equal(t, items, headOf(items, 5))
	assert.Equal(t, []string{"a", "b"}, headOf(items, 2))
	assert.Empty(t, headOf(nil, 2))
}
