package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trustgate/trustgate/internal/contract"
	"github.com/trustgate/trustgate/schema"
)

func fixtureProfile() *schema.DatasetProfile {
	return &schema.DatasetProfile{
		Metadata: schema.InputMetadata{
			FileType:       schema.CSVSource,
			RecordCount:    100,
			ColumnCount:    5,
			DataTypes:      map[string]string{"id": "integer"},
			HasTimestamp:   true,
			HasText:        true,
			NumericDensity: 0.6,
			ColumnNames:    []string{"id", "amount", "region", "email", "created"},
		},
	}
}

func fixtureBundle() *schema.EvaluationBundle {
	lag := 12.5
	density := 0.05
	return &schema.EvaluationBundle{
		Structural: schema.StructuralResult{
			StructuralIntegrityScore: 0.9,
			StructuralRiskFlags:      []string{"Duplicate rows: 2 (2.0%)"},
			RedundantFeatureList:     []string{},
			CandidatePrimaryKeys:     []string{"id"},
		},
		Governance: schema.GovernanceResult{
			GovernanceRiskScore:       0.85,
			SensitivityClassification: schema.SensitivityModerate,
			SensitiveColumnMap:        map[string][]string{"email": {"name:email", "email"}},
			RiskFlags:                 []string{"Sensitive column 'email': name:email, email"},
		},
		Operational: schema.OperationalResult{
			TemporalReliabilityScore: 1.0,
			OperationalRiskFlags:     []string{},
			HasTemporalColumn:        true,
			LatestUpdateLagDays:      &lag,
		},
		Logical: schema.LogicalResult{
			LogicalIntegrityScore: 1.0,
			ViolationRate:         0,
			ViolationsSummary:     []string{},
		},
		Analytical: schema.AnalyticalResult{
			AnalyticsUtilityScore:      0.95,
			PreparationComplexityScore: 0.1,
			LowVarianceColumns:         []string{"region"},
			HighSkewColumns:            []string{},
			HighVIFColumns:             []string{},
			AnomalyDensity:             &density,
		},
		Trust: &schema.TrustResult{
			EDTIScore: 0.8423,
			TrustTier: schema.TierDecisionReady,
			ComponentScores: map[schema.ComponentKey]float64{
				schema.ComponentStructural:      0.9,
				schema.ComponentGovernanceTrust: 0.15,
				schema.ComponentOperational:     1.0,
				schema.ComponentLogical:         1.0,
				schema.ComponentUtility:         0.95,
				schema.ComponentPreparation:     0.9,
			},
			RiskHeatmap: map[schema.RiskCategoryKey]float64{
				schema.RiskStructural:  0.1,
				schema.RiskGovernance:  0.85,
				schema.RiskOperational: 0.0,
				schema.RiskLogical:     0.0,
				schema.RiskAnalytical:  0.05,
				schema.RiskPreparation: 0.1,
			},
		},
	}
}

func textConfig() *contract.Config {
	return &contract.Config{
		Output:    schema.TextOut,
		Width:     120,
		UseEmojis: false,
		UseColors: false,
	}
}

func TestWriteEvaluationTablesText(t *testing.T) {
	var buf bytes.Buffer
	err := writeEvaluationTables(fixtureProfile(), fixtureBundle(), textConfig(), time.Second, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Enterprise Data Trust Index")
	assert.Contains(t, out, "Score: 0.8423 (Decision-Ready)")
	assert.Contains(t, out, "Dataset: 100 rows x 5 columns (csv), numeric density 60.0%")
	assert.Contains(t, out, "Structural Integrity")
	assert.Contains(t, out, "Preparation Burden")
	assert.Contains(t, out, "Sensitivity classification: Moderate (risk 0.8500)")
	assert.Contains(t, out, "Latest update lag: 12.50 days")
	assert.Contains(t, out, "Anomaly density: 5.0%")
	assert.Contains(t, out, "Low variance columns: region")
	assert.Contains(t, out, "Evaluation completed in 1s")
}

func TestWriteEvaluationTablesEmojiHeader(t *testing.T) {
	cfg := textConfig()
	cfg.UseEmojis = true

	var buf bytes.Buffer
	require.NoError(t, writeEvaluationTables(fixtureProfile(), fixtureBundle(), cfg, time.Second, &buf))
	assert.Contains(t, buf.String(), "🛡️ Enterprise Data Trust Index")
}

func TestWriteEvaluationResultsJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	cfg := textConfig()
	cfg.Output = schema.JSONOut
	cfg.OutputFile = path

	require.NoError(t, WriteEvaluationResults(fixtureProfile(), fixtureBundle(), cfg, time.Second))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded struct {
		Metadata schema.InputMetadata `json:"metadata"`
		Trust    *schema.TrustResult  `json:"trust"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 100, decoded.Metadata.RecordCount)
	assert.Equal(t, 0.8423, decoded.Trust.EDTIScore)
	assert.Equal(t, schema.TierDecisionReady, decoded.Trust.TrustTier)
}

func TestWriteEvaluationResultsCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	cfg := textConfig()
	cfg.Output = schema.CSVOut
	cfg.OutputFile = path

	require.NoError(t, WriteEvaluationResults(fixtureProfile(), fixtureBundle(), cfg, time.Second))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	assert.Equal(t, []string{"section", "key", "value"}, rows[0])
	assert.Equal(t, []string{"summary", "edti_score", "0.8423"}, rows[1])

	sections := make(map[string]int)
	for _, row := range rows[1:] {
		sections[row[0]]++
	}
	assert.Equal(t, 6, sections["component"])
	assert.Equal(t, 6, sections["risk"])
	assert.Equal(t, 1, sections["structural_flag"])
	assert.Equal(t, 1, sections["governance_flag"])
}

func TestWriteEvaluationResultsParquetNeedsFile(t *testing.T) {
	cfg := textConfig()
	cfg.Output = schema.ParquetOut

	err := WriteEvaluationResults(fixtureProfile(), fixtureBundle(), cfg, time.Second)
	assert.ErrorContains(t, err, "parquet output requires --output-file")
}

func TestCapList(t *testing.T) {
	items := []string{"a", "b", "c", "d"}

	assert.Equal(t, items, capList(items, 10, false))
	assert.Equal(t, items, capList(items, 2, true)) // detail lifts the cap
	assert.Equal(t, []string{"a", "b", "... and 2 more"}, capList(items, 2, false))
	assert.Empty(t, capList(nil, 2, false))
}

func TestGetMaxTableCellWidth(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		expected int
	}{
		{"explicit override", 120, 90},
		{"narrow floor", 40, 20},
		{"wide ceiling", 400, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &contract.Config{Width: tt.width}
			assert.Equal(t, tt.expected, GetMaxTableCellWidth(cfg))
		})
	}
}
