// Package parquet provides data structures and functions for exporting
// trustgate evaluations to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/trustgate/trustgate/schema"
)

// EvaluationRecord is the flat Parquet row for a single dataset
// evaluation. Multi-value findings are joined with '|' so the file stays
// a single flat table.
type EvaluationRecord struct {
	// EvaluatedAt is when the evaluation ran (stored as TIMESTAMP with nanosecond precision)
	EvaluatedAt time.Time `parquet:"evaluated_at,snappy"`

	// Dataset shape and source
	FileType    string `parquet:"file_type,snappy"`
	RecordCount int64  `parquet:"record_count,snappy"`
	ColumnCount int32  `parquet:"column_count,snappy"`

	// Composite index and tier
	EDTIScore float64 `parquet:"edti_score,snappy"`
	TrustTier string  `parquet:"trust_tier,snappy"`

	// Layer scores
	StructuralIntegrityScore   float64 `parquet:"structural_integrity_score,snappy"`
	GovernanceRiskScore        float64 `parquet:"governance_risk_score,snappy"`
	TemporalReliabilityScore   float64 `parquet:"temporal_reliability_score,snappy"`
	LogicalIntegrityScore      float64 `parquet:"logical_integrity_score,snappy"`
	AnalyticsUtilityScore      float64 `parquet:"analytics_utility_score,snappy"`
	PreparationComplexityScore float64 `parquet:"preparation_complexity_score,snappy"`

	// Secondary signals (nullable where the layer may not produce them)
	SensitivityClassification string   `parquet:"sensitivity_classification,snappy"`
	ViolationRate             float64  `parquet:"violation_rate,snappy"`
	LatestUpdateLagDays       *float64 `parquet:"latest_update_lag_days,optional,snappy"`
	AnomalyDensity            *float64 `parquet:"anomaly_density,optional,snappy"`

	// Findings, '|'-joined
	StructuralRiskFlags  string `parquet:"structural_risk_flags,snappy"`
	GovernanceRiskFlags  string `parquet:"governance_risk_flags,snappy"`
	OperationalRiskFlags string `parquet:"operational_risk_flags,snappy"`
	ViolationsSummary    string `parquet:"violations_summary,snappy"`
	CandidatePrimaryKeys string `parquet:"candidate_primary_keys,snappy"`
	RedundantFeatureList string `parquet:"redundant_feature_list,snappy"`
}

// NewEvaluationRecord flattens an evaluation bundle into a Parquet row.
func NewEvaluationRecord(profile *schema.DatasetProfile, bundle *schema.EvaluationBundle, evaluatedAt time.Time) EvaluationRecord {
	trust := bundle.Trust
	return EvaluationRecord{
		EvaluatedAt:                evaluatedAt,
		FileType:                   string(profile.Metadata.FileType),
		RecordCount:                int64(profile.Metadata.RecordCount),
		ColumnCount:                int32(profile.Metadata.ColumnCount),
		EDTIScore:                  trust.EDTIScore,
		TrustTier:                  string(trust.TrustTier),
		StructuralIntegrityScore:   bundle.Structural.StructuralIntegrityScore,
		GovernanceRiskScore:        bundle.Governance.GovernanceRiskScore,
		TemporalReliabilityScore:   bundle.Operational.TemporalReliabilityScore,
		LogicalIntegrityScore:      bundle.Logical.LogicalIntegrityScore,
		AnalyticsUtilityScore:      bundle.Analytical.AnalyticsUtilityScore,
		PreparationComplexityScore: bundle.Analytical.PreparationComplexityScore,
		SensitivityClassification:  string(bundle.Governance.SensitivityClassification),
		ViolationRate:              bundle.Logical.ViolationRate,
		LatestUpdateLagDays:        bundle.Operational.LatestUpdateLagDays,
		AnomalyDensity:             bundle.Analytical.AnomalyDensity,
		StructuralRiskFlags:        strings.Join(bundle.Structural.StructuralRiskFlags, "|"),
		GovernanceRiskFlags:        strings.Join(bundle.Governance.RiskFlags, "|"),
		OperationalRiskFlags:       strings.Join(bundle.Operational.OperationalRiskFlags, "|"),
		ViolationsSummary:          strings.Join(bundle.Logical.ViolationsSummary, "|"),
		CandidatePrimaryKeys:       strings.Join(bundle.Structural.CandidatePrimaryKeys, "|"),
		RedundantFeatureList:       strings.Join(bundle.Structural.RedundantFeatureList, "|"),
	}
}

// WriteEvaluationParquet writes a single evaluation to a Parquet file.
func WriteEvaluationParquet(profile *schema.DatasetProfile, bundle *schema.EvaluationBundle, outputPath string) error {
	return WriteEvaluationRecordsParquet([]EvaluationRecord{
		NewEvaluationRecord(profile, bundle, time.Now()),
	}, outputPath)
}

// MockFetchEvaluationRecords generates sample EvaluationRecord data for demonstration.
func MockFetchEvaluationRecords() []EvaluationRecord {
	now := time.Now()
	lag1 := 2.0
	density1 := 0.03
	lag2 := 45.0
	// Note: lag and density of the third record are nil to demonstrate nullable fields

	return []EvaluationRecord{
		{
			EvaluatedAt:                now.Add(-2 * time.Hour),
			FileType:                   "csv",
			RecordCount:                120000,
			ColumnCount:                14,
			EDTIScore:                  0.91,
			TrustTier:                  "Decision-Ready",
			StructuralIntegrityScore:   0.95,
			GovernanceRiskScore:        0.1,
			TemporalReliabilityScore:   1.0,
			LogicalIntegrityScore:      1.0,
			AnalyticsUtilityScore:      0.9,
			PreparationComplexityScore: 0.1,
			SensitivityClassification:  "Low",
			LatestUpdateLagDays:        &lag1,
			AnomalyDensity:             &density1,
			CandidatePrimaryKeys:       "order_id",
		},
		{
			EvaluatedAt:                now.Add(-24 * time.Hour),
			FileType:                   "parquet",
			RecordCount:                5400,
			ColumnCount:                32,
			EDTIScore:                  0.64,
			TrustTier:                  "Review Recommended",
			StructuralIntegrityScore:   0.7,
			GovernanceRiskScore:        0.85,
			TemporalReliabilityScore:   0.8,
			LogicalIntegrityScore:      0.7,
			AnalyticsUtilityScore:      0.75,
			PreparationComplexityScore: 0.4,
			SensitivityClassification:  "Moderate",
			ViolationRate:              0.2,
			LatestUpdateLagDays:        &lag2,
			StructuralRiskFlags:        "Duplicate rows: 54 (1.0%)|Empty column: notes",
			GovernanceRiskFlags:        "Sensitive column 'email': name:email",
			ViolationsSummary:          "negative revenue: 12 rows",
		},
		{
			EvaluatedAt:                now.Add(-10 * time.Minute),
			FileType:                   "json",
			RecordCount:                8,
			ColumnCount:                3,
			EDTIScore:                  0.38,
			TrustTier:                  "Not Trustworthy",
			StructuralIntegrityScore:   0.4,
			GovernanceRiskScore:        0.3,
			TemporalReliabilityScore:   0.5,
			LogicalIntegrityScore:      0.85,
			AnalyticsUtilityScore:      0.5,
			PreparationComplexityScore: 0.5,
			SensitivityClassification:  "Low",
			StructuralRiskFlags:        "High missing value density: 55.0%",
		},
	}
}

// WriteEvaluationRecordsParquet writes a slice of EvaluationRecord structs to a Parquet file.
func WriteEvaluationRecordsParquet(data []EvaluationRecord, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the EvaluationRecord struct tags
	writer := parquet.NewGenericWriter[EvaluationRecord](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
