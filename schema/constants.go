package schema

// Custom string types for type safety.
type (
	// TrustTier represents one of the four ordered trust categories.
	TrustTier string

	// SensitivityLevel represents the governance sensitivity classification.
	SensitivityLevel string

	// ComponentKey identifies one of the six weighted trust components.
	ComponentKey string

	// RiskCategoryKey identifies one of the six risk heatmap categories.
	RiskCategoryKey string

	// OutputMode represents the format of the output.
	OutputMode string

	// SourceType represents the kind of tabular source a dataset came from.
	SourceType string

	// DatabaseBackend represents the database backend for SQL ingestion.
	DatabaseBackend string
)

// All trust tiers, ordered from most to least trustworthy.
const (
	TierDecisionReady     TrustTier = "Decision-Ready"     // EDTI >= 0.80
	TierReviewRecommended TrustTier = "Review Recommended" // EDTI >= 0.60
	TierRiskPresent       TrustTier = "Risk Present"       // EDTI >= 0.40
	TierNotTrustworthy    TrustTier = "Not Trustworthy"    // EDTI < 0.40
)

// All sensitivity levels, ordered from least to most exposed.
const (
	SensitivityLow      SensitivityLevel = "Low"
	SensitivityModerate SensitivityLevel = "Moderate"
	SensitivityHigh     SensitivityLevel = "High"
)

// Component keys for the weighted EDTI inputs.
const (
	ComponentStructural      ComponentKey = "Structural Integrity"
	ComponentGovernanceTrust ComponentKey = "Governance (1-risk)"
	ComponentOperational     ComponentKey = "Temporal Stability"
	ComponentLogical         ComponentKey = "Logical Consistency"
	ComponentUtility         ComponentKey = "Analytics Utility"
	ComponentPreparation     ComponentKey = "Preparation Readiness"
)

// Risk heatmap category keys.
const (
	RiskStructural  RiskCategoryKey = "Structural"
	RiskGovernance  RiskCategoryKey = "Governance"
	RiskOperational RiskCategoryKey = "Operational"
	RiskLogical     RiskCategoryKey = "Logical"
	RiskAnalytical  RiskCategoryKey = "Analytical"
	RiskPreparation RiskCategoryKey = "Preparation Burden"
)

// ComponentOrder fixes the rendering order of the six component scores.
var ComponentOrder = []ComponentKey{
	ComponentStructural,
	ComponentGovernanceTrust,
	ComponentOperational,
	ComponentLogical,
	ComponentUtility,
	ComponentPreparation,
}

// RiskCategoryOrder fixes the rendering order of the six heatmap categories.
var RiskCategoryOrder = []RiskCategoryKey{
	RiskStructural,
	RiskGovernance,
	RiskOperational,
	RiskLogical,
	RiskAnalytical,
	RiskPreparation,
}

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All file-based source types supported.
const (
	CSVSource     SourceType = "csv"
	TSVSource     SourceType = "tsv"
	JSONSource    SourceType = "json"
	ParquetSource SourceType = "parquet"
	SQLSource     SourceType = "sql"
	UnknownSource SourceType = "unknown"
)

// All SQL ingestion backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite"
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none" // default: file-based ingestion only
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid SQL ingestion backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// Result list caps enforced by the core (display layers truncate further).
const (
	MaxGovernanceFlags   = 50
	MaxLogicalViolations = 30
)

// Tier thresholds: inclusive lower bound on EDTI per tier.
const (
	TierThresholdDecisionReady     = 0.80
	TierThresholdReviewRecommended = 0.60
	TierThresholdRiskPresent       = 0.40
)

// TierFor maps an EDTI score to its trust tier.
func TierFor(edti float64) TrustTier {
	switch {
	case edti >= TierThresholdDecisionReady:
		return TierDecisionReady
	case edti >= TierThresholdReviewRecommended:
		return TierReviewRecommended
	case edti >= TierThresholdRiskPresent:
		return TierRiskPresent
	default:
		return TierNotTrustworthy
	}
}

// SensitivityRank returns a comparable rank for threshold checks
// (Low=0, Moderate=1, High=2).
func SensitivityRank(level SensitivityLevel) int {
	switch level {
	case SensitivityHigh:
		return 2
	case SensitivityModerate:
		return 1
	default:
		return 0
	}
}

// TierRank returns a comparable rank for gate checks
// (NotTrustworthy=0 .. DecisionReady=3).
func TierRank(tier TrustTier) int {
	switch tier {
	case TierDecisionReady:
		return 3
	case TierReviewRecommended:
		return 2
	case TierRiskPresent:
		return 1
	default:
		return 0
	}
}
