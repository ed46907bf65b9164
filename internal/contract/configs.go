package contract

import (
	"fmt"
	"maps"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/trustgate/trustgate/schema"
)

// Default values for configuration.
const (
	DefaultOutput    = "text"
	DefaultBackend   = "none"
	DefaultMinScore  = 0.0
	MaxWidthOverride = 500
)

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// WeightsRawInput holds component weight overrides from the YAML config
// file. Use float64 pointers so absent keys fall back to defaults.
type WeightsRawInput struct {
	Structural  *float64 `mapstructure:"structural"`
	Governance  *float64 `mapstructure:"governance"`
	Operational *float64 `mapstructure:"operational"`
	Logical     *float64 `mapstructure:"logical"`
	Utility     *float64 `mapstructure:"utility"`
	Preparation *float64 `mapstructure:"preparation"`
}

// ThresholdsRawInput holds detection threshold overrides from the YAML
// config file.
type ThresholdsRawInput struct {
	Correlation   *float64 `mapstructure:"correlation"`
	VIF           *float64 `mapstructure:"vif"`
	NearConstant  *float64 `mapstructure:"near-constant"`
	SampleLimit   *int     `mapstructure:"sample-limit"`
	Contamination *float64 `mapstructure:"contamination"`
}

// Config holds the runtime configuration for an evaluation.
// This struct remains the "final, validated" config.
type Config struct {
	InputPath  string
	FileType   schema.SourceType
	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)
	Detail     bool

	Backend   schema.DatabaseBackend
	DBConnect string // Please use env var as this is plaintext
	TableName string

	// CustomWeights holds only the overrides the user supplied.
	CustomWeights map[schema.ComponentKey]float64

	// ComputedWeights is defaults merged with overrides; always complete.
	ComputedWeights map[schema.ComponentKey]float64

	Thresholds schema.Thresholds

	MinScore float64
	MinTier  schema.TrustTier

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	InputPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	FileType   string `mapstructure:"file-type"`
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Width      int    `mapstructure:"width"`
	Detail     bool   `mapstructure:"detail"`
	Backend    string `mapstructure:"db-backend"`
	DBConnect  string `mapstructure:"db-connect"`
	Table      string `mapstructure:"table"`
	Emoji      string `mapstructure:"emoji"`
	Color      string `mapstructure:"color"`

	// --- Fields from checkCmd.Flags() ---
	MinScore float64 `mapstructure:"min-score"`
	MinTier  string  `mapstructure:"min-tier"`

	// --- Component weight overrides from config file ---
	Weights WeightsRawInput `mapstructure:"weights"`

	// --- Detection threshold overrides from config file ---
	Thresholds ThresholdsRawInput `mapstructure:"thresholds"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.CustomWeights != nil {
		clone.CustomWeights = make(map[schema.ComponentKey]float64)
		maps.Copy(clone.CustomWeights, c.CustomWeights)
	}
	if c.ComputedWeights != nil {
		clone.ComputedWeights = make(map[schema.ComponentKey]float64)
		maps.Copy(clone.ComputedWeights, c.ComputedWeights)
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// All validation functions read from 'input' and populate 'cfg'.
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processWeights(cfg, input); err != nil {
		return err
	}
	if err := processThresholds(cfg, input); err != nil {
		return err
	}
	if err := processCheckGate(cfg, input); err != nil {
		return err
	}
	if err := resolveInputSource(cfg, input); err != nil {
		return err
	}
	return nil
}

// ProcessServerConfig validates everything except the dataset source.
// MCP clients supply the source per tool call, so the server can start
// without a path or table.
func ProcessServerConfig(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processWeights(cfg, input); err != nil {
		return err
	}
	if err := processThresholds(cfg, input); err != nil {
		return err
	}
	return processCheckGate(cfg, input)
}

// ValidateDatabaseConnectionString validates the format of database
// connection strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.NoneBackend:
		return nil
	case schema.SQLiteBackend:
		if connStr == "" {
			return fmt.Errorf("db-connect is required when using %s backend", backend)
		}
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateSimpleInputs processes and validates all non-source fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = input.OutputFile
	cfg.Detail = input.Detail

	// Parse emoji flag
	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Width Validation ---
	if input.Width < 0 || input.Width > MaxWidthOverride {
		return fmt.Errorf("width must be between 0 and %d (received %d)", MaxWidthOverride, input.Width)
	}
	cfg.Width = input.Width

	// --- 2. Output Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}

	// --- 3. Backend Validation ---
	cfg.Backend = schema.DatabaseBackend(strings.ToLower(input.Backend))
	if _, ok := schema.ValidDatabaseBackends[cfg.Backend]; !ok {
		return fmt.Errorf("invalid db backend '%s'. must be sqlite, mysql, postgresql, none", input.Backend)
	}
	cfg.DBConnect = input.DBConnect
	if err := ValidateDatabaseConnectionString(cfg.Backend, cfg.DBConnect); err != nil {
		return err
	}
	if input.Table != "" && !tableNamePattern.MatchString(input.Table) {
		return fmt.Errorf("invalid table name %q: only letters, digits and underscores are allowed", input.Table)
	}
	cfg.TableName = input.Table

	return nil
}

// processWeights merges the component weight overrides onto the defaults
// and validates that the merged weights sum to 1.0.
func processWeights(cfg *Config, input *ConfigRawInput) error {
	overrides := make(map[schema.ComponentKey]float64)
	raw := map[schema.ComponentKey]*float64{
		schema.ComponentStructural:      input.Weights.Structural,
		schema.ComponentGovernanceTrust: input.Weights.Governance,
		schema.ComponentOperational:     input.Weights.Operational,
		schema.ComponentLogical:         input.Weights.Logical,
		schema.ComponentUtility:         input.Weights.Utility,
		schema.ComponentPreparation:     input.Weights.Preparation,
	}
	for key, v := range raw {
		if v == nil {
			continue
		}
		if *v < 0 || *v > 1 {
			return fmt.Errorf("weight for %s must be between 0.0 and 1.0 (received %.3f)", key, *v)
		}
		overrides[key] = *v
	}
	cfg.CustomWeights = overrides

	computed := schema.DefaultTrustWeights()
	maps.Copy(computed, overrides)

	sum := 0.0
	for _, w := range computed {
		sum += w
	}
	if sum < 0.999 || sum > 1.001 {
		return fmt.Errorf("component weights must sum to 1.0 after overrides, got %.3f", sum)
	}
	cfg.ComputedWeights = computed
	return nil
}

// processThresholds merges detection threshold overrides onto the defaults.
func processThresholds(cfg *Config, input *ConfigRawInput) error {
	t := schema.DefaultThresholds()

	if input.Thresholds.Correlation != nil {
		if *input.Thresholds.Correlation <= 0 || *input.Thresholds.Correlation > 1 {
			return fmt.Errorf("thresholds.correlation must be in (0, 1] (received %.3f)", *input.Thresholds.Correlation)
		}
		t.RedundancyCorrelation = *input.Thresholds.Correlation
	}
	if input.Thresholds.VIF != nil {
		if *input.Thresholds.VIF <= 1 {
			return fmt.Errorf("thresholds.vif must be greater than 1 (received %.3f)", *input.Thresholds.VIF)
		}
		t.VIF = *input.Thresholds.VIF
	}
	if input.Thresholds.NearConstant != nil {
		if *input.Thresholds.NearConstant <= 0 || *input.Thresholds.NearConstant > 1 {
			return fmt.Errorf("thresholds.near-constant must be in (0, 1] (received %.3f)", *input.Thresholds.NearConstant)
		}
		t.NearConstantShare = *input.Thresholds.NearConstant
	}
	if input.Thresholds.SampleLimit != nil {
		if *input.Thresholds.SampleLimit <= 0 {
			return fmt.Errorf("thresholds.sample-limit must be greater than 0 (received %d)", *input.Thresholds.SampleLimit)
		}
		t.PatternSampleLimit = *input.Thresholds.SampleLimit
	}
	if input.Thresholds.Contamination != nil {
		if *input.Thresholds.Contamination <= 0 || *input.Thresholds.Contamination > 0.5 {
			return fmt.Errorf("thresholds.contamination must be in (0, 0.5] (received %.3f)", *input.Thresholds.Contamination)
		}
		t.AnomalyContamination = *input.Thresholds.Contamination
	}

	cfg.Thresholds = t
	return nil
}

// processCheckGate validates the check command's acceptance gate.
func processCheckGate(cfg *Config, input *ConfigRawInput) error {
	if input.MinScore < 0 || input.MinScore > 1 {
		return fmt.Errorf("min-score must be between 0.0 and 1.0 (received %.3f)", input.MinScore)
	}
	cfg.MinScore = input.MinScore

	if input.MinTier == "" {
		cfg.MinTier = ""
		return nil
	}
	tier, err := ParseTierName(input.MinTier)
	if err != nil {
		return fmt.Errorf("invalid --min-tier: %w", err)
	}
	cfg.MinTier = tier
	return nil
}

// resolveInputSource resolves the dataset source: an absolute file path
// for file-backed sources, or a bare table reference for SQL sources.
func resolveInputSource(cfg *Config, input *ConfigRawInput) error {
	ft := schema.SourceType(strings.ToLower(input.FileType))
	switch ft {
	case "", schema.CSVSource, schema.TSVSource, schema.JSONSource, schema.ParquetSource, schema.SQLSource:
	default:
		return fmt.Errorf("invalid file type '%s'. must be csv, tsv, json, parquet, sql", input.FileType)
	}
	cfg.FileType = ft

	if cfg.Backend != schema.NoneBackend || ft == schema.SQLSource {
		if cfg.Backend == schema.NoneBackend {
			return fmt.Errorf("file type sql requires --db-backend and --db-connect")
		}
		if cfg.TableName == "" {
			return fmt.Errorf("--table is required when using %s backend", cfg.Backend)
		}
		cfg.FileType = schema.SQLSource
		cfg.InputPath = input.InputPathStr
		return nil
	}

	if input.InputPathStr == "" {
		return fmt.Errorf("a dataset path is required")
	}
	absPath, err := filepath.Abs(input.InputPathStr)
	if err != nil {
		return err
	}
	cfg.InputPath = filepath.Clean(absPath)
	return nil
}
