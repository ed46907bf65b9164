package schema

import "github.com/trustgate/trustgate/frame"

// InputMetadata captures ingestion-time facts about a table. It is built
// once by the profile builder and never mutated.
type InputMetadata struct {
	FileType       SourceType        `json:"file_type"`
	RecordCount    int               `json:"record_count"`
	ColumnCount    int               `json:"column_count"`
	DataTypes      map[string]string `json:"data_types"` // column -> dtype label
	HasTimestamp   bool              `json:"has_timestamp"`
	HasText        bool              `json:"has_text"`
	NumericDensity float64           `json:"numeric_density"` // numeric columns / total columns
	ColumnNames    []string          `json:"column_names"`
}

// DatasetProfile is the evaluation unit shared by every evaluator. The
// working table, when present, is the normalized view all evaluators read;
// otherwise they read the raw table. Profiles are read-only after creation.
type DatasetProfile struct {
	Raw      *frame.Table
	Metadata InputMetadata
	Working  *frame.Table // optional normalized view
}

// Table returns the view evaluators should read.
func (p *DatasetProfile) Table() *frame.Table {
	if p.Working != nil {
		return p.Working
	}
	return p.Raw
}
