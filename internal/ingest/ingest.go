// Package ingest loads tabular datasets from delimited files, JSON,
// Parquet and SQL tables into the columnar frame the evaluators consume.
package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/trustgate/trustgate/frame"
	"github.com/trustgate/trustgate/internal/contract"
	"github.com/trustgate/trustgate/schema"
)

// DetectSourceType infers the source type from the file extension.
func DetectSourceType(path string) schema.SourceType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return schema.CSVSource
	case ".tsv", ".txt":
		return schema.TSVSource
	case ".json":
		return schema.JSONSource
	case ".parquet":
		return schema.ParquetSource
	default:
		return schema.UnknownSource
	}
}

// Load reads the configured dataset source and returns the table together
// with the resolved source type.
func Load(ctx context.Context, cfg *contract.Config) (*frame.Table, schema.SourceType, error) {
	sourceType := cfg.FileType
	if cfg.Backend != schema.NoneBackend {
		sourceType = schema.SQLSource
	}
	if sourceType == "" {
		sourceType = DetectSourceType(cfg.InputPath)
		if sourceType == schema.UnknownSource {
			return nil, schema.UnknownSource, fmt.Errorf(
				"cannot infer file type of %q; pass --file-type csv, tsv, json or parquet", cfg.InputPath)
		}
	}

	switch sourceType {
	case schema.SQLSource:
		table, err := loadSQL(ctx, cfg)
		return table, sourceType, err
	case schema.CSVSource:
		table, err := loadDelimited(cfg.InputPath, ',')
		return table, sourceType, err
	case schema.TSVSource:
		table, err := loadDelimited(cfg.InputPath, '\t')
		return table, sourceType, err
	case schema.JSONSource:
		table, err := loadJSON(cfg.InputPath)
		return table, sourceType, err
	case schema.ParquetSource:
		table, err := loadParquet(cfg.InputPath)
		return table, sourceType, err
	default:
		return nil, sourceType, fmt.Errorf("unsupported file type %q", sourceType)
	}
}

func openSourceFile(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %s", path)
		}
		return nil, err
	}
	return f, nil
}
