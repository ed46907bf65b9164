// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/trustgate/trustgate/internal/contract"
	"github.com/trustgate/trustgate/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteEvaluation prints a full evaluation using the configured output format.
func (ow *OutWriter) WriteEvaluation(profile *schema.DatasetProfile, bundle *schema.EvaluationBundle, cfg *contract.Config, duration time.Duration) error {
	return WriteEvaluationResults(profile, bundle, cfg, duration)
}

// WriteReport prints the executive summary using the configured output format.
func (ow *OutWriter) WriteReport(profile *schema.DatasetProfile, bundle *schema.EvaluationBundle, cfg *contract.Config) error {
	return WriteReportResults(profile, bundle, cfg)
}

// WriteMetrics prints component and tier definitions using the configured output format.
func (ow *OutWriter) WriteMetrics(weights map[schema.ComponentKey]float64, cfg *contract.Config) error {
	return PrintMetricsDefinitions(weights, cfg)
}
