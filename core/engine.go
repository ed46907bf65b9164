package core

import (
	"context"
	"sync"
	"time"

	"github.com/trustgate/trustgate/schema"
)

// EngineConfig tunes an Engine. The zero value selects the stock
// thresholds, weights and pattern set, the quantile anomaly scorer and
// the wall clock.
type EngineConfig struct {
	Thresholds *schema.Thresholds
	Weights    map[schema.ComponentKey]float64
	Patterns   *PatternSet
	Scorer     OutlierScorer
	Clock      func() time.Time
}

// Engine runs the full evaluation pipeline: the five layer evaluators in
// parallel, then the trust aggregation. Engines are safe for concurrent
// use.
type Engine struct {
	weights     map[schema.ComponentKey]float64
	structural  *StructuralEvaluator
	governance  *GovernanceEvaluator
	operational *OperationalEvaluator
	logical     *LogicalEvaluator
	analytical  *AnalyticalEvaluator
}

// NewEngine builds an Engine from cfg, filling in defaults for anything
// left unset.
func NewEngine(cfg EngineConfig) *Engine {
	thresholds := schema.DefaultThresholds()
	if cfg.Thresholds != nil {
		thresholds = *cfg.Thresholds
	}
	weights := cfg.Weights
	if weights == nil {
		weights = schema.DefaultTrustWeights()
	}
	patterns := DefaultPatternSet()
	if cfg.Patterns != nil {
		patterns = *cfg.Patterns
	}
	scorer := cfg.Scorer
	if scorer == nil {
		scorer = QuantileScorer{Contamination: thresholds.AnomalyContamination}
	}
	return &Engine{
		weights:     weights,
		structural:  NewStructuralEvaluator(thresholds),
		governance:  NewGovernanceEvaluator(patterns, thresholds),
		operational: NewOperationalEvaluator(cfg.Clock),
		logical:     NewLogicalEvaluator(),
		analytical:  NewAnalyticalEvaluator(thresholds, scorer),
	}
}

// NewDefaultEngine builds an Engine with the stock configuration.
func NewDefaultEngine() *Engine {
	return NewEngine(EngineConfig{})
}

// Evaluate runs every layer against the profile and aggregates the trust
// index. The layers are independent pure functions over the profile, so
// they fan out onto their own goroutines and join before aggregation.
// Evaluation is not interruptible mid-layer; ctx is checked once up front.
func (e *Engine) Evaluate(ctx context.Context, profile *schema.DatasetProfile) (*schema.EvaluationBundle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bundle := &schema.EvaluationBundle{}
	var wg sync.WaitGroup
	wg.Go(func() { bundle.Structural = e.structural.Evaluate(profile) })
	wg.Go(func() { bundle.Governance = e.governance.Evaluate(profile) })
	wg.Go(func() { bundle.Operational = e.operational.Evaluate(profile) })
	wg.Go(func() { bundle.Logical = e.logical.Evaluate(profile) })
	wg.Go(func() { bundle.Analytical = e.analytical.Evaluate(profile) })
	wg.Wait()

	trust := ComputeTrustIndex(
		e.weights,
		bundle.Structural,
		bundle.Governance,
		bundle.Operational,
		bundle.Logical,
		bundle.Analytical,
	)
	bundle.Trust = &trust
	return bundle, nil
}
