package core

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/trustgate/trustgate/internal/contract"
	"github.com/trustgate/trustgate/internal/ingest"
	"github.com/trustgate/trustgate/internal/outwriter"
	"github.com/trustgate/trustgate/schema"
)

// ExecutorFunc defines the function signature for executing different commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// GetEvaluation loads the configured dataset, builds its profile and runs
// the full evaluation pipeline. It is the shared core behind the evaluate,
// report and check commands as well as the MCP tools.
func GetEvaluation(ctx context.Context, cfg *contract.Config) (*schema.DatasetProfile, *schema.EvaluationBundle, error) {
	table, sourceType, err := ingest.Load(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	profile := BuildProfile(table, sourceType)

	engine := NewEngine(EngineConfig{
		Thresholds: &cfg.Thresholds,
		Weights:    cfg.ComputedWeights,
	})
	bundle, err := engine.Evaluate(ctx, profile)
	if err != nil {
		return nil, nil, err
	}
	return profile, bundle, nil
}

// ExecuteTrustEvaluate runs the full evaluation and prints the breakdown.
// It serves as the main entry point for the 'evaluate' command.
func ExecuteTrustEvaluate(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	profile, bundle, err := GetEvaluation(ctx, cfg)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.NewOutWriter().WriteEvaluation(profile, bundle, cfg, duration)
}

// ExecuteTrustReport runs the full evaluation and prints the executive
// summary. It serves as the main entry point for the 'report' command.
func ExecuteTrustReport(ctx context.Context, cfg *contract.Config) error {
	profile, bundle, err := GetEvaluation(ctx, cfg)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteReport(profile, bundle, cfg)
}

// ExecuteTrustCheck runs the check command for CI/CD gating. It evaluates
// the dataset, compares the trust index against the configured minimums,
// and exits non-zero when the gate fails.
func ExecuteTrustCheck(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	_, bundle, err := GetEvaluation(ctx, cfg)
	if err != nil {
		return err
	}

	result := BuildCheckResult(bundle, cfg)
	printCheckResult(result, time.Since(start))

	if !result.Passed {
		fmt.Printf("%d gate violation(s) found\n", len(result.Reasons))
		os.Exit(1)
	}
	return nil
}

// ExecuteTrustMetrics displays the formal definitions of the trust
// components and tiers. This is a static display that does not require a
// dataset.
func ExecuteTrustMetrics(_ context.Context, cfg *contract.Config) error {
	return outwriter.NewOutWriter().WriteMetrics(cfg.ComputedWeights, cfg)
}

// BuildCheckResult applies the acceptance gate to an evaluation.
func BuildCheckResult(bundle *schema.EvaluationBundle, cfg *contract.Config) *schema.CheckResult {
	trust := bundle.Trust
	result := &schema.CheckResult{
		EDTIScore: trust.EDTIScore,
		TrustTier: trust.TrustTier,
		MinScore:  cfg.MinScore,
		MinTier:   cfg.MinTier,
		Passed:    true,
	}

	if trust.EDTIScore < cfg.MinScore {
		result.Passed = false
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("EDTI %.4f below minimum score %.4f", trust.EDTIScore, cfg.MinScore))
	}
	if cfg.MinTier != "" && schema.TierRank(trust.TrustTier) < schema.TierRank(cfg.MinTier) {
		result.Passed = false
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("tier %q below minimum tier %q", trust.TrustTier, cfg.MinTier))
	}
	return result
}

// printCheckResult prints the check result in a concise format suitable for CI/CD.
func printCheckResult(result *schema.CheckResult, duration time.Duration) {
	fmt.Println("Trust Gate Results:")
	fmt.Printf("  Score:     %.4f (%s)\n", result.EDTIScore, result.TrustTier)
	fmt.Printf("  Min score: %.4f\n", result.MinScore)
	if result.MinTier != "" {
		fmt.Printf("  Min tier:  %s\n", result.MinTier)
	}
	fmt.Printf("\nChecked in %v\n\n", duration)

	if result.Passed {
		fmt.Printf("✅ Dataset passed the trust gate\n")
		return
	}
	fmt.Printf("❌ Trust gate failed: %d violation(s)\n", len(result.Reasons))
	for _, reason := range result.Reasons {
		fmt.Printf("  - %s\n", reason)
	}
}
