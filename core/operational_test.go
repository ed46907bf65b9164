package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trustgate/trustgate/frame"
)

// fixedNow pins the evaluator clock so lag assertions are stable.
var fixedNow = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func newOperationalEvaluator() *OperationalEvaluator {
	return NewOperationalEvaluator(func() time.Time { return fixedNow })
}

func daysAgo(n int) time.Time {
	return fixedNow.AddDate(0, 0, -n)
}

func TestOperationalNoTemporalColumn(t *testing.T) {
	e := newOperationalEvaluator()
	table := frame.New(
		frame.NewIntColumn("id", []int64{1, 2}, nil),
		frame.NewStringColumn("name", []string{"a", "b"}, nil),
	)

	res := e.Evaluate(newTestProfile(table))

	assert.Equal(t, 0.5, res.TemporalReliabilityScore)
	assert.False(t, res.HasTemporalColumn)
	assert.Nil(t, res.LatestUpdateLagDays)
	assert.Equal(t, []string{"No temporal column detected"}, res.OperationalRiskFlags)
}

func TestOperationalFreshRegularData(t *testing.T) {
	e := newOperationalEvaluator()
	table := frame.New(
		frame.NewTimeColumn("event_date", []time.Time{daysAgo(3), daysAgo(2), daysAgo(1)}, nil),
	)

	res := e.Evaluate(newTestProfile(table))

	assert.Equal(t, 1.0, res.TemporalReliabilityScore)
	assert.True(t, res.HasTemporalColumn)
	require.NotNil(t, res.LatestUpdateLagDays)
	assert.Equal(t, 1.0, *res.LatestUpdateLagDays)
	assert.Empty(t, res.OperationalRiskFlags)
}

func TestOperationalLagTiers(t *testing.T) {
	tests := []struct {
		name          string
		latestLagDays int
		expectedFlag  string
		expectedScore float64
	}{
		{"over a year", 400, "Data very stale: over 1 year old", 0.6},
		{"over 90 days", 120, "Data may be stale: over 90 days", 0.8},
		{"over 30 days", 45, "Moderate lag: over 30 days", 0.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newOperationalEvaluator()
			table := frame.New(
				frame.NewTimeColumn("updated", []time.Time{
					daysAgo(tt.latestLagDays + 2),
					daysAgo(tt.latestLagDays + 1),
					daysAgo(tt.latestLagDays),
				}, nil),
			)

			res := e.Evaluate(newTestProfile(table))

			assert.Contains(t, res.OperationalRiskFlags, tt.expectedFlag)
			assert.InDelta(t, tt.expectedScore, res.TemporalReliabilityScore, 1e-9)
		})
	}
}

func TestOperationalGapDetection(t *testing.T) {
	e := newOperationalEvaluator()

	// Daily cadence with one 10-day hole: the gap is over twice the
	// median interval.
	table := frame.New(
		frame.NewTimeColumn("updated", []time.Time{
			daysAgo(14), daysAgo(13), daysAgo(12), daysAgo(2), daysAgo(1),
		}, nil),
	)

	res := e.Evaluate(newTestProfile(table))

	assert.Contains(t, res.OperationalRiskFlags, "Time gaps detected")
	assert.InDelta(t, 0.95, res.TemporalReliabilityScore, 1e-9)
}

func TestOperationalTextDateColumn(t *testing.T) {
	e := newOperationalEvaluator()
	table := frame.New(
		frame.NewStringColumn("order_date", []string{"2024-05-30", "2024-05-31"}, nil),
	)

	res := e.Evaluate(newTestProfile(table))

	assert.True(t, res.HasTemporalColumn)
	require.NotNil(t, res.LatestUpdateLagDays)
	assert.Equal(t, 1.0, *res.LatestUpdateLagDays)
}
