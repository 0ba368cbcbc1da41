package router

import (
	"errors"
	"math"
	"testing"

	"tradeRouter/domain"
)

func TestContextAdjustNeutralOnMissing(t *testing.T) {
	weights := defaultFeatureWeights()

	if adj := contextAdjust(PolicySMA, nil, weights, 0.002); adj != 0 {
		t.Errorf("nil context adjustment = %v, want 0", adj)
	}
	if adj := contextAdjust(PolicySMA, domain.Context{}, weights, 0.002); adj != 0 {
		t.Errorf("empty context adjustment = %v, want 0", adj)
	}

	// unknown and non-numeric fields are ignored
	mktCtx := domain.Context{
		"nonsense_feature": 123.0,
		"venue":            "binance",
	}
	if adj := contextAdjust(PolicySMA, mktCtx, weights, 0.002); adj != 0 {
		t.Errorf("unknown-field adjustment = %v, want 0", adj)
	}
}

func TestContextAdjustWeightedSum(t *testing.T) {
	weights := map[string]float64{"sigmaHAR": -0.004, "obi": 0.003}
	mktCtx := domain.Context{"sigmaHAR": 0.5, "obi": 0.2}

	want := -0.004*0.5 + 0.003*0.2
	got := contextAdjust(PolicySMA, mktCtx, weights, 0.002)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("adjustment = %v, want %v", got, want)
	}
}

func TestContextAdjustHeuristicBonuses(t *testing.T) {
	weights := map[string]float64{}
	const bonus = 0.002

	heavyBook := domain.Context{"obi": 0.15}
	if adj := contextAdjust(PolicyBreakout, heavyBook, weights, bonus); adj != bonus {
		t.Errorf("breakout bonus on obi=0.15: got %v, want %v", adj, bonus)
	}
	if adj := contextAdjust(PolicyMeanRevert, heavyBook, weights, bonus); adj != 0 {
		t.Errorf("mean-revert bonus on obi=0.15: got %v, want 0", adj)
	}

	flatBook := domain.Context{"obi": 0.01}
	if adj := contextAdjust(PolicyMeanRevert, flatBook, weights, bonus); adj != bonus {
		t.Errorf("mean-revert bonus on obi=0.01: got %v, want %v", adj, bonus)
	}
	if adj := contextAdjust(PolicyBreakout, flatBook, weights, bonus); adj != 0 {
		t.Errorf("breakout bonus on obi=0.01: got %v, want 0", adj)
	}

	bull := domain.Context{"regime": "bull"}
	if adj := contextAdjust(PolicyMomentum, bull, weights, bonus); adj != bonus {
		t.Errorf("momentum bonus in bull regime: got %v, want %v", adj, bonus)
	}
	if adj := contextAdjust(PolicySMA, bull, weights, bonus); adj != 0 {
		t.Errorf("sma bonus in bull regime: got %v, want 0", adj)
	}
}

func TestContextAdjustRegimeWeightKeys(t *testing.T) {
	weights := map[string]float64{"regime_bull": 0.002, "regime_bear": -0.002}

	if adj := contextAdjust(PolicySMA, domain.Context{"regime": "bull"}, weights, 0); adj != 0.002 {
		t.Errorf("regime_bull contribution = %v, want 0.002", adj)
	}
	if adj := contextAdjust(PolicySMA, domain.Context{"regime": "bear"}, weights, 0); adj != -0.002 {
		t.Errorf("regime_bear contribution = %v, want -0.002", adj)
	}
	// unmapped label contributes nothing
	if adj := contextAdjust(PolicySMA, domain.Context{"regime": "sideways"}, weights, 0); adj != 0 {
		t.Errorf("unmapped regime contribution = %v, want 0", adj)
	}
}

func TestNudgeWeightsClamped(t *testing.T) {
	weights := map[string]float64{"obi": 0.003}
	mktCtx := domain.Context{"obi": 1.0, "not_in_table": 5.0}

	nudgeWeights(weights, mktCtx, 0.01, 0.01, 1.0)
	want := 0.003 + 0.01*0.01*1.0
	if math.Abs(weights["obi"]-want) > 1e-12 {
		t.Errorf("nudged weight = %v, want %v", weights["obi"], want)
	}
	if _, ok := weights["not_in_table"]; ok {
		t.Error("nudge created a weight for an unknown feature")
	}

	// clamp holds under a run of extreme rewards
	for i := 0; i < 1000; i++ {
		nudgeWeights(weights, domain.Context{"obi": 10.0}, 100, 0.5, 1.0)
	}
	if weights["obi"] > 1.0 || weights["obi"] < -1.0 {
		t.Errorf("weight escaped clamp: %v", weights["obi"])
	}
}

func TestValidateContext(t *testing.T) {
	if err := validateContext(nil); err != nil {
		t.Errorf("nil context rejected: %v", err)
	}
	if err := validateContext(domain.Context{"regime": "bull", "sigmaHAR": 0.2}); err != nil {
		t.Errorf("valid context rejected: %v", err)
	}

	err := validateContext(domain.Context{"sigmaHAR": math.NaN()})
	if !errors.Is(err, ErrInvalidContext) {
		t.Errorf("NaN feature not rejected as ErrInvalidContext: %v", err)
	}

	err = validateContext(domain.Context{"obi": math.Inf(1)})
	if !errors.Is(err, ErrInvalidContext) {
		t.Errorf("Inf feature not rejected as ErrInvalidContext: %v", err)
	}
}
