package router

import (
	"math"

	"tradeRouter/domain"
)

const featureRegime = "regime"

// Candidate policy ids. The registry itself is closed at construction and
// never hard-coded to a count; these are only the defaults the service
// ships with plus the ids the affinity rules key on.
const (
	PolicySMA        = "p_sma"
	PolicyEMA        = "p_ema"
	PolicyBreakout   = "p_breakout"
	PolicyMeanRevert = "p_mean_revert"
	PolicyMomentum   = "p_momentum"
)

func DefaultPolicies() []string {
	return []string{PolicySMA, PolicyEMA, PolicyBreakout, PolicyMeanRevert, PolicyMomentum}
}

// Seed weight table. Categorical regime labels contribute through dedicated
// regime_<label> keys rather than numeric interpolation.
func defaultFeatureWeights() map[string]float64 {
	return map[string]float64{
		"sigmaHAR":        -0.004,
		"obi":             0.003,
		"funding_rate":    -0.002,
		"sentiment_score": 0.002,
		"rr25":            0.002,
		"spread_bps":      -0.0001,
		"regime_bull":     0.002,
		"regime_bear":     -0.002,
		"regime_chop":     -0.001,
		"regime_volatile": -0.001,
	}
}

// numericValue extracts a float from the loosely-typed context values.
// JSON decoding hands us float64; trading loops may pass ints directly.
func numericValue(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	default:
		return 0, false
	}
}

// contextAdjust converts a possibly-partial context into a scalar adjustment
// for one policy: weighted sum over known features, plus fixed affinity rules
// kept alongside the learned weights. Absent features contribute zero and
// unknown fields are ignored.
func contextAdjust(policyID string, mktCtx domain.Context, weights map[string]float64, bonus float64) float64 {
	adj := 0.0

	for name, raw := range mktCtx {
		if name == featureRegime {
			if label, ok := raw.(string); ok {
				if w, ok := weights[featureRegime+"_"+label]; ok {
					adj += w
				}
			}
			continue
		}
		v, ok := numericValue(raw)
		if !ok {
			continue
		}
		if w, ok := weights[name]; ok {
			adj += w * v
		}
	}

	// Order-book imbalance affinities: heavy imbalance favors breakout,
	// a flat book favors mean reversion.
	if obi, ok := numericValue(mktCtx["obi"]); ok {
		switch policyID {
		case PolicyBreakout:
			if obi > 0.1 {
				adj += bonus
			}
		case PolicyMeanRevert:
			if obi < 0.05 {
				adj += bonus
			}
		}
	}

	if policyID == PolicyMomentum {
		if label, ok := mktCtx[featureRegime].(string); ok && label == "bull" {
			adj += bonus
		}
	}

	return adj
}

// nudgeWeights applies one bounded online gradient step toward features that
// co-occurred with the reward. Only features already in the table move; the
// clamp keeps a run of extreme rewards from blowing a weight up.
func nudgeWeights(weights map[string]float64, mktCtx domain.Context, reward, lr, clamp float64) {
	for name, raw := range mktCtx {
		if name == featureRegime {
			continue
		}
		v, ok := numericValue(raw)
		if !ok {
			continue
		}
		w, ok := weights[name]
		if !ok {
			continue
		}
		w += lr * reward * v
		if w > clamp {
			w = clamp
		} else if w < -clamp {
			w = -clamp
		}
		weights[name] = w
	}
}

// validateContext rejects NaN/Inf feature values before any mutation.
// Missing fields and non-numeric extras are fine.
func validateContext(mktCtx domain.Context) error {
	for name, raw := range mktCtx {
		v, ok := numericValue(raw)
		if !ok {
			continue
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &InvalidContextError{Field: name, Value: v}
		}
	}
	return nil
}
