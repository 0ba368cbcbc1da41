package router

import (
	"testing"

	"tradeRouter/domain"
)

func TestConfigWithOverrides(t *testing.T) {
	base := DefaultConfig()

	// zero row keeps every default
	same := base.WithOverrides(domain.RouterConfig{})
	if same != base {
		t.Errorf("zero override changed config: %+v", same)
	}

	adapt := false
	got := base.WithOverrides(domain.RouterConfig{
		RewardScale:  50,
		ExploreCoeff: 0.01,
		AdaptWeights: &adapt,
	})

	if got.RewardScale != 50 {
		t.Errorf("RewardScale = %v, want 50", got.RewardScale)
	}
	if got.ExploreCoeff != 0.01 {
		t.Errorf("ExploreCoeff = %v, want 0.01", got.ExploreCoeff)
	}
	if got.AdaptWeights {
		t.Error("AdaptWeights override ignored")
	}
	if got.PriorStd != base.PriorStd || got.WeightClamp != base.WeightClamp {
		t.Error("untouched fields drifted from defaults")
	}
}
