package router

import (
	"context"

	"tradeRouter/domain"
)

type Config struct {
	// RewardScale maps a basis-point reward onto the bounded alpha/beta
	// increment: scale(r) = min(1, |r|*RewardScale).
	RewardScale float64

	// ExploreCoeff sizes the exploration bonus ExploreCoeff/sqrt(count+1).
	ExploreCoeff float64

	// PriorStd is the sampling std before a policy has enough rewards to
	// estimate its own.
	PriorStd float64

	// HeuristicBonus is the fixed affinity bonus in the featurizer. Zero
	// disables the rule-based path entirely.
	HeuristicBonus float64

	// Online feature-weight adaptation.
	WeightLearningRate float64
	WeightClamp        float64
	AdaptWeights       bool
}

const (
	defaultRewardScale        = 25.0
	defaultExploreCoeff       = 0.005
	defaultPriorStd           = 0.01
	defaultHeuristicBonus     = 0.002
	defaultWeightLearningRate = 0.01
	defaultWeightClamp        = 1.0
)

func DefaultConfig() Config {
	return Config{
		RewardScale:        defaultRewardScale,
		ExploreCoeff:       defaultExploreCoeff,
		PriorStd:           defaultPriorStd,
		HeuristicBonus:     defaultHeuristicBonus,
		WeightLearningRate: defaultWeightLearningRate,
		WeightClamp:        defaultWeightClamp,
		AdaptWeights:       true,
	}
}

// WithOverrides copies non-zero persisted fields on top of c, keeping sane
// fallbacks for anything the row never set.
func (c Config) WithOverrides(o domain.RouterConfig) Config {
	if o.RewardScale > 0 {
		c.RewardScale = o.RewardScale
	}
	if o.ExploreCoeff > 0 {
		c.ExploreCoeff = o.ExploreCoeff
	}
	if o.PriorStd > 0 {
		c.PriorStd = o.PriorStd
	}
	if o.HeuristicBonus > 0 {
		c.HeuristicBonus = o.HeuristicBonus
	}
	if o.WeightLearningRate > 0 {
		c.WeightLearningRate = o.WeightLearningRate
	}
	if o.WeightClamp > 0 {
		c.WeightClamp = o.WeightClamp
	}
	if o.AdaptWeights != nil {
		c.AdaptWeights = *o.AdaptWeights
	}
	return c
}

// RewardEventRepository appends accepted updates to durable storage.
type RewardEventRepository interface {
	SaveEvent(ctx context.Context, event domain.RewardEvent) error
}

// ConfigRepository reads/writes persisted config overrides.
type ConfigRepository interface {
	GetConfig(ctx context.Context) (domain.RouterConfig, bool, error)
	UpsertConfig(ctx context.Context, cfg domain.RouterConfig) error
}
