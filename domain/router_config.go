package domain

// RouterConfig is the persisted/admin-facing form of the router tunables.
// Zero values mean "keep the default" when applied on top of defaults.
type RouterConfig struct {
	ID uint `json:"-" gorm:"column:id;primaryKey"`

	RewardScale        float64 `json:"reward_scale" gorm:"column:reward_scale"`
	ExploreCoeff       float64 `json:"explore_coeff" gorm:"column:explore_coeff"`
	PriorStd           float64 `json:"prior_std" gorm:"column:prior_std"`
	HeuristicBonus     float64 `json:"heuristic_bonus" gorm:"column:heuristic_bonus"`
	WeightLearningRate float64 `json:"weight_learning_rate" gorm:"column:weight_learning_rate"`
	WeightClamp        float64 `json:"weight_clamp" gorm:"column:weight_clamp"`
	AdaptWeights       *bool   `json:"adapt_weights,omitempty" gorm:"column:adapt_weights"`
}

func (RouterConfig) TableName() string {
	return "router_config"
}
