package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Context is a snapshot of market features supplied by the feature pipeline.
// Values are numeric except "regime", which is a categorical label. Any field
// may be absent; absent fields contribute nothing to scoring.
type Context map[string]any

// Choice is the outcome of a single policy selection.
type Choice struct {
	PolicyID         string    `json:"policy_id"`
	Score            float64   `json:"score"`
	ExplorationBonus float64   `json:"exploration_bonus"`
	Confidence       float64   `json:"confidence"`
	Timestamp        time.Time `json:"timestamp"`
}

// PolicyUpdate feeds an externally scored trade reward back into a policy.
type PolicyUpdate struct {
	PolicyID string  `json:"policy_id"`
	Reward   float64 `json:"reward"`
	Context  Context `json:"context"`
}

// PolicySnapshot is the read-only view of one policy's posterior.
type PolicySnapshot struct {
	PolicyID   string  `json:"policy_id"`
	Alpha      float64 `json:"alpha"`
	Beta       float64 `json:"beta"`
	Count      uint64  `json:"count"`
	MeanReward float64 `json:"mean_reward"`
}

// RouterSnapshot is a consistent point-in-time export for monitoring.
type RouterSnapshot struct {
	LastChoice     *Choice            `json:"last_choice,omitempty"`
	LastContext    Context            `json:"last_context,omitempty"`
	Policies       []PolicySnapshot   `json:"policies"`
	FeatureWeights map[string]float64 `json:"feature_weights"`
	TotalDecisions uint64             `json:"total_decisions"`
}

// RewardEvent is the persisted form of an accepted PolicyUpdate.
type RewardEvent struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	PolicyID  string            `gorm:"column:policy_id;not null" json:"policy_id"`
	Reward    float64           `gorm:"column:reward;not null" json:"reward"`
	TraceID   string            `gorm:"column:trace_id" json:"trace_id"`
	Context   datatypes.JSONMap `gorm:"column:context;type:jsonb" json:"context"`
	CreatedAt time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (RewardEvent) TableName() string {
	return "router_reward_events"
}
