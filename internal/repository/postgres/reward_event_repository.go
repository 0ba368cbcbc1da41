package postgres

import (
	"context"
	"fmt"

	"tradeRouter/domain"

	"gorm.io/gorm"
)

// RewardEventRepository appends accepted policy updates to the
// router_reward_events table for offline analysis and replay.
type RewardEventRepository struct {
	DB *gorm.DB
}

func NewRewardEventRepository(db *gorm.DB) *RewardEventRepository {
	return &RewardEventRepository{DB: db}
}

func (r *RewardEventRepository) SaveEvent(ctx context.Context, event domain.RewardEvent) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(&event).Error; err != nil {
		return fmt.Errorf("failed to save reward event: %w", err)
	}

	return nil
}
