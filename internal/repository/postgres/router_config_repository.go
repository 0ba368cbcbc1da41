package postgres

import (
	"context"
	"fmt"

	"tradeRouter/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RouterConfigRepository persists admin-tuned router overrides as a single
// row, applied defaults-first at startup.
type RouterConfigRepository struct {
	DB *gorm.DB
}

func NewRouterConfigRepository(db *gorm.DB) *RouterConfigRepository {
	return &RouterConfigRepository{DB: db}
}

func (r *RouterConfigRepository) GetConfig(ctx context.Context) (domain.RouterConfig, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.RouterConfig{}, false, fmt.Errorf("context error: %w", err)
	}

	var row domain.RouterConfig
	err := r.DB.WithContext(ctx).First(&row, "id = ?", 1).Error
	if err == gorm.ErrRecordNotFound {
		return domain.RouterConfig{}, false, nil
	}
	if err != nil {
		return domain.RouterConfig{}, false, fmt.Errorf("failed to query router_config: %w", err)
	}

	return row, true, nil
}

func (r *RouterConfigRepository) UpsertConfig(ctx context.Context, cfg domain.RouterConfig) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	cfg.ID = 1

	if err := r.DB.WithContext(ctx).Clauses(
		clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		},
	).Create(&cfg).Error; err != nil {
		return fmt.Errorf("failed to upsert router_config: %w", err)
	}

	return nil
}
