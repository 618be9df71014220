package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/trunghoangnt2003/memory/internal/domain/couple"
)

// PostgresConfigRepository is the GORM-backed ConfigRepository.
type PostgresConfigRepository struct {
	db *gorm.DB
}

func NewPostgresConfigRepository(db *gorm.DB) *PostgresConfigRepository {
	return &PostgresConfigRepository{db: db}
}

func (r *PostgresConfigRepository) Get(ctx context.Context) (*couple.Config, error) {
	var cfg couple.Config
	err := r.db.WithContext(ctx).Order("created_at ASC").First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch config: %w", err)
	}
	return &cfg, nil
}

// Upsert realizes the singleton invariant at the application layer: the store
// enforces no such constraint, so it reads for an existing row and updates it
// rather than inserting a duplicate.
func (r *PostgresConfigRepository) Upsert(ctx context.Context, cfg *couple.Config) (*couple.Config, error) {
	existing, err := r.Get(ctx)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		if err := r.db.WithContext(ctx).Create(cfg).Error; err != nil {
			return nil, fmt.Errorf("failed to insert config: %w", err)
		}
		return cfg, nil
	}

	fields := map[string]interface{}{
		"love_start_date":  cfg.LoveStartDate,
		"partner1_name":    cfg.Partner1Name,
		"partner2_name":    cfg.Partner2Name,
		"couple_image_url": cfg.CoupleImageURL,
	}

	err = r.db.WithContext(ctx).
		Model(&couple.Config{}).
		Where("id = ?", existing.ID).
		Updates(fields).Error
	if err != nil {
		return nil, fmt.Errorf("failed to update config: %w", err)
	}

	var updated couple.Config
	if err := r.db.WithContext(ctx).First(&updated, "id = ?", existing.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload config: %w", err)
	}
	return &updated, nil
}
