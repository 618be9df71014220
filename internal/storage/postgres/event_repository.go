package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/trunghoangnt2003/memory/internal/domain/event"
)

// PostgresEventRepository is the GORM-backed EventRepository.
type PostgresEventRepository struct {
	db *gorm.DB
}

func NewPostgresEventRepository(db *gorm.DB) *PostgresEventRepository {
	return &PostgresEventRepository{db: db}
}

func (r *PostgresEventRepository) GetAll(ctx context.Context) ([]*event.Event, error) {
	var events []*event.Event
	err := r.db.WithContext(ctx).Order("date DESC").Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}
	return events, nil
}

func (r *PostgresEventRepository) GetByID(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	var e event.Event
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch event: %w", err)
	}
	return &e, nil
}

func (r *PostgresEventRepository) Create(ctx context.Context, e *event.Event) error {
	if err := r.db.WithContext(ctx).Create(e).Error; err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

func (r *PostgresEventRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*event.Event, error) {
	result := r.db.WithContext(ctx).
		Model(&event.Event{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update event: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	return r.GetByID(ctx, id)
}

func (r *PostgresEventRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&event.Event{}, "id = ?", id)
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete event: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
