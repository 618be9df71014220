package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/trunghoangnt2003/memory/internal/domain/gallery"
)

// PostgresGalleryRepository is the GORM-backed GalleryRepository.
type PostgresGalleryRepository struct {
	db *gorm.DB
}

func NewPostgresGalleryRepository(db *gorm.DB) *PostgresGalleryRepository {
	return &PostgresGalleryRepository{db: db}
}

func (r *PostgresGalleryRepository) GetAll(ctx context.Context) ([]*gallery.Image, error) {
	var images []*gallery.Image
	err := r.db.WithContext(ctx).Order("uploaded_at DESC").Find(&images).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch gallery images: %w", err)
	}
	return images, nil
}

func (r *PostgresGalleryRepository) GetByID(ctx context.Context, id uuid.UUID) (*gallery.Image, error) {
	var img gallery.Image
	err := r.db.WithContext(ctx).First(&img, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch gallery image: %w", err)
	}
	return &img, nil
}

func (r *PostgresGalleryRepository) Create(ctx context.Context, img *gallery.Image) error {
	if err := img.Validate(); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(img).Error; err != nil {
		return fmt.Errorf("failed to create gallery image: %w", err)
	}
	return nil
}

func (r *PostgresGalleryRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*gallery.Image, error) {
	result := r.db.WithContext(ctx).
		Model(&gallery.Image{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update gallery image: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	return r.GetByID(ctx, id)
}

func (r *PostgresGalleryRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&gallery.Image{}, "id = ?", id)
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete gallery image: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
