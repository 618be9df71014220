package gallery

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Image is a photo in the couple gallery. A row is only ever created after
// its backing file upload succeeded, so ImageURL is never empty once the
// record exists.
type Image struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	ImageURL   string    `json:"image_url" gorm:"not null"`
	Caption    string    `json:"caption"`
	UploadedAt time.Time `json:"uploaded_at" gorm:"autoCreateTime"`
}

// TableName overrides the table name used by GORM
func (Image) TableName() string {
	return "gallery"
}

// BeforeCreate sets a UUID before creating the record
func (i *Image) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// NewImage creates a new gallery image for an already uploaded file
func NewImage(imageURL, caption string) *Image {
	return &Image{
		ID:       uuid.New(),
		ImageURL: imageURL,
		Caption:  caption,
	}
}

// Validate checks if the gallery image data is valid
func (i *Image) Validate() error {
	if i.ImageURL == "" {
		return fmt.Errorf("image_url is required")
	}
	return nil
}
