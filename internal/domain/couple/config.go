package couple

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Config holds the couple profile: the relationship start date, the partner
// display names and the couple photo. At most one row logically exists; the
// repository enforces that with upsert-by-existence since the store itself
// has no singleton constraint.
type Config struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	LoveStartDate  time.Time `json:"love_start_date" gorm:"not null"`
	Partner1Name   string    `json:"partner1_name"`
	Partner2Name   string    `json:"partner2_name"`
	CoupleImageURL string    `json:"couple_image_url"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName overrides the table name used by GORM
func (Config) TableName() string {
	return "config"
}

// BeforeCreate sets a UUID before creating the record
func (c *Config) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// NewConfig creates a new couple configuration
func NewConfig(loveStartDate time.Time, partner1Name, partner2Name string) *Config {
	return &Config{
		ID:            uuid.New(),
		LoveStartDate: loveStartDate,
		Partner1Name:  partner1Name,
		Partner2Name:  partner2Name,
	}
}

// Validate checks if the configuration data is valid
func (c *Config) Validate() error {
	if c.LoveStartDate.IsZero() {
		return fmt.Errorf("love_start_date is required")
	}
	return nil
}
