package event

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Event represents a dated, located memory: a date the couple went on, where
// it happened and optionally a photo. Duplicate titles and dates are allowed
// by design; two dates can happen at the same place.
type Event struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Title       string    `json:"title" gorm:"not null"`
	Date        time.Time `json:"date" gorm:"not null"`
	Location    string    `json:"location" gorm:"not null"`
	Latitude    float64   `json:"latitude" gorm:"not null"`
	Longitude   float64   `json:"longitude" gorm:"not null"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName overrides the table name used by GORM
func (Event) TableName() string {
	return "events"
}

// BeforeCreate sets a UUID before creating the record
func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// NewEvent creates a new event with the given parameters
func NewEvent(title string, date time.Time, location string, latitude, longitude float64, description string) *Event {
	return &Event{
		ID:          uuid.New(),
		Title:       title,
		Date:        date,
		Location:    location,
		Latitude:    latitude,
		Longitude:   longitude,
		Description: description,
	}
}

// Validate checks if the event data is valid
func (e *Event) Validate() error {
	if e.Title == "" {
		return fmt.Errorf("title is required")
	}
	if e.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	if e.Location == "" {
		return fmt.Errorf("location is required")
	}
	return ValidateCoordinates(e.Latitude, e.Longitude)
}

// ValidateCoordinates checks that latitude and longitude are finite and
// within valid degree ranges.
func ValidateCoordinates(latitude, longitude float64) error {
	if math.IsNaN(latitude) || math.IsInf(latitude, 0) {
		return fmt.Errorf("latitude must be a finite number")
	}
	if math.IsNaN(longitude) || math.IsInf(longitude, 0) {
		return fmt.Errorf("longitude must be a finite number")
	}
	if latitude < -90 || latitude > 90 {
		return fmt.Errorf("latitude must be between -90 and 90")
	}
	if longitude < -180 || longitude > 180 {
		return fmt.Errorf("longitude must be between -180 and 180")
	}
	return nil
}
