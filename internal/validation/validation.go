package validation

import (
	"errors"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// ValidateRequired checks that a field is not empty
func ValidateRequired(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New(fieldName + " is required")
	}
	return nil
}

// ValidateMaxLength checks the maximum length of a string
func ValidateMaxLength(value string, maxLength int, fieldName string) error {
	if utf8.RuneCountInString(value) > maxLength {
		return errors.New(fieldName + " must be at most " + strconv.Itoa(maxLength) + " characters long")
	}
	return nil
}

// ValidateUUID checks that a string is a valid UUID
func ValidateUUID(value, fieldName string) error {
	if _, err := uuid.Parse(value); err != nil {
		return errors.New(fieldName + " must be a valid UUID")
	}
	return nil
}

// ValidateInstant checks that a timestamp is set
func ValidateInstant(value time.Time, fieldName string) error {
	if value.IsZero() {
		return errors.New(fieldName + " is required")
	}
	return nil
}

// EventValidation contains event-specific validations
type EventValidation struct{}

// ValidateTitle checks the title of an event
func (v EventValidation) ValidateTitle(title string) error {
	if err := ValidateRequired(title, "title"); err != nil {
		return err
	}
	return ValidateMaxLength(title, 200, "title")
}

// ValidateLocation checks the location text of an event
func (v EventValidation) ValidateLocation(location string) error {
	if err := ValidateRequired(location, "location"); err != nil {
		return err
	}
	return ValidateMaxLength(location, 500, "location")
}

// GalleryValidation contains gallery-specific validations
type GalleryValidation struct{}

// ValidateCaption checks the caption of a gallery image
func (v GalleryValidation) ValidateCaption(caption string) error {
	return ValidateMaxLength(caption, 500, "caption")
}
