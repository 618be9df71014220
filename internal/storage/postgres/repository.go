package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/trunghoangnt2003/memory/internal/domain/couple"
	"github.com/trunghoangnt2003/memory/internal/domain/event"
	"github.com/trunghoangnt2003/memory/internal/domain/gallery"
)

// Repositories map a "row not found" store response to (nil, nil); any other
// store error propagates, so callers can tell an empty dataset from a failed
// fetch.

// ConfigRepository defines the operations on the singleton couple configuration.
type ConfigRepository interface {
	// Get returns the one existing configuration row, or nil when unset.
	Get(ctx context.Context) (*couple.Config, error)
	// Upsert updates the existing row when one exists, otherwise inserts.
	Upsert(ctx context.Context, cfg *couple.Config) (*couple.Config, error)
}

// EventRepository defines the operations on dated events.
type EventRepository interface {
	GetAll(ctx context.Context) ([]*event.Event, error)
	GetByID(ctx context.Context, id uuid.UUID) (*event.Event, error)
	Create(ctx context.Context, e *event.Event) error
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*event.Event, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// GalleryRepository defines the operations on gallery images.
type GalleryRepository interface {
	GetAll(ctx context.Context) ([]*gallery.Image, error)
	GetByID(ctx context.Context, id uuid.UUID) (*gallery.Image, error)
	Create(ctx context.Context, img *gallery.Image) error
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*gallery.Image, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
