package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/trunghoangnt2003/memory/internal/domain/event"
	"github.com/trunghoangnt2003/memory/internal/logger"
	"github.com/trunghoangnt2003/memory/internal/storage/objectstore"
	"github.com/trunghoangnt2003/memory/internal/storage/postgres"
	"github.com/trunghoangnt2003/memory/internal/validation"
)

// EventService handles the dated event use cases
type EventService struct {
	eventRepo postgres.EventRepository
	uploader  objectstore.Uploader
	validator validation.EventValidation
}

// NewEventService creates a new event service
func NewEventService(eventRepo postgres.EventRepository, uploader objectstore.Uploader) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		uploader:  uploader,
		validator: validation.EventValidation{},
	}
}

// CreateEventRequest carries the fields of a new event
type CreateEventRequest struct {
	Title       string
	Date        time.Time
	Location    string
	Latitude    float64
	Longitude   float64
	Description string
	ImageURL    string
}

// List returns all events, newest date first
func (s *EventService) List(ctx context.Context) ([]*event.Event, error) {
	return s.eventRepo.GetAll(ctx)
}

// Get returns one event, or ErrNotFound
func (s *EventService) Get(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	e, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, ErrNotFound
	}
	return e, nil
}

// Create uploads the event image when one is supplied, then persists the
// event referencing the resulting URL.
func (s *EventService) Create(ctx context.Context, req CreateEventRequest, file *UploadedFile) (*event.Event, error) {
	log := logger.Service("event")

	if err := s.validator.ValidateTitle(req.Title); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateLocation(req.Location); err != nil {
		return nil, err
	}

	imageURL := req.ImageURL
	if file != nil {
		url, err := s.uploadImage(ctx, file)
		if err != nil {
			log.Error("Event image upload failed", "error", err)
			return nil, ErrUploadFailed
		}
		imageURL = url
	}

	e := event.NewEvent(req.Title, req.Date, req.Location, req.Latitude, req.Longitude, req.Description)
	e.ImageURL = imageURL

	if err := e.Validate(); err != nil {
		return nil, err
	}

	if err := s.eventRepo.Create(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

// Update applies a partial patch to an event. Omitting the file leaves the
// existing image URL untouched; a supplied file that fails to upload
// short-circuits without touching the record.
func (s *EventService) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}, file *UploadedFile) (*event.Event, error) {
	log := logger.Service("event")

	if file != nil {
		url, err := s.uploadImage(ctx, file)
		if err != nil {
			log.Error("Event image upload failed", "error", err)
			return nil, ErrUploadFailed
		}
		fields["image_url"] = url
	}

	e, err := s.eventRepo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, ErrNotFound
	}
	return e, nil
}

// Delete removes an event by id
func (s *EventService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.eventRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (s *EventService) uploadImage(ctx context.Context, file *UploadedFile) (string, error) {
	return s.uploader.Upload(ctx,
		objectstore.BucketEventImages,
		objectstore.ObjectName(objectstore.PrefixEvent, file.Filename),
		file.Reader, file.Size, file.ContentType)
}
