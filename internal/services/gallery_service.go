package services

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/trunghoangnt2003/memory/internal/domain/gallery"
	"github.com/trunghoangnt2003/memory/internal/logger"
	"github.com/trunghoangnt2003/memory/internal/storage/objectstore"
	"github.com/trunghoangnt2003/memory/internal/storage/postgres"
	"github.com/trunghoangnt2003/memory/internal/validation"
)

// GalleryService handles the photo gallery use cases
type GalleryService struct {
	galleryRepo postgres.GalleryRepository
	uploader    objectstore.Uploader
	validator   validation.GalleryValidation
}

// NewGalleryService creates a new gallery service
func NewGalleryService(galleryRepo postgres.GalleryRepository, uploader objectstore.Uploader) *GalleryService {
	return &GalleryService{
		galleryRepo: galleryRepo,
		uploader:    uploader,
		validator:   validation.GalleryValidation{},
	}
}

// BatchItem pairs one file with its caption before dispatch, so a failed
// upload in the middle of a batch never shifts the caption alignment of the
// items after it.
type BatchItem struct {
	File    *UploadedFile
	Caption string
}

// List returns all gallery images, newest upload first
func (s *GalleryService) List(ctx context.Context) ([]*gallery.Image, error) {
	return s.galleryRepo.GetAll(ctx)
}

// Get returns one gallery image, or ErrNotFound
func (s *GalleryService) Get(ctx context.Context, id uuid.UUID) (*gallery.Image, error) {
	img, err := s.galleryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if img == nil {
		return nil, ErrNotFound
	}
	return img, nil
}

// Add uploads one image and creates its gallery record. The record is never
// created when the upload fails.
func (s *GalleryService) Add(ctx context.Context, caption string, file *UploadedFile) (*gallery.Image, error) {
	log := logger.Service("gallery")

	if err := s.validator.ValidateCaption(caption); err != nil {
		return nil, err
	}

	url, err := s.uploadImage(ctx, file)
	if err != nil {
		log.Error("Gallery image upload failed", "error", err)
		return nil, ErrUploadFailed
	}

	img := gallery.NewImage(url, caption)
	if err := s.galleryRepo.Create(ctx, img); err != nil {
		return nil, err
	}

	return img, nil
}

// AddBatch uploads all items concurrently, keeps the subset that succeeded
// and creates one record per successful upload, again concurrently. Partial
// success is accepted: the result holds the records that were created, and
// only a batch with zero created records is an error.
func (s *GalleryService) AddBatch(ctx context.Context, items []BatchItem) ([]*gallery.Image, error) {
	log := logger.Service("gallery")
	log.Info("Starting batch upload", "count", len(items))

	type uploaded struct {
		url     string
		caption string
		ok      bool
	}

	// Fan out one upload per item; independent and unordered.
	results := make([]uploaded, len(items))
	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		go func(i int, item BatchItem) {
			defer wg.Done()
			url, err := s.uploadImage(ctx, item.File)
			if err != nil {
				log.Warn("Batch upload item failed", "index", i, "filename", item.File.Filename, "error", err)
				return
			}
			results[i] = uploaded{url: url, caption: item.Caption, ok: true}
		}(i, item)
	}
	wg.Wait()

	var succeeded []uploaded
	for _, r := range results {
		if r.ok {
			succeeded = append(succeeded, r)
		}
	}

	if len(succeeded) == 0 {
		return nil, ErrUploadFailed
	}
	if len(succeeded) != len(items) {
		log.Warn("Only part of the batch uploaded", "uploaded", len(succeeded), "total", len(items))
	}

	// One record per successful upload; each create stands on its own.
	records := make([]*gallery.Image, len(succeeded))
	for i, u := range succeeded {
		wg.Add(1)
		go func(i int, u uploaded) {
			defer wg.Done()
			img := gallery.NewImage(u.url, u.caption)
			if err := s.galleryRepo.Create(ctx, img); err != nil {
				log.Warn("Batch record creation failed", "index", i, "error", err)
				return
			}
			records[i] = img
		}(i, u)
	}
	wg.Wait()

	var created []*gallery.Image
	for _, img := range records {
		if img != nil {
			created = append(created, img)
		}
	}

	if len(created) == 0 {
		return nil, ErrCreateFailed
	}

	log.Info("Batch upload finished", "created", len(created), "total", len(items))
	return created, nil
}

// UpdateCaption changes the caption of a gallery image
func (s *GalleryService) UpdateCaption(ctx context.Context, id uuid.UUID, caption string) (*gallery.Image, error) {
	if err := s.validator.ValidateCaption(caption); err != nil {
		return nil, err
	}

	img, err := s.galleryRepo.Update(ctx, id, map[string]interface{}{"caption": caption})
	if err != nil {
		return nil, err
	}
	if img == nil {
		return nil, ErrNotFound
	}
	return img, nil
}

// Delete removes a gallery image record by id. The backing object in storage
// is left in place.
func (s *GalleryService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.galleryRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (s *GalleryService) uploadImage(ctx context.Context, file *UploadedFile) (string, error) {
	return s.uploader.Upload(ctx,
		objectstore.BucketGalleryImages,
		objectstore.ObjectName(objectstore.PrefixGallery, file.Filename),
		file.Reader, file.Size, file.ContentType)
}
