package services

import (
	"context"
	"time"

	"github.com/trunghoangnt2003/memory/internal/domain/couple"
	"github.com/trunghoangnt2003/memory/internal/logger"
	"github.com/trunghoangnt2003/memory/internal/storage/objectstore"
	"github.com/trunghoangnt2003/memory/internal/storage/postgres"
)

// ConfigService handles the couple configuration use cases
type ConfigService struct {
	configRepo postgres.ConfigRepository
	uploader   objectstore.Uploader
}

// NewConfigService creates a new configuration service
func NewConfigService(configRepo postgres.ConfigRepository, uploader objectstore.Uploader) *ConfigService {
	return &ConfigService{
		configRepo: configRepo,
		uploader:   uploader,
	}
}

// SaveConfigRequest carries the desired configuration state. CoupleImageURL
// holds the caller-supplied existing URL; a supplied file replaces it.
type SaveConfigRequest struct {
	LoveStartDate  time.Time
	Partner1Name   string
	Partner2Name   string
	CoupleImageURL string
}

// Get returns the current configuration, or ErrNotFound when unset
func (s *ConfigService) Get(ctx context.Context) (*couple.Config, error) {
	cfg, err := s.configRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, ErrNotFound
	}
	return cfg, nil
}

// Save uploads the couple image when one is supplied, then upserts the
// configuration referencing the resulting URL.
func (s *ConfigService) Save(ctx context.Context, req SaveConfigRequest, file *UploadedFile) (*couple.Config, error) {
	log := logger.Service("config")

	imageURL := req.CoupleImageURL
	if file != nil {
		url, err := s.uploader.Upload(ctx,
			objectstore.BucketCoupleImages,
			objectstore.ObjectName(objectstore.PrefixCouple, file.Filename),
			file.Reader, file.Size, file.ContentType)
		if err != nil {
			log.Error("Couple image upload failed", "error", err)
			return nil, ErrUploadFailed
		}
		imageURL = url
	}

	cfg := couple.NewConfig(req.LoveStartDate, req.Partner1Name, req.Partner2Name)
	cfg.CoupleImageURL = imageURL

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return s.configRepo.Upsert(ctx, cfg)
}

// Elapsed derives the current elapsed-time snapshot from the stored start date
func (s *ConfigService) Elapsed(ctx context.Context) (*couple.Elapsed, error) {
	cfg, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	elapsed := couple.ComputeElapsed(cfg.LoveStartDate, time.Now())
	return &elapsed, nil
}
