package services

import (
	"context"
	"errors"
	"io"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/trunghoangnt2003/memory/internal/domain/couple"
	"github.com/trunghoangnt2003/memory/internal/domain/event"
	"github.com/trunghoangnt2003/memory/internal/domain/gallery"
)

// fakeUploader records uploads and can be told to fail specific files,
// addressed by their content marker since object names are timestamped.
type fakeUploader struct {
	mu      sync.Mutex
	failFor map[string]bool
	failAll bool
	uploads []string
}

func newFakeUploader() *fakeUploader {
	return &fakeUploader{failFor: make(map[string]bool)}
}

func (u *fakeUploader) Upload(ctx context.Context, bucket, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	content, _ := io.ReadAll(reader)

	u.mu.Lock()
	defer u.mu.Unlock()

	if u.failAll || u.failFor[string(content)] {
		return "", errors.New("upload rejected")
	}
	u.uploads = append(u.uploads, objectName)
	return "http://storage.local/" + bucket + "/" + string(content), nil
}

func (u *fakeUploader) count() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.uploads)
}

type fakeConfigRepo struct {
	mu   sync.Mutex
	rows []*couple.Config
}

func (r *fakeConfigRepo) Get(ctx context.Context) (*couple.Config, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.rows) == 0 {
		return nil, nil
	}
	c := *r.rows[0]
	return &c, nil
}

func (r *fakeConfigRepo) Upsert(ctx context.Context, cfg *couple.Config) (*couple.Config, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.rows) > 0 {
		existing := r.rows[0]
		existing.LoveStartDate = cfg.LoveStartDate
		existing.Partner1Name = cfg.Partner1Name
		existing.Partner2Name = cfg.Partner2Name
		existing.CoupleImageURL = cfg.CoupleImageURL
		c := *existing
		return &c, nil
	}
	r.rows = append(r.rows, cfg)
	c := *cfg
	return &c, nil
}

type fakeEventRepo struct {
	mu        sync.Mutex
	rows      map[uuid.UUID]*event.Event
	createErr error
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{rows: make(map[uuid.UUID]*event.Event)}
}

func (r *fakeEventRepo) GetAll(ctx context.Context) ([]*event.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var events []*event.Event
	for _, e := range r.rows {
		events = append(events, e)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].Date.After(events[j].Date) })
	return events, nil
}

func (r *fakeEventRepo) GetByID(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return e, nil
}

func (r *fakeEventRepo) Create(ctx context.Context, e *event.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	r.rows[e.ID] = e
	return nil
}

func (r *fakeEventRepo) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*event.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	if v, ok := fields["title"]; ok {
		e.Title = v.(string)
	}
	if v, ok := fields["location"]; ok {
		e.Location = v.(string)
	}
	if v, ok := fields["description"]; ok {
		e.Description = v.(string)
	}
	if v, ok := fields["image_url"]; ok {
		e.ImageURL = v.(string)
	}
	return e, nil
}

func (r *fakeEventRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return false, nil
	}
	delete(r.rows, id)
	return true, nil
}

func (r *fakeEventRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

type fakeGalleryRepo struct {
	mu        sync.Mutex
	rows      map[uuid.UUID]*gallery.Image
	createErr error
}

func newFakeGalleryRepo() *fakeGalleryRepo {
	return &fakeGalleryRepo{rows: make(map[uuid.UUID]*gallery.Image)}
}

func (r *fakeGalleryRepo) GetAll(ctx context.Context) ([]*gallery.Image, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var images []*gallery.Image
	for _, img := range r.rows {
		images = append(images, img)
	}
	sort.Slice(images, func(i, j int) bool { return images[i].UploadedAt.After(images[j].UploadedAt) })
	return images, nil
}

func (r *fakeGalleryRepo) GetByID(ctx context.Context, id uuid.UUID) (*gallery.Image, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	img, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return img, nil
}

func (r *fakeGalleryRepo) Create(ctx context.Context, img *gallery.Image) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	if err := img.Validate(); err != nil {
		return err
	}
	r.rows[img.ID] = img
	return nil
}

func (r *fakeGalleryRepo) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*gallery.Image, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	img, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	if v, ok := fields["caption"]; ok {
		img.Caption = v.(string)
	}
	return img, nil
}

func (r *fakeGalleryRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return false, nil
	}
	delete(r.rows, id)
	return true, nil
}

func (r *fakeGalleryRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}
