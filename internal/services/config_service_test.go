package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileWithMarker(marker string) *UploadedFile {
	return &UploadedFile{
		Reader:      strings.NewReader(marker),
		Size:        int64(len(marker)),
		Filename:    marker + ".jpg",
		ContentType: "image/jpeg",
	}
}

func TestConfigServiceSaveInsertsThenUpdates(t *testing.T) {
	repo := &fakeConfigRepo{}
	svc := NewConfigService(repo, newFakeUploader())
	ctx := context.Background()

	first, err := svc.Save(ctx, SaveConfigRequest{
		LoveStartDate: time.Date(2020, 2, 14, 0, 0, 0, 0, time.UTC),
		Partner1Name:  "An",
		Partner2Name:  "Binh",
	}, nil)
	require.NoError(t, err)

	second, err := svc.Save(ctx, SaveConfigRequest{
		LoveStartDate: time.Date(2021, 3, 8, 0, 0, 0, 0, time.UTC),
		Partner1Name:  "An",
		Partner2Name:  "Chi",
	}, nil)
	require.NoError(t, err)

	// Exactly one row exists and it reflects the second call's values.
	require.Len(t, repo.rows, 1)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Chi", repo.rows[0].Partner2Name)
	assert.Equal(t, time.Date(2021, 3, 8, 0, 0, 0, 0, time.UTC), repo.rows[0].LoveStartDate)
}

func TestConfigServiceSaveUploadsImage(t *testing.T) {
	repo := &fakeConfigRepo{}
	uploader := newFakeUploader()
	svc := NewConfigService(repo, uploader)

	cfg, err := svc.Save(context.Background(), SaveConfigRequest{
		LoveStartDate: time.Date(2020, 2, 14, 0, 0, 0, 0, time.UTC),
	}, fileWithMarker("us"))
	require.NoError(t, err)

	assert.Equal(t, "http://storage.local/couple-images/us", cfg.CoupleImageURL)
	assert.Equal(t, 1, uploader.count())
}

func TestConfigServiceSaveShortCircuitsOnUploadFailure(t *testing.T) {
	repo := &fakeConfigRepo{}
	uploader := newFakeUploader()
	uploader.failAll = true
	svc := NewConfigService(repo, uploader)

	_, err := svc.Save(context.Background(), SaveConfigRequest{
		LoveStartDate: time.Date(2020, 2, 14, 0, 0, 0, 0, time.UTC),
	}, fileWithMarker("us"))

	require.ErrorIs(t, err, ErrUploadFailed)
	assert.Empty(t, repo.rows, "no record may be created when the upload fails")
}

func TestConfigServiceSaveKeepsExistingURLWithoutFile(t *testing.T) {
	repo := &fakeConfigRepo{}
	svc := NewConfigService(repo, newFakeUploader())
	ctx := context.Background()

	_, err := svc.Save(ctx, SaveConfigRequest{
		LoveStartDate:  time.Date(2020, 2, 14, 0, 0, 0, 0, time.UTC),
		CoupleImageURL: "http://storage.local/couple-images/old",
	}, nil)
	require.NoError(t, err)

	cfg, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "http://storage.local/couple-images/old", cfg.CoupleImageURL)
}

func TestConfigServiceSaveRejectsMissingStartDate(t *testing.T) {
	svc := NewConfigService(&fakeConfigRepo{}, newFakeUploader())

	_, err := svc.Save(context.Background(), SaveConfigRequest{}, nil)
	assert.Error(t, err)
}

func TestConfigServiceGetUnset(t *testing.T) {
	svc := NewConfigService(&fakeConfigRepo{}, newFakeUploader())

	_, err := svc.Get(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestConfigServiceElapsed(t *testing.T) {
	repo := &fakeConfigRepo{}
	svc := NewConfigService(repo, newFakeUploader())
	ctx := context.Background()

	_, err := svc.Save(ctx, SaveConfigRequest{
		LoveStartDate: time.Now().Add(-25 * time.Hour),
	}, nil)
	require.NoError(t, err)

	elapsed, err := svc.Elapsed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, elapsed.Days)
	assert.GreaterOrEqual(t, elapsed.TotalSeconds, int64(25*3600))
}
