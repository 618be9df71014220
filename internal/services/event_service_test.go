package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coffeeRequest() CreateEventRequest {
	return CreateEventRequest{
		Title:     "Coffee",
		Date:      time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		Location:  "Hanoi",
		Latitude:  21.0285,
		Longitude: 105.8542,
	}
}

func TestEventServiceCreateAndGet(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo, newFakeUploader())
	ctx := context.Background()

	created, err := svc.Create(ctx, coffeeRequest(), nil)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)

	fetched, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Coffee", fetched.Title)
	assert.Equal(t, "Hanoi", fetched.Location)
	assert.Equal(t, 21.0285, fetched.Latitude)
	assert.Equal(t, 105.8542, fetched.Longitude)
}

func TestEventServiceCreateWithUpload(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo, newFakeUploader())

	created, err := svc.Create(context.Background(), coffeeRequest(), fileWithMarker("date1"))
	require.NoError(t, err)
	assert.Equal(t, "http://storage.local/event-images/date1", created.ImageURL)
}

func TestEventServiceCreateShortCircuitsOnUploadFailure(t *testing.T) {
	repo := newFakeEventRepo()
	uploader := newFakeUploader()
	uploader.failAll = true
	svc := NewEventService(repo, uploader)

	_, err := svc.Create(context.Background(), coffeeRequest(), fileWithMarker("date1"))

	require.ErrorIs(t, err, ErrUploadFailed)
	assert.Equal(t, 0, repo.count(), "store row count must be unchanged")
}

func TestEventServiceCreateRejectsInvalidCoordinates(t *testing.T) {
	svc := NewEventService(newFakeEventRepo(), newFakeUploader())

	req := coffeeRequest()
	req.Latitude = 123.4

	_, err := svc.Create(context.Background(), req, nil)
	assert.Error(t, err)
}

func TestEventServiceUpdateWithoutFileKeepsImage(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo, newFakeUploader())
	ctx := context.Background()

	created, err := svc.Create(ctx, coffeeRequest(), fileWithMarker("date1"))
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, map[string]interface{}{"title": "Coffee date"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Coffee date", updated.Title)
	assert.Equal(t, created.ImageURL, updated.ImageURL)
}

func TestEventServiceUpdateShortCircuitsOnUploadFailure(t *testing.T) {
	repo := newFakeEventRepo()
	uploader := newFakeUploader()
	svc := NewEventService(repo, uploader)
	ctx := context.Background()

	created, err := svc.Create(ctx, coffeeRequest(), nil)
	require.NoError(t, err)

	uploader.failAll = true
	_, err = svc.Update(ctx, created.ID, map[string]interface{}{"title": "changed"}, fileWithMarker("new"))
	require.ErrorIs(t, err, ErrUploadFailed)

	fetched, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Coffee", fetched.Title, "record must be untouched")
}

func TestEventServiceDeleteThenGet(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo, newFakeUploader())
	ctx := context.Background()

	created, err := svc.Create(ctx, coffeeRequest(), nil)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestEventServiceDeleteMissing(t *testing.T) {
	svc := NewEventService(newFakeEventRepo(), newFakeUploader())

	err := svc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEventServiceListOrdersByDateDescending(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo, newFakeUploader())
	ctx := context.Background()

	older := coffeeRequest()
	older.Title = "Older"
	older.Date = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := coffeeRequest()
	newer.Title = "Newer"
	newer.Date = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.Create(ctx, older, nil)
	require.NoError(t, err)
	_, err = svc.Create(ctx, newer, nil)
	require.NoError(t, err)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Newer", all[0].Title)
	assert.Equal(t, "Older", all[1].Title)
}
