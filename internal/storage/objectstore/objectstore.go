// Package objectstore holds the object storage gateway: three public buckets
// of uploaded images, one per entity type. Deleting a record does not remove
// its backing object; orphaned files are accepted for a single-user tool.
package objectstore

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/trunghoangnt2003/memory/internal/config"
	"github.com/trunghoangnt2003/memory/internal/logger"
)

// Bucket names, one per entity type
const (
	BucketCoupleImages  = "couple-images"
	BucketEventImages   = "event-images"
	BucketGalleryImages = "gallery-images"
)

// Object name prefixes, one per entity type
const (
	PrefixCouple  = "couple"
	PrefixEvent   = "event"
	PrefixGallery = "gallery"
)

// Uploader uploads raw bytes to a bucket and resolves the public URL for the
// stored object.
type Uploader interface {
	Upload(ctx context.Context, bucket, objectName string, reader io.Reader, size int64, contentType string) (string, error)
}

// Client wraps the MinIO client with the bucket conventions of this app.
type Client struct {
	mc            *minio.Client
	endpoint      string
	useSSL        bool
	publicBaseURL string
}

// NewClient creates an object storage client from configuration
func NewClient(cfg *config.Config) (*Client, error) {
	mc, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object storage client: %w", err)
	}

	return &Client{
		mc:            mc,
		endpoint:      cfg.Storage.Endpoint,
		useSSL:        cfg.Storage.UseSSL,
		publicBaseURL: cfg.Storage.PublicBaseURL,
	}, nil
}

// EnsureBuckets creates any missing bucket and marks it publicly readable
func (c *Client) EnsureBuckets(ctx context.Context) error {
	log := logger.Storage()

	for _, bucket := range []string{BucketCoupleImages, BucketEventImages, BucketGalleryImages} {
		exists, err := c.mc.BucketExists(ctx, bucket)
		if err != nil {
			return fmt.Errorf("failed to check bucket %s: %w", bucket, err)
		}
		if exists {
			continue
		}

		log.Info("Creating bucket", "bucket", bucket)
		if err := c.mc.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
		}

		if err := c.mc.SetBucketPolicy(ctx, bucket, publicReadPolicy(bucket)); err != nil {
			return fmt.Errorf("failed to set policy on bucket %s: %w", bucket, err)
		}
	}

	return nil
}

// Upload puts the raw bytes at objectName in the given bucket and returns the
// bucket's public URL for that path.
func (c *Client) Upload(ctx context.Context, bucket, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := c.mc.PutObject(ctx, bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s to bucket %s: %w", objectName, bucket, err)
	}

	return c.PublicURL(bucket, objectName), nil
}

// PublicURL resolves the publicly reachable URL of an object
func (c *Client) PublicURL(bucket, objectName string) string {
	if c.publicBaseURL != "" {
		return strings.TrimRight(c.publicBaseURL, "/") + "/" + bucket + "/" + objectName
	}

	scheme := "http"
	if c.useSSL {
		scheme = "https"
	}
	return scheme + "://" + c.endpoint + "/" + bucket + "/" + objectName
}

// ObjectName generates a collision-resistant object name as
// "{prefix}_{epoch-millis}{.ext}". Two uploads of the same entity type within
// the same millisecond with the same extension collide; accepted risk at
// single-user load.
func ObjectName(prefix, originalFilename string) string {
	ext := filepath.Ext(originalFilename)
	return fmt.Sprintf("%s_%d%s", prefix, time.Now().UnixMilli(), ext)
}

// publicReadPolicy returns an anonymous read-only bucket policy
func publicReadPolicy(bucket string) string {
	return fmt.Sprintf(`{
        "Version": "2012-10-17",
        "Statement": [
            {
                "Effect": "Allow",
                "Principal": {"AWS": ["*"]},
                "Action": ["s3:GetObject"],
                "Resource": ["arn:aws:s3:::%s/*"]
            }
        ]
    }`, bucket)
}
