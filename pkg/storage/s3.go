package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// UploadResult describes one stored image as the catalog persists it.
type UploadResult struct {
	URL          string
	ThumbnailURL string
	FileID       string
}

type Config struct {
	Endpoint  string // S3-compatible endpoint (MinIO in development)
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	PublicURL string // base URL images are served from
}

// S3Storage uploads product images to an S3-compatible bucket.
type S3Storage struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewS3Storage(ctx context.Context, cfg Config) (*S3Storage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("failed to load storage credentials: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Storage{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: cfg.PublicURL,
	}, nil
}

// objectKey buckets uploads by date so listings in the console stay usable.
func objectKey() string {
	d := time.Now()
	return fmt.Sprintf("products/%d/%02d/%02d/%s", d.Year(), d.Month(), d.Day(), uuid.New())
}

// Upload stores one image and returns where it can be fetched from. The
// provider id is the object key; there is no derived-thumbnail pipeline, so
// the thumbnail URL falls back to the object URL.
func (s *S3Storage) Upload(ctx context.Context, fileName string, body io.Reader) (*UploadResult, error) {
	key := objectKey()

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   body,
		Metadata: map[string]string{
			"original-filename": fileName,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}

	url := fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, key)

	return &UploadResult{
		URL:          url,
		ThumbnailURL: url,
		FileID:       key,
	}, nil
}
