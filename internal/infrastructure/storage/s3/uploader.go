// Package s3 stores uploaded binaries in an S3-compatible object store.
package s3

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/cenkalti/backoff/v4"

	"insural/internal/core/id"
	"insural/internal/domain/insurance"
	"insural/pkg/logger"
)

// Config holds object storage settings.
type Config struct {
	Region         string
	Bucket         string
	Endpoint       string // non-empty for MinIO / LocalStack
	ForcePathStyle bool
	MaxRetries     uint64
	RequestTimeout time.Duration
}

// DefaultConfig returns sane defaults for a local MinIO setup.
func DefaultConfig() Config {
	return Config{
		Region:         "us-east-1",
		ForcePathStyle: true,
		MaxRetries:     3,
		RequestTimeout: 30 * time.Second,
	}
}

// uploadAPI is the part of manager.Uploader we use. Tests inject fakes.
type uploadAPI interface {
	Upload(ctx context.Context, input *awss3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

// Uploader implements insurance.Uploader on top of the AWS SDK.
type Uploader struct {
	api uploadAPI
	cfg Config
}

var _ insurance.Uploader = (*Uploader)(nil)

// NewUploader builds an Uploader from ambient AWS credentials.
func NewUploader(ctx context.Context, cfg Config) (*Uploader, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := awss3.NewFromConfig(awsCfg, func(o *awss3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		// Path style is required for MinIO and LocalStack
		o.UsePathStyle = cfg.ForcePathStyle
	})

	return &Uploader{
		api: manager.NewUploader(client),
		cfg: cfg,
	}, nil
}

// Upload stores content under a collision-free key and returns the object
// URL. The key keeps the original extension so browsers render the image
// with the right content type.
func (u *Uploader) Upload(ctx context.Context, filename string, content io.Reader, size int64, contentType string) (string, error) {
	key := objectKey(filename)

	if u.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.cfg.RequestTimeout)
		defer cancel()
	}

	// A failed attempt drains the body, so buffer it once and hand every
	// attempt a fresh reader over the full payload.
	payload, err := io.ReadAll(content)
	if err != nil {
		return "", fmt.Errorf("read payload for %q: %w", key, err)
	}

	input := &awss3.PutObjectInput{
		Bucket:        aws.String(u.cfg.Bucket),
		Key:           aws.String(key),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	}

	var out *manager.UploadOutput

	operation := func() error {
		input.Body = bytes.NewReader(payload)
		var err error
		out, err = u.api.Upload(ctx, input)
		return err
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), u.cfg.MaxRetries),
		ctx,
	)

	if err := backoff.Retry(operation, policy); err != nil {
		logger.Error(ctx, "object upload failed", "bucket", u.cfg.Bucket, "key", key, "error", err)
		return "", fmt.Errorf("upload %q to bucket %q: %w", key, u.cfg.Bucket, err)
	}

	logger.Debug(ctx, "object uploaded", "bucket", u.cfg.Bucket, "key", key)

	if out.Location != "" {
		return out.Location, nil
	}
	return u.objectURL(key), nil
}

// objectKey produces a unique key, preserving the file extension.
func objectKey(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("insurances/%s%s", id.New(), ext)
}

func (u *Uploader) objectURL(key string) string {
	if u.cfg.Endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(u.cfg.Endpoint, "/"), u.cfg.Bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.cfg.Bucket, u.cfg.Region, key)
}
