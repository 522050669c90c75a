package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// S3Client defines the S3 operations used by S3Store.
type S3Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Store implements Store for Amazon S3 and S3-compatible services.
// It is safe for concurrent use.
type S3Store struct {
	client  S3Client
	bucket  string
	prefix  string
	timeout time.Duration
}

// S3Config contains configuration for S3 storage.
type S3Config struct {
	Bucket         string
	Region         string
	Prefix         string // Optional: key prefix, e.g. "hyphenation/v2"
	AccessKeyID    string
	SecretKey      string
	Endpoint       string // Optional: for S3-compatible services
	ForcePathStyle bool   // For S3-compatible services like MinIO
}

// S3Option defines a function that configures S3Store.
type S3Option func(*s3Options)

type s3Options struct {
	httpClient      *http.Client
	s3Client        S3Client
	s3ConfigOptions []func(*config.LoadOptions) error
	s3ClientOptions []func(*s3.Options)
	timeout         time.Duration
}

// WithS3Client sets a custom pre-configured S3 client.
// Useful for testing with mocks.
func WithS3Client(client S3Client) S3Option {
	return func(o *s3Options) {
		o.s3Client = client
	}
}

// WithHTTPClient sets a custom HTTP client for S3 requests.
func WithHTTPClient(client *http.Client) S3Option {
	return func(o *s3Options) {
		o.httpClient = client
	}
}

// WithS3ConfigOption adds a custom AWS config option.
func WithS3ConfigOption(option func(*config.LoadOptions) error) S3Option {
	return func(o *s3Options) {
		o.s3ConfigOptions = append(o.s3ConfigOptions, option)
	}
}

// WithS3ClientOption adds a custom S3 client option.
func WithS3ClientOption(option func(*s3.Options)) S3Option {
	return func(o *s3Options) {
		o.s3ClientOptions = append(o.s3ClientOptions, option)
	}
}

// WithS3Timeout bounds each download, from the GetObject request until the
// returned body is closed.
func WithS3Timeout(timeout time.Duration) S3Option {
	return func(o *s3Options) {
		o.timeout = timeout
	}
}

// NewS3Store creates a new S3 store.
func NewS3Store(ctx context.Context, cfg S3Config, opts ...S3Option) (*S3Store, error) {
	if cfg.Bucket == "" || cfg.Region == "" {
		return nil, ErrInvalidConfig
	}

	options := &s3Options{}
	for _, opt := range opts {
		opt(options)
	}

	var client S3Client
	if options.s3Client != nil {
		client = options.s3Client
	} else {
		awsOptions := []func(*config.LoadOptions) error{
			config.WithRegion(cfg.Region),
		}

		if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
			awsOptions = append(awsOptions,
				config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
					cfg.AccessKeyID,
					cfg.SecretKey,
					"",
				)),
			)
		}

		if options.httpClient != nil {
			awsOptions = append(awsOptions, config.WithHTTPClient(options.httpClient))
		}

		awsOptions = append(awsOptions, options.s3ConfigOptions...)

		awsConfig, err := config.LoadDefaultConfig(ctx, awsOptions...)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToLoadConfig, err)
		}

		client = s3.NewFromConfig(awsConfig, func(o *s3.Options) {
			if cfg.Endpoint != "" {
				o.BaseEndpoint = aws.String(cfg.Endpoint)
			}
			o.UsePathStyle = cfg.ForcePathStyle

			for _, opt := range options.s3ClientOptions {
				opt(o)
			}
		})
	}

	return &S3Store{
		client:  client,
		bucket:  cfg.Bucket,
		prefix:  strings.Trim(cfg.Prefix, "/"),
		timeout: options.timeout,
	}, nil
}

// ObjectKey returns the full object key for key, including the prefix.
func (s *S3Store) ObjectKey(key string) string {
	if s.prefix == "" {
		return key
	}
	return path.Join(s.prefix, key)
}

// Open starts a GetObject request and returns the object body.
// The body is streamed; close it to release the connection.
func (s *S3Store) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	cancel := context.CancelFunc(func() {})
	if s.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.ObjectKey(key)),
	})
	if err != nil {
		cancel()
		return nil, classifyS3Error(err, key)
	}
	if out.Body == nil {
		cancel()
		return nil, fmt.Errorf("%w: empty body for %s", ErrNotFound, key)
	}
	// the request context must outlive Open: cancelling it aborts the body
	return &cancelOnClose{ReadCloser: out.Body, cancel: cancel}, nil
}

type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelOnClose) Close() error {
	err := c.ReadCloser.Close()
	c.cancel()
	return err
}

// classifyS3Error converts S3 errors to store errors.
func classifyS3Error(err error, key string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: get %s", ErrOperationTimeout, key)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: get %s", ErrOperationCanceled, key)
	}

	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}

	var nsb *types.NoSuchBucket
	if errors.As(err, &nsb) {
		return ErrBucketNotFound
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch code := apiErr.ErrorCode(); code {
		case "NoSuchKey", "NotFound":
			return fmt.Errorf("%w: %s", ErrNotFound, key)
		case "NoSuchBucket":
			return ErrBucketNotFound
		case "AccessDenied":
			return fmt.Errorf("%w: get %s", ErrAccessDenied, key)
		case "SlowDown", "ServiceUnavailable":
			return fmt.Errorf("%w: get %s", ErrServiceUnavailable, key)
		default:
			return fmt.Errorf("get %s failed (code: %s): %w", key, code, err)
		}
	}

	return fmt.Errorf("get %s failed: %w", key, err)
}
