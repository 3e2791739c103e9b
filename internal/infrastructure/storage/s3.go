// Package storage issues time-limited URLs for objects in blob storage.
package storage

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go/middleware"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	"github.com/google/uuid"
	"github.com/shopadmin/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// ErrEmptyKey is returned when asked to sign an empty storage key
var ErrEmptyKey = errors.New("storage key is required")

// maxPresignExpiration is the SigV4 upper bound for presigned URLs
const maxPresignExpiration = 7 * 24 * time.Hour

// NonceQueryParam is added to every presigned URL. S3 ignores query
// parameters prefixed with "x-", but the signature covers it, so two URLs
// signed within the same second still differ.
const NonceQueryParam = "x-shopadmin-nonce"

// S3URLIssuer presigns GET URLs against any S3-compatible store (AWS S3,
// MinIO, R2). It does not check that the object exists.
type S3URLIssuer struct {
	presignClient     *s3.PresignClient
	bucket            string
	presignExpiration time.Duration
	logger            *zap.Logger
}

// S3URLIssuerOption configures an S3URLIssuer
type S3URLIssuerOption func(*S3URLIssuer)

// WithLogger sets the issuer's logger
func WithLogger(logger *zap.Logger) S3URLIssuerOption {
	return func(s *S3URLIssuer) {
		s.logger = logger
	}
}

// NewS3URLIssuer creates an issuer from configuration. Static credentials are
// used when configured; otherwise the SDK's default chain (env, IRSA, IMDS).
func NewS3URLIssuer(ctx context.Context, cfg *config.StorageConfig, opts ...S3URLIssuerOption) (*S3URLIssuer, error) {
	if cfg == nil {
		return nil, errors.New("storage configuration is required")
	}
	if cfg.Bucket == "" {
		return nil, errors.New("storage bucket is required")
	}
	if cfg.Endpoint != "" {
		if _, err := url.ParseRequestURI(cfg.Endpoint); err != nil {
			return nil, fmt.Errorf("invalid storage endpoint: %w", err)
		}
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" || cfg.SecretAccessKey != "" {
		if cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" {
			return nil, errors.New("storage access key id and secret must be set together")
		}
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	issuer := &S3URLIssuer{
		presignClient:     s3.NewPresignClient(client),
		bucket:            cfg.Bucket,
		presignExpiration: cfg.PresignExpiration,
		logger:            zap.NewNop(),
	}
	for _, opt := range opts {
		opt(issuer)
	}
	if issuer.presignExpiration <= 0 {
		issuer.presignExpiration = 5 * time.Minute
	}
	return issuer, nil
}

// SignedURL presigns a GET for key valid for ttl, or the configured default
// when ttl is not positive. The response is marked no-store so browsers and
// proxies do not keep the object past the URL's lifetime.
func (s *S3URLIssuer) SignedURL(ctx context.Context, key string, ttl time.Duration) (string, time.Time, error) {
	if key == "" {
		return "", time.Time{}, ErrEmptyKey
	}
	if ttl <= 0 {
		ttl = s.presignExpiration
	}
	if ttl > maxPresignExpiration {
		ttl = maxPresignExpiration
	}

	signedAt := time.Now()
	req, err := s.presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket:               aws.String(s.bucket),
		Key:                  aws.String(key),
		ResponseCacheControl: aws.String("no-store"),
	}, s3.WithPresignExpires(ttl), withNonce)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to presign %q: %w", key, err)
	}

	s.logger.Debug("presigned download URL",
		zap.String("bucket", s.bucket),
		zap.String("key", key),
		zap.Duration("ttl", ttl),
	)
	return req.URL, signedAt.Add(ttl), nil
}

// withNonce registers a build step that stamps a fresh nonce on the request
// before it reaches the signer.
func withNonce(o *s3.PresignOptions) {
	o.ClientOptions = append(o.ClientOptions, func(co *s3.Options) {
		co.APIOptions = append(co.APIOptions, addNonceMiddleware)
	})
}

func addNonceMiddleware(stack *middleware.Stack) error {
	return stack.Build.Add(middleware.BuildMiddlewareFunc("PresignNonce",
		func(ctx context.Context, in middleware.BuildInput, next middleware.BuildHandler) (middleware.BuildOutput, middleware.Metadata, error) {
			req, ok := in.Request.(*smithyhttp.Request)
			if !ok {
				return middleware.BuildOutput{}, middleware.Metadata{}, fmt.Errorf("unexpected request type %T", in.Request)
			}
			q := req.URL.Query()
			q.Set(NonceQueryParam, uuid.NewString())
			req.URL.RawQuery = q.Encode()
			return next.HandleBuild(ctx, in)
		}), middleware.After)
}

// Bucket returns the bucket URLs are signed for
func (s *S3URLIssuer) Bucket() string {
	return s.bucket
}
