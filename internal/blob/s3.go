// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package blob

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	cfg "github.com/MKhiriev/go-safe-share/internal/config"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

const schemeS3 = "s3"

// s3API is the subset of *s3.Client used by S3Store.
type s3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	HeadObject(ctx context.Context, in *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(c aws.Config, optFns ...func(*s3.Options)) s3API {
		return s3.NewFromConfig(c, optFns...)
	}
)

// S3Store keeps blobs in a single bucket of an S3 compatible object store.
// URLs have the form s3://{bucket}/files/{ownerID}/{uuid}.
type S3Store struct {
	client s3API
	bucket string
}

// NewS3Store builds an S3 client from s3Cfg. Static credentials are used
// when both keys are set, otherwise the default AWS credential chain
// applies. A non-empty Endpoint targets MinIO or another compatible
// service.
func NewS3Store(ctx context.Context, s3Cfg cfg.S3) (*S3Store, error) {
	if s3Cfg.Bucket == "" {
		return nil, fmt.Errorf("%w: s3 bucket is required", ErrUnsupportedStore)
	}

	opts := []func(*config.LoadOptions) error{}
	if s3Cfg.Region != "" {
		opts = append(opts, config.WithRegion(s3Cfg.Region))
	}
	if s3Cfg.AccessKey != "" && s3Cfg.SecretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s3Cfg.AccessKey,
			s3Cfg.SecretKey,
			"",
		)))
	}

	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if s3Cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(s3Cfg.Endpoint)
		}
		o.UsePathStyle = s3Cfg.UsePathStyle
	})

	return newS3Store(client, s3Cfg.Bucket), nil
}

func newS3Store(client s3API, bucket string) *S3Store {
	return &S3Store{client: client, bucket: bucket}
}

// Put implements [BlobStore].
func (s *S3Store) Put(ctx context.Context, ownerID string, data []byte) (string, error) {
	key, err := newObjectKey(ownerID)
	if err != nil {
		return "", err
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String("application/octet-stream"),
	})
	if err != nil {
		return "", fmt.Errorf("%w: put object: %w", ErrBlobUnavailable, err)
	}

	return s.URL(key), nil
}

// Get implements [BlobStore].
func (s *S3Store) Get(ctx context.Context, url string) ([]byte, error) {
	key, err := s.keyFromURL(url)
	if err != nil {
		return nil, err
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, mapS3Error("get object", err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read object body: %w", ErrBlobUnavailable, err)
	}

	return data, nil
}

// Delete implements [BlobStore]. S3 deletes are idempotent, so the object
// is probed first to report [ErrBlobNotFound] like the other backends.
func (s *S3Store) Delete(ctx context.Context, url string) error {
	key, err := s.keyFromURL(url)
	if err != nil {
		return err
	}

	if _, err = s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return mapS3Error("head object", err)
	}

	if _, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return mapS3Error("delete object", err)
	}

	return nil
}

// URL implements [Locator].
func (s *S3Store) URL(key string) string {
	return schemeS3 + "://" + s.bucket + "/" + key
}

// Key implements [Locator].
func (s *S3Store) Key(url string) (string, error) {
	return s.keyFromURL(url)
}

// keyFromURL accepts only URLs that point into the configured bucket.
func (s *S3Store) keyFromURL(url string) (string, error) {
	rest, ok := strings.CutPrefix(url, schemeS3+"://"+s.bucket+"/")
	if !ok {
		return "", fmt.Errorf("%w: not an object of bucket %q: %q", ErrInvalidBlobURL, s.bucket, url)
	}
	if err := validateKey(rest); err != nil {
		return "", err
	}
	return rest, nil
}

func mapS3Error(op string, err error) error {
	var (
		noSuchKey *types.NoSuchKey
		notFound  *types.NotFound
		apiErr    smithy.APIError
	)

	switch {
	case errors.As(err, &noSuchKey), errors.As(err, &notFound):
		return fmt.Errorf("%w: %s", ErrBlobNotFound, op)
	case errors.As(err, &apiErr) && (apiErr.ErrorCode() == "NoSuchKey" || apiErr.ErrorCode() == "NotFound"):
		return fmt.Errorf("%w: %s", ErrBlobNotFound, op)
	default:
		return fmt.Errorf("%w: %s: %w", ErrBlobUnavailable, op, err)
	}
}
