// Package s3store keeps uploaded files in an S3 compatible bucket.
package s3store

import (
	"bytes"
	"context"
	"errors"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/blogs/internal/storage"
)

const DefaultTimeout = 30 * time.Second

// API is the part of the S3 client used by the store.
type API interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type S3Store struct {
	client  API
	bucket  string
	timeout time.Duration
}

func New(client API, bucket string) *S3Store {
	return &S3Store{
		client:  client,
		bucket:  bucket,
		timeout: DefaultTimeout,
	}
}

// NewClient builds an S3 client from the default credential chain. A non-empty endpoint selects an S3
// compatible service, such as MinIO, addressed with path-style URLs.
func NewClient(ctx context.Context, region, endpoint string) (*s3.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

func (s *S3Store) context() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.timeout)
}

func (s *S3Store) exists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err == nil {
		return true, nil
	}

	var notFound *types.NotFound
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &notFound) || errors.As(err, &noSuchKey) {
		return false, nil
	}
	return false, err
}

func (s *S3Store) Open(key string) ([]byte, error) {
	key, err := storage.CleanKey(key)
	if err != nil {
		return nil, err
	}
	ctx, cancel := s.context()
	defer cancel()

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, storage.ErrNotExist
		}
		log.Error().Err(err).Str("key", key).Msg("s3 get failed")
		return nil, storage.ErrInternal
	}
	defer out.Body.Close()

	content, err := io.ReadAll(out.Body)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to read s3 object")
		return nil, storage.ErrInternal
	}
	return content, nil
}

func (s *S3Store) Create(content io.Reader, key string) error {
	key, err := storage.CleanKey(key)
	if err != nil {
		return err
	}
	ctx, cancel := s.context()
	defer cancel()

	exists, err := s.exists(ctx, key)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("s3 head failed")
		return storage.ErrInternal
	}
	if exists {
		return storage.ErrAlreadyExists
	}

	// The SDK needs a seekable body to compute the payload checksum.
	body, err := io.ReadAll(content)
	if err != nil {
		log.Error().Err(err).Msg("failed to copy from reader")
		return storage.ErrInternal
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("s3 put failed")
		return storage.ErrCreate
	}
	return nil
}

func (s *S3Store) Delete(key string) error {
	key, err := storage.CleanKey(key)
	if err != nil {
		return err
	}
	ctx, cancel := s.context()
	defer cancel()

	exists, err := s.exists(ctx, key)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("s3 head failed")
		return storage.ErrInternal
	}
	if !exists {
		return storage.ErrNotExist
	}

	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("s3 delete failed")
		return storage.ErrInternal
	}
	return nil
}
