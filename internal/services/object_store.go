package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"alfredoptarigan/resume-tailor/internal/config"
)

const jobDescriptionPrefix = "job-descriptions/"

// ObjectStoreService mirrors job descriptions to an S3-compatible bucket.
type ObjectStoreService interface {
	PutJobDescription(ctx context.Context, requestID, jobDescription string) (string, error)
	Enabled() bool
}

// S3PutAPI is the subset of *s3.Client the object store needs.
type S3PutAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type s3ObjectStore struct {
	client S3PutAPI
	bucket string
}

type disabledObjectStore struct{}

// NewObjectStoreService returns a disabled store when bucket or credentials
// are missing.
func NewObjectStoreService(ctx context.Context, cfg config.S3Config) (ObjectStoreService, error) {
	if cfg.Bucket == "" || cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" {
		return disabledObjectStore{}, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")),
		awsconfig.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return NewS3ObjectStore(client, cfg.Bucket), nil
}

func NewS3ObjectStore(client S3PutAPI, bucket string) ObjectStoreService {
	return &s3ObjectStore{
		client: client,
		bucket: bucket,
	}
}

func JobDescriptionKey(requestID string) string {
	return fmt.Sprintf("%s%s.txt", jobDescriptionPrefix, requestID)
}

// PutJobDescription implements ObjectStoreService.
func (s *s3ObjectStore) PutJobDescription(ctx context.Context, requestID, jobDescription string) (string, error) {
	key := JobDescriptionKey(requestID)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader([]byte(jobDescription)),
		ContentType: aws.String("text/plain"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to put object %s: %w", key, err)
	}

	return key, nil
}

// Enabled implements ObjectStoreService.
func (s *s3ObjectStore) Enabled() bool {
	return true
}

func (disabledObjectStore) PutJobDescription(context.Context, string, string) (string, error) {
	return "", nil
}

func (disabledObjectStore) Enabled() bool {
	return false
}
