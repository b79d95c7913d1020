package services

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"alfredoptarigan/resume-tailor/internal/config"
)

type fakeS3 struct {
	err   error
	input *s3.PutObjectInput
	body  string
}

func (f *fakeS3) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	if params.Body != nil {
		data, err := io.ReadAll(params.Body)
		if err != nil {
			return nil, err
		}
		f.body = string(data)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestS3ObjectStore_PutJobDescription(t *testing.T) {
	client := &fakeS3{}
	store := NewS3ObjectStore(client, "resumes")

	key, err := store.PutJobDescription(context.Background(), "req-1", "Senior Go engineer")
	if err != nil {
		t.Fatalf("PutJobDescription() error = %v", err)
	}

	if key != "job-descriptions/req-1.txt" {
		t.Errorf("key = %q", key)
	}
	if got := aws.ToString(client.input.Bucket); got != "resumes" {
		t.Errorf("Bucket = %q, want resumes", got)
	}
	if got := aws.ToString(client.input.Key); got != key {
		t.Errorf("Key = %q, want %q", got, key)
	}
	if got := aws.ToString(client.input.ContentType); got != "text/plain" {
		t.Errorf("ContentType = %q, want text/plain", got)
	}
	if client.body != "Senior Go engineer" {
		t.Errorf("Body = %q", client.body)
	}
	if !store.Enabled() {
		t.Error("Enabled() = false for an S3 store")
	}
}

func TestS3ObjectStore_PutError(t *testing.T) {
	sentinel := errors.New("access denied")
	store := NewS3ObjectStore(&fakeS3{err: sentinel}, "resumes")

	_, err := store.PutJobDescription(context.Background(), "req-1", "jd")
	if !errors.Is(err, sentinel) {
		t.Errorf("PutJobDescription() error = %v, want wrapped %v", err, sentinel)
	}
}

func TestNewObjectStoreService_DisabledWithoutCredentials(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.S3Config
	}{
		{name: "Empty", cfg: config.S3Config{}},
		{name: "Bucket only", cfg: config.S3Config{Bucket: "resumes", Region: "us-east-1"}},
		{name: "Missing secret", cfg: config.S3Config{Bucket: "resumes", AccessKeyID: "AKIA"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := NewObjectStoreService(context.Background(), tt.cfg)
			if err != nil {
				t.Fatalf("NewObjectStoreService() error = %v", err)
			}
			if store.Enabled() {
				t.Error("Enabled() = true, want false")
			}
		})
	}
}

func TestNewObjectStoreService_CustomEndpoint(t *testing.T) {
	store, err := NewObjectStoreService(context.Background(), config.S3Config{
		AccessKeyID:     "minio",
		SecretAccessKey: "minio123",
		Region:          "us-east-1",
		Bucket:          "resumes",
		Endpoint:        "http://localhost:9000",
	})
	if err != nil {
		t.Fatalf("NewObjectStoreService() error = %v", err)
	}
	if !store.Enabled() {
		t.Error("Enabled() = false, want true")
	}
}
