package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Storage uploads attachments to an S3 bucket fronted by a public base
// URL (CloudFront or the bucket website endpoint).
type S3Storage struct {
	client        *s3.Client
	bucketName    string
	publicBaseURL string
}

func NewS3Storage(client *s3.Client, bucketName, publicBaseURL string) *S3Storage {
	return &S3Storage{
		client:        client,
		bucketName:    bucketName,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
	}
}

func (s *S3Storage) UploadFile(ctx context.Context, path string, file io.Reader, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(path),
		Body:        file,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	return fmt.Sprintf("%s/%s", s.publicBaseURL, path), nil
}
