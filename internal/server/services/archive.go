package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	sc "github.com/dmitrijs2005/datachart/internal/server/config"
	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Archive stores the raw bytes of uploads in an S3-compatible bucket and
// hands out presigned download URLs for them. It is inactive while no S3
// base endpoint is configured.
type Archive struct {
	config *sc.Config
}

func NewArchive(config *sc.Config) *Archive {
	return &Archive{config: config}
}

func (a *Archive) Enabled() bool {
	return a != nil && a.config.S3BaseEndpoint != ""
}

// RandomStorageKey returns a fresh object key partitioned by upload date.
func RandomStorageKey() string {
	d := time.Now()
	return fmt.Sprintf("uploads/%d/%d/%d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}

func (a *Archive) getClient(ctx context.Context) (*s3.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(a.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			a.config.S3RootUser,
			a.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(a.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return client, nil
}

// Store uploads raw under key.
func (a *Archive) Store(ctx context.Context, key string, raw []byte) error {
	client, err := a.getClient(ctx)
	if err != nil {
		return err
	}

	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(a.config.S3Bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(raw),
	})
	return err
}

// PresignGet returns a presigned GET URL for key, valid for 15 minutes.
func (a *Archive) PresignGet(ctx context.Context, key string) (string, error) {
	client, err := a.getClient(ctx)
	if err != nil {
		return "", err
	}

	presignClient := s3.NewPresignClient(client)

	req, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(a.config.S3Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}

// Remove deletes the object under key.
func (a *Archive) Remove(ctx context.Context, key string) error {
	client, err := a.getClient(ctx)
	if err != nil {
		return err
	}

	_, err = client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(a.config.S3Bucket),
		Key:    aws.String(key),
	})
	return err
}
