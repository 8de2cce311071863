package s3client

import (
	"context"
	"io"
	"time"

	"office-tools-backend/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

var Instance Provider

// ObjectInfo describes one stored backup object.
type ObjectInfo struct {
	Name         string    `json:"name"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

type Provider interface {
	MakeBucket(ctx context.Context) error
	Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error
	List(ctx context.Context) ([]ObjectInfo, error)
}

func NewClient() (Provider, error) {
	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		return nil, err
	}
	return &s3client{minioClient: minioClient}, nil
}

func Connect(ctx context.Context) error {
	client, err := NewClient()
	if err != nil {
		return errors.Wrap(err, "s3 client init failed")
	}
	if err := client.MakeBucket(ctx); err != nil {
		return errors.Wrap(err, "s3 bucket init failed")
	}
	Instance = client
	return nil
}

type s3client struct {
	minioClient *minio.Client
}

func (s s3client) MakeBucket(ctx context.Context) error {
	bucketName := config.Conf.S3.BucketName
	location := "us-east-1"
	exists, err := s.minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return s.minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location})
}

func (s s3client) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error {
	_, err := s.minioClient.PutObject(ctx, config.Conf.S3.BucketName, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

func (s s3client) List(ctx context.Context) ([]ObjectInfo, error) {
	var list []ObjectInfo
	for object := range s.minioClient.ListObjects(ctx, config.Conf.S3.BucketName, minio.ListObjectsOptions{}) {
		if object.Err != nil {
			return nil, object.Err
		}
		list = append(list, ObjectInfo{
			Name:         object.Key,
			Size:         object.Size,
			LastModified: object.LastModified,
		})
	}
	return list, nil
}
