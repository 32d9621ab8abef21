package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// StorageService uploads and deletes images grouped by process type
// ("profiles", "leaves", ...). Deletion is best-effort at call sites.
type StorageService interface {
	UploadImage(ctx context.Context, file *multipart.FileHeader, processType string) (string, error)
	DeleteImage(ctx context.Context, imageURL string, processType string) error
}

type S3Config struct {
	Region       string
	Bucket       string
	AccessKey    string
	SecretKey    string
	BaseEndpoint string // set for MinIO / localstack
	PublicURL    string // base URL objects are served from
}

type s3StorageService struct {
	cfg    S3Config
	client *s3.Client
}

func NewS3StorageService(cfg S3Config) (StorageService, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return &s3StorageService{
		cfg:    cfg,
		client: client,
	}, nil
}

func (s *s3StorageService) UploadImage(ctx context.Context, file *multipart.FileHeader, processType string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	key := fmt.Sprintf("%s/%s%s", processType, uuid.New(), path.Ext(file.Filename))

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.cfg.Bucket),
		Key:           aws.String(key),
		Body:          src,
		ContentLength: aws.Int64(file.Size),
		ContentType:   aws.String(file.Header.Get("Content-Type")),
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/%s", strings.TrimSuffix(s.cfg.PublicURL, "/"), key), nil
}

func (s *s3StorageService) DeleteImage(ctx context.Context, imageURL string, processType string) error {
	key := s.keyFromURL(imageURL, processType)
	if key == "" {
		return fmt.Errorf("image url %q does not belong to process type %q", imageURL, processType)
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	})
	return err
}

func (s *s3StorageService) keyFromURL(imageURL string, processType string) string {
	marker := processType + "/"
	idx := strings.Index(imageURL, marker)
	if idx < 0 {
		return ""
	}
	return imageURL[idx:]
}

func envOr(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func S3ConfigFromEnv() S3Config {
	return S3Config{
		Region:       envOr("S3_REGION", "ap-northeast-2"),
		Bucket:       envOr("S3_BUCKET", "growstory"),
		AccessKey:    envOr("S3_ACCESS_KEY", ""),
		SecretKey:    envOr("S3_SECRET_KEY", ""),
		BaseEndpoint: envOr("S3_BASE_ENDPOINT", ""),
		PublicURL:    envOr("S3_PUBLIC_URL", ""),
	}
}
