package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	appContext "github.com/alphabatem/common/context"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"
)

// MinIOService stores each blob as a JSON object in a bucket.
type MinIOService struct {
	appContext.DefaultService
	client     *minio.Client
	bucketName string
	endpoint   string
	accessKey  string
	secretKey  string
	useSSL     bool
}

const objectSuffix = ".json"

func (svc *MinIOService) Id() string {
	return STORE_SVC
}

func (svc *MinIOService) Configure(ctx *appContext.Context) error {
	svc.loadConfig()
	return svc.DefaultService.Configure(ctx)
}

func (svc *MinIOService) loadConfig() {
	svc.endpoint = envOrDefault("MINIO_ENDPOINT", "localhost:9000")
	svc.accessKey = envOrDefault("MINIO_ACCESS_KEY", "admin")
	svc.secretKey = envOrDefault("MINIO_SECRET_KEY", "password123")
	svc.useSSL = os.Getenv("MINIO_USE_SSL") == "true"
	svc.bucketName = envOrDefault("MINIO_BUCKET_NAME", "sdr-trainer")
}

func (svc *MinIOService) Start() error {
	client, err := minio.New(svc.endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(svc.accessKey, svc.secretKey, ""),
		Secure: svc.useSSL,
	})
	if err != nil {
		return fmt.Errorf("failed to create MinIO client: %v", err)
	}

	svc.client = client

	if err := svc.ensureBucket(); err != nil {
		return fmt.Errorf("failed to ensure bucket exists: %v", err)
	}

	log.Printf("MinIO store started successfully with endpoint: %s", svc.endpoint)
	return nil
}

func (svc *MinIOService) ensureBucket() error {
	ctx := context.Background()

	exists, err := svc.client.BucketExists(ctx, svc.bucketName)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %v", err)
	}

	if !exists {
		err = svc.client.MakeBucket(ctx, svc.bucketName, minio.MakeBucketOptions{})
		if err != nil {
			return fmt.Errorf("failed to create bucket: %v", err)
		}
		log.Printf("Created MinIO bucket: %s", svc.bucketName)
	}

	return nil
}

func objectName(key string) string {
	return key + objectSuffix
}

func (svc *MinIOService) Get(ctx context.Context, key string) (string, bool, error) {
	object, err := svc.client.GetObject(ctx, svc.bucketName, objectName(key), minio.GetObjectOptions{})
	if err != nil {
		return "", false, svc.translate(err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		if isNoSuchKey(err) {
			return "", false, nil
		}
		return "", false, svc.translate(err)
	}
	return string(data), true, nil
}

func (svc *MinIOService) Set(ctx context.Context, key, value string) error {
	_, err := svc.client.PutObject(ctx, svc.bucketName, objectName(key), strings.NewReader(value), int64(len(value)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return svc.translate(err)
	}
	return nil
}

func (svc *MinIOService) Delete(ctx context.Context, key string) error {
	err := svc.client.RemoveObject(ctx, svc.bucketName, objectName(key), minio.RemoveObjectOptions{})
	if err != nil {
		return svc.translate(err)
	}
	return nil
}

func (svc *MinIOService) GetBucketName() string {
	return svc.bucketName
}

func (svc *MinIOService) translate(err error) error {
	return fmt.Errorf("minio %s: %w", svc.bucketName, err)
}

func isNoSuchKey(err error) bool {
	return minio.ToErrorResponse(err).Code == "NoSuchKey"
}
