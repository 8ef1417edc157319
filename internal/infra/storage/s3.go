package storage

import (
	"bytes"
	"context"

	"classroom-reservation/internal/pkg/config"
	"classroom-reservation/internal/pkg/errs"
	"classroom-reservation/internal/usecase/shared"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectPutter is the subset of *s3.Client the archive needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Archive struct {
	client ObjectPutter
	bucket string
}

func NewS3Client(ctx context.Context, cfg config.StorageConfig) (*s3.Client, error) {
	staticProvider := credentials.NewStaticCredentialsProvider(
		cfg.AccessKeyID,
		cfg.SecretAccessKey,
		"",
	)

	awsCfg, err := awsConfig.LoadDefaultConfig(
		ctx,
		awsConfig.WithCredentialsProvider(staticProvider),
		awsConfig.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load AWS configuration")
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = true
	}), nil
}

func NewS3Archive(client ObjectPutter, bucket string) *S3Archive {
	return &S3Archive{client: client, bucket: bucket}
}

func (a *S3Archive) Archive(ctx context.Context, key string, img shared.Image) error {
	reader := bytes.NewReader(img.Data)
	contentType := img.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(a.bucket),
		Key:           aws.String(key),
		Body:          reader,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(reader.Size()),
	})
	if err != nil {
		return errs.Wrapf(err, "failed to upload %s to bucket %s", key, a.bucket)
	}
	return nil
}

// NoopArchive discards images; used when object storage is disabled.
type NoopArchive struct{}

func NewNoopArchive() NoopArchive {
	return NoopArchive{}
}

func (NoopArchive) Archive(context.Context, string, shared.Image) error { return nil }
