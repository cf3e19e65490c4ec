package media

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rankmaker/rankmaker/internal/apperr"
	"github.com/rankmaker/rankmaker/internal/config"
)

// Uploader stores media on an S3-compatible host. Objects are write-once:
// a changed cover image is a new key, never an overwrite.
type Uploader struct {
	client    *s3.Client
	presigner *s3.PresignClient
	bucket    string
	publicURL string
	urlExpiry time.Duration
}

func NewUploader(ctx context.Context, cfg *config.Config) (*Uploader, error) {
	if cfg.MediaAccessKey == "" || cfg.MediaSecretKey == "" {
		return nil, apperr.New(apperr.Dependency, "media host credentials not configured")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.MediaAccessKey, cfg.MediaSecretKey, "")),
		awsconfig.WithRegion(cfg.MediaRegion),
	)
	if err != nil {
		return nil, apperr.Wrap(apperr.Dependency, "failed to configure media host client", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.MediaEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.MediaEndpoint)
		}
	})

	return &Uploader{
		client:    client,
		presigner: s3.NewPresignClient(client),
		bucket:    cfg.MediaBucket,
		publicURL: strings.TrimSuffix(cfg.MediaPublicURL, "/"),
		urlExpiry: cfg.UploadURLExpiry,
	}, nil
}

// Upload is the server-proxied path for small image files. Returns the
// stable public URL of the stored object.
func (u *Uploader) Upload(ctx context.Context, fileName, contentType string, body io.Reader) (string, error) {
	key := objectKey(fileName)

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", apperr.Wrap(apperr.Dependency, "failed to store media", err)
	}

	return u.PublicURL(key), nil
}

// PresignPut issues the direct-upload handshake for large files and any
// video/audio: the client PUTs the bytes straight to the media host.
func (u *Uploader) PresignPut(ctx context.Context, fileName, contentType string) (uploadURL, key string, err error) {
	key = objectKey(fileName)

	req, err := u.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(u.urlExpiry))
	if err != nil {
		return "", "", apperr.Wrap(apperr.Dependency, "failed to presign upload", err)
	}

	return req.URL, key, nil
}

func (u *Uploader) PublicURL(key string) string {
	return u.publicURL + "/" + key
}

func objectKey(fileName string) string {
	name := strings.ReplaceAll(fileName, " ", "_")
	return fmt.Sprintf("media/%s_%s", uuid.New().String(), name)
}
