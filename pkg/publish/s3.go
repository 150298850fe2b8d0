package publish

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"swatch-grid/pkg/palette"
)

const htmlContentType = "text/html; charset=utf-8"

// Uploader is the part of the S3 API publishing needs
type Uploader interface {
	PutObjectWithContext(ctx aws.Context, input *s3.PutObjectInput, opts ...request.Option) (*s3.PutObjectOutput, error)
}

// NewS3Client builds an S3 client from AWS_DEFAULT_REGION,
// AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY
func NewS3Client() (*s3.S3, error) {
	region := os.Getenv("AWS_DEFAULT_REGION")
	accessKey := os.Getenv("AWS_ACCESS_KEY_ID")
	secretKey := os.Getenv("AWS_SECRET_ACCESS_KEY")

	if region == "" || accessKey == "" || secretKey == "" {
		return nil, errors.New("missing one or more required environment variables: AWS_DEFAULT_REGION, AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY")
	}

	sess, err := session.NewSession(&aws.Config{
		Region:      aws.String(region),
		Credentials: credentials.NewStaticCredentials(accessKey, secretKey, ""),
	})
	if err != nil {
		return nil, err
	}

	return s3.New(sess), nil
}

// Publish renders the site and uploads every page under prefix in bucket.
// It returns the object keys written. The first failed upload aborts the
// publish.
func Publish(ctx context.Context, up Uploader, cfg palette.Config, bucket, prefix string, seed uint64) ([]string, error) {
	log.Printf("Publish called | bucket=%s | prefix=%s | seed=%d", bucket, prefix, seed)
	if bucket == "" {
		return nil, errors.New("no bucket configured")
	}

	files, err := RenderSite(cfg, seed)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(files))
	for _, f := range files {
		key := path.Join(prefix, f.Name)
		_, err := up.PutObjectWithContext(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(f.Body),
			ContentType: aws.String(htmlContentType),
		})
		if err != nil {
			return keys, fmt.Errorf("failed to upload %s: %w", key, err)
		}
		keys = append(keys, key)
	}

	log.Printf("Publish completed | uploaded=%d", len(keys))
	return keys, nil
}
