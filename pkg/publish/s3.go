package publish

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	ferrors "github.com/vango-dev/forms/internal/errors"
)

// S3API is the subset of the S3 client used by S3Publisher.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Publisher stores snapshots in an S3 bucket.
type S3Publisher struct {
	client  S3API
	bucket  string
	prefix  string
	maxSize int
	now     func() time.Time
}

// NewS3Publisher creates a publisher writing to bucket under prefix.
//
// Parameters:
//   - client: an *s3.Client or anything with PutObject
//   - bucket: S3 bucket name
//   - prefix: key prefix for snapshots (e.g., "forms/")
func NewS3Publisher(client S3API, bucket, prefix string) *S3Publisher {
	return &S3Publisher{
		client:  client,
		bucket:  bucket,
		prefix:  prefix,
		maxSize: 5 << 20,
		now:     time.Now,
	}
}

// WithMaxSize sets the largest snapshot accepted, in bytes. Zero means no limit.
func (p *S3Publisher) WithMaxSize(n int) *S3Publisher {
	p.maxSize = n
	return p
}

// Publish uploads html as prefix+name+".html" and returns the object key.
func (p *S3Publisher) Publish(ctx context.Context, name string, html []byte) (string, error) {
	if !ValidName(name) {
		return "", ErrInvalidName
	}
	if p.maxSize > 0 && len(html) > p.maxSize {
		return "", ErrTooLarge
	}

	key := p.prefix + name + ".html"
	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(html),
		ContentType: aws.String("text/html; charset=utf-8"),
		Metadata: map[string]string{
			"published-at": p.now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return "", ferrors.New("F070").
			WithDetail(fmt.Sprintf("s3://%s/%s", p.bucket, key)).
			Wrap(err)
	}
	return key, nil
}

// EnvCredentials reads static credentials from the standard AWS
// environment variables.
func EnvCredentials() aws.CredentialsProvider {
	return aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
		id := os.Getenv("AWS_ACCESS_KEY_ID")
		secret := os.Getenv("AWS_SECRET_ACCESS_KEY")
		if id == "" || secret == "" {
			return aws.Credentials{}, fmt.Errorf("publish: AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set")
		}
		return aws.Credentials{
			AccessKeyID:     id,
			SecretAccessKey: secret,
			SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
			Source:          "Environment",
		}, nil
	})
}

// NewS3Client builds an S3 client for region. A non-empty endpoint points it
// at an S3-compatible service such as MinIO.
func NewS3Client(region, endpoint string, pathStyle bool) *s3.Client {
	opts := s3.Options{
		Region:       region,
		Credentials:  aws.NewCredentialsCache(EnvCredentials()),
		UsePathStyle: pathStyle,
	}
	if endpoint != "" {
		opts.BaseEndpoint = aws.String(endpoint)
	}
	return s3.New(opts)
}
