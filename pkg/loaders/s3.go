package loaders

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

const s3Scheme = "s3://"

// S3Config holds connection settings for S3-compatible storage
type S3Config struct {
	Endpoint  string // Custom endpoint for S3-compatible services; empty uses AWS
	Region    string
	AccessKey string // Static credentials; empty falls back to the AWS default chain
	SecretKey string
}

// S3ConfigFromEnv reads RAYCORE_S3_ENDPOINT, RAYCORE_S3_REGION,
// RAYCORE_S3_ACCESS_KEY and RAYCORE_S3_SECRET_KEY
func S3ConfigFromEnv() S3Config {
	return S3Config{
		Endpoint:  os.Getenv("RAYCORE_S3_ENDPOINT"),
		Region:    os.Getenv("RAYCORE_S3_REGION"),
		AccessKey: os.Getenv("RAYCORE_S3_ACCESS_KEY"),
		SecretKey: os.Getenv("RAYCORE_S3_SECRET_KEY"),
	}
}

// awsConfig translates the settings into an aws.Config
func (c S3Config) awsConfig() *aws.Config {
	region := c.Region
	if region == "" {
		region = "us-east-1"
	}

	config := &aws.Config{
		Region:           aws.String(region),
		S3ForcePathStyle: aws.Bool(true),
	}
	if c.Endpoint != "" {
		config.Endpoint = aws.String(c.Endpoint)
	}
	if c.AccessKey != "" {
		config.Credentials = credentials.NewStaticCredentials(c.AccessKey, c.SecretKey, "")
	}
	return config
}

// NewClient opens an S3 session with these settings
func (c S3Config) NewClient() (*s3.S3, error) {
	sess, err := session.NewSession(c.awsConfig())
	if err != nil {
		return nil, fmt.Errorf("create s3 session: %w", err)
	}
	return s3.New(sess), nil
}

// ParseS3URI splits s3://bucket/key. ok is false for anything else,
// including URIs with an empty bucket or key.
func ParseS3URI(uri string) (bucket, key string, ok bool) {
	if !strings.HasPrefix(uri, s3Scheme) {
		return "", "", false
	}
	bucket, key, found := strings.Cut(strings.TrimPrefix(uri, s3Scheme), "/")
	if !found || bucket == "" || key == "" {
		return "", "", false
	}
	return bucket, key, true
}

// fetchS3 downloads an object into a temporary file that keeps the key's
// extension, so the file readers can dispatch on it. cleanup removes the file.
func (l *Loader) fetchS3(ctx context.Context, bucket, key string) (string, func(), error) {
	client := l.S3
	if client == nil {
		c, err := S3ConfigFromEnv().NewClient()
		if err != nil {
			return "", nil, err
		}
		client = c
	}

	out, err := client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return "", nil, fmt.Errorf("get object: %w", err)
	}
	defer out.Body.Close()

	file, err := os.CreateTemp("", "raycore-*"+path.Ext(key))
	if err != nil {
		return "", nil, fmt.Errorf("create temp file: %w", err)
	}
	cleanup := func() { os.Remove(file.Name()) }

	if _, err := io.Copy(file, out.Body); err != nil {
		file.Close()
		cleanup()
		return "", nil, fmt.Errorf("download object: %w", err)
	}
	if err := file.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("write temp file: %w", err)
	}

	return file.Name(), cleanup, nil
}
