// Package publish uploads an exported site to an S3 bucket.
package publish

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"mime"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/everythingtalent/etsite/internal/config"
	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/afero"
)

// ObjectPutter is the part of the S3 client the publisher uses.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// NewClient creates an S3 client for the configured target. A custom
// endpoint switches to path-style addressing for S3 compatible stores.
func NewClient(cfg config.Publish) *s3.Client {
	opts := s3.Options{
		Region:      cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(strings.TrimSuffix(cfg.Endpoint, "/"+cfg.Bucket))
		opts.UsePathStyle = true
	}
	return s3.New(opts)
}

// Publisher copies exported files into a bucket.
type Publisher struct {
	client ObjectPutter
	fs     afero.Fs
	bucket string
	prefix string
}

// New creates a Publisher reading from fsys. prefix is prepended to every
// object key.
func New(client ObjectPutter, fsys afero.Fs, bucket, prefix string) *Publisher {
	return &Publisher{
		client: client,
		fs:     fsys,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}
}

// Publish uploads files, given as slash-separated paths relative to dir, and
// returns the object keys written. Other files below dir are left alone.
func (p *Publisher) Publish(ctx context.Context, dir string, files []string) ([]string, error) {
	keys := make([]string, 0, len(files))
	for _, rel := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := filepath.Join(dir, filepath.FromSlash(rel))
		key := p.Key(rel)

		data, err := afero.ReadFile(p.fs, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(p.bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(data),
			ContentType: aws.String(ContentType(name, data)),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to upload %s: %w", key, err)
		}
		slog.Debug("object uploaded", "bucket", p.bucket, "key", key)
		keys = append(keys, key)
	}
	slog.Info("site published", "bucket", p.bucket, "objects", len(keys))
	return keys, nil
}

// Key is the object key of the file at the slash-separated path rel.
func (p *Publisher) Key(rel string) string {
	if p.prefix == "" {
		return rel
	}
	return path.Join(p.prefix, rel)
}

// ContentType picks the content type from the file extension and falls back
// to sniffing data.
func ContentType(name string, data []byte) string {
	if t := mime.TypeByExtension(filepath.Ext(name)); t != "" {
		return t
	}
	return mimetype.Detect(data).String()
}
