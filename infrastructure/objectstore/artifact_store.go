package objectstore

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"
	"voice-relay/domain"

	"github.com/gabriel-vasile/mimetype"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	Secure    bool
	// PublicURL is the base handed to clients, defaults to the endpoint itself.
	PublicURL string
}

// ArtifactStore uploads synthesized speech to an S3-compatible bucket.
type ArtifactStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

func NewArtifactStore(cfg Config) (*ArtifactStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.Secure,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init object store client: %w", err)
	}
	publicURL := cfg.PublicURL
	if publicURL == "" {
		scheme := "http"
		if cfg.Secure {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s", scheme, cfg.Endpoint)
	}
	return &ArtifactStore{client: client, bucket: cfg.Bucket, publicURL: strings.TrimRight(publicURL, "/")}, nil
}

// EnsureBucket fails when the bucket is missing, so misconfiguration shows at startup.
func (s *ArtifactStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		return fmt.Errorf("bucket %q does not exist", s.bucket)
	}
	return nil
}

// Put stores the artifact under key plus the extension of its MIME type and returns its public URL.
func (s *ArtifactStore) Put(ctx context.Context, key string, artifact domain.AudioArtifact) (string, error) {
	objectKey := key + extension(artifact.MimeType)
	_, err := s.client.PutObject(ctx, s.bucket, objectKey, bytes.NewReader(artifact.Data), int64(len(artifact.Data)),
		minio.PutObjectOptions{
			ContentType: artifact.MimeType,
			UserMetadata: map[string]string{
				"language":    string(artifact.Language),
				"uploaded-at": time.Now().UTC().Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", objectKey, err)
	}
	return s.buildPublicURL(objectKey), nil
}

func (s *ArtifactStore) buildPublicURL(key string) string {
	segments := strings.Split(key, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return fmt.Sprintf("%s/%s", s.publicURL, path.Join(append([]string{s.bucket}, segments...)...))
}

func extension(mime string) string {
	if m := mimetype.Lookup(mime); m != nil {
		return m.Extension()
	}
	return ""
}
