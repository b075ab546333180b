// Package objstore implements the Source port for S3-compatible artifact repositories.
package objstore

import (
	"context"
	"io"
	"strings"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.trai.ch/haul/internal/core/domain"
	"go.trai.ch/haul/internal/core/ports"
	"go.trai.ch/zerr"
)

// defaultRegion is used when a repository does not declare one.
const defaultRegion = "us-east-1"

var _ ports.Source = (*Source)(nil)

// Credentials holds the static access pair used for all s3 repositories.
type Credentials struct {
	AccessKey string
	SecretKey string
}

// Source fetches artifacts from S3-compatible object stores. One client is
// built per repository and reused across fetches.
type Source struct {
	creds Credentials

	mu      sync.Mutex
	clients map[domain.InternedString]*minio.Client
}

// NewSource creates a Source using the given static credentials.
func NewSource(creds Credentials) *Source {
	return &Source{
		creds:   creds,
		clients: make(map[domain.InternedString]*minio.Client),
	}
}

// Fetch streams the object at path within repo into dst.
func (s *Source) Fetch(ctx context.Context, repo domain.Repository, path string, dst io.Writer) error {
	client, err := s.client(repo)
	if err != nil {
		return err
	}

	key := objectKey(path)

	if v, ok := ports.VertexFromContext(ctx); ok {
		v.Log(domain.LogLevelDebug, "s3://"+repo.Bucket.String()+"/"+key)
	}

	obj, err := client.GetObject(ctx, repo.Bucket.String(), key, minio.GetObjectOptions{})
	if err != nil {
		return zerr.Wrap(err, domain.ErrDownloadFailed.Error())
	}
	defer obj.Close() //nolint:errcheck // Best effort close in defer

	// GetObject is lazy; a missing object surfaces on the first read.
	if _, err := io.Copy(dst, obj); err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.Code == "NoSuchBucket" {
			notFoundErr := zerr.With(domain.ErrArtifactNotFound, "repository", repo.Name.String())
			return zerr.With(notFoundErr, "key", key)
		}
		return zerr.Wrap(err, domain.ErrDownloadFailed.Error())
	}

	return nil
}

// client returns the cached minio client for the repository, building it on
// first use.
func (s *Source) client(repo domain.Repository) (*minio.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if client, ok := s.clients[repo.Name]; ok {
		return client, nil
	}

	region := repo.Region.String()
	if region == "" {
		region = defaultRegion
	}

	client, err := minio.New(repo.Endpoint.String(), &minio.Options{
		Creds:  credentials.NewStaticV4(s.creds.AccessKey, s.creds.SecretKey, ""),
		Secure: repo.Secure,
		Region: region,
	})
	if err != nil {
		clientErr := zerr.Wrap(err, domain.ErrDownloadFailed.Error())
		return nil, zerr.With(clientErr, "repository", repo.Name.String())
	}

	s.clients[repo.Name] = client
	return client, nil
}

// objectKey normalizes a manifest path into an object store key.
func objectKey(path string) string {
	return strings.TrimLeft(path, "/")
}
