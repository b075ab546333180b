// Package remote implements the Source port for artifact repositories served over HTTP.
package remote

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"go.trai.ch/haul/internal/core/domain"
	"go.trai.ch/haul/internal/core/ports"
	"go.trai.ch/zerr"
)

// downloadTimeout bounds a single artifact download end to end.
const downloadTimeout = 10 * time.Minute

var _ ports.Source = (*Source)(nil)

// Source fetches artifacts from HTTP repositories.
type Source struct {
	httpClient *http.Client
}

// NewSource creates a Source with a default HTTP client.
func NewSource() *Source {
	return &Source{
		httpClient: &http.Client{
			Timeout: downloadTimeout,
		},
	}
}

// Fetch streams the object at path within repo into dst.
func (s *Source) Fetch(ctx context.Context, repo domain.Repository, path string, dst io.Writer) error {
	url := artifactURL(repo, path)

	if v, ok := ports.VertexFromContext(ctx); ok {
		v.Log(domain.LogLevelDebug, "GET "+url)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return zerr.Wrap(err, domain.ErrDownloadFailed.Error())
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return zerr.Wrap(err, domain.ErrDownloadFailed.Error())
	}
	defer resp.Body.Close() //nolint:errcheck // Best effort close in defer

	if resp.StatusCode == http.StatusNotFound {
		notFoundErr := zerr.With(domain.ErrArtifactNotFound, "repository", repo.Name.String())
		return zerr.With(notFoundErr, "url", url)
	}

	if resp.StatusCode != http.StatusOK {
		reqErr := zerr.With(domain.ErrDownloadFailed, "status_code", resp.StatusCode)
		reqErr = zerr.With(reqErr, "repository", repo.Name.String())
		return zerr.With(reqErr, "url", url)
	}

	if _, err := io.Copy(dst, resp.Body); err != nil {
		return zerr.Wrap(err, domain.ErrDownloadFailed.Error())
	}

	return nil
}

// artifactURL joins the repository endpoint and the object path.
func artifactURL(repo domain.Repository, path string) string {
	base := strings.TrimSuffix(repo.Endpoint.String(), "/")
	return base + "/" + strings.TrimPrefix(path, "/")
}
