//nolint:testpackage // Testing internal helpers like objectKey and client caching
package objstore

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"go.trai.ch/haul/internal/core/domain"
)

func testCreds() Credentials {
	return Credentials{AccessKey: "test-access", SecretKey: "test-secret"}
}

// s3Repo points an s3 repository at a local test server. Minio clients want
// a bare host:port endpoint, not a URL.
func s3Repo(serverURL string) domain.Repository {
	return domain.Repository{
		Name:     domain.NewInternedString("releases"),
		Kind:     domain.RepositoryKindS3,
		Endpoint: domain.NewInternedString(strings.TrimPrefix(serverURL, "http://")),
		Bucket:   domain.NewInternedString("artifacts"),
		Secure:   false,
	}
}

func TestSource_FetchStreamsObject(t *testing.T) {
	const payload = "jar bytes"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/artifacts/releases/org/example/demo-1.0.0.jar" {
			t.Errorf("unexpected path: %v", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Header().Set("Last-Modified", time.Now().UTC().Format(http.TimeFormat))
		w.Header().Set("Content-Length", strconv.Itoa(len(payload)))
		_, _ = w.Write([]byte(payload))
	}))
	defer server.Close()

	source := NewSource(testCreds())
	var dst bytes.Buffer

	err := source.Fetch(context.Background(), s3Repo(server.URL), "releases/org/example/demo-1.0.0.jar", &dst)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if dst.String() != payload {
		t.Errorf("Fetch() wrote %q, want %q", dst.String(), payload)
	}
}

func TestSource_FetchMissingObject(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	source := NewSource(testCreds())
	var dst bytes.Buffer

	err := source.Fetch(context.Background(), s3Repo(server.URL), "releases/missing.jar", &dst)
	if err == nil {
		t.Fatal("Fetch() expected error for missing object")
	}
	if !errors.Is(err, domain.ErrArtifactNotFound) {
		t.Errorf("Fetch() error = %v, want %v", err, domain.ErrArtifactNotFound)
	}
}

func TestSource_FetchServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	source := NewSource(testCreds())
	var dst bytes.Buffer

	err := source.Fetch(context.Background(), s3Repo(server.URL), "releases/demo.jar", &dst)
	if err == nil {
		t.Fatal("Fetch() expected error for server failure")
	}
	if errors.Is(err, domain.ErrArtifactNotFound) {
		t.Error("Fetch() should not report a server failure as missing")
	}
}

func TestSource_ClientReusedPerRepository(t *testing.T) {
	source := NewSource(testCreds())
	repo := s3Repo("http://localhost:9000")

	first, err := source.client(repo)
	if err != nil {
		t.Fatalf("client() error = %v", err)
	}
	second, err := source.client(repo)
	if err != nil {
		t.Fatalf("client() error = %v", err)
	}

	if first != second {
		t.Error("client() should return the cached client for the same repository")
	}
	if len(source.clients) != 1 {
		t.Errorf("clients cached = %d, want 1", len(source.clients))
	}
}

func TestObjectKey(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"releases/demo.jar", "releases/demo.jar"},
		{"/releases/demo.jar", "releases/demo.jar"},
		{"//releases/demo.jar", "releases/demo.jar"},
	}

	for _, tt := range tests {
		if got := objectKey(tt.path); got != tt.want {
			t.Errorf("objectKey(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestCredentialsFromEnv(t *testing.T) {
	t.Run("HaulVariablesWin", func(t *testing.T) {
		t.Setenv("HAUL_S3_ACCESS_KEY", "haul-access")
		t.Setenv("HAUL_S3_SECRET_KEY", "haul-secret")
		t.Setenv("AWS_ACCESS_KEY_ID", "aws-access")
		t.Setenv("AWS_SECRET_ACCESS_KEY", "aws-secret")

		creds := credentialsFromEnv()
		if creds.AccessKey != "haul-access" || creds.SecretKey != "haul-secret" {
			t.Errorf("credentialsFromEnv() = %+v, want haul pair", creds)
		}
	})

	t.Run("FallsBackToAWS", func(t *testing.T) {
		t.Setenv("HAUL_S3_ACCESS_KEY", "")
		t.Setenv("HAUL_S3_SECRET_KEY", "")
		t.Setenv("AWS_ACCESS_KEY_ID", "aws-access")
		t.Setenv("AWS_SECRET_ACCESS_KEY", "aws-secret")

		creds := credentialsFromEnv()
		if creds.AccessKey != "aws-access" || creds.SecretKey != "aws-secret" {
			t.Errorf("credentialsFromEnv() = %+v, want aws pair", creds)
		}
	})
}
