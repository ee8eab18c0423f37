// Package storage resolves application documents in the backend's object
// storage bucket.
package storage

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/topronto/admin-backoffice/internal/apperr"
)

// Bucket turns an object path into a URL the browser can open.
type Bucket interface {
	PublicURL(ctx context.Context, path string) (string, error)
}

// RemoteBucket talks to the backend storage API.
type RemoteBucket struct {
	Client  *http.Client
	APIKey  string
	BaseURL string
	Bucket  string
}

func NewRemoteBucket(baseURL, apiKey, bucket string) *RemoteBucket {
	return &RemoteBucket{
		Client:  &http.Client{Timeout: 10 * time.Second},
		APIKey:  apiKey,
		BaseURL: strings.TrimRight(baseURL, "/"),
		Bucket:  bucket,
	}
}

func (s *RemoteBucket) objectURL(path string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.BaseURL, url.PathEscape(s.Bucket), escapePath(path))
}

// PublicURL checks the object exists with an authenticated HEAD request.
func (s *RemoteBucket) PublicURL(ctx context.Context, path string) (string, error) {
	u := s.objectURL(path)

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, u, nil)
	if err != nil {
		return "", apperr.Gateway("storage head", err)
	}
	req.Header.Set("apikey", s.APIKey)
	req.Header.Set("Authorization", "Bearer "+s.APIKey)

	resp, err := s.Client.Do(req)
	if err != nil {
		return "", apperr.Gateway("storage head", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return u, nil
	case resp.StatusCode == http.StatusNotFound, resp.StatusCode == http.StatusBadRequest:
		// the storage API answers 400 for missing objects in some versions
		return "", apperr.NotFound("document", path)
	default:
		return "", apperr.Gateway("storage head", fmt.Errorf("unexpected status %d", resp.StatusCode))
	}
}

// LocalBucket serves files from UPLOADS_DIR/{bucket} under the /uploads static route.
type LocalBucket struct {
	Dir     string
	BaseURL string
	Bucket  string
}

func NewLocalBucket(dir, baseURL, bucket string) *LocalBucket {
	return &LocalBucket{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/"), Bucket: bucket}
}

func (s *LocalBucket) PublicURL(ctx context.Context, path string) (string, error) {
	clean := filepath.Clean("/" + path)
	full := filepath.Join(s.Dir, s.Bucket, clean)
	if _, err := os.Stat(full); err != nil {
		if os.IsNotExist(err) {
			return "", apperr.NotFound("document", path)
		}
		return "", apperr.Gateway("storage stat", err)
	}
	return s.BaseURL + "/uploads/" + url.PathEscape(s.Bucket) + escapePath(filepath.ToSlash(clean)), nil
}

func escapePath(p string) string {
	parts := strings.Split(p, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, "/")
}

// Document is how a stored file appears in a detail response.
type Document struct {
	Kind        string `json:"kind"`
	Available   bool   `json:"available"`
	URL         string `json:"url,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
}

const missingPlaceholder = "document not found"

// Resolve always returns a renderable document; a failed lookup becomes a
// placeholder and err is only for logging.
func Resolve(ctx context.Context, b Bucket, kind, path string) (Document, error) {
	u, err := b.PublicURL(ctx, path)
	if err != nil {
		return Document{Kind: kind, Placeholder: missingPlaceholder}, err
	}
	return Document{Kind: kind, Available: true, URL: u}, nil
}
