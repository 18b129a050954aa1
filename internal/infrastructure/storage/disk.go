package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/zonehead/commerce-api/internal/core/domain"
)

// PublicPrefix is the URL path uploaded files are served under.
const PublicPrefix = "/uploads"

var allowedImages = map[string]string{
	".jpeg": "image/jpeg",
	".jpg":  "image/jpeg",
	".png":  "image/png",
}

// DiskStore keeps uploaded images in a local directory served statically.
type DiskStore struct {
	dir      string
	maxBytes int64
}

// NewDiskStore creates dir if needed.
func NewDiskStore(dir string, maxBytes int64) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{dir: dir, maxBytes: maxBytes}, nil
}

func (s *DiskStore) Dir() string { return s.dir }

// Save stores r under a random name keeping the original extension and
// returns its public path. Both the extension and the declared content type
// must name a jpeg or png image; the bytes themselves are not inspected.
func (s *DiskStore) Save(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	ext, err := checkImage(filename, contentType)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := uuid.NewString() + ext
	full := filepath.Join(s.dir, name)

	f, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create upload: %w", err)
	}

	n, err := io.Copy(f, io.LimitReader(r, s.maxBytes+1))
	closeErr := f.Close()
	switch {
	case err != nil:
		_ = os.Remove(full)
		return "", fmt.Errorf("write upload: %w", err)
	case closeErr != nil:
		_ = os.Remove(full)
		return "", fmt.Errorf("close upload: %w", closeErr)
	case n > s.maxBytes:
		_ = os.Remove(full)
		return "", fmt.Errorf("%w: image larger than %d bytes", domain.ErrInvalidInput, s.maxBytes)
	}

	return PublicPrefix + "/" + name, nil
}

// Remove deletes the file behind a public path returned by Save. Paths
// outside the upload prefix and files already gone are ignored.
func (s *DiskStore) Remove(_ context.Context, path string) error {
	if !strings.HasPrefix(path, PublicPrefix+"/") {
		return nil
	}
	name := filepath.Base(strings.TrimPrefix(path, PublicPrefix+"/"))
	if name == "." || name == "/" || name == "" {
		return nil
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove upload: %w", err)
	}
	return nil
}

func checkImage(filename, contentType string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	want, ok := allowedImages[ext]
	if !ok {
		return "", domain.ErrUnsupportedImage
	}
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil || mt != want {
		return "", domain.ErrUnsupportedImage
	}
	return ext, nil
}
