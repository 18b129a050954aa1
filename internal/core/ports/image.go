package ports

import (
	"context"
	"io"
)

// ImageStore persists uploaded images and returns their public path.
type ImageStore interface {
	Save(ctx context.Context, filename, contentType string, r io.Reader) (string, error)
	Remove(ctx context.Context, path string) error
}

// ImageGenerator turns a prompt into an image URL.
type ImageGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
