package service

import (
	"context"
	"strings"

	"github.com/zonehead/commerce-api/internal/core/domain"
	"github.com/zonehead/commerce-api/internal/core/ports"
)

// ImageService fronts the image collaborators for admin operations.
type ImageService struct {
	generator ports.ImageGenerator
}

func NewImageService(generator ports.ImageGenerator) *ImageService {
	return &ImageService{generator: generator}
}

// Generate returns an image URL for the given product name.
func (s *ImageService) Generate(ctx context.Context, actor *domain.Actor, name string) (string, error) {
	if actor == nil || actor.Role != domain.RoleAdmin {
		return "", domain.ErrForbidden
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domain.ErrInvalidInput
	}
	return s.generator.Generate(ctx, name)
}
