package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zonehead/commerce-api/internal/core/ports"
)

// saveOptionalImage stores the multipart file in field, if one was sent,
// and returns its public path. Non-multipart requests carry no image.
func saveOptionalImage(c echo.Context, images ports.ImageStore, field string) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", nil
		}
		return "", echo.NewHTTPError(http.StatusBadRequest, "invalid multipart payload")
	}

	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	return images.Save(c.Request().Context(), fh.Filename, fh.Header.Get(echo.HeaderContentType), f)
}

// discardImage removes an image saved for a record that was then rejected.
func discardImage(ctx context.Context, images ports.ImageStore, path string) {
	if path != "" {
		_ = images.Remove(context.WithoutCancel(ctx), path)
	}
}
