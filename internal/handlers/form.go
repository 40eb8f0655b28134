package handlers

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"labsite/services"
)

// formImage pulls the optional "image" file out of a multipart form.
// Returns nil (not an error) when no file was attached.
func formImage(c *fiber.Ctx) (*services.ImageFile, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		return nil, nil
	}
	if fh.Size > MaxUploadBytes {
		return nil, fiber.NewError(fiber.StatusBadRequest, "image too large (max 5MB)")
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "failed to read image")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "failed to read image")
	}
	return &services.ImageFile{Name: fh.Filename, Data: data}, nil
}
