package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"labsite/dto"
	"labsite/internal/repository"
	"labsite/services"
)

// GetPhotosHandler godoc
// @Summary      Get site imagery
// @Description  The singleton photos document; absent URLs are empty strings
// @Tags         photos
// @Produce      json
// @Success      200  {object}  model.Photos
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/photos [get]
func GetPhotosHandler(repo repository.PhotosRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		photos, err := repo.Get(ctx)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: "Failed to fetch photos"})
		}
		return c.JSON(photos)
	}
}

// SavePhotosHandler godoc
// @Summary      Upsert site imagery
// @Description  Overwrites the singleton photos document with the given URLs
// @Tags         photos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        data  body  dto.PhotosForm  true  "photo URLs"
// @Success      200  {object}  model.Photos
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/photos [put]
func SavePhotosHandler(svc *services.Submission) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var form dto.PhotosForm
		if err := c.BodyParser(&form); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "invalid body"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		photos, err := svc.SavePhotos(ctx, form)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(photos)
	}
}
