package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"labsite/dto"
	"labsite/internal/repository"
	"labsite/services"
)

// ListPublicationsHandler godoc
// @Summary      List publications
// @Description  All publications, newest year first
// @Tags         publications
// @Produce      json
// @Success      200  {array}   model.Publication
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/publications [get]
func ListPublicationsHandler(repo repository.PublicationRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		pubs, err := repo.GetAll(ctx)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: "Failed to fetch publications"})
		}
		return c.JSON(pubs)
	}
}

// CreatePublicationHandler godoc
// @Summary      Add a publication
// @Description  Authors may be a comma-joined string or an array; year a number or numeric string
// @Tags         publications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        data  body  dto.PublicationForm  true  "publication payload"
// @Success      201  {object}  model.Publication
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/publications [post]
func CreatePublicationHandler(svc *services.Submission) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var form dto.PublicationForm
		if err := c.BodyParser(&form); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "invalid body"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		p, err := svc.SubmitPublication(ctx, "", form)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}
		return c.Status(fiber.StatusCreated).JSON(p)
	}
}

// UpdatePublicationHandler godoc
// @Summary      Update a publication
// @Tags         publications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string               true  "publication id (hex)"
// @Param        data  body  dto.PublicationForm  true  "publication payload"
// @Success      200  {object}  model.Publication
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/publications/{id} [put]
func UpdatePublicationHandler(svc *services.Submission) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var form dto.PublicationForm
		if err := c.BodyParser(&form); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "invalid body"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		p, err := svc.SubmitPublication(ctx, c.Params("id"), form)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).
					JSON(dto.ErrorResponse{Message: "publication not found"})
			}
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(p)
	}
}

// DeletePublicationHandler godoc
// @Summary      Delete a publication
// @Tags         publications
// @Security     BearerAuth
// @Param        id  path  string  true  "publication id (hex)"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/publications/{id} [delete]
func DeletePublicationHandler(repo repository.PublicationRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		if err := repo.Delete(ctx, c.Params("id")); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).
					JSON(dto.ErrorResponse{Message: "publication not found"})
			}
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
