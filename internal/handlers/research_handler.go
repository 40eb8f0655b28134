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

// ListResearchHandler godoc
// @Summary      List research projects
// @Description  All projects, title ascending, status/category/dates defaulted
// @Tags         research
// @Produce      json
// @Success      200  {array}   model.ResearchProject
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/research [get]
func ListResearchHandler(repo repository.ResearchRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		projects, err := repo.GetAll(ctx)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: "Failed to fetch research projects"})
		}
		return c.JSON(projects)
	}
}

// CreateResearchHandler godoc
// @Summary      Add a research project
// @Tags         research
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  model.ResearchProject
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/research [post]
func CreateResearchHandler(svc *services.Submission) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var form dto.ResearchForm
		if err := c.BodyParser(&form); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "invalid body"})
		}
		image, err := formImage(c)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(c.Context(), 30*time.Second)
		defer cancel()

		p, err := svc.SubmitResearch(ctx, "", form, image)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}
		return c.Status(fiber.StatusCreated).JSON(p)
	}
}

// UpdateResearchHandler godoc
// @Summary      Update a research project
// @Tags         research
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "project id (hex)"
// @Success      200  {object}  model.ResearchProject
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/research/{id} [put]
func UpdateResearchHandler(svc *services.Submission) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var form dto.ResearchForm
		if err := c.BodyParser(&form); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "invalid body"})
		}
		image, err := formImage(c)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(c.Context(), 30*time.Second)
		defer cancel()

		p, err := svc.SubmitResearch(ctx, c.Params("id"), form, image)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).
					JSON(dto.ErrorResponse{Message: "research project not found"})
			}
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(p)
	}
}

// DeleteResearchHandler godoc
// @Summary      Delete a research project
// @Tags         research
// @Security     BearerAuth
// @Param        id  path  string  true  "project id (hex)"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/research/{id} [delete]
func DeleteResearchHandler(repo repository.ResearchRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		if err := repo.Delete(ctx, c.Params("id")); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).
					JSON(dto.ErrorResponse{Message: "research project not found"})
			}
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
