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

// ListTeamsHandler godoc
// @Summary      List team members
// @Description  All members, ordered by roleOrder then name, every field defaulted
// @Tags         teams
// @Produce      json
// @Success      200  {array}   model.TeamMember
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/teams [get]
func ListTeamsHandler(repo repository.TeamRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		members, err := repo.GetAll(ctx)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: "Failed to fetch team members"})
		}
		return c.JSON(members)
	}
}

// CreateTeamHandler godoc
// @Summary      Add a team member
// @Tags         teams
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  model.TeamMember
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/teams [post]
func CreateTeamHandler(svc *services.Submission) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var form dto.TeamForm
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

		m, err := svc.SubmitTeam(ctx, "", form, image)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}
		return c.Status(fiber.StatusCreated).JSON(m)
	}
}

// UpdateTeamHandler godoc
// @Summary      Update a team member
// @Tags         teams
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "member id (hex)"
// @Success      200  {object}  model.TeamMember
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/teams/{id} [put]
func UpdateTeamHandler(svc *services.Submission) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		var form dto.TeamForm
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

		m, err := svc.SubmitTeam(ctx, id, form, image)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).
					JSON(dto.ErrorResponse{Message: "team member not found"})
			}
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(m)
	}
}

// DeleteTeamHandler godoc
// @Summary      Delete a team member
// @Tags         teams
// @Security     BearerAuth
// @Param        id  path  string  true  "member id (hex)"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/teams/{id} [delete]
func DeleteTeamHandler(repo repository.TeamRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		if err := repo.Delete(ctx, c.Params("id")); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).
					JSON(dto.ErrorResponse{Message: "team member not found"})
			}
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: err.Error()})
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
