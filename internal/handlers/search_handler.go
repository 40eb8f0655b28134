package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"labsite/dto"
	"labsite/services"
)

// SearchHandler godoc
// @Summary      Free-text search
// @Description  Matches publications, research projects and team members
// @Tags         search
// @Produce      json
// @Param        q  query  string  true  "search terms"
// @Success      200  {array}   dto.SearchResult
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/search [get]
func SearchHandler(svc *services.Search) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		results, err := svc.Query(ctx, c.Query("q"))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: "search failed"})
		}
		return c.JSON(results)
	}
}
