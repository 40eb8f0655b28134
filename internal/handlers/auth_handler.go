package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"labsite/database"
	"labsite/dto"
)

const tokenTTL = 24 * time.Hour

// LoginHandler godoc
// @Summary      Admin login
// @Description  Exchanges the editor credentials for a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        data  body  dto.LoginRequest  true  "credentials"
// @Success      200  {object}  dto.LoginResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func LoginHandler(cfg database.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "invalid body"})
		}
		if body.Email == "" || body.Password == "" {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "email and password are required"})
		}

		if body.Email != cfg.AdminEmail ||
			bcrypt.CompareHashAndPassword([]byte(cfg.AdminPasswordHash), []byte(body.Password)) != nil {
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.ErrorResponse{Message: "invalid credentials"})
		}

		now := time.Now()
		claims := jwt.RegisteredClaims{
			Subject:   body.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
			SignedString([]byte(cfg.JWTSecret))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: "failed to issue token"})
		}

		return c.JSON(dto.LoginResponse{Token: signed})
	}
}
