package handlers

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"labsite/database"
	"labsite/dto"
	"labsite/internal/imagehost"
	"labsite/internal/repository"
)

// MaxUploadBytes caps relay uploads at 5 MiB, the image host's limit.
const MaxUploadBytes = 5 << 20

// UploadHandler godoc
// @Summary      Upload an image
// @Description  Buffers the file locally, forwards it to the image host, returns the hosted URLs
// @Tags         relay
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "image file (max 5MB)"
// @Success      200  {object}  dto.UploadResponse
// @Failure      500  {object}  dto.UploadResponse
// @Router       /api/upload [post]
func UploadHandler(host imagehost.Host, uploadsDir string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.UploadResponse{Success: false, Error: "No file uploaded"})
		}
		if fh.Size > MaxUploadBytes {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.UploadResponse{Success: false, Error: "File too large (max 5MB)"})
		}

		tmpPath := filepath.Join(uploadsDir, uuid.NewString()+"-"+filepath.Base(fh.Filename))
		if err := c.SaveFile(fh, tmpPath); err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.UploadResponse{Success: false, Error: "Failed to store uploaded file"})
		}

		data, err := os.ReadFile(tmpPath)
		if err != nil {
			removeTemp(tmpPath)
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.UploadResponse{Success: false, Error: "Failed to read uploaded file"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), 30*time.Second)
		defer cancel()

		img, uploadErr := host.Upload(ctx, fh.Filename, data)

		// best-effort cleanup either way
		removeTemp(tmpPath)

		if uploadErr != nil {
			log.Printf("upload to image host failed: %v", uploadErr)
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.UploadResponse{Success: false, Error: uploadErr.Error()})
		}

		return c.JSON(dto.UploadResponse{
			Success: true,
			Data: &dto.UploadData{
				URL:        img.URL,
				DisplayURL: img.DisplayURL,
				ThumbURL:   img.ThumbURL,
				MediumURL:  img.MediumURL,
				DeleteURL:  img.DeleteURL,
				Title:      img.Title,
				Size:       img.Size,
				Time:       img.Time,
			},
		})
	}
}

func removeTemp(path string) {
	if err := os.Remove(path); err != nil {
		log.Printf("failed to clean up temp file %s: %v", path, err)
	}
}

// DeleteImageHandler godoc
// @Summary      Delete a hosted image
// @Description  Removes the image from the host and blanks imageUrl on the referencing document
// @Tags         relay
// @Accept       json
// @Produce      json
// @Param        data  body  dto.DeleteImageRequest  true  "image URL plus entity id"
// @Success      200  {object}  dto.DeleteImageResponse
// @Failure      400  {object}  dto.DeleteImageResponse
// @Failure      500  {object}  dto.DeleteImageResponse
// @Router       /api/delete-image [delete]
func DeleteImageHandler(host imagehost.Host, teams repository.TeamRepository, research repository.ResearchRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.DeleteImageRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.DeleteImageResponse{Success: false, Error: "invalid body"})
		}
		if body.ImageURL == "" || body.TeamID == "" {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.DeleteImageResponse{Success: false, Error: "Image URL and ID are required"})
		}
		typ := body.Type
		if typ == "" {
			typ = "team"
		}
		if typ != "team" && typ != "research" {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.DeleteImageResponse{Success: false, Error: "type must be 'team' or 'research'"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), 15*time.Second)
		defer cancel()

		if err := host.DeleteByURL(ctx, body.ImageURL); err != nil {
			log.Printf("image host delete failed: %v", err)
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.DeleteImageResponse{Success: false, Error: "Failed to delete image from ImgBB"})
		}

		empty := ""
		var err error
		switch typ {
		case "team":
			err = teams.Update(ctx, body.TeamID, dto.TeamPatch{ImageURL: &empty})
		case "research":
			err = research.Update(ctx, body.TeamID, dto.ResearchPatch{ImageURL: &empty})
		}
		if err != nil {
			log.Printf("blanking imageUrl failed: %v", err)
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.DeleteImageResponse{Success: false, Error: "Failed to update database"})
		}

		return c.JSON(dto.DeleteImageResponse{Success: true, Message: "Image deleted successfully"})
	}
}

// HealthHandler reports liveness plus which env pieces are configured.
func HealthHandler(cfg database.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		imgbbKey := "Not set"
		if cfg.ImgbbAPIKey != "" {
			imgbbKey = "Set"
		}
		return c.JSON(fiber.Map{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"env": fiber.Map{
				"port":     cfg.Port,
				"imgbbKey": imgbbKey,
			},
		})
	}
}

func RootHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "Server is running",
			"message": "Lab website content server is active",
			"endpoints": fiber.Map{
				"upload": "/api/upload (POST)",
				"test":   "/api/test (GET)",
			},
		})
	}
}

func TestHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "success",
			"message":   "API is working",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}
