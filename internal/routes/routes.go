package routes

import (
	"github.com/gofiber/fiber/v2"

	"labsite/database"
	"labsite/internal/handlers"
	"labsite/internal/imagehost"
	"labsite/internal/middleware"
	"labsite/internal/repository"
	"labsite/services"
)

// Deps holds shared dependencies to inject into handlers.
type Deps struct {
	Cfg          database.Config
	Host         imagehost.Host
	Teams        repository.TeamRepository
	Publications repository.PublicationRepository
	Research     repository.ResearchRepository
	Photos       repository.PhotosRepository
	Submission   *services.Submission
	Search       *services.Search
}

// Register mounts all HTTP routes in one place.
// Keep paths lowercase, grouped by resource, and easy to discover.
func Register(app *fiber.App, d Deps) {
	admin := middleware.RequireAdmin(d.Cfg.JWTSecret)

	// ============================================================
	// Diagnostics
	// ============================================================
	app.Get("/health", handlers.HealthHandler(d.Cfg))
	app.Get("/", handlers.RootHandler())

	api := app.Group("/api")
	api.Get("/test", handlers.TestHandler())

	// ============================================================
	// Image relay
	// ============================================================

	// POST /api/upload
	// Example:
	//   curl -X POST http://localhost:3001/api/upload -F file=@photo.jpg
	api.Post("/upload", handlers.UploadHandler(d.Host, d.Cfg.UploadsDir))

	// DELETE /api/delete-image
	// Example:
	//   curl -X DELETE http://localhost:3001/api/delete-image \
	//   -H "Content-Type: application/json" \
	//   -d '{"imageUrl":"https://i.ibb.co/abc123.jpg","teamId":"...","type":"team"}'
	api.Delete("/delete-image", handlers.DeleteImageHandler(d.Host, d.Teams, d.Research))

	// ============================================================
	// Auth
	// ============================================================
	api.Post("/auth/login", handlers.LoginHandler(d.Cfg))

	// ============================================================
	// Content collections (public reads, token-gated writes)
	// ============================================================
	api.Get("/teams", handlers.ListTeamsHandler(d.Teams))
	api.Post("/teams", admin, handlers.CreateTeamHandler(d.Submission))
	api.Put("/teams/:id", admin, handlers.UpdateTeamHandler(d.Submission))
	api.Delete("/teams/:id", admin, handlers.DeleteTeamHandler(d.Teams))

	api.Get("/publications", handlers.ListPublicationsHandler(d.Publications))
	api.Post("/publications", admin, handlers.CreatePublicationHandler(d.Submission))
	api.Put("/publications/:id", admin, handlers.UpdatePublicationHandler(d.Submission))
	api.Delete("/publications/:id", admin, handlers.DeletePublicationHandler(d.Publications))

	api.Get("/research", handlers.ListResearchHandler(d.Research))
	api.Post("/research", admin, handlers.CreateResearchHandler(d.Submission))
	api.Put("/research/:id", admin, handlers.UpdateResearchHandler(d.Submission))
	api.Delete("/research/:id", admin, handlers.DeleteResearchHandler(d.Research))

	api.Get("/photos", handlers.GetPhotosHandler(d.Photos))
	api.Put("/photos", admin, handlers.SavePhotosHandler(d.Submission))

	// ============================================================
	// Search
	// ============================================================

	// GET /api/search?q=...
	api.Get("/search", handlers.SearchHandler(d.Search))
}
