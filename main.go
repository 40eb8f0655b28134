// @title Lab Website Content API
// @version 1.0
// @description Image relay, content collections and admin endpoints for the lab website.
// @BasePath /
package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/joho/godotenv"

	"labsite/bootstrap"
	"labsite/database"
	_ "labsite/docs"
	"labsite/internal/imagehost"
	"labsite/internal/repository"
	"labsite/internal/routes"
	"labsite/services"
)

func init() {
	if err := godotenv.Overload(".env"); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
}

func main() {
	cfg := database.LoadConfig()

	// --- MongoDB Connection ---
	client := database.ConnectMongo(cfg)
	defer database.DisconnectMongo(client)
	db := client.Database(cfg.DBName)

	if err := bootstrap.EnsureContentIndexes(db); err != nil {
		log.Fatalf("ensure indexes failed: %v", err)
	}

	if err := os.MkdirAll(cfg.UploadsDir, 0o755); err != nil {
		log.Fatalf("create uploads dir: %v", err)
	}

	// --- Dependencies ---
	host := imagehost.NewImgBB(cfg.ImgbbAPIKey)
	teams := repository.NewTeamRepo(db)
	publications := repository.NewPublicationRepo(db)
	research := repository.NewResearchRepo(db)
	photos := repository.NewPhotosRepo(db)

	submission := &services.Submission{
		Teams:        teams,
		Publications: publications,
		Research:     research,
		Photos:       photos,
		Host:         host,
	}
	search := &services.Search{
		Teams:        teams,
		Publications: publications,
		Research:     research,
	}

	// --- Fiber App Setup ---
	app := fiber.New(fiber.Config{
		// upload limit is 5 MiB; leave headroom for the rest of the form
		BodyLimit: 8 << 20,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	// Swagger docs
	app.Get("/docs/*", swagger.HandlerDefault)

	routes.Register(app, routes.Deps{
		Cfg:          cfg,
		Host:         host,
		Teams:        teams,
		Publications: publications,
		Research:     research,
		Photos:       photos,
		Submission:   submission,
		Search:       search,
	})

	log.Printf("listening at http://localhost:%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
