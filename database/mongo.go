package database

import (
	"context"
	"log"
	"os"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// Config holds everything the process needs at startup. Missing required
// values are fatal here, not guarded per call.
type Config struct {
	Port              string
	MongoURI          string
	DBName            string
	ImgbbAPIKey       string
	JWTSecret         string
	AdminEmail        string
	AdminPasswordHash string
	UploadsDir        string
	FrontendOrigins   string
}

func LoadConfig() Config {
	cfg := Config{
		Port:              getEnv("PORT", "3001"),
		MongoURI:          os.Getenv("MONGO_URI"),
		DBName:            getEnv("DB_NAME", "labsite"),
		ImgbbAPIKey:       os.Getenv("IMGBB_API_KEY"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		UploadsDir:        getEnv("UPLOADS_DIR", "uploads"),
		FrontendOrigins:   getEnv("FRONTEND_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173"),
	}

	if cfg.MongoURI == "" {
		log.Fatal("MONGO_URI not set in environment")
	}
	if cfg.ImgbbAPIKey == "" {
		log.Fatal("Missing required environment variable: IMGBB_API_KEY")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET not set in environment")
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func ConnectMongo(cfg Config) *mongo.Client {
	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))

	client, err := mongo.Connect(opts)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}

	if err := client.Ping(context.TODO(), readpref.Primary()); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}

	log.Println("Connected to MongoDB")
	return client
}

func DisconnectMongo(client *mongo.Client) {
	if err := client.Disconnect(context.TODO()); err != nil {
		panic(err)
	}
}
