// config.go - Handles configuration for the project

package config // Declares the package name

import ( // Import required packages
	"os" // For reading environment variables
)

type Config struct { // Config struct holds all configuration values
	Port      string // HTTP listen port
	MongoURI  string // MongoDB connection string
	MongoDB   string // MongoDB database name
	JWTSecret string // Secret key for JWT authentication
	UploadDir string // Directory uploaded cover images are stored in
}

func Load() *Config { // Load reads config from environment variables or uses defaults
	return &Config{
		Port:      getEnv("PORT", "8080"),
		MongoURI:  getEnv("MONGO_URI", "mongodb://localhost:27017"), // Get Mongo URI or use default
		MongoDB:   getEnv("MONGO_DB", "recipenest"),
		JWTSecret: getEnv("JWT_SECRET", "supersecret"), // Get JWT secret or use default
		UploadDir: getEnv("UPLOAD_DIR", "uploads"),
	}
}

func getEnv(key, fallback string) string { // Helper to get env var or fallback
	if value := os.Getenv(key); value != "" { // If env var is set, use it
		return value
	}
	return fallback // Otherwise, use fallback value
}
