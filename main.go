// main.go - Entry point for the RecipeNest API server

package main // Declares the package name

import ( // Import required packages
	"recipenest/config"     // Project config management
	"recipenest/database"   // MongoDB connection and setup
	"recipenest/handlers"   // HTTP handlers for API endpoints
	"recipenest/middleware" // Middleware (authentication guards)
	"recipenest/store"      // Store implementations

	"github.com/gin-contrib/cors" // CORS middleware for the SPA frontend
	"github.com/gin-gonic/gin"    // Gin web framework
	"github.com/joho/godotenv"    // .env loading
	"github.com/sirupsen/logrus"  // Structured logging
)

func main() { // Main function, program entry point
	// STEP 1: Load configuration and establish the store connection
	_ = godotenv.Load() // Load .env if present; real env vars win

	cfg := config.Load() // Load configuration (Mongo URI, JWT secret, upload dir)

	db, err := database.Connect(cfg.MongoURI, cfg.MongoDB) // Connect to MongoDB
	if err != nil {
		logrus.WithError(err).Fatal("MongoDB connection error") // If error, log and exit
	}
	logrus.WithField("database", cfg.MongoDB).Info("connected to MongoDB")

	users := store.NewMongoUserStore(db)
	recipes := store.NewMongoRecipeStore(db)
	userHandler := handlers.NewUserHandler(users, cfg.JWTSecret)
	recipeHandler := handlers.NewRecipeHandler(recipes, cfg.UploadDir)

	// STEP 2: Create Gin router and configure routes
	r := gin.Default()        // Create a new Gin router (web server)
	r.Use(cors.Default())     // Allow the SPA frontend on another origin
	r.Static("/uploads", cfg.UploadDir) // Serve uploaded cover images statically

	// Public routes (no authentication required)
	userRoutes := r.Group("/api/users")
	{
		userRoutes.POST("/register", userHandler.Register) // Public route: user registration
		userRoutes.POST("/login", userHandler.Login)       // Public route: user login
	}

	// Recipe routes: reads take an optional identity, writes require one
	requireAuth := middleware.RequireAuth(users, cfg.JWTSecret)
	optionalAuth := middleware.OptionalAuth(users, cfg.JWTSecret)
	recipeRoutes := r.Group("/api/recipes")
	{
		recipeRoutes.POST("", requireAuth, recipeHandler.Create)
		recipeRoutes.GET("", optionalAuth, recipeHandler.List)
		recipeRoutes.GET("/my-recipes", requireAuth, recipeHandler.Mine)
		recipeRoutes.GET("/search", optionalAuth, recipeHandler.Search)
		recipeRoutes.GET("/:id", optionalAuth, recipeHandler.Get)
		recipeRoutes.PUT("/:id", requireAuth, recipeHandler.Update)
		recipeRoutes.DELETE("/:id", requireAuth, recipeHandler.Delete)
	}

	// STEP 3: Start the web server
	logrus.WithField("port", cfg.Port).Info("starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("server error")
	}
}
