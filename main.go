package main

import (
	"log"
	"os"

	"blog/config"
	"blog/database"
	"blog/middleware"
	"blog/routes"
	"blog/services"
	"blog/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// @title Blog API
// @version 1.0
// @description Read-only JSON access to the blog plus token login

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Error loading .env file: %v", err)
	}

	cfg := config.Load()
	if cfg.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	utils.ConfigureJWT(cfg.JWTSecret, cfg.SessionTTL)
	middleware.ConfigureCookies(cfg.SecureCookies)
	if cfg.GinMode == gin.ReleaseMode {
		warnInsecureDefaults(cfg)
	}

	db := database.Connect(cfg)
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	if cfg.ShouldSeed() {
		seedUser(services.NewUserService(db), cfg)
	}

	r := routes.NewRouter(db, cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	log.Printf("Swagger docs available at: http://localhost:%s/swagger/index.html", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func seedUser(userService *services.UserService, cfg *config.Config) {
	user, created, err := userService.EnsureUser(cfg.SeedUserName, cfg.SeedUserEmail, cfg.SeedUserPassword)
	if err != nil {
		log.Fatal("Failed to seed user:", err)
	}
	if created {
		log.Printf("Seeded user %s (id=%d)", user.Email, user.ID)
	}
}

func warnInsecureDefaults(cfg *config.Config) {
	for _, name := range cfg.DefaultSecrets() {
		log.Printf("WARNING: %s is not set, falling back to a built-in value", name)
	}
	if !cfg.SecureCookies {
		log.Printf("WARNING: SESSION_COOKIE_SECURE is off, session cookies are sent over plain HTTP")
	}
}
