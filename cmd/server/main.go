// @title           La Interior Backend API
// @version         1.0.0
// @description     Backend API for the La Interior room design assistant. This API handles user accounts, the interactive design session, AI wall-color detection and palette suggestions, debounced wall repainting, and saved projects.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"log"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"la-interior-backend/docs"
	"la-interior-backend/internal/auth"
	"la-interior-backend/internal/config"
	"la-interior-backend/internal/designai"
	"la-interior-backend/internal/handlers"
	"la-interior-backend/internal/middleware"
	"la-interior-backend/internal/store"
	"la-interior-backend/internal/workflow"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Update Swagger docs with dynamic base URL
	if cfg.BaseURL != "" {
		baseURL, err := url.Parse(cfg.BaseURL)
		if err == nil {
			docs.SwaggerInfo.Host = baseURL.Host
			if baseURL.Scheme == "https" {
				docs.SwaggerInfo.Schemes = []string{"https", "http"}
			} else {
				docs.SwaggerInfo.Schemes = []string{"http", "https"}
			}
		}
	}

	recordStore, err := store.New(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to initialize record store: %v", err)
	}

	aiClient := designai.NewClient(cfg.AIBaseURL, cfg.AIAPIKey, cfg.AIModel)
	sessions := workflow.NewManager(aiClient, cfg.RepaintDebounce, cfg.ProviderTimeout)
	authService := auth.NewService(recordStore, cfg.JWTSecret, cfg.TokenTTL)

	authHandler := handlers.NewAuthHandler(authService)
	profileHandler := handlers.NewProfileHandler(authService)
	sessionHandler := handlers.NewSessionHandler(sessions)
	projectsHandler := handlers.NewProjectsHandler(sessions, recordStore)
	inspirationHandler := handlers.NewInspirationHandler(aiClient)

	router := gin.Default()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", handlers.HealthHandler)

	router.POST("/api/v1/auth/register", authHandler.Register)
	router.POST("/api/v1/auth/login", authHandler.Login)

	api := router.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(cfg.JWTSecret))

	// Design session
	api.GET("/session", sessionHandler.GetSession)
	api.DELETE("/session", sessionHandler.ResetSession)
	api.POST("/session/photo", sessionHandler.SetPhoto)
	api.POST("/session/colors", sessionHandler.AddColor)
	api.PUT("/session/colors/active", sessionHandler.SelectActiveColor)
	api.DELETE("/session/colors/:hex", sessionHandler.RemoveColor)
	api.POST("/session/questionnaire", sessionHandler.SetQuestionnaire)

	// Suggestion providers
	api.POST("/session/suggest/detect", sessionHandler.DetectWallColors)
	api.POST("/session/suggest/palette", sessionHandler.GeneratePalette)
	api.POST("/session/suggest/preferences", sessionHandler.SuggestFromPreferences)
	api.POST("/session/suggest/complementary", sessionHandler.SuggestComplementary)
	api.POST("/session/suggest/sheen", sessionHandler.SuggestSheen)
	api.POST("/session/suggest/repaint", sessionHandler.Repaint)

	// Inspiration gallery
	api.POST("/inspiration", inspirationHandler.Generate)

	// Projects
	api.POST("/projects", projectsHandler.SaveProject)
	api.GET("/projects", projectsHandler.ListProjects)
	api.GET("/projects/:project_id", projectsHandler.GetProject)
	api.POST("/projects/:project_id/load", projectsHandler.LoadProject)
	api.DELETE("/projects/:project_id", projectsHandler.DeleteProject)

	// Profile
	api.GET("/profile", profileHandler.GetProfile)
	api.PUT("/profile", profileHandler.UpdateProfile)
	api.POST("/profile/password", profileHandler.UpdatePassword)
	api.POST("/profile/pin", profileHandler.UpdatePIN)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
