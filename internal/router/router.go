package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/hazelkitchen/recipebook/backend/internal/api"
)

// SetupRouter configures the application routes. authHandler may be nil (no
// admin auth configured); guards are applied to the mutating recipe routes.
func SetupRouter(
	recipeHandler *api.RecipeHandler,
	uploadsHandler *api.UploadsHandler,
	authHandler *api.AuthHandler,
	guards []gin.HandlerFunc,
	allowedOrigins []string,
) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Uploads stay at the root so stored /uploads/... URLs resolve
	uploadsHandler.RegisterRoutes(router)

	v1 := router.Group("/api/v1")
	v1.GET("/health", api.HealthCheck)

	if authHandler != nil {
		authHandler.RegisterRoutes(v1)
	}
	recipeHandler.RegisterRoutes(v1, guards...)

	return router
}
