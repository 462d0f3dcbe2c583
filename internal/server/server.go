package server

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hazelkitchen/recipebook/backend/config"
	"github.com/hazelkitchen/recipebook/backend/internal/api"
	"github.com/hazelkitchen/recipebook/backend/internal/database"
	"github.com/hazelkitchen/recipebook/backend/internal/middleware"
	"github.com/hazelkitchen/recipebook/backend/internal/repository"
	"github.com/hazelkitchen/recipebook/backend/internal/router"
	"github.com/hazelkitchen/recipebook/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	engine *gin.Engine
	http   *http.Server
}

// New wires the configured store, repository, services and routes into a
// ready-to-start server.
func New(cfg *config.Config) (*Server, error) {
	repo, err := repository.FromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("building repository: %w", err)
	}

	images, err := buildImageStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("building image store: %w", err)
	}

	var guards []gin.HandlerFunc
	var authHandler *api.AuthHandler

	if cfg.AdminAuthEnabled() {
		authService := service.NewAuthService(
			cfg.AdminUsername, cfg.AdminPasswordHash, cfg.JWTSecret, cfg.TokenTTL,
		)
		authHandler = api.NewAuthHandler(authService)
		guards = append(guards, middleware.AuthMiddleware(authService))
	}

	if cfg.RateLimitEnabled() {
		redisClient, err := database.NewRedisClient(cfg)
		if err != nil {
			return nil, fmt.Errorf("connecting to redis: %w", err)
		}
		guards = append(guards, middleware.NewAdminRateLimiter(redisClient).RateLimitMiddleware())
	}

	engine := router.SetupRouter(
		api.NewRecipeHandler(repo, images),
		api.NewUploadsHandler(cfg.UploadDir),
		authHandler,
		guards,
		cfg.AllowedOrigins,
	)

	return &Server{
		engine: engine,
		http: &http.Server{
			Addr:    net.JoinHostPort(cfg.ServerHost, cfg.ServerPort),
			Handler: engine,
		},
	}, nil
}

func buildImageStore(cfg *config.Config) (service.ImageStore, error) {
	switch cfg.ImageBackend {
	case "s3":
		s3cfg, err := config.NewS3Config(context.Background(), cfg)
		if err != nil {
			return nil, err
		}
		return service.NewS3ImageStore(s3cfg), nil
	default:
		return service.NewLocalImageStore(cfg.UploadDir), nil
	}
}

// Start runs the server until Shutdown is called.
func (s *Server) Start() error {
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
