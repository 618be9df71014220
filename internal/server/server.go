package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/trunghoangnt2003/memory/internal/config"
	"github.com/trunghoangnt2003/memory/internal/geocode"
	"github.com/trunghoangnt2003/memory/internal/handlers"
	"github.com/trunghoangnt2003/memory/internal/logger"
	"github.com/trunghoangnt2003/memory/internal/middleware/requestlog"
	"github.com/trunghoangnt2003/memory/internal/services"
	"github.com/trunghoangnt2003/memory/internal/storage/objectstore"
	"github.com/trunghoangnt2003/memory/internal/storage/postgres"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	config     *config.Config
	container  *postgres.Container
	uploader   objectstore.Uploader
}

// New creates a new server instance
func New(cfg *config.Config, container *postgres.Container, uploader objectstore.Uploader) *Server {
	return &Server{
		config:    cfg,
		container: container,
		uploader:  uploader,
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	router := s.setupRouter()

	s.httpServer = &http.Server{
		Addr:    ":" + s.config.Server.Port,
		Handler: router,

		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Get().Info("Starting HTTP server", "port", s.config.Server.Port)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	logger.Get().Info("Shutting down HTTP server...")

	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}

	return nil
}

// setupRouter configures the HTTP router with middleware and routes
func (s *Server) setupRouter() *gin.Engine {
	if s.config.Server.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(requestlog.New())
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if s.config.CORS.AllowOrigins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(s.config.CORS.AllowOrigins, ",")
		corsConfig.AllowCredentials = true
	}
	corsConfig.AllowMethods = strings.Split(s.config.CORS.AllowMethods, ",")
	corsConfig.AllowHeaders = strings.Split(s.config.CORS.AllowHeaders, ",")
	router.Use(cors.New(corsConfig))

	// Services
	configService := services.NewConfigService(s.container.Config(), s.uploader)
	eventService := services.NewEventService(s.container.Events(), s.uploader)
	galleryService := services.NewGalleryService(s.container.Gallery(), s.uploader)
	geocodeClient := geocode.NewClient(s.config)

	// Handlers
	maxFileSize := s.config.Upload.MaxFileSize
	configHandler := handlers.NewConfigHandler(configService, maxFileSize)
	eventHandler := handlers.NewEventHandler(eventService, maxFileSize)
	galleryHandler := handlers.NewGalleryHandler(galleryService, maxFileSize)
	locationHandler := handlers.NewLocationHandler(geocodeClient)

	// Health check
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Memory API is running",
			"status":  "healthy",
		})
	})

	s.setupAPIRoutes(router, configHandler, eventHandler, galleryHandler, locationHandler)

	return router
}

// setupAPIRoutes configures all API routes
func (s *Server) setupAPIRoutes(
	router *gin.Engine,
	configHandler *handlers.ConfigHandler,
	eventHandler *handlers.EventHandler,
	galleryHandler *handlers.GalleryHandler,
	locationHandler *handlers.LocationHandler,
) {
	api := router.Group("/api")
	{
		configGroup := api.Group("/config")
		{
			configGroup.GET("", configHandler.GetConfig)
			configGroup.PUT("", configHandler.SaveConfig)
			configGroup.GET("/elapsed", configHandler.GetElapsed)
		}

		events := api.Group("/events")
		{
			events.GET("", eventHandler.GetAllEvents)
			events.POST("", eventHandler.CreateEvent)
			events.GET("/:id", eventHandler.GetEvent)
			events.PUT("/:id", eventHandler.UpdateEvent)
			events.DELETE("/:id", eventHandler.DeleteEvent)
		}

		galleryGroup := api.Group("/gallery")
		{
			galleryGroup.GET("", galleryHandler.GetAllImages)
			galleryGroup.POST("", galleryHandler.AddImage)
			galleryGroup.POST("/batch", galleryHandler.AddImages)
			galleryGroup.GET("/:id", galleryHandler.GetImage)
			galleryGroup.PATCH("/:id", galleryHandler.UpdateCaption)
			galleryGroup.DELETE("/:id", galleryHandler.DeleteImage)
		}

		locations := api.Group("/locations")
		{
			locations.GET("/search", locationHandler.SearchLocations)
		}
	}
}
