package postgres

import (
	"fmt"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"

	"github.com/trunghoangnt2003/memory/internal/config"
	"github.com/trunghoangnt2003/memory/internal/logger"
)

// Container bundles the repositories behind one injection point. It is
// read-only after construction and safe for concurrent use.
type Container struct {
	db          *gorm.DB
	log         *log.Logger
	configRepo  ConfigRepository
	eventRepo   EventRepository
	galleryRepo GalleryRepository
}

// NewContainer connects to the database, runs migrations and initializes all
// repositories.
func NewContainer(cfg *config.Config) (*Container, error) {
	log := logger.Repository("postgres_container")
	log.Info("Initializing PostgreSQL repository container...")

	db, err := Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	container := NewContainerWithDB(db)

	if err := container.Health(); err != nil {
		return nil, fmt.Errorf("container health check failed: %w", err)
	}

	log.Info("PostgreSQL repository container initialized successfully")
	return container, nil
}

// NewContainerWithDB creates a container with an existing database connection
func NewContainerWithDB(db *gorm.DB) *Container {
	return &Container{
		db:          db,
		log:         logger.Repository("postgres_container"),
		configRepo:  NewPostgresConfigRepository(db),
		eventRepo:   NewPostgresEventRepository(db),
		galleryRepo: NewPostgresGalleryRepository(db),
	}
}

// Config returns the couple configuration repository
func (c *Container) Config() ConfigRepository {
	return c.configRepo
}

// Events returns the event repository
func (c *Container) Events() EventRepository {
	return c.eventRepo
}

// Gallery returns the gallery repository
func (c *Container) Gallery() GalleryRepository {
	return c.galleryRepo
}

// Health performs a health check on the database connection and tables
func (c *Container) Health() error {
	if err := HealthCheck(c.db); err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}

	for _, table := range []string{"config", "events", "gallery"} {
		var count int64
		if err := c.db.Table(table).Count(&count).Error; err != nil {
			return fmt.Errorf("table %s health check failed: %w", table, err)
		}
	}

	return nil
}

// Close closes the underlying database connection
func (c *Container) Close() error {
	if c.db == nil {
		return nil
	}

	if err := Close(c.db); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	c.db = nil
	return nil
}

// GetDB returns the underlying database connection (for advanced usage)
func (c *Container) GetDB() *gorm.DB {
	return c.db
}
