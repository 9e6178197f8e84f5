package container

import (
	"context"
	"fmt"
	"time"

	"github.com/gdugdh24/roommate-backend/internal/config"
	"github.com/gdugdh24/roommate-backend/internal/delivery/http"
	"github.com/gdugdh24/roommate-backend/internal/delivery/http/handler"
	"github.com/gdugdh24/roommate-backend/internal/delivery/http/middleware"
	"github.com/gdugdh24/roommate-backend/internal/infrastructure/database"
	"github.com/gdugdh24/roommate-backend/internal/infrastructure/server"
	"github.com/gdugdh24/roommate-backend/internal/repository"
	"github.com/gdugdh24/roommate-backend/internal/repository/cache"
	"github.com/gdugdh24/roommate-backend/internal/repository/memory"
	"github.com/gdugdh24/roommate-backend/internal/repository/postgres"
	"github.com/gdugdh24/roommate-backend/internal/usecase/auth"
	"github.com/gdugdh24/roommate-backend/internal/usecase/message"
	"github.com/gdugdh24/roommate-backend/internal/usecase/profile"
	"github.com/gdugdh24/roommate-backend/internal/usecase/search"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *zap.Logger
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
}

// NewContainer creates a new dependency injection container
func NewContainer(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Container, error) {
	c := &Container{
		Config: cfg,
		Logger: logger,
	}

	// Initialize repositories
	var (
		profileRepo repository.ProfileRepository
		messageRepo repository.MessageRepository
	)
	switch cfg.Storage.Type {
	case config.StoragePostgres:
		db, err := database.NewPostgresDB(ctx, &cfg.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		c.DB = db

		if cfg.Database.AutoMigrate {
			migrateCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
			err := database.Migrate(migrateCtx, db)
			cancel()
			if err != nil {
				_ = c.Close()
				return nil, err
			}
		}

		profileRepo = postgres.NewProfileRepository(db)
		messageRepo = postgres.NewMessageRepository(db)
	default:
		logger.Warn("using in-memory storage; data is lost on restart")
		profileRepo = memory.NewProfileRepository()
		messageRepo = memory.NewMessageRepository()
	}

	// Initialize Redis profile cache
	if cfg.Redis.Enabled() {
		redisClient, err := database.NewRedisClient(ctx, &cfg.Redis, logger)
		if err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("failed to initialize redis: %w", err)
		}
		c.Redis = redisClient
		profileRepo = cache.NewProfileRepository(profileRepo, redisClient, cfg.Redis.ProfileTTL, logger)
	}

	// Initialize use cases
	tokenUseCase := auth.NewTokenUseCase(
		cfg.JWT.AccessSecret,
		time.Duration(cfg.JWT.AccessExpiryMin)*time.Minute,
	)
	profileUseCase := profile.NewProfileUseCase(profileRepo, logger)
	searchUseCase := search.NewSearchUseCase(profileRepo, cfg.Search, logger)
	messageUseCase := message.NewMessageUseCase(messageRepo, profileRepo, logger)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(tokenUseCase, profileUseCase)
	profileHandler := handler.NewProfileHandler(profileUseCase)
	searchHandler := handler.NewSearchHandler(searchUseCase)
	messageHandler := handler.NewMessageHandler(messageUseCase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(tokenUseCase)

	// Initialize router
	router := http.NewRouter(
		authHandler,
		profileHandler,
		searchHandler,
		messageHandler,
		authMiddleware,
		logger,
	)

	c.Server = server.NewServer(&cfg.Server, router.Setup(), logger)

	logger.Info("container initialized",
		zap.String("storage", cfg.Storage.Type),
		zap.Bool("redis_cache", c.Redis != nil),
	)
	return c, nil
}

// Close closes all connections
func (c *Container) Close() error {
	// Close Redis
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Logger.Error("error closing redis", zap.Error(err))
		}
	}

	// Close database
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
