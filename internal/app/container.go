package app

import (
	"context"
	"time"

	"gig-connect/internal/config"
	"gig-connect/internal/database"
	dbpostgres "gig-connect/internal/database/postgres"
	"gig-connect/internal/infrastructure/cache"
	"gig-connect/internal/pkg/jwt"
	"gig-connect/internal/pkg/logging"
)

type Container struct {
	Config config.Config
	Logger *logging.Logger
	DB     database.DB
	Cache  *cache.Redis
	JWT    jwt.Service
}

func NewContainer(cfg config.Config, logger *logging.Logger) (*Container, error) {
	if logger == nil {
		logger = logging.Nop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	return &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  cache.NewRedis(cfg.Redis, logger),
		JWT:    jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiresIn),
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
