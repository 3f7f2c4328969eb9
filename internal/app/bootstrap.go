package app

import (
	"fmt"
	"strings"

	"gig-connect/internal/config"
	"gig-connect/internal/delivery/http/handler"
	"gig-connect/internal/delivery/http/middleware"
	"gig-connect/internal/delivery/http/routes"
	"gig-connect/internal/pkg/logging"
	"gig-connect/internal/repository"
	"gig-connect/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(cfg config.Config, logger *logging.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	accessLog := middleware.NewAccessLogMiddleware(c.Logger)
	errMw := middleware.NewErrorMiddleware(c.Logger)
	f.Use(accessLog.Middleware())
	f.Use(errMw.Middleware())

	recommendUC := usecase.NewRecommendationUsecase(
		repository.NewPostgresWorkerRepository(c.DB),
		repository.NewPostgresJobRepository(c.DB),
		c.Cache,
		c.Logger,
	)

	registry := routes.NewRegistry(
		handler.NewRecommendationHandler(recommendUC),
		middleware.NewAuthMiddleware(c.JWT),
	)
	registry.Register(f)

	return &App{Fiber: f, Container: c}, c.Close, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
