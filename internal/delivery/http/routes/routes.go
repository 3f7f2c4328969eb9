package routes

import (
	"gig-connect/internal/delivery/http/handler"
	"gig-connect/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health         *handler.HealthHandler
	recommendation *handler.RecommendationHandler
	auth           *middleware.AuthMiddleware
}

func NewRegistry(recommendation *handler.RecommendationHandler, auth *middleware.AuthMiddleware) *Registry {
	return &Registry{
		health:         handler.NewHealthHandler(),
		recommendation: recommendation,
		auth:           auth,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	v1 := api.Group("/v1")
	if r.auth != nil {
		v1 = v1.Group("", r.auth.Middleware())
	}
	r.recommendation.RegisterRoutes(v1)
}
