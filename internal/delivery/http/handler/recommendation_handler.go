package handler

import (
	"errors"

	"gig-connect/internal/delivery/http/dto"
	"gig-connect/internal/delivery/http/middleware"
	"gig-connect/internal/pkg/response"
	"gig-connect/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/jobs")
	grp.Get("/recommendations", h.GetRecommendations)
	grp.Post("/recommendations", h.GetRecommendations)
}

func (h *RecommendationHandler) GetRecommendations(c fiber.Ctx) error {
	workerID, ok := c.Locals(middleware.CtxWorkerIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	// A body that does not parse is the same as no override at all.
	var req dto.RecommendationRequest
	if len(c.Body()) > 0 {
		if err := c.Bind().Body(&req); err != nil {
			req = dto.RecommendationRequest{}
		}
	}

	items, err := h.uc.GetRecommendations(c.Context(), workerID, usecase.SalaryOverrideParams{
		Preference: req.SalaryPreference,
		Min:        req.SalaryMin,
		Max:        req.SalaryMax,
	})
	if err != nil {
		return mapRecommendationError(err)
	}

	out := make([]dto.RecommendationItem, 0, len(items))
	for _, it := range items {
		var salary *dto.SalaryRangeResponse
		if it.Job.SalaryMin != nil {
			sr := dto.SalaryRangeResponse{Min: *it.Job.SalaryMin}
			if it.Job.SalaryMax != nil {
				sr.Max = *it.Job.SalaryMax
			} else {
				sr.Max = *it.Job.SalaryMin
			}
			salary = &sr
		}
		out = append(out, dto.RecommendationItem{
			Job: dto.JobResponse{
				ID:             it.Job.ID,
				Title:          it.Job.Title,
				Description:    it.Job.Description,
				Location:       it.Job.Location,
				RequiredSkills: it.Job.RequiredSkills,
				Experience:     it.Job.Experience,
				SalaryRange:    salary,
			},
			Score:        it.Score,
			ScorePercent: it.ScorePercent,
			Components: dto.ComponentBreakdown{
				Skills:     it.Components.Skills,
				TFIDF:      it.Components.TFIDF,
				Experience: it.Components.Experience,
				Location:   it.Components.Location,
				Salary:     it.Components.Salary,
			},
		})
	}

	return c.Status(fiber.StatusOK).JSON(dto.RecommendationListResponse{
		Success:     true,
		Recommended: out,
	})
}

func mapRecommendationError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", err)
	case errors.Is(err, usecase.ErrWorkerNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Worker not found", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}
