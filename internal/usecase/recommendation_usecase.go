package usecase

import (
	"context"
	"errors"

	"gig-connect/internal/domain/job"
	"gig-connect/internal/domain/recommend"
	"gig-connect/internal/pkg/logging"
	"gig-connect/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrWorkerNotFound = errors.New("worker not found")
	ErrInternal       = errors.New("internal error")
)

// SalaryOverrideParams is the optional per-request salary preference. A
// malformed override never fails the request; it is dropped and
// resolution falls through to the profile default.
type SalaryOverrideParams struct {
	Preference *float64
	Min        *float64
	Max        *float64
}

type RecommendationItem struct {
	Job          job.Posting
	Score        float64
	ScorePercent int
	Components   recommend.Components
}

type RecommendationUsecase interface {
	GetRecommendations(ctx context.Context, workerID uuid.UUID, override SalaryOverrideParams) ([]RecommendationItem, error)
}

type Recommendation struct {
	workers repository.WorkerRepository
	jobs    repository.JobRepository
	cache   JobsSnapshotCache
	logger  *logging.Logger

	weights recommend.Weights
	topK    int
}

func NewRecommendationUsecase(workers repository.WorkerRepository, jobs repository.JobRepository, cache JobsSnapshotCache, logger *logging.Logger) *Recommendation {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Recommendation{
		workers: workers,
		jobs:    jobs,
		cache:   cache,
		logger:  logger,
		weights: recommend.DefaultWeights(),
		topK:    recommend.DefaultTopK,
	}
}

func (u *Recommendation) GetRecommendations(ctx context.Context, workerID uuid.UUID, override SalaryOverrideParams) ([]RecommendationItem, error) {
	if workerID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	profile, err := u.workers.FindByID(ctx, workerID)
	if err != nil {
		if errors.Is(err, repository.ErrWorkerNotFound) {
			return nil, ErrWorkerNotFound
		}
		u.logger.Error("worker lookup failed", "worker_id", workerID, "error", err)
		return nil, ErrInternal
	}

	postings, err := u.activeJobs(ctx)
	if err != nil {
		u.logger.Error("active jobs fetch failed", "error", err)
		return nil, ErrInternal
	}
	if len(postings) == 0 {
		return []RecommendationItem{}, nil
	}

	engineJobs := make([]recommend.Job, 0, len(postings))
	for _, p := range postings {
		var salary *recommend.SalaryRange
		if p.SalaryMin != nil {
			r := recommend.SalaryRange{Min: *p.SalaryMin}
			if p.SalaryMax != nil {
				r.Max = *p.SalaryMax
			} else {
				r.Max = *p.SalaryMin
			}
			salary = &r
		}
		engineJobs = append(engineJobs, recommend.Job{
			Title:          p.Title,
			Description:    p.Description,
			Location:       p.Location,
			ExperienceText: p.Experience,
			Skills:         p.RequiredSkills,
			Salary:         salary,
		})
	}

	engineWorker := recommend.Worker{
		Name:             profile.Name,
		Address:          profile.Address,
		ExperienceText:   profile.Experience,
		Skills:           profile.Skills,
		SalaryPreference: profile.SalaryPreference,
	}

	results, err := recommend.Rank(ctx, engineWorker, engineJobs, sanitizeOverride(override), u.weights, u.topK)
	if err != nil {
		u.logger.Error("recommendation ranking failed", "worker_id", workerID, "error", err)
		return nil, ErrInternal
	}

	out := make([]RecommendationItem, 0, len(results))
	for _, r := range results {
		out = append(out, RecommendationItem{
			Job:          postings[r.JobIndex],
			Score:        r.Score,
			ScorePercent: r.ScorePercent,
			Components:   r.Components,
		})
	}
	return out, nil
}

func (u *Recommendation) activeJobs(ctx context.Context) ([]job.Posting, error) {
	if u.cache != nil {
		var cached []job.Posting
		hit, err := u.cache.GetJSON(ctx, activeJobsCacheKey, &cached)
		if err != nil {
			u.logger.Warn("jobs snapshot cache read failed", "error", err)
		}
		if hit {
			return cached, nil
		}
	}

	postings, err := u.jobs.ListActiveJobs(ctx)
	if err != nil {
		return nil, err
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, activeJobsCacheKey, postings, activeJobsCacheTTL); err != nil {
			u.logger.Warn("jobs snapshot cache write failed", "error", err)
		}
	}
	return postings, nil
}

// sanitizeOverride drops an inconsistent range instead of erroring; the
// next source in the resolution order takes over.
func sanitizeOverride(o SalaryOverrideParams) recommend.SalaryOverride {
	if o.Min != nil && o.Max != nil && *o.Min > *o.Max {
		o.Min, o.Max = nil, nil
	}
	return recommend.SalaryOverride{
		Preference: o.Preference,
		Min:        o.Min,
		Max:        o.Max,
	}
}
