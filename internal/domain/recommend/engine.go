package recommend

import (
	"context"
	"math"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// DefaultTopK is how many recommendations a ranking call returns at most.
const DefaultTopK = 3

// Worker is the profile snapshot a ranking call scores against. The
// engine never mutates it and holds no reference past the call.
type Worker struct {
	Name             string
	Address          string
	ExperienceText   string
	Skills           []string
	SalaryPreference *float64
}

// Job is one active posting. Optional fields stay nil/empty when the
// posting never declared them; every scorer has an explicit unknown branch.
type Job struct {
	Title          string
	Description    string
	Location       string
	ExperienceText string
	Skills         []string
	Salary         *SalaryRange
}

// Components is the per-factor breakdown of one job's score, each in [0,1].
type Components struct {
	Skills     float64
	TFIDF      float64
	Experience float64
	Location   float64
	Salary     float64
}

// Result is one ranked job. JobIndex addresses the jobs slice passed to
// Rank, so callers can map back to their own posting records.
type Result struct {
	JobIndex     int
	Score        float64
	ScorePercent int
	Components   Components
}

// Rank scores every job against the worker and returns the topK highest,
// sorted descending by score. Ties keep the original job order. The
// computation is pure: identical inputs produce identical output.
func Rank(ctx context.Context, worker Worker, jobs []Job, override SalaryOverride, weights Weights, topK int) ([]Result, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	if topK <= 0 {
		topK = DefaultTopK
	}
	if len(jobs) == 0 {
		return []Result{}, nil
	}

	// One corpus per call: job documents first, worker document last.
	docs := make([]string, 0, len(jobs)+1)
	for _, j := range jobs {
		docs = append(docs, NormalizeText(jobDocument(j)))
	}
	docs = append(docs, NormalizeText(workerDocument(worker)))
	vs := newVectorSpace(docs)
	workerDoc := len(jobs)

	pref := override.resolve(worker.SalaryPreference)

	// Per-job scoring is independent; each goroutine writes only its own
	// slot, so the fan-out stays deterministic.
	results := make([]Result, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			job := jobs[i]
			c := Components{
				Skills:     skillsScore(worker.Skills, job.Skills),
				TFIDF:      vs.cosine(i, workerDoc),
				Experience: experienceScore(worker.ExperienceText, job.ExperienceText),
				Location:   locationScore(worker.Address, job.Location),
				Salary:     salaryScore(pref, job.Salary),
			}

			score := weights.combine(c)
			results[i] = Result{
				JobIndex:     i,
				Score:        score,
				ScorePercent: int(math.Round(score * 100)),
				Components:   c,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Score > results[b].Score
	})

	if len(results) > topK {
		results = results[:topK]
	}
	return results, nil
}

func jobDocument(j Job) string {
	return strings.TrimSpace(j.Title + " " + j.Description + " " + strings.Join(j.Skills, " ") + " " + j.Location)
}

func workerDocument(w Worker) string {
	return strings.TrimSpace(strings.Join(w.Skills, " ") + " " + w.Address + " " + w.Name)
}
