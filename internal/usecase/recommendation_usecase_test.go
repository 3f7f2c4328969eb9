package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"

	"gig-connect/internal/domain/job"
	"gig-connect/internal/domain/worker"
	"gig-connect/internal/repository"

	"github.com/google/uuid"
)

type mockWorkerRepo struct {
	profile worker.Profile
	err     error
}

func (m mockWorkerRepo) FindByID(context.Context, uuid.UUID) (worker.Profile, error) {
	return m.profile, m.err
}

type mockJobRepo struct {
	postings []job.Posting
	err      error
	calls    int
}

func (m *mockJobRepo) ListActiveJobs(context.Context) ([]job.Posting, error) {
	m.calls++
	return m.postings, m.err
}

type fakeCache struct {
	store map[string][]byte
	sets  int
}

func newFakeCache() *fakeCache { return &fakeCache{store: map[string][]byte{}} }

func (c *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.store[key] = b
	c.sets++
	return nil
}

func fptr(v float64) *float64 { return &v }

func testProfile() worker.Profile {
	return worker.Profile{
		ID:         uuid.New(),
		Name:       "Ravi",
		Address:    "Mumbai",
		Skills:     []string{"Plumbing"},
		Experience: "5 years",
	}
}

func testPostings() []job.Posting {
	return []job.Posting{
		{ID: uuid.New(), Title: "Plumber", Location: "Mumbai", RequiredSkills: []string{"Plumbing"}, Experience: "5+ years", SalaryMin: fptr(400), SalaryMax: fptr(600), Status: job.StatusActive},
		{ID: uuid.New(), Title: "Accountant", Location: "Delhi", RequiredSkills: []string{"Accounting"}, Experience: "3 years", Status: job.StatusActive},
		{ID: uuid.New(), Title: "Welder", Location: "Pune", RequiredSkills: []string{"Welding"}, Experience: "2 years", Status: job.StatusActive},
		{ID: uuid.New(), Title: "Electrician", Location: "Mumbai", RequiredSkills: []string{"Electrical"}, Experience: "4 years", Status: job.StatusActive},
	}
}

func TestGetRecommendations_NilWorkerID(t *testing.T) {
	uc := NewRecommendationUsecase(mockWorkerRepo{}, &mockJobRepo{}, nil, nil)
	_, err := uc.GetRecommendations(context.Background(), uuid.Nil, SalaryOverrideParams{})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestGetRecommendations_WorkerNotFound(t *testing.T) {
	uc := NewRecommendationUsecase(mockWorkerRepo{err: repository.ErrWorkerNotFound}, &mockJobRepo{}, nil, nil)
	_, err := uc.GetRecommendations(context.Background(), uuid.New(), SalaryOverrideParams{})
	if !errors.Is(err, ErrWorkerNotFound) {
		t.Fatalf("expected ErrWorkerNotFound, got %v", err)
	}
}

func TestGetRecommendations_RepoFailureIsInternal(t *testing.T) {
	uc := NewRecommendationUsecase(mockWorkerRepo{profile: testProfile()}, &mockJobRepo{err: errors.New("connection reset")}, nil, nil)
	_, err := uc.GetRecommendations(context.Background(), uuid.New(), SalaryOverrideParams{})
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestGetRecommendations_NoActiveJobs(t *testing.T) {
	uc := NewRecommendationUsecase(mockWorkerRepo{profile: testProfile()}, &mockJobRepo{}, nil, nil)
	items, err := uc.GetRecommendations(context.Background(), uuid.New(), SalaryOverrideParams{})
	if err != nil {
		t.Fatalf("zero active jobs must not be an error, got %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty recommendations, got %d", len(items))
	}
}

func TestGetRecommendations_TopThree(t *testing.T) {
	jobs := &mockJobRepo{postings: testPostings()}
	uc := NewRecommendationUsecase(mockWorkerRepo{profile: testProfile()}, jobs, nil, nil)

	items, err := uc.GetRecommendations(context.Background(), uuid.New(), SalaryOverrideParams{Preference: fptr(500)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 recommendations from 4 postings, got %d", len(items))
	}
	if items[0].Job.Title != "Plumber" {
		t.Fatalf("expected the plumber job first, got %q", items[0].Job.Title)
	}
	if items[0].Components.Skills != 1 {
		t.Fatalf("expected skills component 1, got %v", items[0].Components.Skills)
	}
	for i := 1; i < len(items); i++ {
		if items[i].Score > items[i-1].Score {
			t.Fatalf("recommendations not sorted descending at %d", i)
		}
	}
}

func TestGetRecommendations_MalformedOverrideIgnored(t *testing.T) {
	jobs := &mockJobRepo{postings: testPostings()}
	profile := testProfile()
	profile.SalaryPreference = fptr(500)
	uc := NewRecommendationUsecase(mockWorkerRepo{profile: profile}, jobs, nil, nil)

	// Min > max is inconsistent; resolution falls back to the profile.
	items, err := uc.GetRecommendations(context.Background(), uuid.New(), SalaryOverrideParams{Min: fptr(900), Max: fptr(100)})
	if err != nil {
		t.Fatalf("malformed override must not fail the request: %v", err)
	}
	if items[0].Components.Salary != 1 {
		t.Fatalf("expected profile preference 500 inside [400,600], got salary component %v", items[0].Components.Salary)
	}
}

func TestGetRecommendations_Deterministic(t *testing.T) {
	jobs := &mockJobRepo{postings: testPostings()}
	uc := NewRecommendationUsecase(mockWorkerRepo{profile: testProfile()}, jobs, nil, nil)

	a, err := uc.GetRecommendations(context.Background(), uuid.New(), SalaryOverrideParams{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := uc.GetRecommendations(context.Background(), uuid.New(), SalaryOverrideParams{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("identical inputs produced different recommendations")
	}
}

func TestGetRecommendations_SnapshotCache(t *testing.T) {
	jobs := &mockJobRepo{postings: testPostings()}
	cache := newFakeCache()
	uc := NewRecommendationUsecase(mockWorkerRepo{profile: testProfile()}, jobs, cache, nil)

	if _, err := uc.GetRecommendations(context.Background(), uuid.New(), SalaryOverrideParams{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if jobs.calls != 1 || cache.sets != 1 {
		t.Fatalf("expected one repo read and one cache write, got %d/%d", jobs.calls, cache.sets)
	}

	if _, err := uc.GetRecommendations(context.Background(), uuid.New(), SalaryOverrideParams{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if jobs.calls != 1 {
		t.Fatalf("expected the second fetch to hit the cache, repo reads: %d", jobs.calls)
	}
}
