package dto

import "github.com/google/uuid"

// RecommendationRequest is the optional per-call salary override. All
// fields may be absent; a body that fails to parse is treated as empty.
type RecommendationRequest struct {
	SalaryPreference *float64 `json:"salaryPreference"`
	SalaryMin        *float64 `json:"salaryMin"`
	SalaryMax        *float64 `json:"salaryMax"`
}

type RecommendationListResponse struct {
	Success     bool                 `json:"success"`
	Recommended []RecommendationItem `json:"recommended"`
}

type RecommendationItem struct {
	Job          JobResponse        `json:"job"`
	Score        float64            `json:"score"`
	ScorePercent int                `json:"scorePercent"`
	Components   ComponentBreakdown `json:"components"`
}

type JobResponse struct {
	ID             uuid.UUID            `json:"id"`
	Title          string               `json:"title"`
	Description    string               `json:"description"`
	Location       string               `json:"location"`
	RequiredSkills []string             `json:"requiredSkills"`
	Experience     string               `json:"experience,omitempty"`
	SalaryRange    *SalaryRangeResponse `json:"salaryRange,omitempty"`
}

type SalaryRangeResponse struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ComponentBreakdown keeps the short field names the marketplace clients
// already consume.
type ComponentBreakdown struct {
	Skills     float64 `json:"skills"`
	TFIDF      float64 `json:"tfidf"`
	Experience float64 `json:"exp"`
	Location   float64 `json:"loc"`
	Salary     float64 `json:"sal"`
}
