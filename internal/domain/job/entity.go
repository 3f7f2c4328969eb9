package job

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusActive Status = "active"
	StatusClosed Status = "closed"
)

// Posting is a job as the marketplace stores it. Employers leave many
// fields blank, so the optional ones stay pointers or empty strings.
type Posting struct {
	ID             uuid.UUID
	Title          string
	Description    string
	Location       string
	RequiredSkills []string
	Experience     string
	SalaryMin      *float64
	SalaryMax      *float64
	Status         Status
	CreatedAt      time.Time
}
