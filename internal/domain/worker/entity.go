package worker

import (
	"time"

	"github.com/google/uuid"
)

// Profile is a worker's stored profile snapshot.
type Profile struct {
	ID               uuid.UUID
	Name             string
	Address          string
	Skills           []string
	Experience       string
	SalaryPreference *float64
	CreatedAt        time.Time
}
