package repository

import (
	"context"

	"gig-connect/internal/database"
	"gig-connect/internal/domain/job"
)

type JobRepository interface {
	ListActiveJobs(ctx context.Context) ([]job.Posting, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) ListActiveJobs(ctx context.Context) ([]job.Posting, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, COALESCE(title, ''), COALESCE(description, ''), COALESCE(location, ''),
		        COALESCE(required_skills, '{}'), COALESCE(experience, ''),
		        salary_min, salary_max, created_at
		 FROM jobs
		 WHERE status = $1
		 ORDER BY created_at DESC, id`,
		string(job.StatusActive),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Posting, 0)
	for rows.Next() {
		p := job.Posting{Status: job.StatusActive}
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.Location,
			&p.RequiredSkills, &p.Experience,
			&p.SalaryMin, &p.SalaryMax, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
