package repository

import (
	"context"
	"errors"

	"gig-connect/internal/database"
	"gig-connect/internal/domain/worker"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrWorkerNotFound = errors.New("worker not found")

type WorkerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (worker.Profile, error)
}

type PostgresWorkerRepository struct {
	db database.DB
}

func NewPostgresWorkerRepository(db database.DB) *PostgresWorkerRepository {
	return &PostgresWorkerRepository{db: db}
}

func (r *PostgresWorkerRepository) FindByID(ctx context.Context, id uuid.UUID) (worker.Profile, error) {
	var p worker.Profile
	row := r.db.QueryRow(ctx,
		`SELECT id, COALESCE(name, ''), COALESCE(address, ''),
		        COALESCE(skills, '{}'), COALESCE(experience, ''),
		        salary_preference, created_at
		 FROM workers
		 WHERE id = $1`,
		id,
	)
	if err := row.Scan(
		&p.ID, &p.Name, &p.Address,
		&p.Skills, &p.Experience,
		&p.SalaryPreference, &p.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worker.Profile{}, ErrWorkerNotFound
		}
		return worker.Profile{}, err
	}
	return p, nil
}
