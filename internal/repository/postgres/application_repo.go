package postgres

import (
	"context"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// Create inserts a new application
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO applications (id, job_id, applicant, status, resume_url, cover_letter, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	now := time.Now()
	app.ID = uuid.NewString()
	app.CreatedAt = now
	app.UpdatedAt = now
	if app.Status == "" {
		app.Status = domain.ApplicationStatusPending
	}

	_, err := r.db.Exec(ctx, query,
		app.ID, app.JobID, app.Applicant, app.Status,
		app.ResumeURL, app.CoverLetter, app.CreatedAt, app.UpdatedAt,
	)
	return err
}

// GetByJobID retrieves all applications submitted against one posting
func (r *applicationRepo) GetByJobID(ctx context.Context, jobID string) ([]domain.Application, error) {
	query := `
		SELECT id, job_id, applicant, status, resume_url, cover_letter, created_at, updated_at
		FROM applications WHERE job_id = $1
		ORDER BY created_at DESC`

	return r.fetch(ctx, query, jobID)
}

// GetByApplicant retrieves all applications one applicant has submitted
func (r *applicationRepo) GetByApplicant(ctx context.Context, email string) ([]domain.Application, error) {
	query := `
		SELECT id, job_id, applicant, status, resume_url, cover_letter, created_at, updated_at
		FROM applications WHERE applicant = $1
		ORDER BY created_at DESC`

	return r.fetch(ctx, query, email)
}

func (r *applicationRepo) fetch(ctx context.Context, query string, arg interface{}) ([]domain.Application, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.JobID, &app.Applicant, &app.Status,
			&app.ResumeURL, &app.CoverLetter, &app.CreatedAt, &app.UpdatedAt,
		); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, rows.Err()
}

// UpdateStatus updates the status of an application and sets updated_at.
// Status is the only column this touches.
func (r *applicationRepo) UpdateStatus(ctx context.Context, id string, status string) error {
	query := `UPDATE applications SET status = $2, updated_at = $3 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
