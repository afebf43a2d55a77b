package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

// Create inserts a posting. The identifier is generated here; callers get
// it back on the passed struct.
func (r *jobRepo) Create(ctx context.Context, job *domain.JobPosting) error {
	query := `INSERT INTO jobs (id, hr_email, company, title, company_logo, details, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	now := time.Now()
	job.ID = uuid.NewString()
	job.CreatedAt = now
	job.UpdatedAt = now

	_, err := r.db.Exec(ctx, query,
		job.ID, job.HrEmail, job.Company, job.Title, job.CompanyLogo,
		job.Details, job.CreatedAt, job.UpdatedAt,
	)
	return err
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*domain.JobPosting, error) {
	query := `SELECT id, hr_email, company, title, company_logo, details, created_at, updated_at
              FROM jobs WHERE id = $1`

	var job domain.JobPosting
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.HrEmail, &job.Company, &job.Title, &job.CompanyLogo,
		&job.Details, &job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

// Fetch lists postings, optionally restricted to one owner's hr_email.
func (r *jobRepo) Fetch(ctx context.Context, hrEmail string) ([]domain.JobPosting, error) {
	query := `SELECT id, hr_email, company, title, company_logo, details, created_at, updated_at
              FROM jobs`
	args := []interface{}{}
	if hrEmail != "" {
		query += ` WHERE hr_email = $1`
		args = append(args, hrEmail)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.JobPosting
	for rows.Next() {
		var job domain.JobPosting
		if err := rows.Scan(
			&job.ID, &job.HrEmail, &job.Company, &job.Title, &job.CompanyLogo,
			&job.Details, &job.CreatedAt, &job.UpdatedAt,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}
