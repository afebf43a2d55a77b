package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo domain.JobRepository
}

func NewJobUsecase(jobRepo domain.JobRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo}
}

// CreateJob persists the posting exactly as submitted. There is no field
// validation here on purpose: the HR payload is stored as-is and postings
// are immutable afterwards.
func (u *jobUsecase) CreateJob(ctx context.Context, job *domain.JobPosting) (string, error) {
	if err := u.jobRepo.Create(ctx, job); err != nil {
		return "", storeError(err)
	}
	return job.ID, nil
}

func (u *jobUsecase) GetJobDetails(ctx context.Context, id string) (*domain.JobPosting, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, storeError(err)
	}
	return job, nil
}

// ListJobs returns all postings, or only those owned by hrEmail when given.
func (u *jobUsecase) ListJobs(ctx context.Context, hrEmail string) ([]domain.JobPosting, error) {
	jobs, err := u.jobRepo.Fetch(ctx, hrEmail)
	if err != nil {
		return nil, storeError(err)
	}
	return jobs, nil
}

// storeError maps persistence failures onto the error taxonomy. A deadline
// expiry surfaces as its own class so callers can tell it from a broken
// store.
func storeError(err error) *apperror.AppError {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperror.Timeout("Store call exceeded the request deadline", err)
	}
	return apperror.Internal(err)
}
