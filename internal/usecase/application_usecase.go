package usecase

import (
	"context"
	"errors"
	"sync"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/security"

	"golang.org/x/sync/errgroup"
)

// enrichConcurrency bounds the fan-out of job lookups per request.
const enrichConcurrency = 8

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
	audit           *security.AuditLogger
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(
	appRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	audit *security.AuditLogger,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: appRepo,
		jobRepo:         jobRepo,
		audit:           audit,
	}
}

// SubmitApplication creates an application. The job reference is validated
// eagerly: a submission against a posting that does not exist is rejected
// rather than stored dangling. Nothing prevents the posting from vanishing
// later, which is why the enrichment join still guards dangling references.
func (uc *applicationUsecase) SubmitApplication(ctx context.Context, app *domain.Application) (string, error) {
	if _, err := uc.jobRepo.GetByID(ctx, app.JobID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", apperror.NotFound("Job not found")
		}
		return "", storeError(err)
	}

	if app.Status == "" {
		app.Status = domain.ApplicationStatusPending
	}

	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		return "", storeError(err)
	}
	return app.ID, nil
}

// ListByJob returns all applications submitted against one posting.
func (uc *applicationUsecase) ListByJob(ctx context.Context, jobID string) ([]domain.Application, error) {
	applications, err := uc.applicationRepo.GetByJobID(ctx, jobID)
	if err != nil {
		return nil, storeError(err)
	}
	return applications, nil
}

// ListForApplicant returns the caller's applications enriched with display
// fields from each parent posting. The requested email must equal the email
// inside the verified credential: the claims carried in ctx are the sole
// authorization basis, never the request parameter alone.
func (uc *applicationUsecase) ListForApplicant(ctx context.Context, email string) ([]domain.Application, error) {
	claims, ok := domain.ClaimsFromContext(ctx)
	if !ok {
		// Fail safe: a request that never passed the gate gets nothing
		return nil, apperror.Unauthorized("Unauthorized access")
	}
	if claims.Email != email {
		uc.audit.Log(security.Event{
			Event:   security.EventOwnershipDenied,
			Email:   claims.Email,
			Details: map[string]interface{}{"requested_email": email},
		})
		return nil, apperror.Forbidden("Forbidden access")
	}

	applications, err := uc.applicationRepo.GetByApplicant(ctx, email)
	if err != nil {
		return nil, storeError(err)
	}

	if err := uc.enrich(ctx, applications); err != nil {
		return nil, err
	}
	return applications, nil
}

// UpdateApplicationStatus sets the status field and nothing else. The value
// is an open enumeration: any non-empty string is accepted, matching the
// absence of transition rules in this product.
func (uc *applicationUsecase) UpdateApplicationStatus(ctx context.Context, id string, status string) error {
	if status == "" {
		return apperror.BadRequest("Status is required")
	}

	if err := uc.applicationRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Application not found")
		}
		return storeError(err)
	}
	return nil
}

// enrich copies company, title and company_logo from each referenced
// posting onto the applications in place. Lookups fan out concurrently over
// the distinct job IDs and results are stitched back in listing order. A
// dangling job_id flags the record instead of failing the request; any
// store error fails the whole request - no partial enrichment is returned.
func (uc *applicationUsecase) enrich(ctx context.Context, applications []domain.Application) error {
	if len(applications) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(applications))
	ids := make([]string, 0, len(applications))
	for i := range applications {
		if _, ok := seen[applications[i].JobID]; ok {
			continue
		}
		seen[applications[i].JobID] = struct{}{}
		ids = append(ids, applications[i].JobID)
	}

	jobs := make(map[string]*domain.JobPosting, len(ids))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichConcurrency)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			job, err := uc.jobRepo.GetByID(gctx, id)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					// Dangling reference; the record gets flagged below
					return nil
				}
				return err
			}
			mu.Lock()
			jobs[id] = job
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return storeError(err)
	}

	for i := range applications {
		job, ok := jobs[applications[i].JobID]
		if !ok {
			applications[i].JobMissing = true
			continue
		}
		applications[i].Company = job.Company
		applications[i].Title = job.Title
		applications[i].CompanyLogo = job.CompanyLogo
	}
	return nil
}
