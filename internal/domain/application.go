package domain

import (
	"context"
	"time"
)

// Canonical application status values. The status field is an open
// enumeration: these exist for defaults and display, they are not enforced
// and no transition rules apply.
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusReviewed = "reviewed"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

// Application is one submission against a JobPosting. Status is the only
// field that may change after creation.
type Application struct {
	ID          string    `json:"id"`
	JobID       string    `json:"job_id"`
	Applicant   string    `json:"applicant"`
	Status      string    `json:"status"`
	ResumeURL   string    `json:"resume_url,omitempty"`
	CoverLetter *string   `json:"cover_letter,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Display fields copied from the parent posting by the enrichment join.
	// Never persisted. JobMissing marks a dangling job_id reference.
	Company     string `json:"company,omitempty"`
	Title       string `json:"title,omitempty"`
	CompanyLogo string `json:"company_logo,omitempty"`
	JobMissing  bool   `json:"job_missing,omitempty"`
}

// ApplicationRepository defines data access methods for applications
type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByJobID(ctx context.Context, jobID string) ([]Application, error)
	GetByApplicant(ctx context.Context, email string) ([]Application, error)
	UpdateStatus(ctx context.Context, id string, status string) error
}

// ApplicationUsecase defines business logic for applications
type ApplicationUsecase interface {
	SubmitApplication(ctx context.Context, app *Application) (string, error)
	ListByJob(ctx context.Context, jobID string) ([]Application, error)
	// ListForApplicant performs the ownership check against the
	// authenticated claims in ctx and enriches each record with its
	// parent posting's display fields.
	ListForApplicant(ctx context.Context, email string) ([]Application, error)
	UpdateApplicationStatus(ctx context.Context, id string, status string) error
}
