package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// JobPosting is one listing document. Known display fields are first-class
// columns; everything else an HR client sends rides in Details so a payload
// round-trips without schema changes. Postings are immutable after creation.
type JobPosting struct {
	ID          string                 `json:"id"`
	HrEmail     string                 `json:"hr_email"`
	Company     string                 `json:"company"`
	Title       string                 `json:"title"`
	CompanyLogo string                 `json:"company_logo"`
	Details     map[string]interface{} `json:"details,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

// NewJobPosting builds a posting from a raw client payload. The named
// display fields are lifted out; the remainder is kept verbatim in Details.
// No field is validated - the payload is persisted as-is.
func NewJobPosting(payload map[string]interface{}) *JobPosting {
	job := &JobPosting{}
	job.HrEmail = popString(payload, "hr_email")
	job.Company = popString(payload, "company")
	job.Title = popString(payload, "title")
	job.CompanyLogo = popString(payload, "company_logo")
	if len(payload) > 0 {
		job.Details = payload
	}
	return job
}

func popString(payload map[string]interface{}, key string) string {
	value, _ := payload[key].(string)
	delete(payload, key)
	return value
}

type JobRepository interface {
	Create(ctx context.Context, job *JobPosting) error
	GetByID(ctx context.Context, id string) (*JobPosting, error)
	Fetch(ctx context.Context, hrEmail string) ([]JobPosting, error)
}

type JobUsecase interface {
	CreateJob(ctx context.Context, job *JobPosting) (string, error)
	GetJobDetails(ctx context.Context, id string) (*JobPosting, error)
	ListJobs(ctx context.Context, hrEmail string) ([]JobPosting, error)
}
