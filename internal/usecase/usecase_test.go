package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock Repositories
type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.JobPosting) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) GetByID(ctx context.Context, id string) (*domain.JobPosting, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobPosting), args.Error(1)
}

func (m *MockJobRepo) Fetch(ctx context.Context, hrEmail string) ([]domain.JobPosting, error) {
	args := m.Called(ctx, hrEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobPosting), args.Error(1)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}

func (m *MockApplicationRepo) GetByJobID(ctx context.Context, jobID string) ([]domain.Application, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) GetByApplicant(ctx context.Context, email string) ([]domain.Application, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id string, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

func authedContext(email string) context.Context {
	return domain.WithClaims(context.Background(), &auth.Claims{Email: email})
}

func appErrCode(t *testing.T, err error) int {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	return appErr.Code
}

func TestListForApplicantOwnership(t *testing.T) {
	t.Run("Should reject when credential email differs from requested email", func(t *testing.T) {
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), new(MockJobRepo), nil)

		_, err := uc.ListForApplicant(authedContext("hr@x.com"), "other@x.com")
		assert.Equal(t, 403, appErrCode(t, err))
	})

	t.Run("Should fail safe when no claims are in context", func(t *testing.T) {
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), new(MockJobRepo), nil)

		_, err := uc.ListForApplicant(context.Background(), "hr@x.com")
		assert.Equal(t, 401, appErrCode(t, err))
	})

	t.Run("Should return the list when identities match", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, nil)

		appRepo.On("GetByApplicant", mock.Anything, "a@x.com").Return([]domain.Application{}, nil)

		result, err := uc.ListForApplicant(authedContext("a@x.com"), "a@x.com")
		assert.NoError(t, err)
		assert.Empty(t, result)
	})
}

func TestEnrichment(t *testing.T) {
	job1 := &domain.JobPosting{ID: "J1", Company: "Acme", Title: "Engineer", CompanyLogo: "https://acme.test/logo.png"}
	job2 := &domain.JobPosting{ID: "J2", Company: "Globex", Title: "Analyst"}

	newRepos := func() (*MockApplicationRepo, *MockJobRepo) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", mock.Anything, "J1").Return(job1, nil)
		jobRepo.On("GetByID", mock.Anything, "J2").Return(job2, nil)
		jobRepo.On("GetByID", mock.Anything, "GONE").Return(nil, domain.ErrNotFound)
		return appRepo, jobRepo
	}

	t.Run("Should copy display fields preserving listing order", func(t *testing.T) {
		appRepo, jobRepo := newRepos()
		appRepo.On("GetByApplicant", mock.Anything, "a@x.com").Return([]domain.Application{
			{ID: "A1", JobID: "J2", Applicant: "a@x.com"},
			{ID: "A2", JobID: "J1", Applicant: "a@x.com"},
			{ID: "A3", JobID: "J1", Applicant: "a@x.com"},
		}, nil)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, nil)

		result, err := uc.ListForApplicant(authedContext("a@x.com"), "a@x.com")
		require.NoError(t, err)
		require.Len(t, result, 3)
		assert.Equal(t, []string{"A1", "A2", "A3"}, []string{result[0].ID, result[1].ID, result[2].ID})
		assert.Equal(t, "Globex", result[0].Company)
		assert.Equal(t, "Engineer", result[1].Title)
		assert.Equal(t, "https://acme.test/logo.png", result[1].CompanyLogo)
		assert.Equal(t, "Acme", result[2].Company)
		// Each distinct posting is resolved once, not per application
		jobRepo.AssertNumberOfCalls(t, "GetByID", 2)
	})

	t.Run("Should flag a dangling job reference instead of failing", func(t *testing.T) {
		appRepo, jobRepo := newRepos()
		appRepo.On("GetByApplicant", mock.Anything, "a@x.com").Return([]domain.Application{
			{ID: "A1", JobID: "J1", Applicant: "a@x.com"},
			{ID: "A2", JobID: "GONE", Applicant: "a@x.com"},
		}, nil)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, nil)

		result, err := uc.ListForApplicant(authedContext("a@x.com"), "a@x.com")
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.False(t, result[0].JobMissing)
		assert.True(t, result[1].JobMissing)
		assert.Empty(t, result[1].Company)
		assert.Empty(t, result[1].Title)
	})

	t.Run("Should be idempotent for unchanged postings", func(t *testing.T) {
		appRepo, jobRepo := newRepos()
		apps := []domain.Application{
			{ID: "A1", JobID: "J1", Applicant: "a@x.com"},
			{ID: "A2", JobID: "GONE", Applicant: "a@x.com"},
		}
		appRepo.On("GetByApplicant", mock.Anything, "a@x.com").Return(apps, nil)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, nil)

		first, err := uc.ListForApplicant(authedContext("a@x.com"), "a@x.com")
		require.NoError(t, err)
		second, err := uc.ListForApplicant(authedContext("a@x.com"), "a@x.com")
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("Should fail the whole request on a store error with no partial result", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", mock.Anything, "J1").Return(nil, errors.New("connection reset"))
		appRepo.On("GetByApplicant", mock.Anything, "a@x.com").Return([]domain.Application{
			{ID: "A1", JobID: "J1", Applicant: "a@x.com"},
		}, nil)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, nil)

		result, err := uc.ListForApplicant(authedContext("a@x.com"), "a@x.com")
		assert.Nil(t, result)
		assert.Equal(t, 500, appErrCode(t, err))
	})

	t.Run("Should surface a deadline expiry as its own failure class", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", mock.Anything, "J1").Return(nil, context.DeadlineExceeded)
		appRepo.On("GetByApplicant", mock.Anything, "a@x.com").Return([]domain.Application{
			{ID: "A1", JobID: "J1", Applicant: "a@x.com"},
		}, nil)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, nil)

		_, err := uc.ListForApplicant(authedContext("a@x.com"), "a@x.com")
		assert.Equal(t, 504, appErrCode(t, err))
	})
}

func TestSubmitApplication(t *testing.T) {
	t.Run("Should reject a submission against a missing posting", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", mock.Anything, "GONE").Return(nil, domain.ErrNotFound)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, nil)

		_, err := uc.SubmitApplication(context.Background(), &domain.Application{JobID: "GONE", Applicant: "a@x.com"})
		assert.Equal(t, 404, appErrCode(t, err))
		appRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should default the status to pending", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", mock.Anything, "J1").Return(&domain.JobPosting{ID: "J1"}, nil)
		appRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Application")).Return(nil).Run(func(args mock.Arguments) {
			app := args.Get(1).(*domain.Application)
			assert.Equal(t, domain.ApplicationStatusPending, app.Status)
			app.ID = "A1"
		})
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, nil)

		id, err := uc.SubmitApplication(context.Background(), &domain.Application{JobID: "J1", Applicant: "a@x.com"})
		assert.NoError(t, err)
		assert.Equal(t, "A1", id)
	})
}

func TestUpdateApplicationStatus(t *testing.T) {
	t.Run("Should pass only id and status through", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		appRepo.On("UpdateStatus", mock.Anything, "A1", "accepted").Return(nil)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobRepo), nil)

		err := uc.UpdateApplicationStatus(context.Background(), "A1", "accepted")
		assert.NoError(t, err)
		appRepo.AssertExpectations(t)
	})

	t.Run("Should accept any non-empty status value", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		appRepo.On("UpdateStatus", mock.Anything, "A1", "on_hold_pending_reference_check").Return(nil)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobRepo), nil)

		err := uc.UpdateApplicationStatus(context.Background(), "A1", "on_hold_pending_reference_check")
		assert.NoError(t, err)
	})

	t.Run("Should reject an empty status", func(t *testing.T) {
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), new(MockJobRepo), nil)

		err := uc.UpdateApplicationStatus(context.Background(), "A1", "")
		assert.Equal(t, 400, appErrCode(t, err))
	})

	t.Run("Should map a missing application to 404", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		appRepo.On("UpdateStatus", mock.Anything, "NOPE", "accepted").Return(domain.ErrNotFound)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobRepo), nil)

		err := uc.UpdateApplicationStatus(context.Background(), "NOPE", "accepted")
		assert.Equal(t, 404, appErrCode(t, err))
	})
}

func TestListJobs(t *testing.T) {
	t.Run("Should pass the owner filter through", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("Fetch", mock.Anything, "hr@x.com").Return([]domain.JobPosting{{ID: "J1", HrEmail: "hr@x.com"}}, nil)
		uc := usecase.NewJobUsecase(jobRepo)

		jobs, err := uc.ListJobs(context.Background(), "hr@x.com")
		assert.NoError(t, err)
		assert.Len(t, jobs, 1)
		jobRepo.AssertExpectations(t)
	})

	t.Run("Should map a missing job to 404", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", mock.Anything, "NOPE").Return(nil, domain.ErrNotFound)
		uc := usecase.NewJobUsecase(jobRepo)

		_, err := uc.GetJobDetails(context.Background(), "NOPE")
		assert.Equal(t, 404, appErrCode(t, err))
	})
}
