package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/job-board/internal/db"
	"github.com/jonathan/job-board/internal/search"
	"github.com/jonathan/job-board/internal/types"
	"golang.org/x/sync/errgroup"
)

// JobStore is the persistence the job service needs. *db.DB satisfies it.
type JobStore interface {
	CreatePrivateJob(ctx context.Context, job *types.PrivateJob) (*types.PrivateJob, error)
	FindPrivateDuplicate(ctx context.Context, companyName, jobTitle string, vacancyCount *int) (*types.PrivateJob, error)
	ListPrivateJobs(ctx context.Context, location string) ([]*types.PrivateJob, error)
	GetPrivateJob(ctx context.Context, id string) (*types.PrivateJob, error)
	UpdatePrivateJob(ctx context.Context, id string, job *types.PrivateJob) (*types.PrivateJob, error)
	DeletePrivateJob(ctx context.Context, id string) error
	DeleteAllPrivateJobs(ctx context.Context) (int64, error)

	CreateGovernmentJob(ctx context.Context, job *types.GovernmentJob) (*types.GovernmentJob, error)
	FindGovernmentDuplicate(ctx context.Context, nameOfDepartment, jobTitle string, vacancyCount int) (*types.GovernmentJob, error)
	ListGovernmentJobs(ctx context.Context, location string) ([]*types.GovernmentJob, error)
	GetGovernmentJob(ctx context.Context, id string) (*types.GovernmentJob, error)
	UpdateGovernmentJob(ctx context.Context, id string, job *types.GovernmentJob) (*types.GovernmentJob, error)
	DeleteGovernmentJob(ctx context.Context, id string) error
	DeleteAllGovernmentJobs(ctx context.Context) (int64, error)
}

// JobService provides business logic for job postings of both categories.
type JobService struct {
	store     JobStore
	validator *validator.Validate
	logger    *slog.Logger
}

// NewJobService creates a new JobService backed by store.
func NewJobService(store JobStore, logger *slog.Logger) *JobService {
	if logger == nil {
		logger = slog.Default()
	}
	return &JobService{
		store:     store,
		validator: newValidator(),
		logger:    logger,
	}
}

// prepare resets server-managed fields and validates the record.
func (s *JobService) prepare(job types.Job) error {
	base := job.Base()
	base.ID = ""
	base.CreatedAt = nil
	base.UpdatedAt = nil
	types.NormalizeCategory(job)

	if err := s.validator.Struct(job); err != nil {
		return extractValidationErrors(err)
	}
	return nil
}

// -----------------------------------------------------------------------------
// Private jobs
// -----------------------------------------------------------------------------

// CreatePrivate stores a new private job unless one with the same company,
// title and vacancy count already exists.
func (s *JobService) CreatePrivate(ctx context.Context, job *types.PrivateJob) (*types.PrivateJob, error) {
	if err := s.prepare(job); err != nil {
		return nil, err
	}

	existing, err := s.store.FindPrivateDuplicate(ctx, job.CompanyName, job.JobTitle, job.VacancyCount)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &ErrJobExists{Category: types.CategoryPrivate, ID: existing.ID}
	}

	created, err := s.store.CreatePrivateJob(ctx, job)
	if err != nil {
		return nil, err
	}
	s.logger.Info("private job created", "id", created.ID, "company", created.CompanyName, "title", created.JobTitle)
	return created, nil
}

// ListPrivate returns private jobs, optionally restricted to an exact location.
func (s *JobService) ListPrivate(ctx context.Context, location string) ([]*types.PrivateJob, error) {
	return s.store.ListPrivateJobs(ctx, location)
}

// GetPrivate returns the private job with id.
func (s *JobService) GetPrivate(ctx context.Context, id string) (*types.PrivateJob, error) {
	job, err := s.store.GetPrivateJob(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, &ErrJobNotFound{ID: id}
	}
	return job, nil
}

// UpdatePrivate replaces the private job with id.
func (s *JobService) UpdatePrivate(ctx context.Context, id string, job *types.PrivateJob) (*types.PrivateJob, error) {
	if err := s.prepare(job); err != nil {
		return nil, err
	}

	updated, err := s.store.UpdatePrivateJob(ctx, id, job)
	if err != nil {
		return nil, notFound(err, id)
	}
	s.logger.Info("private job updated", "id", id)
	return updated, nil
}

// DeletePrivate removes the private job with id.
func (s *JobService) DeletePrivate(ctx context.Context, id string) error {
	if err := s.store.DeletePrivateJob(ctx, id); err != nil {
		return notFound(err, id)
	}
	s.logger.Info("private job deleted", "id", id)
	return nil
}

// DeleteAllPrivate removes every private job.
func (s *JobService) DeleteAllPrivate(ctx context.Context) (int64, error) {
	n, err := s.store.DeleteAllPrivateJobs(ctx)
	if err != nil {
		return 0, err
	}
	s.logger.Warn("all private jobs deleted", "count", n)
	return n, nil
}

// -----------------------------------------------------------------------------
// Government jobs
// -----------------------------------------------------------------------------

// CreateGovernment stores a new government job unless one with the same
// department, title and vacancy count already exists.
func (s *JobService) CreateGovernment(ctx context.Context, job *types.GovernmentJob) (*types.GovernmentJob, error) {
	if err := s.prepare(job); err != nil {
		return nil, err
	}

	existing, err := s.store.FindGovernmentDuplicate(ctx, job.NameOfDepartment, job.JobTitle, job.VacancyCount)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &ErrJobExists{Category: types.CategoryGovernment, ID: existing.ID}
	}

	created, err := s.store.CreateGovernmentJob(ctx, job)
	if err != nil {
		return nil, err
	}
	s.logger.Info("government job created", "id", created.ID, "department", created.NameOfDepartment, "title", created.JobTitle)
	return created, nil
}

// ListGovernment returns government jobs, optionally restricted to an exact location.
func (s *JobService) ListGovernment(ctx context.Context, location string) ([]*types.GovernmentJob, error) {
	return s.store.ListGovernmentJobs(ctx, location)
}

// GetGovernment returns the government job with id.
func (s *JobService) GetGovernment(ctx context.Context, id string) (*types.GovernmentJob, error) {
	job, err := s.store.GetGovernmentJob(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, &ErrJobNotFound{ID: id}
	}
	return job, nil
}

// UpdateGovernment replaces the government job with id.
func (s *JobService) UpdateGovernment(ctx context.Context, id string, job *types.GovernmentJob) (*types.GovernmentJob, error) {
	if err := s.prepare(job); err != nil {
		return nil, err
	}

	updated, err := s.store.UpdateGovernmentJob(ctx, id, job)
	if err != nil {
		return nil, notFound(err, id)
	}
	s.logger.Info("government job updated", "id", id)
	return updated, nil
}

// DeleteGovernment removes the government job with id.
func (s *JobService) DeleteGovernment(ctx context.Context, id string) error {
	if err := s.store.DeleteGovernmentJob(ctx, id); err != nil {
		return notFound(err, id)
	}
	s.logger.Info("government job deleted", "id", id)
	return nil
}

// DeleteAllGovernment removes every government job.
func (s *JobService) DeleteAllGovernment(ctx context.Context) (int64, error) {
	n, err := s.store.DeleteAllGovernmentJobs(ctx)
	if err != nil {
		return 0, err
	}
	s.logger.Warn("all government jobs deleted", "count", n)
	return n, nil
}

// -----------------------------------------------------------------------------
// Cross-category queries
// -----------------------------------------------------------------------------

// GetJob looks the id up among private jobs first, then government jobs.
func (s *JobService) GetJob(ctx context.Context, id string) (types.Job, error) {
	private, err := s.store.GetPrivateJob(ctx, id)
	if err != nil {
		return nil, err
	}
	if private != nil {
		return private, nil
	}

	government, err := s.store.GetGovernmentJob(ctx, id)
	if err != nil {
		return nil, err
	}
	if government != nil {
		return government, nil
	}
	return nil, &ErrJobNotFound{ID: id}
}

// Search loads both collections concurrently and returns the jobs matching
// queryText and queryLocation, private jobs first.
func (s *JobService) Search(ctx context.Context, queryText, queryLocation string) ([]types.Job, error) {
	private, government, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return search.Search(private, government, queryText, queryLocation), nil
}

// IT returns the private jobs in the IT industry or department.
func (s *JobService) IT(ctx context.Context) ([]*types.PrivateJob, error) {
	private, err := s.store.ListPrivateJobs(ctx, "")
	if err != nil {
		return nil, err
	}
	return search.IT(private), nil
}

func (s *JobService) snapshot(ctx context.Context) ([]*types.PrivateJob, []*types.GovernmentJob, error) {
	var (
		private    []*types.PrivateJob
		government []*types.GovernmentJob
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		private, err = s.store.ListPrivateJobs(gctx, "")
		return err
	})
	g.Go(func() error {
		var err error
		government, err = s.store.ListGovernmentJobs(gctx, "")
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("failed to load jobs: %w", err)
	}
	return private, government, nil
}

func notFound(err error, id string) error {
	if errors.Is(err, db.ErrNotFound) {
		return &ErrJobNotFound{ID: id}
	}
	return err
}
