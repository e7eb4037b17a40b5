package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/job-board/internal/types"
)

// -----------------------------------------------------------------------------
// Private Job Methods
// -----------------------------------------------------------------------------

const privateJobColumns = `id, job_title, job_type, application_starting_date, application_end_date,
	eligibility, education, experience, application_link, contact_email, contact_phone,
	source, information_link, company_name, department_name, vacancy_count,
	skills_required, salary_range, company_website, industry, job_location,
	created_at, updated_at`

func scanPrivateJob(row pgx.Row) (*types.PrivateJob, error) {
	job := types.NewPrivateJob()
	var (
		id                      uuid.UUID
		startDate, endDate      *time.Time
		eligibility, experience StringArray
		skills, locations       StringArray
		createdAt, updatedAt    time.Time
	)

	err := row.Scan(&id, &job.JobTitle, &job.JobType, &startDate, &endDate,
		&eligibility, &job.Education, &experience, &job.ApplicationLink, &job.ContactEmail, &job.ContactPhone,
		&job.Source, &job.InformationLink, &job.CompanyName, &job.DepartmentName, &job.VacancyCount,
		&skills, &job.SalaryRange, &job.CompanyWebsite, &job.Industry, &locations,
		&createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	job.ID = id.String()
	job.ApplicationStartingDate = toDate(startDate)
	job.ApplicationEndDate = toDate(endDate)
	job.Eligibility = eligibility
	job.Experience = experience
	job.SkillsRequired = skills
	job.JobLocation = locations
	job.CreatedAt = toTime(createdAt)
	job.UpdatedAt = toTime(updatedAt)
	return job, nil
}

// CreatePrivateJob inserts a private job and returns the stored record.
func (db *DB) CreatePrivateJob(ctx context.Context, job *types.PrivateJob) (*types.PrivateJob, error) {
	row := db.pool.QueryRow(ctx,
		`INSERT INTO private_jobs (job_title, job_type, application_starting_date, application_end_date,
		        eligibility, education, experience, application_link, contact_email, contact_phone,
		        source, information_link, company_name, department_name, vacancy_count,
		        skills_required, salary_range, company_website, industry, job_location)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		 RETURNING `+privateJobColumns,
		job.JobTitle, job.JobType, dateArg(job.ApplicationStartingDate), dateArg(job.ApplicationEndDate),
		StringArray(job.Eligibility), job.Education, StringArray(job.Experience), job.ApplicationLink, job.ContactEmail, job.ContactPhone,
		job.Source, job.InformationLink, job.CompanyName, job.DepartmentName, job.VacancyCount,
		StringArray(job.SkillsRequired), job.SalaryRange, job.CompanyWebsite, job.Industry, StringArray(job.JobLocation),
	)

	created, err := scanPrivateJob(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create private job: %w", err)
	}
	return created, nil
}

// FindPrivateDuplicate returns the job with the same company, title and vacancy count, or nil.
func (db *DB) FindPrivateDuplicate(ctx context.Context, companyName, jobTitle string, vacancyCount *int) (*types.PrivateJob, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+privateJobColumns+`
		 FROM private_jobs
		 WHERE company_name = $1 AND job_title = $2 AND vacancy_count IS NOT DISTINCT FROM $3
		 LIMIT 1`,
		companyName, jobTitle, vacancyCount,
	)

	job, err := scanPrivateJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to check private job duplicate: %w", err)
	}
	return job, nil
}

// ListPrivateJobs returns private jobs, most recently updated first.
// A non-empty location keeps only jobs whose jobLocation contains it exactly.
func (db *DB) ListPrivateJobs(ctx context.Context, location string) ([]*types.PrivateJob, error) {
	query := `SELECT ` + privateJobColumns + ` FROM private_jobs`
	args := []any{}
	if location != "" {
		query += ` WHERE job_location ? $1`
		args = append(args, location)
	}
	query += ` ORDER BY updated_at DESC, created_at DESC`

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list private jobs: %w", err)
	}
	defer rows.Close()

	jobs := []*types.PrivateJob{}
	for rows.Next() {
		job, err := scanPrivateJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan private job: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list private jobs: %w", err)
	}
	return jobs, nil
}

// GetPrivateJob retrieves a private job by ID. Unknown or malformed IDs return nil, nil.
func (db *DB) GetPrivateJob(ctx context.Context, id string) (*types.PrivateJob, error) {
	uid, ok := parseID(id)
	if !ok {
		return nil, nil
	}

	row := db.pool.QueryRow(ctx,
		`SELECT `+privateJobColumns+` FROM private_jobs WHERE id = $1`,
		uid,
	)
	job, err := scanPrivateJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get private job: %w", err)
	}
	return job, nil
}

// UpdatePrivateJob replaces the stored fields of a private job and refreshes updated_at.
func (db *DB) UpdatePrivateJob(ctx context.Context, id string, job *types.PrivateJob) (*types.PrivateJob, error) {
	uid, ok := parseID(id)
	if !ok {
		return nil, ErrNotFound
	}

	row := db.pool.QueryRow(ctx,
		`UPDATE private_jobs SET
		        job_title = $2, job_type = $3, application_starting_date = $4, application_end_date = $5,
		        eligibility = $6, education = $7, experience = $8, application_link = $9,
		        contact_email = $10, contact_phone = $11, source = $12, information_link = $13,
		        company_name = $14, department_name = $15, vacancy_count = $16, skills_required = $17,
		        salary_range = $18, company_website = $19, industry = $20, job_location = $21,
		        updated_at = NOW()
		 WHERE id = $1
		 RETURNING `+privateJobColumns,
		uid, job.JobTitle, job.JobType, dateArg(job.ApplicationStartingDate), dateArg(job.ApplicationEndDate),
		StringArray(job.Eligibility), job.Education, StringArray(job.Experience), job.ApplicationLink,
		job.ContactEmail, job.ContactPhone, job.Source, job.InformationLink,
		job.CompanyName, job.DepartmentName, job.VacancyCount, StringArray(job.SkillsRequired),
		job.SalaryRange, job.CompanyWebsite, job.Industry, StringArray(job.JobLocation),
	)

	updated, err := scanPrivateJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update private job: %w", err)
	}
	return updated, nil
}

// DeletePrivateJob deletes a private job by ID.
func (db *DB) DeletePrivateJob(ctx context.Context, id string) error {
	uid, ok := parseID(id)
	if !ok {
		return ErrNotFound
	}

	result, err := db.pool.Exec(ctx, `DELETE FROM private_jobs WHERE id = $1`, uid)
	if err != nil {
		return fmt.Errorf("failed to delete private job: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAllPrivateJobs removes every private job and returns how many were deleted.
func (db *DB) DeleteAllPrivateJobs(ctx context.Context) (int64, error) {
	result, err := db.pool.Exec(ctx, `DELETE FROM private_jobs`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete private jobs: %w", err)
	}
	return result.RowsAffected(), nil
}
