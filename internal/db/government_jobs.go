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
// Government Job Methods
// -----------------------------------------------------------------------------

const governmentJobColumns = `id, job_title, job_type, application_starting_date, application_end_date,
	eligibility, education, experience, application_link, contact_email, contact_phone,
	source, information_link, name_of_department, vacancy_count, age_limit,
	reservation_category, application_fee, selection_process, exam_date,
	get_admit_card_date, get_admit_card_last_date, result_date, interview_date,
	government_type, pay_grade_range, salary_range, job_location, address, job_group,
	created_at, updated_at`

func scanGovernmentJob(row pgx.Row) (*types.GovernmentJob, error) {
	job := types.NewGovernmentJob()
	var (
		id                                   uuid.UUID
		startDate, endDate                   *time.Time
		examDate, admitCardDate, admitCardBy *time.Time
		resultDate, interviewDate            *time.Time
		eligibility, experience              StringArray
		reservation, fees, selection         StringArray
		locations                            StringArray
		createdAt, updatedAt                 time.Time
	)

	err := row.Scan(&id, &job.JobTitle, &job.JobType, &startDate, &endDate,
		&eligibility, &job.Education, &experience, &job.ApplicationLink, &job.ContactEmail, &job.ContactPhone,
		&job.Source, &job.InformationLink, &job.NameOfDepartment, &job.VacancyCount, &job.AgeLimit,
		&reservation, &fees, &selection, &examDate,
		&admitCardDate, &admitCardBy, &resultDate, &interviewDate,
		&job.GovernmentType, &job.PayGradeRange, &job.SalaryRange, &locations, &job.Address, &job.Group,
		&createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	job.ID = id.String()
	job.ApplicationStartingDate = toDate(startDate)
	job.ApplicationEndDate = toDate(endDate)
	job.Eligibility = eligibility
	job.Experience = experience
	job.ReservationCategory = reservation
	job.ApplicationFee = fees
	job.SelectionProcess = selection
	job.ExamDate = toDate(examDate)
	job.GetAdmitCardDate = toDate(admitCardDate)
	job.GetAdmitCardLastDate = toDate(admitCardBy)
	job.ResultDate = toDate(resultDate)
	job.InterviewDate = toDate(interviewDate)
	job.JobLocation = locations
	job.CreatedAt = toTime(createdAt)
	job.UpdatedAt = toTime(updatedAt)
	return job, nil
}

func governmentJobArgs(job *types.GovernmentJob) []any {
	return []any{
		job.JobTitle, job.JobType, dateArg(job.ApplicationStartingDate), dateArg(job.ApplicationEndDate),
		StringArray(job.Eligibility), job.Education, StringArray(job.Experience), job.ApplicationLink,
		job.ContactEmail, job.ContactPhone, job.Source, job.InformationLink,
		job.NameOfDepartment, job.VacancyCount, job.AgeLimit,
		StringArray(job.ReservationCategory), StringArray(job.ApplicationFee), StringArray(job.SelectionProcess),
		dateArg(job.ExamDate), dateArg(job.GetAdmitCardDate), dateArg(job.GetAdmitCardLastDate),
		dateArg(job.ResultDate), dateArg(job.InterviewDate),
		job.GovernmentType, job.PayGradeRange, job.SalaryRange, StringArray(job.JobLocation),
		job.Address, job.Group,
	}
}

// CreateGovernmentJob inserts a government job and returns the stored record.
func (db *DB) CreateGovernmentJob(ctx context.Context, job *types.GovernmentJob) (*types.GovernmentJob, error) {
	row := db.pool.QueryRow(ctx,
		`INSERT INTO government_jobs (job_title, job_type, application_starting_date, application_end_date,
		        eligibility, education, experience, application_link,
		        contact_email, contact_phone, source, information_link,
		        name_of_department, vacancy_count, age_limit,
		        reservation_category, application_fee, selection_process,
		        exam_date, get_admit_card_date, get_admit_card_last_date,
		        result_date, interview_date,
		        government_type, pay_grade_range, salary_range, job_location,
		        address, job_group)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
		         $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29)
		 RETURNING `+governmentJobColumns,
		governmentJobArgs(job)...,
	)

	created, err := scanGovernmentJob(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create government job: %w", err)
	}
	return created, nil
}

// FindGovernmentDuplicate returns the job with the same department, title and vacancy count, or nil.
func (db *DB) FindGovernmentDuplicate(ctx context.Context, nameOfDepartment, jobTitle string, vacancyCount int) (*types.GovernmentJob, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+governmentJobColumns+`
		 FROM government_jobs
		 WHERE name_of_department = $1 AND job_title = $2 AND vacancy_count = $3
		 LIMIT 1`,
		nameOfDepartment, jobTitle, vacancyCount,
	)

	job, err := scanGovernmentJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to check government job duplicate: %w", err)
	}
	return job, nil
}

// ListGovernmentJobs returns government jobs, most recently updated first.
// A non-empty location keeps only jobs whose jobLocation contains it exactly.
func (db *DB) ListGovernmentJobs(ctx context.Context, location string) ([]*types.GovernmentJob, error) {
	query := `SELECT ` + governmentJobColumns + ` FROM government_jobs`
	args := []any{}
	if location != "" {
		query += ` WHERE job_location ? $1`
		args = append(args, location)
	}
	query += ` ORDER BY updated_at DESC, created_at DESC`

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list government jobs: %w", err)
	}
	defer rows.Close()

	jobs := []*types.GovernmentJob{}
	for rows.Next() {
		job, err := scanGovernmentJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan government job: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list government jobs: %w", err)
	}
	return jobs, nil
}

// GetGovernmentJob retrieves a government job by ID. Unknown or malformed IDs return nil, nil.
func (db *DB) GetGovernmentJob(ctx context.Context, id string) (*types.GovernmentJob, error) {
	uid, ok := parseID(id)
	if !ok {
		return nil, nil
	}

	row := db.pool.QueryRow(ctx,
		`SELECT `+governmentJobColumns+` FROM government_jobs WHERE id = $1`,
		uid,
	)
	job, err := scanGovernmentJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get government job: %w", err)
	}
	return job, nil
}

// UpdateGovernmentJob replaces the stored fields of a government job and refreshes updated_at.
func (db *DB) UpdateGovernmentJob(ctx context.Context, id string, job *types.GovernmentJob) (*types.GovernmentJob, error) {
	uid, ok := parseID(id)
	if !ok {
		return nil, ErrNotFound
	}

	args := append([]any{uid}, governmentJobArgs(job)...)
	row := db.pool.QueryRow(ctx,
		`UPDATE government_jobs SET
		        job_title = $2, job_type = $3, application_starting_date = $4, application_end_date = $5,
		        eligibility = $6, education = $7, experience = $8, application_link = $9,
		        contact_email = $10, contact_phone = $11, source = $12, information_link = $13,
		        name_of_department = $14, vacancy_count = $15, age_limit = $16,
		        reservation_category = $17, application_fee = $18, selection_process = $19,
		        exam_date = $20, get_admit_card_date = $21, get_admit_card_last_date = $22,
		        result_date = $23, interview_date = $24,
		        government_type = $25, pay_grade_range = $26, salary_range = $27, job_location = $28,
		        address = $29, job_group = $30,
		        updated_at = NOW()
		 WHERE id = $1
		 RETURNING `+governmentJobColumns,
		args...,
	)

	updated, err := scanGovernmentJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update government job: %w", err)
	}
	return updated, nil
}

// DeleteGovernmentJob deletes a government job by ID.
func (db *DB) DeleteGovernmentJob(ctx context.Context, id string) error {
	uid, ok := parseID(id)
	if !ok {
		return ErrNotFound
	}

	result, err := db.pool.Exec(ctx, `DELETE FROM government_jobs WHERE id = $1`, uid)
	if err != nil {
		return fmt.Errorf("failed to delete government job: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAllGovernmentJobs removes every government job and returns how many were deleted.
func (db *DB) DeleteAllGovernmentJobs(ctx context.Context) (int64, error) {
	result, err := db.pool.Exec(ctx, `DELETE FROM government_jobs`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete government jobs: %w", err)
	}
	return result.RowsAffected(), nil
}
