package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"jobportal-backend/internal/domain"
	"jobportal-backend/internal/repository"
)

type jobRepository struct {
	db *sql.DB
}

func NewJobRepository(db *sql.DB) repository.JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(ctx context.Context, j *domain.Job) error {
	query := `INSERT INTO jobs (position_title, department, job_description, qualifications, salary_grade, deadline, status, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return r.db.QueryRowContext(ctx, query, j.PositionTitle, j.Department, j.JobDescription, j.Qualifications, j.SalaryGrade, j.Deadline, j.Status, time.Now()).Scan(&j.ID)
}

func (r *jobRepository) GetByID(ctx context.Context, id int32) (*domain.Job, error) {
	j := &domain.Job{}
	query := `SELECT id, position_title, COALESCE(department, ''), COALESCE(job_description, ''), COALESCE(qualifications, ''), COALESCE(salary_grade, ''), deadline, status, created_at, updated_at
	          FROM jobs WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&j.ID, &j.PositionTitle, &j.Department, &j.JobDescription, &j.Qualifications, &j.SalaryGrade, &j.Deadline, &j.Status, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return j, nil
}

func (r *jobRepository) Update(ctx context.Context, j *domain.Job) error {
	query := `UPDATE jobs SET position_title=$1, department=$2, job_description=$3, qualifications=$4, salary_grade=$5, deadline=$6, status=$7, updated_at=$8 WHERE id=$9`
	result, err := r.db.ExecContext(ctx, query, j.PositionTitle, j.Department, j.JobDescription, j.Qualifications, j.SalaryGrade, j.Deadline, j.Status, time.Now(), j.ID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepository) UpdateStatus(ctx context.Context, id int32, status domain.JobStatus) error {
	result, err := r.db.ExecContext(ctx, `UPDATE jobs SET status = $1, updated_at = $2 WHERE id = $3`, status, time.Now(), id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepository) List(ctx context.Context, status domain.JobStatus, page, pageSize int32) ([]domain.Job, int32, error) {
	where := ""
	args := []interface{}{}
	if status != "" {
		where = " WHERE status = $1"
		args = append(args, status)
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, "SELECT count(*) FROM jobs"+where, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize
	query := `SELECT id, position_title, COALESCE(department, ''), COALESCE(job_description, ''), COALESCE(qualifications, ''), COALESCE(salary_grade, ''), deadline, status, created_at, updated_at
	          FROM jobs` + where + ` ORDER BY created_at DESC`
	if status != "" {
		query += " LIMIT $2 OFFSET $3"
	} else {
		query += " LIMIT $1 OFFSET $2"
	}
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var j domain.Job
		if err := rows.Scan(&j.ID, &j.PositionTitle, &j.Department, &j.JobDescription, &j.Qualifications, &j.SalaryGrade, &j.Deadline, &j.Status, &j.CreatedAt, &j.UpdatedAt); err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, j)
	}
	return jobs, count, rows.Err()
}

func (r *jobRepository) CloseExpired(ctx context.Context, now time.Time) error {
	// deadline is a DATE column and the deadline day itself stays open, so
	// the timestamp must be truncated to its date before comparing. A raw
	// timestamp would demote today's postings from midnight onward.
	_, err := r.db.ExecContext(ctx, `UPDATE jobs SET status = 'Closed' WHERE status = 'Open' AND deadline < CAST($1 AS DATE)`, now)
	return err
}

func (r *jobRepository) CountAll(ctx context.Context) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM jobs`).Scan(&count)
	return count, err
}

func (r *jobRepository) CountByStatus(ctx context.Context, status domain.JobStatus) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM jobs WHERE status = $1`, status).Scan(&count)
	return count, err
}
