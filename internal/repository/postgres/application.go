package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"jobportal-backend/internal/domain"
	"jobportal-backend/internal/repository"
)

type applicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) repository.ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, a *domain.Application) error {
	query := `INSERT INTO applications (job_id, full_name, email, phone_number, address, status, submitted_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	a.SubmittedAt = time.Now()
	return r.db.QueryRowContext(ctx, query, a.JobID, a.FullName, a.Email, a.PhoneNumber, a.Address, a.Status, a.SubmittedAt).Scan(&a.ID)
}

func (r *applicationRepository) GetByID(ctx context.Context, id int32) (*domain.Application, error) {
	a := &domain.Application{}
	query := `SELECT id, job_id, full_name, email, phone_number, COALESCE(address, ''), status, submitted_at
	          FROM applications WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.JobID, &a.FullName, &a.Email, &a.PhoneNumber, &a.Address, &a.Status, &a.SubmittedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *applicationRepository) Exists(ctx context.Context, id int32) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM applications WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id int32, status domain.ApplicationStatus) error {
	result, err := r.db.ExecContext(ctx, `UPDATE applications SET status = $1 WHERE id = $2`, status, id)
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

func (r *applicationRepository) MarkViewedIfUnread(ctx context.Context, id int32) (bool, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE applications SET status = 'Viewed' WHERE id = $1 AND status = 'Unread'`, id)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *applicationRepository) Delete(ctx context.Context, id int32) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM applications WHERE id = $1`, id)
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

func (r *applicationRepository) List(ctx context.Context, filter repository.ApplicationFilter) ([]domain.ApplicationSummary, int32, error) {
	sqlStr := `SELECT a.id, a.job_id, a.full_name, a.email, j.position_title, COALESCE(j.department, ''), a.status, a.submitted_at
	          FROM applications a JOIN jobs j ON a.job_id = j.id WHERE 1=1`

	args := []interface{}{}
	argIdx := 1

	if filter.Status != "" {
		sqlStr += fmt.Sprintf(" AND a.status = $%d", argIdx)
		args = append(args, filter.Status)
		argIdx++
	}
	if filter.JobID != 0 {
		sqlStr += fmt.Sprintf(" AND a.job_id = $%d", argIdx)
		args = append(args, filter.JobID)
		argIdx++
	}
	if filter.Search != "" {
		sqlStr += fmt.Sprintf(" AND (a.full_name ILIKE $%d OR a.email ILIKE $%d OR j.position_title ILIKE $%d)", argIdx, argIdx, argIdx)
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}

	var count int32
	countSql := "SELECT count(*) FROM (" + sqlStr + ") as sub"
	if err := r.db.QueryRowContext(ctx, countSql, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	sqlStr += fmt.Sprintf(" ORDER BY a.submitted_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var apps []domain.ApplicationSummary
	for rows.Next() {
		var a domain.ApplicationSummary
		if err := rows.Scan(&a.ID, &a.JobID, &a.FullName, &a.Email, &a.PositionTitle, &a.Department, &a.Status, &a.SubmittedAt); err != nil {
			return nil, 0, err
		}
		apps = append(apps, a)
	}
	return apps, count, rows.Err()
}

func (r *applicationRepository) CountAll(ctx context.Context) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM applications`).Scan(&count)
	return count, err
}

func (r *applicationRepository) CountByStatus(ctx context.Context, status domain.ApplicationStatus) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM applications WHERE status = $1`, status).Scan(&count)
	return count, err
}

func (r *applicationRepository) CountSubmittedSince(ctx context.Context, since time.Time) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM applications WHERE submitted_at >= $1`, since).Scan(&count)
	return count, err
}
