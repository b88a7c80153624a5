package postgres

import (
	"context"
	"testing"
	"time"

	"jobportal-backend/internal/domain"
	"jobportal-backend/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestApplicationRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewApplicationRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		app := &domain.Application{
			JobID:       7,
			FullName:    "Maria Santos",
			Email:       "maria@example.com",
			PhoneNumber: "09181234567",
			Address:     "45 Mabini St, Manila",
			Status:      domain.ApplicationStatusUnread,
		}

		mock.ExpectQuery("INSERT INTO applications").
			WithArgs(app.JobID, app.FullName, app.Email, app.PhoneNumber, app.Address, app.Status, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

		err := repo.Create(ctx, app)
		assert.NoError(t, err)
		assert.Equal(t, int32(42), app.ID)
		assert.False(t, app.SubmittedAt.IsZero())
	})
}

func TestApplicationRepository_MarkViewedIfUnread(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewApplicationRepository(db)
	ctx := context.Background()

	t.Run("Flips Unread Row", func(t *testing.T) {
		mock.ExpectExec("UPDATE applications SET status = 'Viewed' WHERE id = \\$1 AND status = 'Unread'").
			WithArgs(int32(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		flipped, err := repo.MarkViewedIfUnread(ctx, 5)
		assert.NoError(t, err)
		assert.True(t, flipped)
	})

	t.Run("Already Viewed Row Is Untouched", func(t *testing.T) {
		mock.ExpectExec("UPDATE applications SET status = 'Viewed' WHERE id = \\$1 AND status = 'Unread'").
			WithArgs(int32(5)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		flipped, err := repo.MarkViewedIfUnread(ctx, 5)
		assert.NoError(t, err)
		assert.False(t, flipped)
	})
}

func TestApplicationRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewApplicationRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM applications WHERE id = \\$1").
			WithArgs(int32(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, 5))
	})

	t.Run("Zero Rows Maps To Not Found", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM applications WHERE id = \\$1").
			WithArgs(int32(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, 99), domain.ErrNotFound)
	})
}

func TestApplicationRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewApplicationRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "job_id", "full_name", "email", "phone_number", "address", "status", "submitted_at"}).
			AddRow(5, 7, "Maria Santos", "maria@example.com", "09181234567", "45 Mabini St", "Unread", time.Now())
		mock.ExpectQuery("SELECT (.+) FROM applications WHERE id = \\$1").
			WithArgs(int32(5)).
			WillReturnRows(rows)

		app, err := repo.GetByID(ctx, 5)
		assert.NoError(t, err)
		assert.Equal(t, int32(5), app.ID)
		assert.Equal(t, domain.ApplicationStatusUnread, app.Status)
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM applications WHERE id = \\$1").
			WithArgs(int32(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestApplicationRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewApplicationRepository(db)
	ctx := context.Background()

	summaryRows := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "job_id", "full_name", "email", "position_title", "department", "status", "submitted_at"}).
			AddRow(5, 7, "Maria Santos", "maria@example.com", "Administrative Officer II", "HR", "Unread", time.Now())
	}

	t.Run("No Filters Uses Default Page Size", func(t *testing.T) {
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM \\(").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery("ORDER BY a.submitted_at DESC LIMIT \\$1 OFFSET \\$2").
			WithArgs(int32(20), int32(0)).
			WillReturnRows(summaryRows())

		apps, total, err := repo.List(ctx, repository.ApplicationFilter{})
		assert.NoError(t, err)
		assert.Equal(t, int32(1), total)
		assert.Len(t, apps, 1)
	})

	t.Run("Status Job And Search Filters", func(t *testing.T) {
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM \\(").
			WithArgs(domain.ApplicationStatusUnread, int32(7), "%maria%").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery("a.status = \\$1 AND a.job_id = \\$2 AND \\(a.full_name ILIKE \\$3 OR a.email ILIKE \\$3 OR j.position_title ILIKE \\$3\\)").
			WithArgs(domain.ApplicationStatusUnread, int32(7), "%maria%", int32(10), int32(10)).
			WillReturnRows(summaryRows())

		filter := repository.ApplicationFilter{
			Status:   domain.ApplicationStatusUnread,
			JobID:    7,
			Search:   "maria",
			Page:     2,
			PageSize: 10,
		}
		apps, total, err := repo.List(ctx, filter)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), total)
		assert.Len(t, apps, 1)
	})
}
