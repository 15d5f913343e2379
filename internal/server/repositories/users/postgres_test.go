package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/datachart/internal/common"
	"github.com/dmitrijs2005/datachart/internal/server/models"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func TestPostgresRepository_Create(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	r, err := NewPostgresRepository(db)
	if err != nil {
		t.Fatalf("NewPostgresRepository error: %v", err)
	}

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("a@example.com", "digest", "user").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("id-1", now))

	user, err := r.Create(context.Background(), &models.User{
		Email: "a@example.com", PasswordHash: "digest", Role: "user",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if user.ID != "id-1" || !user.CreatedAt.Equal(now) {
		t.Fatalf("unexpected user: %+v", user)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestPostgresRepository_GetByEmail_NotFound(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	r, _ := NewPostgresRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, password_hash, role, created_at FROM users")).
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := r.GetByEmail(context.Background(), "ghost@example.com")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestPostgresRepository_GetByEmail_Found(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	r, _ := NewPostgresRepository(db)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, password_hash, role, created_at FROM users")).
		WithArgs("a@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "role", "created_at"}).
			AddRow("id-1", "a@example.com", "digest", "admin", now))

	user, err := r.GetByEmail(context.Background(), "a@example.com")
	if err != nil {
		t.Fatalf("GetByEmail error: %v", err)
	}
	if user.Role != "admin" || user.PasswordHash != "digest" {
		t.Fatalf("unexpected user: %+v", user)
	}
}
