package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"watchlist/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func newUserMockRepo(t *testing.T) (*UserRepository, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	repo := NewUserRepository(db)
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	}
	return repo, mock, cleanup
}

func userRows(u models.User) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "username", "password_hash"}).
		AddRow(u.ID, u.Name, u.Username, u.PasswordHash)
}

func TestUserRepository_Owner(t *testing.T) {
	tests := []struct {
		name       string
		mockExpect func(sqlmock.Sqlmock)
		want       *models.User
		wantErr    bool
	}{
		{
			name: "found",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectOwnerSQL)).
					WillReturnRows(userRows(models.User{ID: 1, Name: "test", Username: "test", PasswordHash: "h123"}))
			},
			want: &models.User{ID: 1, Name: "test", Username: "test", PasswordHash: "h123"},
		},
		{
			name: "not provisioned yet",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectOwnerSQL)).
					WillReturnError(sql.ErrNoRows)
			},
			want: nil,
		},
		{
			name: "query error",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectOwnerSQL)).
					WillReturnError(errors.New("db query failed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := newUserMockRepo(t)
			defer cleanup()

			tt.mockExpect(mock)

			got, err := repo.Owner(context.Background())
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.want == nil {
				if got != nil {
					t.Fatalf("expected nil user, got %+v", got)
				}
				return
			}
			if got == nil || *got != *tt.want {
				t.Fatalf("want %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestUserRepository_ByID(t *testing.T) {
	repo, mock, cleanup := newUserMockRepo(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(selectUserByIDSQL)).
		WithArgs(1).
		WillReturnRows(userRows(models.User{ID: 1, Name: "test", Username: "test", PasswordHash: "h123"}))

	got, err := repo.ByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.ID != 1 || got.Username != "test" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestUserRepository_UpdateName(t *testing.T) {
	repo, mock, cleanup := newUserMockRepo(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(updateUserNameSQL)).
		WithArgs("Tororo", 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateName(context.Background(), 1, "Tororo"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUserRepository_UpsertOwner(t *testing.T) {
	tests := []struct {
		name       string
		mockExpect func(sqlmock.Sqlmock)
		wantID     int
		wantErr    bool
	}{
		{
			name: "creates when no owner exists",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectOwnerSQL)).
					WillReturnError(sql.ErrNoRows)
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WithArgs("test", "test", "h123").
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
			wantID: 1,
		},
		{
			name: "replaces credentials of the existing owner",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectOwnerSQL)).
					WillReturnRows(userRows(models.User{ID: 1, Name: "old", Username: "old", PasswordHash: "old-hash"}))
				m.ExpectExec(regexp.QuoteMeta(updateOwnerCredsSQL)).
					WithArgs("test", "test", "h123", 1).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			wantID: 1,
		},
		{
			name: "insert error",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectOwnerSQL)).
					WillReturnError(sql.ErrNoRows)
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WithArgs("test", "test", "h123").
					WillReturnError(errors.New("db exec failed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := newUserMockRepo(t)
			defer cleanup()

			tt.mockExpect(mock)

			id, err := repo.UpsertOwner(context.Background(), "test", "test", "h123")
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id != tt.wantID {
				t.Fatalf("expected id %d, got %d", tt.wantID, id)
			}
		})
	}
}
