package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"

	"watchlist/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMovieMockRepo(t *testing.T) (*MovieRepository, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	repo := NewMovieRepository(db)
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	}
	return repo, mock, cleanup
}

func TestMovieRepository_List(t *testing.T) {
	tests := []struct {
		name       string
		mockExpect func(sqlmock.Sqlmock)
		want       []models.Movie
		wantErr    bool
	}{
		{
			name: "keeps insertion order",
			mockExpect: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "title", "year"}).
					AddRow(1, "My Neighbor Totoro", "1988").
					AddRow(2, "Leon", "1994")
				m.ExpectQuery(regexp.QuoteMeta(selectMoviesSQL)).WillReturnRows(rows)
			},
			want: []models.Movie{
				{ID: 1, Title: "My Neighbor Totoro", Year: "1988"},
				{ID: 2, Title: "Leon", Year: "1994"},
			},
		},
		{
			name: "empty table",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectMoviesSQL)).
					WillReturnRows(sqlmock.NewRows([]string{"id", "title", "year"}))
			},
			want: []models.Movie{},
		},
		{
			name: "query error",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectMoviesSQL)).
					WillReturnError(errors.New("db query failed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := newMovieMockRepo(t)
			defer cleanup()

			tt.mockExpect(mock)

			got, err := repo.List(context.Background())
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d movies, got %d", len(tt.want), len(got))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("movie %d: want %+v, got %+v", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestMovieRepository_ByID(t *testing.T) {
	tests := []struct {
		name       string
		id         int
		mockExpect func(sqlmock.Sqlmock)
		want       *models.Movie
		wantErr    bool
	}{
		{
			name: "found",
			id:   1,
			mockExpect: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "title", "year"}).
					AddRow(1, "Mahjong", "1996")
				m.ExpectQuery(regexp.QuoteMeta(selectMovieByIDSQL)).
					WithArgs(1).
					WillReturnRows(rows)
			},
			want: &models.Movie{ID: 1, Title: "Mahjong", Year: "1996"},
		},
		{
			name: "not found (ErrNoRows)",
			id:   99,
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectMovieByIDSQL)).
					WithArgs(99).
					WillReturnError(sql.ErrNoRows)
			},
			want: nil,
		},
		{
			name: "query error",
			id:   1,
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectMovieByIDSQL)).
					WithArgs(1).
					WillReturnError(errors.New("db query failed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := newMovieMockRepo(t)
			defer cleanup()

			tt.mockExpect(mock)

			got, err := repo.ByID(context.Background(), tt.id)
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
					t.Fatalf("expected nil, got %+v", got)
				}
				return
			}
			if got == nil || *got != *tt.want {
				t.Fatalf("want %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestMovieRepository_Insert(t *testing.T) {
	repo, mock, cleanup := newMovieMockRepo(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(insertMovieSQL)).
		WithArgs("WALL-E", "2008").
		WillReturnResult(sqlmock.NewResult(3, 1))

	id, err := repo.Insert(context.Background(), "WALL-E", "2008")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 3 {
		t.Fatalf("expected id 3, got %d", id)
	}
}

func TestMovieRepository_Update(t *testing.T) {
	tests := []struct {
		name         string
		result       driver.Result
		wantAffected int64
	}{
		{name: "row updated", result: sqlmock.NewResult(0, 1), wantAffected: 1},
		{name: "no such row", result: sqlmock.NewResult(0, 0), wantAffected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := newMovieMockRepo(t)
			defer cleanup()

			mock.ExpectExec(regexp.QuoteMeta(updateMovieSQL)).
				WithArgs("New Title", "2020", 1).
				WillReturnResult(tt.result)

			affected, err := repo.Update(context.Background(), 1, "New Title", "2020")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if affected != tt.wantAffected {
				t.Fatalf("expected %d affected, got %d", tt.wantAffected, affected)
			}
		})
	}
}

func TestMovieRepository_Delete(t *testing.T) {
	tests := []struct {
		name         string
		result       driver.Result
		wantAffected int64
	}{
		{name: "row deleted", result: sqlmock.NewResult(0, 1), wantAffected: 1},
		{name: "no such row", result: sqlmock.NewResult(0, 0), wantAffected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := newMovieMockRepo(t)
			defer cleanup()

			mock.ExpectExec(regexp.QuoteMeta(deleteMovieSQL)).
				WithArgs(1).
				WillReturnResult(tt.result)

			affected, err := repo.Delete(context.Background(), 1)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if affected != tt.wantAffected {
				t.Fatalf("expected %d affected, got %d", tt.wantAffected, affected)
			}
		})
	}
}
