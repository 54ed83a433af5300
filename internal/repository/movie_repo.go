package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"watchlist/internal/models"
)

type MovieRepository struct {
	db *sql.DB
}

func NewMovieRepository(db *sql.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

var _ Movies = (*MovieRepository)(nil)

const (
	selectMoviesSQL    = `SELECT id, title, year FROM movies ORDER BY id ASC`
	selectMovieByIDSQL = `SELECT id, title, year FROM movies WHERE id = ?`
	insertMovieSQL     = `INSERT INTO movies (title, year) VALUES (?, ?)`
	updateMovieSQL     = `UPDATE movies SET title = ?, year = ? WHERE id = ?`
	deleteMovieSQL     = `DELETE FROM movies WHERE id = ?`
)

// List returns all movies in insertion order.
func (r *MovieRepository) List(ctx context.Context) ([]models.Movie, error) {
	rows, err := r.db.QueryContext(ctx, selectMoviesSQL)
	if err != nil {
		return nil, fmt.Errorf("select movies: %w", err)
	}
	defer rows.Close()

	out := make([]models.Movie, 0, 16)
	for rows.Next() {
		var m models.Movie
		if err := rows.Scan(&m.ID, &m.Title, &m.Year); err != nil {
			return nil, fmt.Errorf("scan movie row: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movie rows: %w", err)
	}
	return out, nil
}

// ByID fetches a movie by id. Returns (nil, nil) if not found.
func (r *MovieRepository) ByID(ctx context.Context, id int) (*models.Movie, error) {
	var m models.Movie
	err := r.db.QueryRowContext(ctx, selectMovieByIDSQL, id).Scan(&m.ID, &m.Title, &m.Year)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select movie %d: %w", id, err)
	}
	return &m, nil
}

// Insert adds a new movie and returns its ID.
func (r *MovieRepository) Insert(ctx context.Context, title, year string) (int, error) {
	res, err := r.db.ExecContext(ctx, insertMovieSQL, title, year)
	if err != nil {
		return 0, fmt.Errorf("insert movie %q: %w", title, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for movie %q: %w", title, err)
	}
	return int(lastID), nil
}

// Update rewrites title and year in place and reports affected rows, so the
// caller can distinguish a missing id from a successful update.
func (r *MovieRepository) Update(ctx context.Context, id int, title, year string) (int64, error) {
	res, err := r.db.ExecContext(ctx, updateMovieSQL, title, year, id)
	if err != nil {
		return 0, fmt.Errorf("update movie %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected for movie %d: %w", id, err)
	}
	return affected, nil
}

// Delete removes the row and reports affected rows.
func (r *MovieRepository) Delete(ctx context.Context, id int) (int64, error) {
	res, err := r.db.ExecContext(ctx, deleteMovieSQL, id)
	if err != nil {
		return 0, fmt.Errorf("delete movie %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected for movie %d: %w", id, err)
	}
	return affected, nil
}
