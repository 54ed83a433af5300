package service

import (
	"context"
	"fmt"
	"unicode/utf8"

	"watchlist/internal/models"
	"watchlist/internal/repository"
)

// Form field bounds, enforced here rather than in the schema.
const (
	maxTitleLen = 60
	maxYearLen  = 4
)

// WatchlistService implements movie list reads and mutations.
type WatchlistService struct {
	movies repository.Movies
}

func NewWatchlistService(movies repository.Movies) *WatchlistService {
	return &WatchlistService{movies: movies}
}

// validateEntry rejects empty or oversized title/year values.
func validateEntry(title, year string) error {
	if title == "" || utf8.RuneCountInString(title) > maxTitleLen {
		return fmt.Errorf("%w: title must be non-empty and at most %d characters", ErrInvalidInput, maxTitleLen)
	}
	if year == "" || utf8.RuneCountInString(year) > maxYearLen {
		return fmt.Errorf("%w: year must be non-empty and at most %d characters", ErrInvalidInput, maxYearLen)
	}
	return nil
}

// List returns every movie in insertion order.
func (s *WatchlistService) List(ctx context.Context) ([]models.Movie, error) {
	return s.movies.List(ctx)
}

// Get resolves a movie by id or reports ErrNotFound.
func (s *WatchlistService) Get(ctx context.Context, id int) (*models.Movie, error) {
	m, err := s.movies.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("%w: movie %d", ErrNotFound, id)
	}
	return m, nil
}

// Create validates and inserts a new entry, returning the stored row.
func (s *WatchlistService) Create(ctx context.Context, title, year string) (models.Movie, error) {
	if err := validateEntry(title, year); err != nil {
		return models.Movie{}, err
	}
	id, err := s.movies.Insert(ctx, title, year)
	if err != nil {
		return models.Movie{}, err
	}
	return models.Movie{ID: id, Title: title, Year: year}, nil
}

// Update validates and rewrites an existing entry in place.
func (s *WatchlistService) Update(ctx context.Context, id int, title, year string) error {
	if err := validateEntry(title, year); err != nil {
		return err
	}
	affected, err := s.movies.Update(ctx, id, title, year)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: movie %d", ErrNotFound, id)
	}
	return nil
}

// Delete removes an entry or reports ErrNotFound.
func (s *WatchlistService) Delete(ctx context.Context, id int) error {
	affected, err := s.movies.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: movie %d", ErrNotFound, id)
	}
	return nil
}
