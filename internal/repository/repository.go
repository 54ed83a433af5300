package repository

import (
	"context"
	"database/sql"

	"watchlist/internal/models"
)

type Users interface {
	Owner(ctx context.Context) (*models.User, error)
	ByID(ctx context.Context, id int) (*models.User, error)
	UpdateName(ctx context.Context, id int, name string) error
	UpsertOwner(ctx context.Context, name, username, passwordHash string) (int, error)
}

type Movies interface {
	List(ctx context.Context) ([]models.Movie, error)
	ByID(ctx context.Context, id int) (*models.Movie, error)
	Insert(ctx context.Context, title, year string) (int, error)
	Update(ctx context.Context, id int, title, year string) (int64, error)
	Delete(ctx context.Context, id int) (int64, error)
}

type Repository struct {
	Users  Users
	Movies Movies
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:  NewUserRepository(db),
		Movies: NewMovieRepository(db),
	}
}
