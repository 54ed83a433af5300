package service

import (
	"context"
	"time"

	"watchlist/internal/models"
	"watchlist/internal/repository"
)

// Authorization handles login, session tokens, and owner provisioning.
type Authorization interface {
	Login(ctx context.Context, username, password string) (string, *models.User, error)
	ParseSession(token string) (int, error)
	UserByID(ctx context.Context, id int) (*models.User, error)
	ProvisionOwner(ctx context.Context, name, username, password string) (int, error)
}

// Watchlist exposes the movie list and its mutations, with input validation
// at this boundary rather than in the schema.
type Watchlist interface {
	List(ctx context.Context) ([]models.Movie, error)
	Get(ctx context.Context, id int) (*models.Movie, error)
	Create(ctx context.Context, title, year string) (models.Movie, error)
	Update(ctx context.Context, id int, title, year string) error
	Delete(ctx context.Context, id int) error
}

// Profile exposes the owner record and display-name updates.
type Profile interface {
	Owner(ctx context.Context) (*models.User, error)
	UpdateName(ctx context.Context, id int, name string) error
}

// Service aggregates all sub-services behind one handle for the HTTP layer.
type Service struct {
	Authorization
	Watchlist
	Profile
}

// NewService wires the repository layer into concrete services. The session
// secret and TTL come from configuration.
func NewService(repos *repository.Repository, sessionSecret string, sessionTTL time.Duration) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, sessionSecret, sessionTTL),
		Watchlist:     NewWatchlistService(repos.Movies),
		Profile:       NewProfileService(repos.Users),
	}
}
