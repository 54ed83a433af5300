package service

import (
	"context"
	"fmt"
	"unicode/utf8"

	"watchlist/internal/models"
	"watchlist/internal/repository"
)

// Display names submitted through settings share the title bound, not the
// provisioning-time 20-character one. That asymmetry is deliberate.
const maxDisplayNameLen = 60

// ProfileService implements owner lookup and display-name updates.
type ProfileService struct {
	users repository.Users
}

func NewProfileService(users repository.Users) *ProfileService {
	return &ProfileService{users: users}
}

// Owner returns the site owner, or (nil, nil) before provisioning.
func (s *ProfileService) Owner(ctx context.Context) (*models.User, error) {
	return s.users.Owner(ctx)
}

// UpdateName validates and stores a new display name for the given user.
func (s *ProfileService) UpdateName(ctx context.Context, id int, name string) error {
	if name == "" || utf8.RuneCountInString(name) > maxDisplayNameLen {
		return fmt.Errorf("%w: name must be non-empty and at most %d characters", ErrInvalidInput, maxDisplayNameLen)
	}
	return s.users.UpdateName(ctx, id, name)
}
