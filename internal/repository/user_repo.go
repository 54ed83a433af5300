package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"watchlist/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	selectOwnerSQL      = `SELECT id, name, username, password_hash FROM users ORDER BY id ASC LIMIT 1`
	selectUserByIDSQL   = `SELECT id, name, username, password_hash FROM users WHERE id = ?`
	updateUserNameSQL   = `UPDATE users SET name = ? WHERE id = ?`
	insertUserSQL       = `INSERT INTO users (name, username, password_hash) VALUES (?, ?, ?)`
	updateOwnerCredsSQL = `UPDATE users SET name = ?, username = ?, password_hash = ? WHERE id = ?`
)

// Owner fetches the site owner: the lowest-id user row. Returns (nil, nil)
// when no user has been provisioned yet.
func (r *UserRepository) Owner(ctx context.Context) (*models.User, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, selectOwnerSQL), "owner")
}

// ByID fetches a user by id. Returns (nil, nil) if not found.
func (r *UserRepository) ByID(ctx context.Context, id int) (*models.User, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, selectUserByIDSQL, id), fmt.Sprintf("id %d", id))
}

func (r *UserRepository) scanOne(row *sql.Row, what string) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Username, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %s: %w", what, err)
	}
	return &u, nil
}

// UpdateName sets a user's display name.
func (r *UserRepository) UpdateName(ctx context.Context, id int, name string) error {
	if _, err := r.db.ExecContext(ctx, updateUserNameSQL, name, id); err != nil {
		return fmt.Errorf("update name for user %d: %w", id, err)
	}
	return nil
}

// UpsertOwner creates the owner row, or replaces its credentials if one
// already exists, and returns the owner id. Used by provisioning only.
func (r *UserRepository) UpsertOwner(ctx context.Context, name, username, passwordHash string) (int, error) {
	owner, err := r.Owner(ctx)
	if err != nil {
		return 0, err
	}

	if owner != nil {
		if _, err := r.db.ExecContext(ctx, updateOwnerCredsSQL, name, username, passwordHash, owner.ID); err != nil {
			return 0, fmt.Errorf("update owner %d: %w", owner.ID, err)
		}
		return owner.ID, nil
	}

	res, err := r.db.ExecContext(ctx, insertUserSQL, name, username, passwordHash)
	if err != nil {
		return 0, fmt.Errorf("insert user %q: %w", username, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for user %q: %w", username, err)
	}
	return int(lastID), nil
}
