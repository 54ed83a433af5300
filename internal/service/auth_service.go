package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"watchlist/internal/models"
	"watchlist/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles the single-admin login flow and session tokens.
type AuthService struct {
	users      repository.Users
	signingKey []byte
	sessionTTL time.Duration
}

func NewAuthService(users repository.Users, signingKey string, sessionTTL time.Duration) *AuthService {
	return &AuthService{
		users:      users,
		signingKey: []byte(signingKey),
		sessionTTL: sessionTTL,
	}
}

// Claims defines the session token payload.
type Claims struct {
	jwt.RegisteredClaims
	UserID int `json:"user_id"`
}

// Login checks the supplied credentials against the site owner and returns
// a signed session token plus the principal on success. There is exactly one
// account; any username other than the owner's fails the same way as a bad
// password.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	owner, err := s.users.Owner(ctx)
	if err != nil {
		return "", nil, err
	}
	if owner == nil || owner.Username != username {
		return "", nil, ErrInvalidCredentials
	}

	if err := verifyPassword(owner.PasswordHash, password); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(owner.ID)
	if err != nil {
		return "", nil, err
	}
	return token, owner, nil
}

// ParseSession parses a session token and returns the user id it carries.
func (s *AuthService) ParseSession(accessToken string) (int, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, ErrInvalidToken
	}

	return claims.UserID, nil
}

// UserByID resolves the principal for a parsed session. Returns (nil, nil)
// for an id with no backing row (e.g. a stale token after re-provisioning).
func (s *AuthService) UserByID(ctx context.Context, id int) (*models.User, error) {
	return s.users.ByID(ctx, id)
}

// ProvisionOwner hashes the password and creates or replaces the owner
// account. Idempotent; used by the admin CLI command.
func (s *AuthService) ProvisionOwner(ctx context.Context, name, username, password string) (int, error) {
	if strings.TrimSpace(username) == "" {
		return 0, fmt.Errorf("%w: username is empty", ErrInvalidInput)
	}
	hash, err := hashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("invalid password: %w", err)
	}
	return s.users.UpsertOwner(ctx, name, username, hash)
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// helper: issue a signed session token for a user
func (s *AuthService) issueToken(userID int) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
	})
	return token.SignedString(s.signingKey)
}
