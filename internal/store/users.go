// Package store persists user accounts and favorite drivers in
// Postgres. The account surface is deliberately thin: registration,
// credential check, and a per-user favorite-driver list. Session and
// cookie handling live outside this service.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// ErrNotFound is returned when a user does not exist.
var ErrNotFound = errors.New("user not found")

// ErrInvalidCredentials is returned when a password check fails.
var ErrInvalidCredentials = errors.New("invalid credentials")

// User is a registered account.
type User struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`

	passwordHash string
}

// Users is the pgx-backed account store.
type Users struct {
	pool *pgxpool.Pool
}

// NewUsers creates the account store.
func NewUsers(pool *pgxpool.Pool) *Users {
	return &Users{pool: pool}
}

// Create registers a new account with a bcrypt-hashed password.
func (s *Users) Create(ctx context.Context, username, email, password string) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		CreatedAt:    time.Now().UTC(),
		passwordHash: string(hash),
	}

	_, err = s.pool.Exec(ctx, "user_insert", u.ID, u.Username, u.Email, u.passwordHash, u.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

// Authenticate verifies a username/password pair.
func (s *Users) Authenticate(ctx context.Context, username, password string) (*User, error) {
	u, err := s.ByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// ByUsername fetches an account by username.
func (s *Users) ByUsername(ctx context.Context, username string) (*User, error) {
	return s.scanUser(s.pool.QueryRow(ctx, "user_by_username", username))
}

// ByID fetches an account by ID.
func (s *Users) ByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.scanUser(s.pool.QueryRow(ctx, "user_by_id", id))
}

func (s *Users) scanUser(row pgx.Row) (*User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.passwordHash, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}

// AddFavorite records a favorite driver for a user. Duplicate adds are
// no-ops.
func (s *Users) AddFavorite(ctx context.Context, userID uuid.UUID, driverID string) error {
	_, err := s.pool.Exec(ctx, "favorite_insert", userID, driverID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("add favorite: %w", err)
	}
	return nil
}

// RemoveFavorite removes a favorite driver.
func (s *Users) RemoveFavorite(ctx context.Context, userID uuid.UUID, driverID string) error {
	_, err := s.pool.Exec(ctx, "favorite_delete", userID, driverID)
	if err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}
	return nil
}

// Favorites lists a user's favorite driver IDs in insertion order.
func (s *Users) Favorites(ctx context.Context, userID uuid.UUID) ([]string, error) {
	rows, err := s.pool.Query(ctx, "favorite_list", userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	defer rows.Close()

	var drivers []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan favorite: %w", err)
		}
		drivers = append(drivers, id)
	}
	return drivers, rows.Err()
}
