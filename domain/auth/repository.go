package auth

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	// ErrEmailTaken is returned when registering an email that already exists.
	ErrEmailTaken = errors.New("email already registered")
	// ErrNotFound is returned when no identity matches the email.
	ErrNotFound = errors.New("admin user not found")
)

// Repository persists admin identities.
type Repository interface {
	Create(ctx context.Context, email, name, passwordHash string) (*AdminUser, error)
	GetByEmail(ctx context.Context, email string) (*AdminUser, error)
}

type pgRepository struct {
	db *sqlx.DB
}

// NewRepository creates a Postgres-backed admin user repository.
func NewRepository(db *sqlx.DB) Repository {
	return &pgRepository{db: db}
}

func (r *pgRepository) Create(ctx context.Context, email, name, passwordHash string) (*AdminUser, error) {
	user := &AdminUser{
		ID:        uuid.New().String(),
		Email:     email,
		Name:      name,
		Password:  passwordHash,
		Role:      "admin",
		CreatedAt: time.Now().UTC(),
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO admin_users (id, email, name, password, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.Name, user.Password, user.Role, user.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return user, nil
}

func (r *pgRepository) GetByEmail(ctx context.Context, email string) (*AdminUser, error) {
	var user AdminUser
	err := r.db.GetContext(ctx, &user, `
		SELECT id, email, name, password, role, created_at
		FROM admin_users
		WHERE email = $1`,
		email,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
