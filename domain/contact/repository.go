package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ErrNotFound is returned when no contact matches the id.
var ErrNotFound = errors.New("contact not found")

// Repository persists contact submissions. There is no delete: records are
// kept for the admin panel indefinitely.
type Repository interface {
	Create(ctx context.Context, c *Contact) error
	List(ctx context.Context, filter ListFilter) ([]Contact, int, error)
	UpdateStatus(ctx context.Context, id, status string) error
	MarkEmailSent(ctx context.Context, id string) error
}

type pgRepository struct {
	db *sqlx.DB
}

// NewRepository creates a Postgres-backed contact repository.
func NewRepository(db *sqlx.DB) Repository {
	return &pgRepository{db: db}
}

func (r *pgRepository) Create(ctx context.Context, c *Contact) error {
	c.ID = uuid.New().String()
	c.SubmittedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO contacts
			(id, name, email, phone, service, message, meeting_date, meeting_time,
			 status, submitted_at, email_sent)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		c.ID, c.Name, c.Email, c.Phone, c.Service, c.Message, c.MeetingDate,
		c.MeetingTime, c.Status, c.SubmittedAt, c.EmailSent,
	)
	return err
}

func (r *pgRepository) List(ctx context.Context, filter ListFilter) ([]Contact, int, error) {
	where := []string{}
	args := []interface{}{}
	n := 1

	if filter.Status != "" {
		where = append(where, fmt.Sprintf("status = $%d", n))
		args = append(args, filter.Status)
		n++
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM contacts"+clause, args...); err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`
		SELECT id, name, email, phone, service, message, meeting_date,
		       meeting_time, status, submitted_at, email_sent
		FROM contacts%s
		ORDER BY submitted_at DESC
		LIMIT $%d OFFSET $%d`, clause, n, n+1)
	args = append(args, filter.Limit, offset)

	items := []Contact{}
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *pgRepository) UpdateStatus(ctx context.Context, id, status string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE contacts SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgRepository) MarkEmailSent(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE contacts SET email_sent = TRUE WHERE id = $1", id)
	return err
}
