package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/xid"
	"github.com/sakif/portfolio-api/internal/model"
	"github.com/sakif/portfolio-api/internal/repository"
)

// ContactRepo persists contact-form submissions. No Update — messages are
// created by visitors and only ever listed or deleted by the admin.
type ContactRepo struct {
	conn *sql.DB
}

var _ repository.ContactRepository = (*ContactRepo)(nil)

func NewContactRepo(db *DB) *ContactRepo {
	return &ContactRepo{conn: db.conn}
}

// List returns messages newest-first.
func (r *ContactRepo) List(ctx context.Context) ([]model.ContactMessage, error) {
	rows, err := r.conn.QueryContext(ctx,
		`SELECT id, name, email, subject, message, created_at, updated_at
		 FROM contact_messages ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing contact messages: %w", err)
	}
	defer rows.Close()

	msgs := []model.ContactMessage{}
	for rows.Next() {
		var m model.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("sqlite: scanning contact message row: %w", err)
		}
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating contact messages: %w", err)
	}

	return msgs, nil
}

func (r *ContactRepo) Create(ctx context.Context, msg *model.ContactMessage) error {
	now := time.Now()
	msg.ID = xid.New().String()
	msg.CreatedAt = now
	msg.UpdatedAt = now

	_, err := r.conn.ExecContext(ctx,
		`INSERT INTO contact_messages (id, name, email, subject, message, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		msg.ID, msg.Name, msg.Email, msg.Subject, msg.Message, msg.CreatedAt, msg.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating contact message: %w", err)
	}

	return nil
}

func (r *ContactRepo) Delete(ctx context.Context, id string) error {
	result, err := r.conn.ExecContext(ctx, `DELETE FROM contact_messages WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("sqlite: deleting contact message %s: %w", id, err)
	}

	return checkAffected(result, "Contact message")
}
