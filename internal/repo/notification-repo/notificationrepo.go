package notificationrepo

import (
	"context"
	"time"

	"github.com/washhub/washhub/internal/domain"
	"github.com/washhub/washhub/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, n *domain.Notification) error {
	query := `
        INSERT INTO notifications (title, message, audience, customer_id, status)
        VALUES ($1, $2, $3, $4, 'created')
        RETURNING id, created_at
    `
	row := r.db.QueryRow(ctx, query, n.Title, n.Message, n.Audience, n.CustomerID)
	if err := row.Scan(&n.ID, &n.CreatedAt); err != nil {
		zap.L().Error("failed to create notification", zap.Error(err))
		return err
	}
	n.Status = "created"
	return nil
}

func (r *Repository) FindPending(ctx context.Context, limit uint32) ([]domain.Notification, error) {
	query := `
        SELECT id, title, message, audience, customer_id, status, created_at, sent_at
        FROM notifications
        WHERE status = 'created'
        ORDER BY created_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("failed to fetch pending notifications", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var n domain.Notification
		err := rows.Scan(&n.ID, &n.Title, &n.Message, &n.Audience, &n.CustomerID,
			&n.Status, &n.CreatedAt, &n.SentAt)
		if err != nil {
			zap.L().Error("failed to scan notification row", zap.Error(err))
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, nil
}

func (r *Repository) MarkSent(ctx context.Context, id int) error {
	query := `
        UPDATE notifications
        SET status = 'sent', sent_at = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, time.Now(), id)
	if err != nil {
		zap.L().Error("failed to mark notification sent", zap.Error(err))
		return err
	}
	return nil
}
