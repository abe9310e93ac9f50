package hubrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

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

// FindByPincode returns the first hub servicing the pincode, or nil when no
// hub covers it.
func (r *Repository) FindByPincode(ctx context.Context, pincode string) (*domain.Hub, error) {
	query := `
        SELECT id, name, pincodes, created_at
        FROM hubs
        WHERE $1 = ANY(pincodes)
        ORDER BY id ASC
        LIMIT 1
    `
	row := r.db.QueryRow(ctx, query, pincode)

	var hub domain.Hub
	err := row.Scan(&hub.ID, &hub.Name, &hub.Pincodes, &hub.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to find hub by pincode", zap.Error(err))
		return nil, err
	}
	return &hub, nil
}

func (r *Repository) Create(ctx context.Context, hub *domain.Hub) error {
	query := `
        INSERT INTO hubs (name, pincodes)
        VALUES ($1, $2)
        RETURNING id, created_at
    `
	row := r.db.QueryRow(ctx, query, hub.Name, hub.Pincodes)
	if err := row.Scan(&hub.ID, &hub.CreatedAt); err != nil {
		zap.L().Error("failed to create hub", zap.Error(err))
		return err
	}
	return nil
}
