package hubrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/washhub/washhub/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_FindByPincode(t *testing.T) {
	repo, mock := NewMock(t)

	query := `SELECT id, name, pincodes, created_at FROM hubs WHERE $1 = ANY(pincodes) ORDER BY id ASC LIMIT 1`

	tests := []struct {
		name      string
		pincode   string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name:    "Hub covers the pincode",
			pincode: "600001",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("600001").
					WillReturnRows(pgxmock.NewRows([]string{"id", "name", "pincodes", "created_at"}).
						AddRow(1, "Central Hub", []string{"600001", "600002"}, time.Now()))
			},
			found: true,
		},
		{
			name:    "No hub covers the pincode",
			pincode: "999999",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("999999").
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name:    "Database error",
			pincode: "600001",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("600001").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			hub, err := repo.FindByPincode(context.Background(), tt.pincode)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.found {
				assert.Equal(t, "Central Hub", hub.Name)
				assert.Contains(t, hub.Pincodes, "600001")
			} else {
				assert.Nil(t, hub)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	created := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO hubs (name, pincodes) VALUES ($1, $2) RETURNING id, created_at`)).
		WithArgs("North Hub", []string{"600010"}).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(2, created))

	hub := &domain.Hub{Name: "North Hub", Pincodes: []string{"600010"}}
	assert.NoError(t, repo.Create(context.Background(), hub))
	assert.Equal(t, 2, hub.ID)
	assert.Equal(t, created, hub.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}
