package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/domain"
	"github.com/helderalustau/kiagenda-beauty-hub-sub001/pkg/dbmetrics"
	"github.com/helderalustau/kiagenda-beauty-hub-sub001/pkg/psqlbuilder"
)

var clientColumns = []string{
	"id",
	"salon_id",
	"user_id",
	"name",
	"phone",
	"created_at",
	"updated_at",
}

// Repository persists client profiles.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a client repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Resolve finds the client profile for the given identity within a salon,
// creating it when none exists. Lookup prefers the authenticated user id,
// falling back to the normalized phone. Runs inside the booking
// transaction, so a concurrent booking for the same new client serializes
// with this call.
func (r *Repository) Resolve(ctx context.Context, salonID int64, userID *int64, name, phone string) (*domain.Client, error) {
	if userID != nil {
		found, err := r.findBy(ctx, squirrel.Eq{"salon_id": salonID, "user_id": *userID})
		if err == nil {
			return found, nil
		}
		if err != ErrClientNotFound {
			return nil, err
		}
	}

	found, err := r.findBy(ctx, squirrel.Eq{"salon_id": salonID, "phone": phone})
	if err == nil {
		return found, nil
	}
	if err != ErrClientNotFound {
		return nil, err
	}

	return r.create(ctx, &domain.Client{
		SalonID: salonID,
		UserID:  userID,
		Name:    name,
		Phone:   phone,
	})
}

func (r *Repository) findBy(ctx context.Context, where squirrel.Eq) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(clientColumns...).
		From("clients").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: findBy - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.Client
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&c.SalonID,
		&c.UserID,
		&c.Name,
		&c.Phone,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: findBy - scan client: %v", ErrScanRow, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time
	return &c, nil
}

func (r *Repository) create(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("clients").
		Columns("salon_id", "user_id", "name", "phone").
		Values(c.SalonID, c.UserID, c.Name, c.Phone).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&c.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: create - execute insert: %v", ErrExecQuery, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time
	return c, nil
}
