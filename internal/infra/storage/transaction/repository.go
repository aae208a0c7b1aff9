package transaction

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/domain"
	"github.com/helderalustau/kiagenda-beauty-hub-sub001/pkg/dbmetrics"
	"github.com/helderalustau/kiagenda-beauty-hub-sub001/pkg/psqlbuilder"
)

const pgUniqueViolation = "23505"

var transactionColumns = []string{
	"id",
	"salon_id",
	"appointment_id",
	"component",
	"description",
	"amount",
	"type",
	"category",
	"duration_minutes",
	"created_at",
}

// Repository persists derived financial transactions.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a financial transaction repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts one ledger row. The unique index on
// (appointment_id, component, description) maps to ErrDuplicateTransaction,
// which keeps reconciliation idempotent even when two "complete" clicks
// race each other.
func (r *Repository) Create(ctx context.Context, tx *domain.FinancialTransaction) (*domain.FinancialTransaction, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("financial_transactions").
		Columns(
			"salon_id",
			"appointment_id",
			"component",
			"description",
			"amount",
			"type",
			"category",
			"duration_minutes",
		).
		Values(
			tx.SalonID,
			tx.AppointmentID,
			tx.Component,
			tx.Description,
			tx.Amount,
			tx.Type,
			tx.Category,
			tx.DurationMinutes,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&tx.ID, &createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return nil, ErrDuplicateTransaction
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	tx.CreatedAt = createdAt.Time
	return tx, nil
}

// ListByAppointment returns the transactions already derived from an
// appointment, oldest first.
func (r *Repository) ListByAppointment(ctx context.Context, appointmentID int64) ([]*domain.FinancialTransaction, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(transactionColumns...).
		From("financial_transactions").
		Where(squirrel.Eq{"appointment_id": appointmentID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByAppointment - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByAppointment - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// ListBySalon returns all derived transactions of a salon, oldest first.
func (r *Repository) ListBySalon(ctx context.Context, salonID int64) ([]*domain.FinancialTransaction, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(transactionColumns...).
		From("financial_transactions").
		Where(squirrel.Eq{"salon_id": salonID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBySalon - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBySalon - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

func scanTransactions(rows *sql.Rows) ([]*domain.FinancialTransaction, error) {
	transactions := make([]*domain.FinancialTransaction, 0)

	for rows.Next() {
		var tx domain.FinancialTransaction
		var createdAt sql.NullTime

		err := rows.Scan(
			&tx.ID,
			&tx.SalonID,
			&tx.AppointmentID,
			&tx.Component,
			&tx.Description,
			&tx.Amount,
			&tx.Type,
			&tx.Category,
			&tx.DurationMinutes,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanTransactions - scan row: %v", ErrScanRow, err)
		}

		tx.CreatedAt = createdAt.Time
		transactions = append(transactions, &tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanTransactions - rows error: %v", ErrScanRow, err)
	}

	return transactions, nil
}
