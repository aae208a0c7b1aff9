package appointment

import (
	"context"
	"database/sql"

	"github.com/helderalustau/kiagenda-beauty-hub-sub001/pkg/dbmetrics"
)

// Reuse the dbmetrics executor interfaces so the repository works both with
// the instrumented DB wrapper and a plain *sql.DB.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner is implemented by *dbmetrics.DB and *sql.DB.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
