package transaction

import "errors"

var (
	// ErrDuplicateTransaction is returned when the unique index rejects an
	// insert: a transaction for this appointment/component pair already
	// exists. Callers treat this as "already reconciled", not as a failure.
	ErrDuplicateTransaction = errors.New("transaction.repository: duplicate transaction for appointment component")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("transaction.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("transaction.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("transaction.repository: failed to scan row")
)
