package sync_transactions

import "context"

type FinanceService interface {
	Resync(ctx context.Context, salonID int64) (int, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
