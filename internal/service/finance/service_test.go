package finance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/domain"
	appointmentRepo "github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/infra/storage/appointment"
	transactionRepo "github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/infra/storage/transaction"
	"github.com/helderalustau/kiagenda-beauty-hub-sub001/pkg/ptr"
)

type fakeAppointmentRepo struct {
	appointments map[int64]*domain.Appointment
}

func newFakeAppointmentRepo(appts ...*domain.Appointment) *fakeAppointmentRepo {
	m := make(map[int64]*domain.Appointment)
	for _, a := range appts {
		m[a.ID] = a
	}
	return &fakeAppointmentRepo{appointments: m}
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	a, ok := f.appointments[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return a, nil
}

func (f *fakeAppointmentRepo) ListCompletedBySalon(_ context.Context, salonID int64) ([]*domain.Appointment, error) {
	var out []*domain.Appointment
	for _, a := range f.appointments {
		if a.SalonID == salonID && a.Status == domain.StatusCompleted {
			out = append(out, a)
		}
	}
	return out, nil
}

// fakeTransactionRepo enforces the unique (appointment, component,
// description) index like the real storage does.
type fakeTransactionRepo struct {
	transactions []*domain.FinancialTransaction
	nextID       int64
}

func (f *fakeTransactionRepo) Create(_ context.Context, tx *domain.FinancialTransaction) (*domain.FinancialTransaction, error) {
	for _, existing := range f.transactions {
		if existing.AppointmentID == tx.AppointmentID &&
			existing.Component == tx.Component &&
			existing.Description == tx.Description {
			return nil, transactionRepo.ErrDuplicateTransaction
		}
	}
	f.nextID++
	out := *tx
	out.ID = f.nextID
	out.CreatedAt = time.Date(2026, 9, 1, 3, 0, 0, 0, time.UTC)
	f.transactions = append(f.transactions, &out)
	return &out, nil
}

func (f *fakeTransactionRepo) ListByAppointment(_ context.Context, appointmentID int64) ([]*domain.FinancialTransaction, error) {
	var out []*domain.FinancialTransaction
	for _, tx := range f.transactions {
		if tx.AppointmentID == appointmentID {
			out = append(out, tx)
		}
	}
	return out, nil
}

type fakeSalonRepo struct {
	ids []int64
}

func (f *fakeSalonRepo) ListIDs(_ context.Context) ([]int64, error) {
	return f.ids, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func completedAppointment(id, salonID int64, notes *string) *domain.Appointment {
	return &domain.Appointment{
		ID:              id,
		SalonID:         salonID,
		ServiceID:       2,
		ClientID:        3,
		AppointmentDate: time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		AppointmentTime: "10:00",
		DurationMinutes: 60,
		Status:          domain.StatusCompleted,
		ServiceName:     "Corte Feminino",
		ServicePrice:    80,
		Notes:           notes,
	}
}

func TestProcess_MainComponentOnly(t *testing.T) {
	txRepo := &fakeTransactionRepo{}
	svc := NewService(newFakeAppointmentRepo(completedAppointment(1, 10, nil)), txRepo, &fakeSalonRepo{}, nopLogger{})

	err := svc.Process(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, txRepo.transactions, 1)
	tx := txRepo.transactions[0]
	assert.Equal(t, domain.ComponentMain, tx.Component)
	assert.Equal(t, "Corte Feminino", tx.Description)
	assert.Equal(t, 80.0, tx.Amount)
	assert.Equal(t, domain.TransactionTypeIncome, tx.Type)
	assert.Equal(t, domain.CategoryServiceRevenue, tx.Category)
	assert.Equal(t, 60, tx.DurationMinutes)
	assert.Equal(t, int64(10), tx.SalonID)
}

func TestProcess_WithAddOns(t *testing.T) {
	notes := ptr.Ptr("Cliente quer corte rápido\n\nServiços Adicionais: Barba (20min - R$ 25,00), Sobrancelha (10min - R$ 15,00)")
	txRepo := &fakeTransactionRepo{}
	svc := NewService(newFakeAppointmentRepo(completedAppointment(1, 10, notes)), txRepo, &fakeSalonRepo{}, nopLogger{})

	err := svc.Process(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, txRepo.transactions, 3)

	var total float64
	var minutes int
	for _, tx := range txRepo.transactions {
		total += tx.Amount
		minutes += tx.DurationMinutes
	}
	assert.Equal(t, 120.0, total) // 80 + 25 + 15
	assert.Equal(t, 90, minutes)  // 60 + 20 + 10
}

func TestProcess_Idempotent(t *testing.T) {
	notes := ptr.Ptr("Serviços Adicionais: Barba (20min - R$ 25,00)")
	txRepo := &fakeTransactionRepo{}
	svc := NewService(newFakeAppointmentRepo(completedAppointment(1, 10, notes)), txRepo, &fakeSalonRepo{}, nopLogger{})

	require.NoError(t, svc.Process(context.Background(), 1))
	require.NoError(t, svc.Process(context.Background(), 1))
	require.NoError(t, svc.Process(context.Background(), 1))

	assert.Len(t, txRepo.transactions, 2)
}

func TestProcess_NotCompleted(t *testing.T) {
	a := completedAppointment(1, 10, nil)
	a.Status = domain.StatusConfirmed
	txRepo := &fakeTransactionRepo{}
	svc := NewService(newFakeAppointmentRepo(a), txRepo, &fakeSalonRepo{}, nopLogger{})

	err := svc.Process(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNotCompleted)
	assert.Empty(t, txRepo.transactions)
}

func TestProcess_NotFound(t *testing.T) {
	svc := NewService(newFakeAppointmentRepo(), &fakeTransactionRepo{}, &fakeSalonRepo{}, nopLogger{})

	err := svc.Process(context.Background(), 99)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestResync_Convergence(t *testing.T) {
	notes := ptr.Ptr("Serviços Adicionais: Barba (20min - R$ 25,00)")
	apptRepo := newFakeAppointmentRepo(
		completedAppointment(1, 10, nil),
		completedAppointment(2, 10, notes),
		completedAppointment(3, 11, nil), // other salon
	)
	txRepo := &fakeTransactionRepo{}
	svc := NewService(apptRepo, txRepo, &fakeSalonRepo{}, nopLogger{})

	// Simulate a partially reconciled ledger: appointment 1 already done.
	require.NoError(t, svc.Process(context.Background(), 1))

	created, err := svc.Resync(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 2, created) // main + add-on for appointment 2

	// Repeated resync creates nothing further.
	created, err = svc.Resync(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 0, created)

	assert.Len(t, txRepo.transactions, 3)
}

func TestResyncAll(t *testing.T) {
	apptRepo := newFakeAppointmentRepo(
		completedAppointment(1, 10, nil),
		completedAppointment(2, 11, nil),
	)
	txRepo := &fakeTransactionRepo{}
	svc := NewService(apptRepo, txRepo, &fakeSalonRepo{ids: []int64{10, 11}}, nopLogger{})

	created, err := svc.ResyncAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, created)
}

func TestReconcile_DuplicateFromRaceTolerated(t *testing.T) {
	a := completedAppointment(1, 10, nil)
	txRepo := &fakeTransactionRepo{}
	svc := NewService(newFakeAppointmentRepo(a), txRepo, &fakeSalonRepo{}, nopLogger{})

	// A racing call inserted the main row between our list and create.
	_, err := txRepo.Create(context.Background(), &domain.FinancialTransaction{
		AppointmentID: 1,
		Component:     domain.ComponentMain,
		Description:   "Corte Feminino",
	})
	require.NoError(t, err)

	err = svc.Process(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, txRepo.transactions, 1)
}
