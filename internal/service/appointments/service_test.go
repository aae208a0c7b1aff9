package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/domain"
	appointmentRepo "github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/infra/storage/appointment"
	"github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/service/appointments/models"
	"github.com/helderalustau/kiagenda-beauty-hub-sub001/pkg/ptr"
)

type fakeRepo struct {
	appointments map[int64]*domain.Appointment
	updateErr    error
}

func newFakeRepo(appts ...*domain.Appointment) *fakeRepo {
	m := make(map[int64]*domain.Appointment)
	for _, a := range appts {
		m[a.ID] = a
	}
	return &fakeRepo{appointments: m}
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	a, ok := f.appointments[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	out := *a
	return &out, nil
}

func (f *fakeRepo) GetBySalonWithFilter(_ context.Context, filter domain.SalonAppointmentsFilter) ([]*domain.Appointment, error) {
	var out []*domain.Appointment
	for _, a := range f.appointments {
		if a.SalonID != filter.SalonID {
			continue
		}
		if !filter.IncludeCancelled && a.Status == domain.StatusCancelled {
			continue
		}
		if filter.Status != nil && a.Status != *filter.Status {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus, notes *string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	a, ok := f.appointments[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	a.Status = status
	if notes != nil {
		a.Notes = notes
	}
	return nil
}

func (f *fakeRepo) Cancel(_ context.Context, id int64, reason string) error {
	a, ok := f.appointments[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	a.Status = domain.StatusCancelled
	a.CancellationReason = &reason
	return nil
}

type fakeFinance struct {
	processed []int64
	err       error
}

func (f *fakeFinance) Process(_ context.Context, appointmentID int64) error {
	f.processed = append(f.processed, appointmentID)
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func pendingAppointment(id int64) *domain.Appointment {
	return &domain.Appointment{
		ID:              id,
		SalonID:         1,
		ServiceID:       2,
		ClientID:        3,
		AppointmentDate: time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		AppointmentTime: "10:00",
		DurationMinutes: 60,
		Status:          domain.StatusPending,
		ServiceName:     "Corte Feminino",
		ServicePrice:    80,
	}
}

func TestGetByID(t *testing.T) {
	svc := NewService(newFakeRepo(pendingAppointment(1)), &fakeFinance{}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "pending", resp.Status)

	_, err = svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestUpdateStatus_AllowedTransition(t *testing.T) {
	repo := newFakeRepo(pendingAppointment(1))
	svc := NewService(repo, &fakeFinance{}, nopLogger{})

	resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "confirmed"})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestUpdateStatus_IllegalTransitionRejected(t *testing.T) {
	tests := []struct {
		name string
		from domain.AppointmentStatus
		to   string
	}{
		{"pending to completed", domain.StatusPending, "completed"},
		{"completed to confirmed", domain.StatusCompleted, "confirmed"},
		{"completed to cancelled", domain.StatusCompleted, "cancelled"},
		{"cancelled to confirmed", domain.StatusCancelled, "confirmed"},
		{"confirmed to pending", domain.StatusConfirmed, "pending"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := pendingAppointment(1)
			a.Status = tt.from
			repo := newFakeRepo(a)
			finance := &fakeFinance{}
			svc := NewService(repo, finance, nopLogger{})

			_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: tt.to})
			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.Equal(t, tt.from, repo.appointments[1].Status)
			assert.Empty(t, finance.processed)
		})
	}
}

func TestUpdateStatus_CompletionRecordsRevenue(t *testing.T) {
	a := pendingAppointment(1)
	a.Status = domain.StatusConfirmed
	repo := newFakeRepo(a)
	finance := &fakeFinance{}
	svc := NewService(repo, finance, nopLogger{})

	resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "completed"})
	require.NoError(t, err)
	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, []int64{1}, finance.processed)
}

func TestUpdateStatus_RevenueFailureDoesNotRollBack(t *testing.T) {
	a := pendingAppointment(1)
	a.Status = domain.StatusConfirmed
	repo := newFakeRepo(a)
	finance := &fakeFinance{err: errors.New("db down")}
	svc := NewService(repo, finance, nopLogger{})

	resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "completed"})
	require.NoError(t, err)
	assert.Equal(t, "completed", resp.Status)
}

func TestUpdateStatus_InvalidStatusString(t *testing.T) {
	svc := NewService(newFakeRepo(pendingAppointment(1)), &fakeFinance{}, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "banana"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel(t *testing.T) {
	repo := newFakeRepo(pendingAppointment(1))
	svc := NewService(repo, &fakeFinance{}, nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelRequest{Reason: "cliente desistiu"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, repo.appointments[1].Status)
	require.NotNil(t, repo.appointments[1].CancellationReason)
	assert.Equal(t, "cliente desistiu", *repo.appointments[1].CancellationReason)
}

func TestCancel_TerminalStates(t *testing.T) {
	for _, status := range []domain.AppointmentStatus{domain.StatusCompleted, domain.StatusCancelled} {
		t.Run(string(status), func(t *testing.T) {
			a := pendingAppointment(1)
			a.Status = status
			svc := NewService(newFakeRepo(a), &fakeFinance{}, nopLogger{})

			err := svc.Cancel(context.Background(), 1, &models.CancelRequest{Reason: "x"})
			assert.ErrorIs(t, err, ErrCannotCancel)
		})
	}
}

func TestGetSalonAppointments_StatusFilter(t *testing.T) {
	confirmed := pendingAppointment(2)
	confirmed.Status = domain.StatusConfirmed
	cancelled := pendingAppointment(3)
	cancelled.Status = domain.StatusCancelled

	repo := newFakeRepo(pendingAppointment(1), confirmed, cancelled)
	svc := NewService(repo, &fakeFinance{}, nopLogger{})

	resp, err := svc.GetSalonAppointments(context.Background(), &models.GetSalonAppointmentsRequest{
		SalonID: 1,
		Status:  ptr.Ptr("confirmed"),
	})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, int64(2), resp.Appointments[0].ID)

	// Cancelled excluded by default.
	resp, err = svc.GetSalonAppointments(context.Background(), &models.GetSalonAppointmentsRequest{SalonID: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)

	resp, err = svc.GetSalonAppointments(context.Background(), &models.GetSalonAppointmentsRequest{
		SalonID:          1,
		IncludeCancelled: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Total)
}
