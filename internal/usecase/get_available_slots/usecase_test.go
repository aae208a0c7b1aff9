package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/domain"
	salonRepo "github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/infra/storage/salon"
	serviceRepo "github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/infra/storage/service"
)

type fakeSalonRepo struct {
	salon *domain.Salon
	err   error
}

func (f *fakeSalonRepo) GetByID(_ context.Context, _ int64) (*domain.Salon, error) {
	return f.salon, f.err
}

type fakeServiceRepo struct {
	service *domain.Service
	err     error
}

func (f *fakeServiceRepo) GetBySalonAndID(_ context.Context, _, _ int64) (*domain.Service, error) {
	return f.service, f.err
}

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
}

func (f *fakeAppointmentRepo) GetBySalonWithFilter(_ context.Context, _ domain.SalonAppointmentsFilter) ([]*domain.Appointment, error) {
	return f.appointments, f.err
}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func mondaySchedule() domain.WeeklySchedule {
	return domain.WeeklySchedule{
		"monday": domain.DaySchedule{
			Open:  "09:00",
			Close: "18:00",
		},
	}
}

func newTestUseCase(salon *domain.Salon, service *domain.Service, appointments []*domain.Appointment) *UseCase {
	uc := NewUseCase(
		&fakeSalonRepo{salon: salon},
		&fakeServiceRepo{service: service},
		&fakeAppointmentRepo{appointments: appointments},
		nopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_HappyPath(t *testing.T) {
	uc := newTestUseCase(
		&domain.Salon{ID: 1, OpeningHours: mondaySchedule()},
		&domain.Service{ID: 2, SalonID: 1, DurationMinutes: 60, Active: true},
		nil,
	)

	resp, err := uc.Execute(context.Background(), &Request{
		SalonID:   1,
		ServiceID: 2,
		Date:      time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC), // a Monday
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, "09:00", string(resp.Slots[0]))
	assert.Equal(t, "17:00", string(resp.Slots[len(resp.Slots)-1]))
}

func TestExecute_ClosedDayReturnsEmpty(t *testing.T) {
	uc := newTestUseCase(
		&domain.Salon{ID: 1, OpeningHours: mondaySchedule()},
		&domain.Service{ID: 2, SalonID: 1, DurationMinutes: 30, Active: true},
		nil,
	)

	resp, err := uc.Execute(context.Background(), &Request{
		SalonID:   1,
		ServiceID: 2,
		Date:      time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC), // a Sunday
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_PastDateReturnsEmpty(t *testing.T) {
	uc := newTestUseCase(
		&domain.Salon{ID: 1, OpeningHours: mondaySchedule()},
		&domain.Service{ID: 2, SalonID: 1, DurationMinutes: 30, Active: true},
		nil,
	)

	resp, err := uc.Execute(context.Background(), &Request{
		SalonID:   1,
		ServiceID: 2,
		Date:      time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_SalonNotFound(t *testing.T) {
	uc := newTestUseCase(nil, nil, nil)
	uc.salonRepo = &fakeSalonRepo{err: salonRepo.ErrSalonNotFound}

	_, err := uc.Execute(context.Background(), &Request{
		SalonID:   99,
		ServiceID: 2,
		Date:      time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrSalonNotFound)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := newTestUseCase(
		&domain.Salon{ID: 1, OpeningHours: mondaySchedule()},
		nil,
		nil,
	)
	uc.serviceRepo = &fakeServiceRepo{err: serviceRepo.ErrServiceNotFound}

	_, err := uc.Execute(context.Background(), &Request{
		SalonID:   1,
		ServiceID: 99,
		Date:      time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InactiveService(t *testing.T) {
	uc := newTestUseCase(
		&domain.Salon{ID: 1, OpeningHours: mondaySchedule()},
		&domain.Service{ID: 2, SalonID: 1, DurationMinutes: 30, Active: false},
		nil,
	)

	_, err := uc.Execute(context.Background(), &Request{
		SalonID:   1,
		ServiceID: 2,
		Date:      time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrServiceNotBookable)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(nil, nil, nil)

	_, err := uc.Execute(context.Background(), &Request{
		SalonID:   0,
		ServiceID: 2,
		Date:      time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
