package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/domain"
	salonRepo "github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/infra/storage/salon"
	serviceRepo "github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/infra/storage/service"
	"github.com/helderalustau/kiagenda-beauty-hub-sub001/pkg/types"
)

// UseCase computes the bookable time slots for a salon, service and date.
type UseCase struct {
	salonRepo       SalonRepository
	serviceRepo     ServiceRepository
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the use case.
func NewUseCase(
	salonRepo SalonRepository,
	serviceRepo ServiceRepository,
	appointmentRepo AppointmentRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		salonRepo:       salonRepo,
		serviceRepo:     serviceRepo,
		appointmentRepo: appointmentRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute runs the availability computation. The result is recomputed
// fresh on every call; no state is retained between requests.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: salon=%d, service=%d, date=%s",
		req.SalonID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	emptyResponse := &Response{
		Date:      req.Date,
		SalonID:   req.SalonID,
		ServiceID: req.ServiceID,
		Slots:     []types.TimeString{},
	}

	// 2. Dates in the past never have bookable slots
	if isDateInPast(req.Date, now) {
		return emptyResponse, nil
	}

	// 3. Load the salon
	salon, err := uc.salonRepo.GetByID(ctx, req.SalonID)
	if err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			uc.logger.Warn("GetAvailableSlots: salon id=%d not found", req.SalonID)
			return nil, ErrSalonNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get salon id=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}

	// 4. Load the service
	service, err := uc.serviceRepo.GetBySalonAndID(ctx, req.SalonID, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found in salon id=%d", req.ServiceID, req.SalonID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.IsBookable() {
		uc.logger.Warn("GetAvailableSlots: service id=%d is not bookable", req.ServiceID)
		return nil, ErrServiceNotBookable
	}

	// 5. Resolve the day window from the weekly schedule
	window := salon.OpeningHours.WindowFor(req.Date)
	if window == nil {
		uc.logger.Info("GetAvailableSlots: salon id=%d is closed on %s",
			req.SalonID, req.Date.Format(domain.DateFormat))
		return emptyResponse, nil
	}

	// 6. Load the appointments occupying slots on that date
	appointments, err := uc.appointmentRepo.GetBySalonWithFilter(ctx, domain.SalonAppointmentsFilter{
		SalonID: req.SalonID,
		Date:    &req.Date,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 7. Generate the candidate grid and filter it
	slots, err := generateSlots(window, service.DurationMinutes, appointments, req.Date, now)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: %d slots for salon=%d, service=%d, date=%s",
		len(slots), req.SalonID, req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:      req.Date,
		SalonID:   req.SalonID,
		ServiceID: req.ServiceID,
		Slots:     slots,
	}, nil
}
