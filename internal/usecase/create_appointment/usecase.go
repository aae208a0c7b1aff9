package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/domain"
	appointmentRepo "github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/infra/storage/appointment"
	salonRepo "github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/infra/storage/salon"
	serviceRepo "github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/infra/storage/service"
	"github.com/helderalustau/kiagenda-beauty-hub-sub001/pkg/types"
)

// UseCase creates an appointment, guarding the slot against concurrent
// bookings with a serializable transaction and row locks.
type UseCase struct {
	salonRepo       SalonRepository
	serviceRepo     ServiceRepository
	appointmentRepo AppointmentRepository
	clientRepo      ClientRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the use case.
func NewUseCase(
	salonRepo SalonRepository,
	serviceRepo ServiceRepository,
	appointmentRepo AppointmentRepository,
	clientRepo ClientRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		salonRepo:       salonRepo,
		serviceRepo:     serviceRepo,
		appointmentRepo: appointmentRepo,
		clientRepo:      clientRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute runs the booking use case. The availability check and the
// insert happen inside one serializable transaction; the storage layer's
// unique slot index is the last-resort guard when two transactions race
// past the overlap check.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: salon=%d, service=%d, date=%s, time=%s",
		req.SalonID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Dates in the past cannot be booked
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("CreateAppointment: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 3. Load the salon
	salon, err := uc.salonRepo.GetByID(ctx, req.SalonID)
	if err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			uc.logger.Warn("CreateAppointment: salon id=%d not found", req.SalonID)
			return nil, ErrSalonNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get salon id=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}

	// 4. Load the service
	service, err := uc.serviceRepo.GetBySalonAndID(ctx, req.SalonID, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found in salon id=%d", req.ServiceID, req.SalonID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.IsBookable() {
		uc.logger.Warn("CreateAppointment: service id=%d is not bookable", req.ServiceID)
		return nil, ErrServiceNotBookable
	}

	// 5. Resolve the day window and check the requested interval fits it
	window := salon.OpeningHours.WindowFor(req.Date)
	if window == nil {
		uc.logger.Warn("CreateAppointment: salon id=%d is closed on %s",
			req.SalonID, req.Date.Format(domain.DateFormat))
		return nil, ErrSalonClosed
	}

	endTime, err := req.StartTime.AddMinutes(service.DurationMinutes)
	if errors.Is(err, types.ErrTimeOverflow) {
		// The service would run past midnight, so past any close time.
		uc.logger.Warn("CreateAppointment: time %s + %dmin leaves the day", req.StartTime, service.DurationMinutes)
		return nil, ErrOutsideOpeningHours
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to calculate end time: %v", ErrInternal, err)
	}

	if err := validateWindow(window, req.StartTime, endTime); err != nil {
		uc.logger.Warn("CreateAppointment: time %s-%s is outside opening hours", req.StartTime, endTime)
		return nil, err
	}

	// 6. Same-day bookings respect the notice margin
	if err := validateNotice(req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("CreateAppointment: notice validation failed: %v", err)
		return nil, err
	}

	var result *domain.Appointment

	// 7. Conflict check and insert in one serializable transaction
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Lock and read the active appointments on that date (FOR UPDATE)
		appointments, err := uc.appointmentRepo.GetBySalonWithFilter(txCtx, domain.SalonAppointmentsFilter{
			SalonID: req.SalonID,
			Date:    &req.Date,
		})
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 7.2. Reject when the interval overlaps an active appointment
		taken, err := hasOverlappingAppointment(req.StartTime, endTime, appointments)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to check overlap: %v", err)
			return fmt.Errorf("%w: failed to check overlap: %v", ErrInternal, err)
		}
		if taken {
			uc.logger.Warn("CreateAppointment: slot %s on %s already taken",
				req.StartTime, req.Date.Format(domain.DateFormat))
			return ErrSlotTaken
		}

		// 7.3. Resolve the client (find by user id, then phone, else create)
		client, err := uc.clientRepo.Resolve(txCtx, req.SalonID, req.Client.UserID, req.Client.Name, req.Client.Phone)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to resolve client: %v", err)
			return fmt.Errorf("%w: failed to resolve client: %v", ErrInternal, err)
		}

		// 7.4. Create the appointment with a denormalized service snapshot
		appointment := &domain.Appointment{
			SalonID:         req.SalonID,
			ServiceID:       req.ServiceID,
			ClientID:        client.ID,
			AppointmentDate: req.Date,
			AppointmentTime: req.StartTime,
			DurationMinutes: service.DurationMinutes,
			Status:          domain.StatusPending,
			ServiceName:     service.Name,
			ServicePrice:    service.Price,
			Notes:           req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateAppointment: slot index rejected %s on %s",
					req.StartTime, req.Date.Format(domain.DateFormat))
				return ErrSlotTaken
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		SalonID:         result.SalonID,
		ServiceID:       result.ServiceID,
		ClientID:        result.ClientID,
		Date:            result.AppointmentDate,
		StartTime:       result.AppointmentTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		ServiceName:     result.ServiceName,
		ServicePrice:    result.ServicePrice,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
	}, nil
}
