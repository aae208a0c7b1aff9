package finance

import (
	"context"
	"errors"
	"fmt"

	"github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/domain"
	appointmentRepo "github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/infra/storage/appointment"
	transactionRepo "github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/infra/storage/transaction"
)

// Service derives the financial ledger from completed appointments. Every
// entry point is idempotent: the ledger converges on one income row per
// priced component no matter how often processing runs.
type Service struct {
	appointmentRepo AppointmentRepository
	transactionRepo TransactionRepository
	salonRepo       SalonRepository
	logger          Logger
}

// NewService creates the finance service.
func NewService(
	appointmentRepo AppointmentRepository,
	transactionRepo TransactionRepository,
	salonRepo SalonRepository,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		transactionRepo: transactionRepo,
		salonRepo:       salonRepo,
		logger:          logger,
	}
}

// Process records the revenue of one completed appointment: one row for
// the main service plus one per add-on parsed out of the notes. Rows that
// already exist are left alone.
func (s *Service) Process(ctx context.Context, appointmentID int64) error {
	s.logger.Info("Process: reconciling appointment id=%d", appointmentID)

	appointment, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Process: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Process: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Process - repository error: %v", ErrInternal, err)
	}

	if appointment.Status != domain.StatusCompleted {
		s.logger.Warn("Process: appointment id=%d has status=%s, skipping", appointmentID, appointment.Status)
		return ErrNotCompleted
	}

	created, err := s.reconcile(ctx, appointment)
	if err != nil {
		return err
	}

	s.logger.Info("Process: appointment id=%d reconciled, %d transactions created", appointmentID, created)
	return nil
}

// Resync repairs the ledger for one salon: every completed appointment
// missing transactions gets them created. Returns the number of rows
// created; zero means the ledger already matches the completed set.
func (s *Service) Resync(ctx context.Context, salonID int64) (int, error) {
	s.logger.Info("Resync: reconciling salon id=%d", salonID)

	appointments, err := s.appointmentRepo.ListCompletedBySalon(ctx, salonID)
	if err != nil {
		s.logger.Error("Resync: failed to list completed appointments for salon id=%d: %v", salonID, err)
		return 0, fmt.Errorf("%w: Resync - repository error: %v", ErrInternal, err)
	}

	total := 0
	for _, appointment := range appointments {
		created, err := s.reconcile(ctx, appointment)
		if err != nil {
			// One broken appointment must not stop the pass; the next
			// resync picks it up again.
			s.logger.Warn("Resync: failed to reconcile appointment id=%d: %v", appointment.ID, err)
			continue
		}
		total += created
	}

	s.logger.Info("Resync: salon id=%d done, %d transactions created", salonID, total)
	return total, nil
}

// ResyncAll runs Resync for every salon. Used by the nightly job.
func (s *Service) ResyncAll(ctx context.Context) (int, error) {
	salonIDs, err := s.salonRepo.ListIDs(ctx)
	if err != nil {
		s.logger.Error("ResyncAll: failed to list salons: %v", err)
		return 0, fmt.Errorf("%w: ResyncAll - repository error: %v", ErrInternal, err)
	}

	total := 0
	for _, salonID := range salonIDs {
		created, err := s.Resync(ctx, salonID)
		if err != nil {
			s.logger.Warn("ResyncAll: resync failed for salon id=%d: %v", salonID, err)
			continue
		}
		total += created
	}

	return total, nil
}

// reconcile creates the missing ledger rows for one completed appointment
// and reports how many it created.
func (s *Service) reconcile(ctx context.Context, appointment *domain.Appointment) (int, error) {
	components := s.componentsFor(appointment)

	existing, err := s.transactionRepo.ListByAppointment(ctx, appointment.ID)
	if err != nil {
		return 0, fmt.Errorf("%w: reconcile - failed to list transactions: %v", ErrInternal, err)
	}

	have := make(map[string]bool, len(existing))
	for _, tx := range existing {
		have[transactionKey(tx.Component, tx.Description)] = true
	}

	created := 0
	for _, c := range components {
		if have[transactionKey(c.component, c.description)] {
			continue
		}

		_, err := s.transactionRepo.Create(ctx, &domain.FinancialTransaction{
			SalonID:         appointment.SalonID,
			AppointmentID:   appointment.ID,
			Component:       c.component,
			Description:     c.description,
			Amount:          c.price,
			Type:            domain.TransactionTypeIncome,
			Category:        domain.CategoryServiceRevenue,
			DurationMinutes: c.minutes,
		})
		if err != nil {
			// The unique index is the concurrency backstop: a row created
			// by a racing call counts as already reconciled.
			if errors.Is(err, transactionRepo.ErrDuplicateTransaction) {
				continue
			}
			return created, fmt.Errorf("%w: reconcile - failed to create transaction: %v", ErrInternal, err)
		}
		created++
	}

	return created, nil
}

type pricedComponent struct {
	component   domain.TransactionComponent
	description string
	price       float64
	minutes     int
}

// componentsFor computes the priced breakdown: the denormalized service
// snapshot as the main component plus the add-ons embedded in the notes.
func (s *Service) componentsFor(appointment *domain.Appointment) []pricedComponent {
	components := []pricedComponent{
		{
			component:   domain.ComponentMain,
			description: appointment.ServiceName,
			price:       appointment.ServicePrice,
			minutes:     appointment.DurationMinutes,
		},
	}

	if appointment.Notes == nil {
		return components
	}

	parsed := ParseNotes(*appointment.Notes)
	for _, addOn := range parsed.AddOns {
		components = append(components, pricedComponent{
			component:   domain.ComponentAdditional,
			description: addOn.Name,
			price:       addOn.Price,
			minutes:     addOn.DurationMinutes,
		})
	}

	return components
}

func transactionKey(component domain.TransactionComponent, description string) string {
	return string(component) + "|" + description
}
