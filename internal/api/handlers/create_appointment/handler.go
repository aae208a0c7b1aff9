package create_appointment

import (
	"errors"
	"net/http"

	"github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/api/handlers"
	createAppointment "github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody  = "corpo da requisição inválido"
	msgInvalidDate         = "formato de data inválido, esperado YYYY-MM-DD"
	msgInvalidTime         = "formato de horário inválido, esperado HH:MM"
	msgSlotTaken           = "este horário acabou de ser reservado, escolha outro"
	msgSalonNotFound       = "salão não encontrado"
	msgServiceNotFound     = "serviço não encontrado"
	msgServiceNotBookable  = "serviço indisponível para agendamento"
	msgSalonClosed         = "o salão está fechado na data escolhida"
	msgOutsideOpeningHours = "horário fora do período de funcionamento"
	msgInvalidDateInPast   = "não é possível agendar em datas passadas"
	msgTooLateToBook       = "horário muito próximo, escolha um horário mais tarde"
	msgInvalidClientData   = "dados do cliente inválidos: nome e telefone são obrigatórios"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		if req.AppointmentDate != "" && len(req.AppointmentDate) == 10 {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotTaken):
			h.logger.Warn("POST /appointments - Slot taken: salon_id=%d, date=%s, time=%s",
				req.SalonID, req.AppointmentDate, req.AppointmentTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createAppointment.ErrSalonNotFound):
			h.logger.Warn("POST /appointments - Salon not found: salon_id=%d", req.SalonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: salon_id=%d, service_id=%d",
				req.SalonID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrServiceNotBookable):
			h.logger.Warn("POST /appointments - Service not bookable: salon_id=%d, service_id=%d",
				req.SalonID, req.ServiceID)
			handlers.RespondBadRequest(w, msgServiceNotBookable)

		case errors.Is(err, createAppointment.ErrSalonClosed):
			h.logger.Warn("POST /appointments - Salon closed: salon_id=%d, date=%s",
				req.SalonID, req.AppointmentDate)
			handlers.RespondBadRequest(w, msgSalonClosed)

		case errors.Is(err, createAppointment.ErrOutsideOpeningHours):
			h.logger.Warn("POST /appointments - Outside opening hours: salon_id=%d, time=%s",
				req.SalonID, req.AppointmentTime)
			handlers.RespondBadRequest(w, msgOutsideOpeningHours)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Date in past: salon_id=%d, date=%s",
				req.SalonID, req.AppointmentDate)
			handlers.RespondBadRequest(w, msgInvalidDateInPast)

		case errors.Is(err, createAppointment.ErrTooLateToBook):
			h.logger.Warn("POST /appointments - Too late to book: salon_id=%d, time=%s",
				req.SalonID, req.AppointmentTime)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid client data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidClientData)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: salon_id=%d, error=%v",
				req.SalonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created: appointment_id=%d, salon_id=%d, date=%s, time=%s",
		result.ID, req.SalonID, req.AppointmentDate, req.AppointmentTime)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
