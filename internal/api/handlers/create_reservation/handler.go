package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DeskBooking/internal/api/handlers"
	createReservation "github.com/m04kA/SMC-DeskBooking/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgEmptyName          = "укажите имя"
	msgNameTooLong        = "имя слишком длинное"
	msgNameNotText        = "имя содержит недопустимые символы"
	msgPastDate           = "нельзя бронировать место на прошедшую дату"
	msgWeekendDate        = "бронирование на выходные недоступно"
	msgDuplicate          = "у этого имени уже есть бронирование на выбранный день"
	msgCapacityExceeded   = "на выбранный день не осталось свободных мест"
	msgStoreUnavailable   = "хранилище бронирований недоступно, попробуйте позже"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		if errors.Is(err, handlers.ErrValidation) {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrEmptyName):
			h.logger.Warn("POST /reservations - Empty name: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgEmptyName)

		case errors.Is(err, createReservation.ErrNameTooLong):
			h.logger.Warn("POST /reservations - Name too long: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgNameTooLong)

		case errors.Is(err, createReservation.ErrInvalidName):
			h.logger.Warn("POST /reservations - Invalid name: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgNameNotText)

		case errors.Is(err, createReservation.ErrInvalidDate):
			h.logger.Warn("POST /reservations - Invalid date: %q", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createReservation.ErrPastDate):
			h.logger.Warn("POST /reservations - Past date: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createReservation.ErrWeekendDate):
			h.logger.Warn("POST /reservations - Weekend date: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgWeekendDate)

		case errors.Is(err, createReservation.ErrDuplicateReservation):
			h.logger.Warn("POST /reservations - Duplicate reservation: name=%q, date=%s", req.Name, req.Date)
			handlers.RespondConflict(w, msgDuplicate)

		case errors.Is(err, createReservation.ErrCapacityExceeded):
			h.logger.Warn("POST /reservations - Capacity exceeded: date=%s", req.Date)
			handlers.RespondConflict(w, msgCapacityExceeded)

		case errors.Is(err, createReservation.ErrStoreUnavailable):
			h.logger.Error("POST /reservations - Store unavailable: date=%s, error=%v", req.Date, err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: id=%s, date=%s", result.ID, result.Date)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
