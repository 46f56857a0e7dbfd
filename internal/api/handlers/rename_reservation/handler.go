package rename_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DeskBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBooking/internal/service/reservations"
)

const (
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidName        = "некорректное имя в пути запроса"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmptyName          = "укажите имя"
	msgNameTooLong        = "имя слишком длинное"
	msgNameNotText        = "имя содержит недопустимые символы"
	msgPastDate           = "прошедшие бронирования нельзя изменять"
	msgNotFound           = "бронирование не найдено"
	msgDuplicate          = "у этого имени уже есть бронирование на выбранный день"
	msgStoreUnavailable   = "хранилище бронирований недоступно, попробуйте позже"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/days/{date}/reservations/{name}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := handlers.PathDate(r, "date")
	if err != nil {
		h.logger.Warn("PATCH /days/{date}/reservations/{name} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	oldName, err := handlers.PathString(r, "name")
	if err != nil {
		h.logger.Warn("PATCH /days/{date}/reservations/{name} - Invalid name: %v", err)
		handlers.RespondBadRequest(w, msgInvalidName)
		return
	}

	var req RenameReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /days/{date}/reservations/{name} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.service.Rename(r.Context(), req.ToServiceRequest(oldName, date))
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrEmptyName):
			h.logger.Warn("PATCH /days/{date}/reservations/{name} - Empty name: date=%s", date)
			handlers.RespondBadRequest(w, msgEmptyName)

		case errors.Is(err, reservations.ErrNameTooLong):
			h.logger.Warn("PATCH /days/{date}/reservations/{name} - Name too long: date=%s", date)
			handlers.RespondBadRequest(w, msgNameTooLong)

		case errors.Is(err, reservations.ErrInvalidName):
			h.logger.Warn("PATCH /days/{date}/reservations/{name} - Invalid name: date=%s", date)
			handlers.RespondBadRequest(w, msgNameNotText)

		case errors.Is(err, reservations.ErrPastDate):
			h.logger.Warn("PATCH /days/{date}/reservations/{name} - Past date: date=%s", date)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /days/{date}/reservations/{name} - Not found: name=%q, date=%s", oldName, date)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrDuplicateReservation):
			h.logger.Warn("PATCH /days/{date}/reservations/{name} - Duplicate: new_name=%q, date=%s", req.NewName, date)
			handlers.RespondConflict(w, msgDuplicate)

		case errors.Is(err, reservations.ErrStoreUnavailable):
			h.logger.Error("PATCH /days/{date}/reservations/{name} - Store unavailable: date=%s, error=%v", date, err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("PATCH /days/{date}/reservations/{name} - Failed to rename: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /days/{date}/reservations/{name} - Reservation renamed successfully: date=%s", date)
	handlers.RespondNoContent(w)
}
