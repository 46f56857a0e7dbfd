package delete_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DeskBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBooking/internal/service/reservations"
	"github.com/m04kA/SMC-DeskBooking/internal/service/reservations/models"
)

const (
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidName      = "некорректное имя в пути запроса"
	msgEmptyName        = "укажите имя"
	msgNameTooLong      = "имя слишком длинное"
	msgNameNotText      = "имя содержит недопустимые символы"
	msgPastDate         = "прошедшие бронирования нельзя удалять"
	msgStoreUnavailable = "хранилище бронирований недоступно, попробуйте позже"
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

// Handle DELETE /api/v1/days/{date}/reservations/{name}
// Удаление отсутствующего бронирования тоже возвращает 204.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := handlers.PathDate(r, "date")
	if err != nil {
		h.logger.Warn("DELETE /days/{date}/reservations/{name} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	name, err := handlers.PathString(r, "name")
	if err != nil {
		h.logger.Warn("DELETE /days/{date}/reservations/{name} - Invalid name: %v", err)
		handlers.RespondBadRequest(w, msgInvalidName)
		return
	}

	err = h.service.Remove(r.Context(), &models.RemoveRequest{Name: name, Date: date})
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrEmptyName):
			h.logger.Warn("DELETE /days/{date}/reservations/{name} - Empty name: date=%s", date)
			handlers.RespondBadRequest(w, msgEmptyName)

		case errors.Is(err, reservations.ErrNameTooLong):
			h.logger.Warn("DELETE /days/{date}/reservations/{name} - Name too long: date=%s", date)
			handlers.RespondBadRequest(w, msgNameTooLong)

		case errors.Is(err, reservations.ErrInvalidName):
			h.logger.Warn("DELETE /days/{date}/reservations/{name} - Invalid name: date=%s", date)
			handlers.RespondBadRequest(w, msgNameNotText)

		case errors.Is(err, reservations.ErrPastDate):
			h.logger.Warn("DELETE /days/{date}/reservations/{name} - Past date: date=%s", date)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, reservations.ErrStoreUnavailable):
			h.logger.Error("DELETE /days/{date}/reservations/{name} - Store unavailable: date=%s, error=%v", date, err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("DELETE /days/{date}/reservations/{name} - Failed to delete: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /days/{date}/reservations/{name} - Reservation removed: name=%q, date=%s", name, date)
	handlers.RespondNoContent(w)
}
