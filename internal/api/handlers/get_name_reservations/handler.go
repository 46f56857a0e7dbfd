package get_name_reservations

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DeskBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBooking/internal/service/reservations"
)

const (
	msgInvalidName      = "некорректное имя в пути запроса"
	msgEmptyName        = "укажите имя"
	msgNameTooLong      = "имя слишком длинное"
	msgNameNotText      = "имя содержит недопустимые символы"
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

// Handle GET /api/v1/names/{name}/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	name, err := handlers.PathString(r, "name")
	if err != nil {
		h.logger.Warn("GET /names/{name}/reservations - Invalid name: %v", err)
		handlers.RespondBadRequest(w, msgInvalidName)
		return
	}

	result, err := h.service.GetByName(r.Context(), name)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrEmptyName):
			h.logger.Warn("GET /names/{name}/reservations - Empty name")
			handlers.RespondBadRequest(w, msgEmptyName)

		case errors.Is(err, reservations.ErrNameTooLong):
			h.logger.Warn("GET /names/{name}/reservations - Name too long")
			handlers.RespondBadRequest(w, msgNameTooLong)

		case errors.Is(err, reservations.ErrInvalidName):
			h.logger.Warn("GET /names/{name}/reservations - Invalid name")
			handlers.RespondBadRequest(w, msgNameNotText)

		case errors.Is(err, reservations.ErrStoreUnavailable):
			h.logger.Error("GET /names/{name}/reservations - Store unavailable: error=%v", err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("GET /names/{name}/reservations - Failed to get reservations: name=%q, error=%v", name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /names/{name}/reservations - Reservations retrieved successfully: name=%q, count=%d",
		result.Name, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result)
}
