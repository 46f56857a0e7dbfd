package get_day_count

import (
	"net/http"

	"github.com/m04kA/SMC-DeskBooking/internal/api/handlers"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
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

// Handle GET /api/v1/days/{date}/count
// Ошибки хранилища не возвращаются клиенту: при сбое количество равно 0.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := handlers.PathDate(r, "date")
	if err != nil {
		h.logger.Warn("GET /days/{date}/count - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result := h.service.CountByDate(r.Context(), date)

	h.logger.Info("GET /days/{date}/count - Count retrieved: date=%s, count=%d", date, result.Count)
	handlers.RespondJSON(w, http.StatusOK, result)
}
