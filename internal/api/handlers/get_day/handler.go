package get_day

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-DeskBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	"github.com/m04kA/SMC-DeskBooking/internal/service/reservations"
)

const (
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgNameTooLong      = "имя слишком длинное"
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

// Handle GET /api/v1/days/{date}?name=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := handlers.PathDate(r, "date")
	if err != nil {
		h.logger.Warn("GET /days/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Имя опционально: по нему форма переключается между созданием и редактированием
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if err := handlers.ValidateVar(name, "max="+strconv.Itoa(domain.MaxNameLength)); err != nil {
		h.logger.Warn("GET /days/{date} - Name too long: date=%s", date)
		handlers.RespondBadRequest(w, msgNameTooLong)
		return
	}

	day, err := h.service.GetDay(r.Context(), date, name)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrStoreUnavailable):
			h.logger.Error("GET /days/{date} - Store unavailable: date=%s, error=%v", date, err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("GET /days/{date} - Failed to get day: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /days/{date} - Day retrieved successfully: date=%s, reservations=%d",
		date, len(day.Reservations))
	handlers.RespondJSON(w, http.StatusOK, day)
}

