package get_names

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-DeskBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	"github.com/m04kA/SMC-DeskBooking/internal/service/reservations"
)

const (
	msgQueryTooLong     = "строка поиска слишком длинная"
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

// Handle GET /api/v1/names?q=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if err := handlers.ValidateVar(query, "max="+strconv.Itoa(domain.MaxNameLength)); err != nil {
		h.logger.Warn("GET /names - Query too long")
		handlers.RespondBadRequest(w, msgQueryTooLong)
		return
	}

	result, err := h.service.GetNames(r.Context(), query)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrStoreUnavailable):
			h.logger.Error("GET /names - Store unavailable: error=%v", err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("GET /names - Failed to get names: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /names - Names retrieved successfully: count=%d", len(result.Names))
	handlers.RespondJSON(w, http.StatusOK, result)
}
