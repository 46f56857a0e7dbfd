package get_month_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeskBooking/internal/api/handlers"
	getMonth "github.com/m04kA/SMC-DeskBooking/internal/usecase/get_month_availability"
)

const (
	msgInvalidMonth     = "некорректный год или месяц"
	msgStoreUnavailable = "хранилище бронирований недоступно, попробуйте позже"

	headerCache = "X-Cache"
)

type Handler struct {
	useCase GetMonthAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetMonthAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/months/{year}/{month}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	year, err := strconv.Atoi(vars["year"])
	if err != nil {
		h.logger.Warn("GET /months/{year}/{month} - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	month, err := strconv.Atoi(vars["month"])
	if err != nil {
		h.logger.Warn("GET /months/{year}/{month} - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getMonth.Request{Year: year, Month: time.Month(month)})
	if err != nil {
		switch {
		case errors.Is(err, getMonth.ErrInvalidMonth):
			h.logger.Warn("GET /months/{year}/{month} - Invalid month: year=%d, month=%d", year, month)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		case errors.Is(err, getMonth.ErrStoreUnavailable):
			h.logger.Error("GET /months/{year}/{month} - Store unavailable: error=%v", err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("GET /months/{year}/{month} - Failed to get month: year=%d, month=%d, error=%v",
				year, month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if result.Cached {
		w.Header().Set(headerCache, "HIT")
	} else {
		w.Header().Set(headerCache, "MISS")
	}

	h.logger.Info("GET /months/{year}/{month} - Month retrieved successfully: year=%d, month=%d, days=%d",
		year, month, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
