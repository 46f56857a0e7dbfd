package get_day

import (
	"context"

	"github.com/m04kA/SMC-DeskBooking/internal/service/reservations/models"
	"github.com/m04kA/SMC-DeskBooking/pkg/types"
)

type ReservationService interface {
	GetDay(ctx context.Context, date types.Date, name string) (*models.DayResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
