package get_day_count

import (
	"context"

	"github.com/m04kA/SMC-DeskBooking/internal/service/reservations/models"
	"github.com/m04kA/SMC-DeskBooking/pkg/types"
)

type ReservationService interface {
	CountByDate(ctx context.Context, date types.Date) *models.CountResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
