package get_name_reservations

import (
	"context"

	"github.com/m04kA/SMC-DeskBooking/internal/service/reservations/models"
)

type ReservationService interface {
	GetByName(ctx context.Context, name string) (*models.NameReservationsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
