package get_names

import (
	"context"

	"github.com/m04kA/SMC-DeskBooking/internal/service/reservations/models"
)

type ReservationService interface {
	GetNames(ctx context.Context, query string) (*models.NamesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
