package delete_reservation

import (
	"context"

	"github.com/m04kA/SMC-DeskBooking/internal/service/reservations/models"
)

type ReservationService interface {
	Remove(ctx context.Context, req *models.RemoveRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
