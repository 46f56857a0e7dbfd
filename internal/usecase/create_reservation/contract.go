package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	"github.com/m04kA/SMC-DeskBooking/pkg/types"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	ListByDate(ctx context.Context, date types.Date) ([]*domain.Reservation, error)
	Create(ctx context.Context, name string, date types.Date) (*domain.Reservation, error)
}

// MonthCache интерфейс кэша бронирований месяца
type MonthCache interface {
	Invalidate(ctx context.Context, date types.Date) error
}

// Metrics интерфейс для учета исходов операций
type Metrics interface {
	RecordReservation(operation, outcome string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
