package reservations

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	"github.com/m04kA/SMC-DeskBooking/pkg/types"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	ListByDate(ctx context.Context, date types.Date) ([]*domain.Reservation, error)
	ListByName(ctx context.Context, name string) ([]*domain.Reservation, error)
	ListUniqueNames(ctx context.Context) ([]string, error)
	CountByDate(ctx context.Context, date types.Date) (int, error)
	Rename(ctx context.Context, oldName, newName string, date types.Date) error
	Delete(ctx context.Context, name string, date types.Date) error
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
