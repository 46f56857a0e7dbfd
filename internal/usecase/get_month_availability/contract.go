package get_month_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	ListByMonth(ctx context.Context, year int, month time.Month) (domain.ReservationsByDate, error)
}

// MonthCache интерфейс кэша бронирований месяца.
// Поколение читается до обращения к БД: Set по устаревшему поколению не виден читателям.
type MonthCache interface {
	Generation(ctx context.Context, year int, month time.Month) (int64, error)
	Get(ctx context.Context, year int, month time.Month, generation int64) (domain.ReservationsByDate, bool, error)
	Set(ctx context.Context, year int, month time.Month, generation int64, grouped domain.ReservationsByDate) error
}

// Metrics интерфейс для учета обращений к кэшу
type Metrics interface {
	RecordCacheLookup(result string)
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
