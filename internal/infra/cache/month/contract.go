package month

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	"github.com/m04kA/SMC-DeskBooking/pkg/types"
)

// Store общий интерфейс кэша месяца
// Реализуется *Cache и *Noop
type Store interface {
	Generation(ctx context.Context, year int, month time.Month) (int64, error)
	Get(ctx context.Context, year int, month time.Month, generation int64) (domain.ReservationsByDate, bool, error)
	Set(ctx context.Context, year int, month time.Month, generation int64, grouped domain.ReservationsByDate) error
	Invalidate(ctx context.Context, date types.Date) error
}

var (
	_ Store = (*Cache)(nil)
	_ Store = (*Noop)(nil)
)
