package month

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	"github.com/m04kA/SMC-DeskBooking/pkg/types"
)

// Noop кэш-заглушка, используется когда кэш выключен в конфигурации
type Noop struct{}

// NewNoop создает кэш-заглушку
func NewNoop() *Noop {
	return &Noop{}
}

// Generation всегда возвращает 0
func (Noop) Generation(context.Context, int, time.Month) (int64, error) {
	return 0, nil
}

// Get всегда возвращает промах
func (Noop) Get(context.Context, int, time.Month, int64) (domain.ReservationsByDate, bool, error) {
	return nil, false, nil
}

// Set ничего не делает
func (Noop) Set(context.Context, int, time.Month, int64, domain.ReservationsByDate) error {
	return nil
}

// Invalidate ничего не делает
func (Noop) Invalidate(context.Context, types.Date) error {
	return nil
}
