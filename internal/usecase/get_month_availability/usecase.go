package get_month_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-DeskBooking/internal/availability"
	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	"github.com/m04kA/SMC-DeskBooking/pkg/types"
)

const (
	cacheHit   = "hit"
	cacheMiss  = "miss"
	cacheError = "error"
)

// UseCase use case для получения календаря свободных мест на месяц
type UseCase struct {
	repo         ReservationRepository
	cache        MonthCache
	calc         *availability.Calculator
	metrics      Metrics
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	repo ReservationRepository,
	cache MonthCache,
	calc *availability.Calculator,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.Local
	}

	return &UseCase{
		repo:         repo,
		cache:        cache,
		calc:         calc,
		metrics:      metrics,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения календаря на месяц.
// Бронирования читаются из кэша месяца, при промахе из БД с последующим сохранением в кэш.
// Ошибки кэша не прерывают запрос.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetMonthAvailability: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetMonthAvailability: year=%d, month=%d", req.Year, int(req.Month))

	grouped, cached, err := uc.load(ctx, req.Year, req.Month)
	if err != nil {
		return nil, err
	}

	today := types.Today(uc.timeProvider.Now(), uc.location)
	days := uc.calc.Month(req.Year, req.Month, grouped, today)

	resp := &Response{
		Year:     req.Year,
		Month:    req.Month,
		Capacity: uc.calc.Capacity(),
		Days:     make([]Day, 0, len(days)),
		Cached:   cached,
	}

	for i := range days {
		resp.Days = append(resp.Days, toDay(&days[i]))
	}

	uc.logger.Info("GetMonthAvailability: built %d days for %04d-%02d (cached=%t)",
		len(resp.Days), req.Year, int(req.Month), cached)
	return resp, nil
}

// load читает бронирования месяца через кэш.
// Поколение фиксируется до чтения из БД: если запись в месяц инвалидирует кэш
// во время чтения, снимок сохраняется под старым поколением и не будет прочитан.
func (uc *UseCase) load(ctx context.Context, year int, month time.Month) (domain.ReservationsByDate, bool, error) {
	useCache := uc.cache != nil
	var generation int64

	if useCache {
		gen, err := uc.cache.Generation(ctx, year, month)
		if err != nil {
			uc.logger.Warn("GetMonthAvailability: cache generation failed, reading from store: %v", err)
			uc.recordCache(cacheError)
			useCache = false
		} else {
			generation = gen
		}
	}

	if useCache {
		grouped, ok, err := uc.cache.Get(ctx, year, month, generation)
		switch {
		case err != nil:
			uc.logger.Warn("GetMonthAvailability: cache get failed, reading from store: %v", err)
			uc.recordCache(cacheError)
		case ok:
			uc.recordCache(cacheHit)
			return grouped, true, nil
		default:
			uc.recordCache(cacheMiss)
		}
	}

	grouped, err := uc.repo.ListByMonth(ctx, year, month)
	if err != nil {
		uc.logger.Error("GetMonthAvailability: failed to list reservations: %v", err)
		return nil, false, fmt.Errorf("%w: GetMonthAvailability - list by month: %v", ErrStoreUnavailable, err)
	}

	if useCache {
		if err := uc.cache.Set(ctx, year, month, generation, grouped); err != nil {
			uc.logger.Warn("GetMonthAvailability: cache set failed: %v", err)
		}
	}

	return grouped, false, nil
}

func (uc *UseCase) recordCache(result string) {
	if uc.metrics == nil {
		return
	}
	uc.metrics.RecordCacheLookup(result)
}

func toDay(d *domain.DayAvailability) Day {
	status := DayStatusFree
	switch {
	case d.IsFull():
		status = DayStatusFull
	case d.IsPartiallyAvailable():
		status = DayStatusPartial
	}

	return Day{
		Date:           d.Date,
		TotalSpots:     d.TotalSpots,
		AvailableSpots: d.AvailableSpots,
		Reserved:       d.ReservedCount(),
		Occupancy:      d.OccupancyRate(),
		Names:          d.Names(),
		Status:         status,
		IsPast:         d.IsPast,
		IsBookable:     d.IsBookable,
	}
}
