package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-DeskBooking/internal/availability"
	reservationRepo "github.com/m04kA/SMC-DeskBooking/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-DeskBooking/pkg/types"
)

const (
	operation = "create"

	outcomeSuccess   = "success"
	outcomeInvalid   = "invalid"
	outcomeDuplicate = "duplicate"
	outcomeCapacity  = "capacity"
	outcomeError     = "error"
)

// UseCase use case для создания бронирования (reserve)
type UseCase struct {
	repo         ReservationRepository
	cache        MonthCache
	calc         *availability.Calculator
	metrics      Metrics
	location     *time.Location
	precheck     bool
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// precheck включает предварительную проверку по текущему списку дня перед вставкой.
func NewUseCase(
	repo ReservationRepository,
	cache MonthCache,
	calc *availability.Calculator,
	metrics Metrics,
	location *time.Location,
	precheck bool,
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
		precheck:     precheck,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Валидация имени и даты выполняется до обращения к хранилищу.
// Предварительная проверка носит рекомендательный характер: решение принимают
// ограничения БД (уникальный индекс и триггер вместимости).
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	name, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		uc.record(outcomeInvalid)
		return nil, err
	}

	uc.logger.Info("CreateReservation: name=%q, date=%s", name, req.Date)

	// 2. Проверка даты относительно локального "сегодня"
	today := types.Today(uc.timeProvider.Now(), uc.location)
	if err := validateDate(uc.calc, req.Date, today); err != nil {
		uc.logger.Warn("CreateReservation: date=%s rejected: %v", req.Date, err)
		uc.record(outcomeInvalid)
		return nil, err
	}

	// 3. Предварительная проверка мест и дубликата
	spotsLeft := -1
	if uc.precheck {
		spotsLeft, err = uc.checkSeat(ctx, name, req.Date, today)
		if err != nil {
			return nil, err
		}
	}

	// 4. Вставка, окончательную проверку выполняет БД
	created, err := uc.repo.Create(ctx, name, req.Date)
	if err != nil {
		switch {
		case errors.Is(err, reservationRepo.ErrDuplicateReservation):
			uc.logger.Warn("CreateReservation: name=%q already has a reservation on date=%s", name, req.Date)
			uc.record(outcomeDuplicate)
			return nil, ErrDuplicateReservation
		case errors.Is(err, reservationRepo.ErrInvalidName):
			uc.logger.Warn("CreateReservation: store rejected name=%q", name)
			uc.record(outcomeInvalid)
			return nil, ErrInvalidName
		case errors.Is(err, reservationRepo.ErrCapacityExceeded):
			uc.logger.Warn("CreateReservation: no spots left on date=%s", req.Date)
			uc.record(outcomeCapacity)
			return nil, ErrCapacityExceeded
		default:
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			uc.record(outcomeError)
			return nil, fmt.Errorf("%w: failed to create reservation: %v", ErrStoreUnavailable, err)
		}
	}

	// 5. Сбрасываем кэш месяца, чтобы следующее чтение было актуальным
	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx, req.Date); err != nil {
			uc.logger.Warn("CreateReservation: failed to invalidate month cache for date=%s: %v", req.Date, err)
		}
	}

	uc.record(outcomeSuccess)
	uc.logger.Info("CreateReservation: successfully created reservation id=%s", created.ID)

	return &Response{
		ID:             created.ID,
		Name:           created.Name,
		Date:           created.Date,
		AvailableSpots: spotsLeft,
		CreatedAt:      created.CreatedAt,
		UpdatedAt:      created.UpdatedAt,
	}, nil
}

// checkSeat проводит имя через сессию бронирования по текущему списку дня.
// Ошибка чтения не блокирует вставку: проверка только рекомендательная.
// Возвращает ожидаемое число свободных мест после создания или -1.
func (uc *UseCase) checkSeat(ctx context.Context, name string, date, today types.Date) (int, error) {
	list, err := uc.repo.ListByDate(ctx, date)
	if err != nil {
		uc.logger.Warn("CreateReservation: precheck skipped for date=%s: %v", date, err)
		return -1, nil
	}

	session := availability.NewSession(uc.calc, date, today, list)
	if _, err := session.EnterName(name); err != nil {
		return -1, err
	}

	intent, err := session.BeginSubmit()
	if err != nil {
		uc.logger.Warn("CreateReservation: precheck blocked date=%s, reason=%s", date, session.Reason())
		if session.Reason() == availability.BlockCapacityExhausted {
			uc.record(outcomeCapacity)
			return -1, ErrCapacityExceeded
		}
		uc.record(outcomeInvalid)
		return -1, validateDate(uc.calc, date, today)
	}

	if intent == availability.IntentEdit {
		uc.logger.Warn("CreateReservation: precheck found existing reservation for name=%q on date=%s", name, date)
		uc.record(outcomeDuplicate)
		return -1, ErrDuplicateReservation
	}

	uc.logger.Info("CreateReservation: precheck passed, %d/%d spots taken", len(list), uc.calc.Capacity())
	return session.AvailableSpots() - 1, nil
}

func (uc *UseCase) record(outcome string) {
	if uc.metrics == nil {
		return
	}
	uc.metrics.RecordReservation(operation, outcome)
}
