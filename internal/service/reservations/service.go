package reservations

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-DeskBooking/internal/availability"
	reservationRepo "github.com/m04kA/SMC-DeskBooking/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-DeskBooking/internal/service/reservations/models"
	"github.com/m04kA/SMC-DeskBooking/pkg/types"
)

const (
	opRename = "rename"
	opRemove = "remove"

	outcomeSuccess   = "success"
	outcomeNoop      = "noop"
	outcomeInvalid   = "invalid"
	outcomeNotFound  = "not_found"
	outcomeDuplicate = "duplicate"
	outcomeError     = "error"
)

// Service сервис чтения бронирований, переименования и удаления
type Service struct {
	repo         ReservationRepository
	cache        MonthCache
	calc         *availability.Calculator
	metrics      Metrics
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований.
// location задает часовой пояс, в котором определяется "сегодня".
func NewService(
	repo ReservationRepository,
	cache MonthCache,
	calc *availability.Calculator,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *Service {
	if location == nil {
		location = time.Local
	}

	return &Service{
		repo:         repo,
		cache:        cache,
		calc:         calc,
		metrics:      metrics,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetDay получает бронирования на дату со свободными местами.
// Если передано имя, дополнительно возвращает оценку: можно ли создать
// бронирование, редактировать существующее или день заблокирован.
func (s *Service) GetDay(ctx context.Context, date types.Date, name string) (*models.DayResponse, error) {
	s.logger.Info("GetDay: fetching reservations for date=%s", date)

	list, err := s.repo.ListByDate(ctx, date)
	if err != nil {
		s.logger.Error("GetDay: repository error for date=%s: %v", date, err)
		return nil, fmt.Errorf("%w: GetDay - list by date: %v", ErrStoreUnavailable, err)
	}

	today := s.today()
	resp := models.FromDayAvailability(s.calc.Day(date, list, today), today)

	if strings.TrimSpace(name) != "" {
		resp.Evaluation = models.FromEvaluation(s.calc.Evaluate(name, date, list, today))
	}

	s.logger.Info("GetDay: date=%s has %d reservations, %d spots left", date, len(list), resp.AvailableSpots)
	return resp, nil
}

// GetByName получает все бронирования человека по возрастанию даты.
// Прошедшие бронирования помечаются как доступные только для чтения.
func (s *Service) GetByName(ctx context.Context, name string) (*models.NameReservationsResponse, error) {
	trimmed, err := s.validateName(name)
	if err != nil {
		s.logger.Warn("GetByName: invalid name: %v", err)
		return nil, err
	}

	s.logger.Info("GetByName: fetching reservations for name=%q", trimmed)

	list, err := s.repo.ListByName(ctx, trimmed)
	if err != nil {
		s.logger.Error("GetByName: repository error for name=%q: %v", trimmed, err)
		return nil, fmt.Errorf("%w: GetByName - list by name: %v", ErrStoreUnavailable, err)
	}

	return &models.NameReservationsResponse{
		Name:         trimmed,
		Reservations: models.FromDomainReservations(list, s.today()),
	}, nil
}

// GetNames возвращает уникальные имена для автодополнения.
// Непустой query фильтрует имена по вхождению подстроки без учета регистра.
func (s *Service) GetNames(ctx context.Context, query string) (*models.NamesResponse, error) {
	names, err := s.repo.ListUniqueNames(ctx)
	if err != nil {
		s.logger.Error("GetNames: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetNames - list unique names: %v", ErrStoreUnavailable, err)
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return &models.NamesResponse{Names: names}, nil
	}

	filtered := make([]string, 0, len(names))
	for _, n := range names {
		if strings.Contains(strings.ToLower(n), needle) {
			filtered = append(filtered, n)
		}
	}

	return &models.NamesResponse{Names: filtered}, nil
}

// CountByDate возвращает количество бронирований на дату.
// Ошибка хранилища не пробрасывается: количество считается равным 0.
func (s *Service) CountByDate(ctx context.Context, date types.Date) *models.CountResponse {
	count, err := s.repo.CountByDate(ctx, date)
	if err != nil {
		s.logger.Warn("CountByDate: store error for date=%s, falling back to 0: %v", date, err)
		count = 0
	}

	return &models.CountResponse{
		Date:           date,
		Count:          count,
		AvailableSpots: s.calc.SpotsFor(count),
	}
}

// Rename меняет имя в бронировании на дату.
// Переименование в то же самое имя ничего не делает.
func (s *Service) Rename(ctx context.Context, req *models.RenameRequest) error {
	s.logger.Info("Rename: date=%s, old=%q, new=%q", req.Date, req.OldName, req.NewName)

	oldName, err := s.validateName(req.OldName)
	if err != nil {
		s.logger.Warn("Rename: invalid old name: %v", err)
		s.record(opRename, outcomeInvalid)
		return err
	}

	newName, err := s.validateName(req.NewName)
	if err != nil {
		s.logger.Warn("Rename: invalid new name: %v", err)
		s.record(opRename, outcomeInvalid)
		return err
	}

	if req.Date.Before(s.today()) {
		s.logger.Warn("Rename: date=%s is in the past", req.Date)
		s.record(opRename, outcomeInvalid)
		return ErrPastDate
	}

	if oldName == newName {
		s.logger.Info("Rename: name unchanged for date=%s, nothing to do", req.Date)
		s.record(opRename, outcomeNoop)
		return nil
	}

	err = s.repo.Rename(ctx, oldName, newName, req.Date)
	if err != nil {
		switch {
		case errors.Is(err, reservationRepo.ErrReservationNotFound):
			s.logger.Warn("Rename: reservation name=%q date=%s not found", oldName, req.Date)
			s.record(opRename, outcomeNotFound)
			return ErrReservationNotFound
		case errors.Is(err, reservationRepo.ErrDuplicateReservation):
			s.logger.Warn("Rename: name=%q already has a reservation on date=%s", newName, req.Date)
			s.record(opRename, outcomeDuplicate)
			return ErrDuplicateReservation
		case errors.Is(err, reservationRepo.ErrInvalidName):
			s.logger.Warn("Rename: store rejected name=%q", newName)
			s.record(opRename, outcomeInvalid)
			return ErrInvalidName
		default:
			s.logger.Error("Rename: repository error: %v", err)
			s.record(opRename, outcomeError)
			return fmt.Errorf("%w: Rename - repository error: %v", ErrStoreUnavailable, err)
		}
	}

	s.invalidate(ctx, "Rename", req.Date)
	s.record(opRename, outcomeSuccess)

	s.logger.Info("Rename: reservation on date=%s renamed to %q", req.Date, newName)
	return nil
}

// Remove удаляет бронирование (name, date).
// Удаление несуществующего бронирования не является ошибкой.
func (s *Service) Remove(ctx context.Context, req *models.RemoveRequest) error {
	s.logger.Info("Remove: date=%s, name=%q", req.Date, req.Name)

	name, err := s.validateName(req.Name)
	if err != nil {
		s.logger.Warn("Remove: invalid name: %v", err)
		s.record(opRemove, outcomeInvalid)
		return err
	}

	if req.Date.Before(s.today()) {
		s.logger.Warn("Remove: date=%s is in the past", req.Date)
		s.record(opRemove, outcomeInvalid)
		return ErrPastDate
	}

	if err := s.repo.Delete(ctx, name, req.Date); err != nil {
		s.logger.Error("Remove: repository error: %v", err)
		s.record(opRemove, outcomeError)
		return fmt.Errorf("%w: Remove - repository error: %v", ErrStoreUnavailable, err)
	}

	s.invalidate(ctx, "Remove", req.Date)
	s.record(opRemove, outcomeSuccess)

	s.logger.Info("Remove: reservation name=%q date=%s removed", name, req.Date)
	return nil
}

// validateName обрезает пробелы и переводит ошибки валидации в ошибки сервиса
func (s *Service) validateName(name string) (string, error) {
	trimmed, err := availability.ValidateName(name)
	switch {
	case errors.Is(err, availability.ErrEmptyName):
		return "", ErrEmptyName
	case errors.Is(err, availability.ErrNameTooLong):
		return "", ErrNameTooLong
	case err != nil:
		return "", ErrInvalidName
	}
	return trimmed, nil
}

// invalidate сбрасывает кэш месяца. Запись уже выполнена, поэтому ошибка только логируется.
func (s *Service) invalidate(ctx context.Context, op string, date types.Date) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, date); err != nil {
		s.logger.Warn("%s: failed to invalidate month cache for date=%s: %v", op, date, err)
	}
}

func (s *Service) record(op, outcome string) {
	if s.metrics == nil {
		return
	}
	s.metrics.RecordReservation(op, outcome)
}

func (s *Service) today() types.Date {
	return types.Today(s.timeProvider.Now(), s.location)
}
