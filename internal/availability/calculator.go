// Package availability derives seat availability from reservation lists and
// pre-validates reservation intents. It holds no state and performs no I/O:
// callers pass the reservations of a day (or a month grouped by day).
//
// Results are advisory. The store's unique index and capacity trigger remain
// the only authority at write time.
package availability

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	"github.com/m04kA/SMC-DeskBooking/pkg/types"
)

// Calculator вычисляет доступность мест для фиксированной вместимости
type Calculator struct {
	capacity     int
	weekdaysOnly bool
}

// NewCalculator создает калькулятор. Неположительная вместимость заменяется domain.DefaultCapacity.
func NewCalculator(capacity int, weekdaysOnly bool) *Calculator {
	if capacity <= 0 {
		capacity = domain.DefaultCapacity
	}
	return &Calculator{capacity: capacity, weekdaysOnly: weekdaysOnly}
}

// Capacity возвращает вместимость на день
func (c *Calculator) Capacity() int {
	return c.capacity
}

// WeekdaysOnly сообщает, запрещены ли выходные
func (c *Calculator) WeekdaysOnly() bool {
	return c.weekdaysOnly
}

// AvailableSpots возвращает max(0, capacity - len(reservations))
func (c *Calculator) AvailableSpots(reservations []*domain.Reservation) int {
	return c.SpotsFor(len(reservations))
}

// SpotsFor возвращает max(0, capacity - count) для уже посчитанного количества
func (c *Calculator) SpotsFor(count int) int {
	spots := c.capacity - count
	if spots < 0 {
		return 0
	}
	return spots
}

// HasReservation проверяет, есть ли у name бронирование в списке (без учета регистра)
func (c *Calculator) HasReservation(name string, reservations []*domain.Reservation) bool {
	return FindByName(name, reservations) != nil
}

// CanReserve true, если есть свободные места и у name еще нет бронирования на этот день
func (c *Calculator) CanReserve(name string, reservations []*domain.Reservation) bool {
	return c.AvailableSpots(reservations) > 0 && !c.HasReservation(name, reservations)
}

// BlockReasonFor возвращает причину, по которой дата не доступна для изменений,
// или BlockNone. Прошедшие даты доступны только для чтения.
func (c *Calculator) BlockReasonFor(date, today types.Date) BlockReason {
	if date.Before(today) {
		return BlockPastDate
	}
	if c.weekdaysOnly && date.IsWeekend() {
		return BlockWeekend
	}
	return BlockNone
}

// Day вычисляет занятость одного дня
func (c *Calculator) Day(date types.Date, reservations []*domain.Reservation, today types.Date) domain.DayAvailability {
	if reservations == nil {
		reservations = []*domain.Reservation{}
	}
	return domain.DayAvailability{
		Date:           date,
		AvailableSpots: c.AvailableSpots(reservations),
		TotalSpots:     c.capacity,
		Reservations:   reservations,
		IsPast:         date.Before(today),
		IsBookable:     c.BlockReasonFor(date, today) == BlockNone,
	}
}

// Month вычисляет занятость каждого дня месяца. В режиме weekdaysOnly
// выходные пропускаются. Даты, отсутствующие в grouped, считаются пустыми.
func (c *Calculator) Month(year int, month time.Month, grouped domain.ReservationsByDate, today types.Date) []domain.DayAvailability {
	days := make([]domain.DayAvailability, 0, types.DaysInMonth(year, month))

	last := types.LastOfMonth(year, month)
	for d := types.FirstOfMonth(year, month); !d.After(last); d = d.AddDays(1) {
		if c.weekdaysOnly && d.IsWeekend() {
			continue
		}
		days = append(days, c.Day(d, grouped.For(d), today))
	}

	return days
}

// Evaluate определяет состояние формы бронирования для введенного имени
func (c *Calculator) Evaluate(name string, date types.Date, reservations []*domain.Reservation, today types.Date) Evaluation {
	eval := Evaluation{
		Name:           domain.NormalizeName(name),
		AvailableSpots: c.AvailableSpots(reservations),
	}

	if eval.Name == "" {
		eval.State = StateIdle
		return eval
	}

	if reason := c.BlockReasonFor(date, today); reason != BlockNone {
		eval.State = StateBlocked
		eval.Reason = reason
		return eval
	}

	if c.HasReservation(eval.Name, reservations) {
		eval.State = StateEligibleToEdit
		return eval
	}

	if eval.AvailableSpots == 0 {
		eval.State = StateBlocked
		eval.Reason = BlockCapacityExhausted
		return eval
	}

	eval.State = StateEligibleToCreate
	return eval
}

// FindByName возвращает бронирование name из списка (без учета регистра) или nil
func FindByName(name string, reservations []*domain.Reservation) *domain.Reservation {
	for _, r := range reservations {
		if r.BelongsTo(name) {
			return r
		}
	}
	return nil
}

// ValidateName обрезает пробелы и проверяет имя.
// PostgreSQL не хранит в text нулевые байты и некорректный UTF-8.
func ValidateName(name string) (string, error) {
	if !utf8.ValidString(name) || strings.ContainsRune(name, 0) {
		return "", ErrInvalidName
	}

	trimmed := domain.NormalizeName(name)
	if trimmed == "" {
		return "", ErrEmptyName
	}
	if utf8.RuneCountInString(trimmed) > domain.MaxNameLength {
		return "", ErrNameTooLong
	}
	return trimmed, nil
}
