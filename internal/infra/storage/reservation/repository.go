package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	"github.com/m04kA/SMC-DeskBooking/pkg/psqlbuilder"
	"github.com/m04kA/SMC-DeskBooking/pkg/types"
)

const (
	tableName         = "reservations"
	settingsTableName = "reservation_settings"

	// SQLSTATE коды PostgreSQL
	codeUniqueViolation = "23505"
	codeCheckViolation  = "23514"

	// capacityMarker часть сообщения, которое выбрасывает триггер вместимости
	capacityMarker = "capacity exceeded"

	// nameLengthConstraint CHECK ограничение длины имени из миграции
	nameLengthConstraint = "reservations_name_length_chk"
)

var reservationColumns = []string{
	"id",
	"name",
	"date",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями мест.
// Не содержит бизнес-правил: только запросы и трансляция ошибок БД.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListByDate получает бронирования на дату в порядке создания.
// Отсутствие строк не является ошибкой.
func (r *Repository) ListByDate(ctx context.Context, date types.Date) ([]*domain.Reservation, error) {
	query, args, err := psqlbuilder.Select(reservationColumns...).
		From(tableName).
		Where(squirrel.Eq{"date": date}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, "ListByDate", query, args)
}

// ListByMonth получает бронирования месяца, сгруппированные по дате.
// Даты без бронирований отсутствуют в результате.
func (r *Repository) ListByMonth(ctx context.Context, year int, month time.Month) (domain.ReservationsByDate, error) {
	query, args, err := psqlbuilder.Select(reservationColumns...).
		From(tableName).
		Where(squirrel.GtOrEq{"date": types.FirstOfMonth(year, month)}).
		Where(squirrel.LtOrEq{"date": types.LastOfMonth(year, month)}).
		OrderBy("date ASC", "created_at ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByMonth - build select query: %v", ErrBuildQuery, err)
	}

	reservations, err := r.query(ctx, "ListByMonth", query, args)
	if err != nil {
		return nil, err
	}

	grouped := make(domain.ReservationsByDate)
	for _, res := range reservations {
		key := res.Date.String()
		grouped[key] = append(grouped[key], res)
	}

	return grouped, nil
}

// ListByName получает бронирования человека (без учета регистра) по возрастанию даты
func (r *Repository) ListByName(ctx context.Context, name string) ([]*domain.Reservation, error) {
	query, args, err := psqlbuilder.Select(reservationColumns...).
		From(tableName).
		Where("lower(name) = lower(?)", domain.NormalizeName(name)).
		OrderBy("date ASC", "created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByName - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, "ListByName", query, args)
}

// Create создает бронирование.
// Уникальность (name, date) и вместимость дня проверяются ограничениями БД:
// их нарушения возвращаются как ErrDuplicateReservation и ErrCapacityExceeded.
func (r *Repository) Create(ctx context.Context, name string, date types.Date) (*domain.Reservation, error) {
	query, args, err := psqlbuilder.Insert(tableName).
		Columns("name", "date").
		Values(name, date).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	res := &domain.Reservation{Name: name, Date: date}
	var createdAt, updatedAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&res.ID, &createdAt, &updatedAt)
	if err != nil {
		if mapped := classify(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrStoreUnavailable, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// Rename меняет имя в бронировании (oldName, date).
// Версии строки нет: изменение между чтением и записью не обнаруживается.
func (r *Repository) Rename(ctx context.Context, oldName, newName string, date types.Date) error {
	query, args, err := psqlbuilder.Update(tableName).
		Set("name", newName).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where("lower(name) = lower(?)", oldName).
		Where(squirrel.Eq{"date": date}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Rename - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if mapped := classify(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("%w: Rename - execute update: %v", ErrStoreUnavailable, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Rename - get rows affected: %v", ErrStoreUnavailable, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// Delete удаляет бронирование (name, date).
// Идемпотентно: удаление несуществующего бронирования не является ошибкой.
func (r *Repository) Delete(ctx context.Context, name string, date types.Date) error {
	query, args, err := psqlbuilder.Delete(tableName).
		Where("lower(name) = lower(?)", name).
		Where(squirrel.Eq{"date": date}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrStoreUnavailable, err)
	}

	return nil
}

// CountByDate возвращает количество бронирований на дату
func (r *Repository) CountByDate(ctx context.Context, date types.Date) (int, error) {
	query, args, err := psqlbuilder.Select("COUNT(*)").
		From(tableName).
		Where(squirrel.Eq{"date": date}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountByDate - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByDate - scan count: %v", ErrStoreUnavailable, err)
	}

	return count, nil
}

// ListUniqueNames возвращает уникальные имена, отсортированные побайтно
// (порядок не зависит от collation БД)
func (r *Repository) ListUniqueNames(ctx context.Context) ([]string, error) {
	query, args, err := psqlbuilder.Select("DISTINCT name").
		From(tableName).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListUniqueNames - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListUniqueNames - execute query: %v", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%w: ListUniqueNames - scan name: %v", ErrStoreUnavailable, err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListUniqueNames - rows error: %v", ErrStoreUnavailable, err)
	}

	sort.Strings(names)
	return names, nil
}

// SetCapacity записывает вместимость дня, которую проверяет триггер вставки.
// Вызывается при запуске, чтобы БД и калькулятор доступности считали одинаково.
func (r *Repository) SetCapacity(ctx context.Context, capacity int) error {
	query, args, err := psqlbuilder.Insert(settingsTableName).
		Columns("id", "capacity").
		Values(true, capacity).
		Suffix("ON CONFLICT (id) DO UPDATE SET capacity = EXCLUDED.capacity").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetCapacity - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SetCapacity - execute upsert: %v", ErrStoreUnavailable, err)
	}

	return nil
}

func (r *Repository) query(ctx context.Context, op, query string, args []interface{}) ([]*domain.Reservation, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrStoreUnavailable, op, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// scanReservations сканирует результаты запроса в слайс бронирований
func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		var res domain.Reservation
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&res.ID,
			&res.Name,
			&res.Date,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrStoreUnavailable, err)
		}

		res.CreatedAt = createdAt.Time
		res.UpdatedAt = updatedAt.Time

		reservations = append(reservations, &res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrStoreUnavailable, err)
	}

	return reservations, nil
}

// classify переводит ошибки ограничений PostgreSQL в доменные ошибки репозитория.
// Возвращает nil для остальных ошибок.
func classify(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return nil
	}

	capacity := strings.Contains(strings.ToLower(pqErr.Message), capacityMarker)

	switch pqErr.Code {
	case codeUniqueViolation:
		return ErrDuplicateReservation
	case codeCheckViolation:
		// 23514 выбрасывают и триггер вместимости, и CHECK на имени
		if pqErr.Constraint == nameLengthConstraint {
			return ErrInvalidName
		}
		if capacity {
			return ErrCapacityExceeded
		}
		return nil
	}

	if capacity {
		return ErrCapacityExceeded
	}

	return nil
}
