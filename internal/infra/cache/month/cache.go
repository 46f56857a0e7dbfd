package month

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	"github.com/m04kA/SMC-DeskBooking/pkg/types"
)

const (
	keyPattern       = "%s:reservations:month:%04d-%02d"
	entrySuffix      = ":g%d"
	generationSuffix = ":gen"
)

// Cache кэш бронирований месяца в Redis.
// Значение хранится в JSON под ключом поколения месяца.
// Invalidate увеличивает поколение: запись, подготовленная по старому
// поколению, попадает в ключ, который больше никто не читает.
type Cache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewCache создает кэш месяца поверх клиента Redis
func NewCache(client *redis.Client, prefix string, ttl time.Duration) *Cache {
	return &Cache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// Key возвращает базовый ключ Redis для месяца
func (c *Cache) Key(year int, month time.Month) string {
	return fmt.Sprintf(keyPattern, c.prefix, year, int(month))
}

// EntryKey возвращает ключ данных месяца для поколения
func (c *Cache) EntryKey(year int, month time.Month, generation int64) string {
	return c.Key(year, month) + fmt.Sprintf(entrySuffix, generation)
}

// GenerationKey возвращает ключ счетчика поколений месяца
func (c *Cache) GenerationKey(year int, month time.Month) string {
	return c.Key(year, month) + generationSuffix
}

// Generation возвращает текущее поколение месяца (0, если записей еще не было).
// Читается до обращения к БД и передается в Get и Set.
func (c *Cache) Generation(ctx context.Context, year int, month time.Month) (int64, error) {
	gen, err := c.client.Get(ctx, c.GenerationKey(year, month)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: Generation - redis get: %v", ErrCacheUnavailable, err)
	}
	return gen, nil
}

// Get возвращает закэшированные бронирования месяца для поколения.
// Второе значение false, если ключа нет.
func (c *Cache) Get(ctx context.Context, year int, month time.Month, generation int64) (domain.ReservationsByDate, bool, error) {
	data, err := c.client.Get(ctx, c.EntryKey(year, month, generation)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%w: Get - redis get: %v", ErrCacheUnavailable, err)
	}

	var payload map[string][]entry
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, false, fmt.Errorf("%w: Get - decode: %v", ErrCorruptedEntry, err)
	}

	return fromEntries(payload), true, nil
}

// Set сохраняет бронирования месяца с TTL под ключом поколения
func (c *Cache) Set(ctx context.Context, year int, month time.Month, generation int64, grouped domain.ReservationsByDate) error {
	data, err := encode(grouped)
	if err != nil {
		return fmt.Errorf("%w: Set - encode: %v", ErrCorruptedEntry, err)
	}

	if err := c.client.Set(ctx, c.EntryKey(year, month, generation), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set - redis set: %v", ErrCacheUnavailable, err)
	}

	return nil
}

// Invalidate переводит месяц даты на новое поколение.
// Данные прошлых поколений больше не читаются и удаляются по TTL.
func (c *Cache) Invalidate(ctx context.Context, date types.Date) error {
	if err := c.client.Incr(ctx, c.GenerationKey(date.Year(), date.Month())).Err(); err != nil {
		return fmt.Errorf("%w: Invalidate - redis incr: %v", ErrCacheUnavailable, err)
	}
	return nil
}

func encode(grouped domain.ReservationsByDate) ([]byte, error) {
	return json.Marshal(toEntries(grouped))
}
