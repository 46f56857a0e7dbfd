package month

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	"github.com/m04kA/SMC-DeskBooking/pkg/types"
)

func sampleMonth() domain.ReservationsByDate {
	created := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	date := types.MustParseDate("2024-03-04")

	return domain.ReservationsByDate{
		"2024-03-04": {
			{ID: uuid.New(), Name: "Ann", Date: date, CreatedAt: created, UpdatedAt: created},
			{ID: uuid.New(), Name: "Ben", Date: date, CreatedAt: created, UpdatedAt: created},
		},
	}
}

func TestKeys(t *testing.T) {
	c := NewCache(nil, "desk", time.Minute)
	assert.Equal(t, "desk:reservations:month:2024-03", c.Key(2024, time.March))
	assert.Equal(t, "desk:reservations:month:2024-12:g0", c.EntryKey(2024, time.December, 0))
	assert.Equal(t, "desk:reservations:month:2024-03:g7", c.EntryKey(2024, time.March, 7))
	assert.Equal(t, "desk:reservations:month:2024-03:gen", c.GenerationKey(2024, time.March))
}

func TestGeneration(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewCache(db, "desk", time.Minute)

	mock.ExpectGet("desk:reservations:month:2024-03:gen").RedisNil()
	mock.ExpectGet("desk:reservations:month:2024-03:gen").SetVal("4")
	mock.ExpectGet("desk:reservations:month:2024-03:gen").SetErr(errors.New("connection reset"))

	gen, err := c.Generation(context.Background(), 2024, time.March)
	require.NoError(t, err)
	assert.Equal(t, int64(0), gen)

	gen, err = c.Generation(context.Background(), 2024, time.March)
	require.NoError(t, err)
	assert.Equal(t, int64(4), gen)

	_, err = c.Generation(context.Background(), 2024, time.March)
	assert.ErrorIs(t, err, ErrCacheUnavailable)
}

func TestGet_Hit(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewCache(db, "desk", time.Minute)

	grouped := sampleMonth()
	data, err := encode(grouped)
	require.NoError(t, err)

	mock.ExpectGet("desk:reservations:month:2024-03:g2").SetVal(string(data))

	got, ok, err := c.Get(context.Background(), 2024, time.March, 2)
	require.NoError(t, err)
	require.True(t, ok)

	list := got.For(types.MustParseDate("2024-03-04"))
	require.Len(t, list, 2)
	assert.Equal(t, grouped["2024-03-04"][0].ID, list[0].ID)
	assert.Equal(t, "Ben", list[1].Name)
	assert.Equal(t, "2024-03-04", list[1].Date.String())
	assert.True(t, grouped["2024-03-04"][0].CreatedAt.Equal(list[0].CreatedAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_Miss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewCache(db, "desk", time.Minute)

	mock.ExpectGet("desk:reservations:month:2024-03:g0").RedisNil()

	got, ok, err := c.Get(context.Background(), 2024, time.March, 0)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestGet_BackendError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewCache(db, "desk", time.Minute)

	mock.ExpectGet("desk:reservations:month:2024-03:g0").SetErr(errors.New("connection reset"))

	_, ok, err := c.Get(context.Background(), 2024, time.March, 0)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrCacheUnavailable)
}

func TestGet_CorruptedEntry(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewCache(db, "desk", time.Minute)

	mock.ExpectGet("desk:reservations:month:2024-03:g0").SetVal("{not json")

	_, ok, err := c.Get(context.Background(), 2024, time.March, 0)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrCorruptedEntry)
}

func TestSet(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewCache(db, "desk", 5*time.Minute)

	grouped := sampleMonth()
	data, err := encode(grouped)
	require.NoError(t, err)

	mock.ExpectSet("desk:reservations:month:2024-03:g1", data, 5*time.Minute).SetVal("OK")

	require.NoError(t, c.Set(context.Background(), 2024, time.March, 1, grouped))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvalidate_BumpsGenerationOfDateMonth(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewCache(db, "desk", time.Minute)

	mock.ExpectIncr("desk:reservations:month:2024-02:gen").SetVal(1)

	require.NoError(t, c.Invalidate(context.Background(), types.MustParseDate("2024-02-29")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvalidate_Error(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewCache(db, "desk", time.Minute)

	mock.ExpectIncr("desk:reservations:month:2024-02:gen").SetErr(errors.New("timeout"))

	err := c.Invalidate(context.Background(), types.MustParseDate("2024-02-01"))
	assert.ErrorIs(t, err, ErrCacheUnavailable)
}

// Снимок, прочитанный до инвалидации, сохраняется под старым поколением,
// а следующий читатель ищет данные уже под новым.
func TestSetAfterInvalidate_LandsOnRetiredKey(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewCache(db, "desk", time.Minute)
	ctx := context.Background()

	stale := sampleMonth()
	data, err := encode(stale)
	require.NoError(t, err)

	mock.ExpectGet("desk:reservations:month:2024-03:gen").SetVal("3")
	mock.ExpectIncr("desk:reservations:month:2024-03:gen").SetVal(4)
	mock.ExpectSet("desk:reservations:month:2024-03:g3", data, time.Minute).SetVal("OK")
	mock.ExpectGet("desk:reservations:month:2024-03:gen").SetVal("4")
	mock.ExpectGet("desk:reservations:month:2024-03:g4").RedisNil()

	readerGen, err := c.Generation(ctx, 2024, time.March)
	require.NoError(t, err)

	require.NoError(t, c.Invalidate(ctx, types.MustParseDate("2024-03-04")))
	require.NoError(t, c.Set(ctx, 2024, time.March, readerGen, stale))

	nextGen, err := c.Generation(ctx, 2024, time.March)
	require.NoError(t, err)
	_, ok, err := c.Get(ctx, 2024, time.March, nextGen)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoop(t *testing.T) {
	c := NewNoop()
	ctx := context.Background()

	gen, err := c.Generation(ctx, 2024, time.March)
	require.NoError(t, err)
	require.NoError(t, c.Set(ctx, 2024, time.March, gen, sampleMonth()))
	got, ok, err := c.Get(ctx, 2024, time.March, gen)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
	assert.NoError(t, c.Invalidate(ctx, types.MustParseDate("2024-03-04")))
}
