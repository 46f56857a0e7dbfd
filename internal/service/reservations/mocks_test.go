package reservations

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	"github.com/m04kA/SMC-DeskBooking/pkg/types"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) ListByDate(ctx context.Context, date types.Date) ([]*domain.Reservation, error) {
	args := m.Called(ctx, date)
	list, _ := args.Get(0).([]*domain.Reservation)
	return list, args.Error(1)
}

func (m *mockRepository) ListByName(ctx context.Context, name string) ([]*domain.Reservation, error) {
	args := m.Called(ctx, name)
	list, _ := args.Get(0).([]*domain.Reservation)
	return list, args.Error(1)
}

func (m *mockRepository) ListUniqueNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	names, _ := args.Get(0).([]string)
	return names, args.Error(1)
}

func (m *mockRepository) CountByDate(ctx context.Context, date types.Date) (int, error) {
	args := m.Called(ctx, date)
	return args.Int(0), args.Error(1)
}

func (m *mockRepository) Rename(ctx context.Context, oldName, newName string, date types.Date) error {
	return m.Called(ctx, oldName, newName, date).Error(0)
}

func (m *mockRepository) Delete(ctx context.Context, name string, date types.Date) error {
	return m.Called(ctx, name, date).Error(0)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Invalidate(ctx context.Context, date types.Date) error {
	return m.Called(ctx, date).Error(0)
}

type mockMetrics struct {
	mock.Mock
}

func (m *mockMetrics) RecordReservation(operation, outcome string) {
	m.Called(operation, outcome)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
