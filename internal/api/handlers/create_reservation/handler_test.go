package create_reservation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	createReservation "github.com/m04kA/SMC-DeskBooking/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-DeskBooking/pkg/types"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*createReservation.Response)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	h.Handle(w, r)
	return w
}

func TestHandle_Created(t *testing.T) {
	uc := &mockUseCase{}
	h := NewHandler(uc, nopLogger{})

	id := uuid.New()
	created := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	date := types.MustParseDate("2024-03-05")

	uc.On("Execute", mock.Anything, &createReservation.Request{Name: " Alice ", Date: date}).
		Return(&createReservation.Response{ID: id, Name: "Alice", Date: date, AvailableSpots: 11, CreatedAt: created, UpdatedAt: created}, nil)

	w := post(h, `{"name":" Alice ","date":"2024-03-05"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp ReservationResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, id.String(), resp.ID)
	assert.Equal(t, "Alice", resp.Name)
	assert.Equal(t, "2024-03-05", resp.Date)
	require.NotNil(t, resp.AvailableSpots)
	assert.Equal(t, 11, *resp.AvailableSpots)
	assert.Equal(t, "2024-03-04T09:00:00Z", resp.CreatedAt)
	uc.AssertExpectations(t)
}

func TestHandle_BadRequestBeforeUseCase(t *testing.T) {
	bodies := []string{
		``,
		`{"name":`,
		`{"name":"Ann"}`,
		`{"name":"Ann","date":"2024-02-30"}`,
		`{"name":"Ann","date":"05/03/2024"}`,
	}

	for _, body := range bodies {
		uc := &mockUseCase{}
		w := post(NewHandler(uc, nopLogger{}), body)

		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	}
}

func TestHandle_ErrorStatuses(t *testing.T) {
	tests := []struct {
		err     error
		status  int
		message string
	}{
		{err: createReservation.ErrEmptyName, status: http.StatusBadRequest, message: msgEmptyName},
		{err: createReservation.ErrNameTooLong, status: http.StatusBadRequest, message: msgNameTooLong},
		{err: createReservation.ErrPastDate, status: http.StatusBadRequest, message: msgPastDate},
		{err: createReservation.ErrWeekendDate, status: http.StatusBadRequest, message: msgWeekendDate},
		{err: createReservation.ErrDuplicateReservation, status: http.StatusConflict, message: msgDuplicate},
		{err: createReservation.ErrCapacityExceeded, status: http.StatusConflict, message: msgCapacityExceeded},
		{err: createReservation.ErrStoreUnavailable, status: http.StatusServiceUnavailable, message: msgStoreUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			w := post(NewHandler(uc, nopLogger{}), `{"name":"Bob","date":"2024-03-05"}`)
			assert.Equal(t, tt.status, w.Code)

			var body struct {
				Message string `json:"message"`
			}
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, tt.message, body.Message)
		})
	}
}
