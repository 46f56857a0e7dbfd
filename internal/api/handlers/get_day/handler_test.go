package get_day

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeskBooking/internal/service/reservations"
	"github.com/m04kA/SMC-DeskBooking/internal/service/reservations/models"
	"github.com/m04kA/SMC-DeskBooking/pkg/types"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetDay(ctx context.Context, date types.Date, name string) (*models.DayResponse, error) {
	args := m.Called(ctx, date, name)
	resp, _ := args.Get(0).(*models.DayResponse)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc *mockService, path string) *httptest.ResponseRecorder {
	router := mux.NewRouter().UseEncodedPath()
	router.HandleFunc("/api/v1/days/{date}", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodGet)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHandle_OK(t *testing.T) {
	svc := &mockService{}
	date := types.MustParseDate("2024-03-04")

	svc.On("GetDay", mock.Anything, date, "Ann Lee").Return(&models.DayResponse{
		Date:           date,
		TotalSpots:     12,
		AvailableSpots: 11,
		Reservations:   []models.ReservationResponse{{Name: "Ann Lee", Date: date}},
		Evaluation:     &models.EvaluationResponse{Name: "Ann Lee", State: "eligible_to_edit", AvailableSpots: 11},
	}, nil)

	w := serve(svc, "/api/v1/days/2024-03-04?name=Ann+Lee")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "2024-03-04", body["date"])
	assert.Equal(t, float64(11), body["availableSpots"])
	assert.Equal(t, "eligible_to_edit", body["evaluation"].(map[string]interface{})["state"])
}

func TestHandle_InvalidInput(t *testing.T) {
	svc := &mockService{}

	assert.Equal(t, http.StatusBadRequest, serve(svc, "/api/v1/days/2024-13-01").Code)
	assert.Equal(t, http.StatusBadRequest, serve(svc, "/api/v1/days/2024-03-04?name="+strings.Repeat("a", 101)).Code)
	svc.AssertNotCalled(t, "GetDay", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandle_StoreUnavailable(t *testing.T) {
	svc := &mockService{}
	svc.On("GetDay", mock.Anything, mock.Anything, "").Return(nil, reservations.ErrStoreUnavailable)

	assert.Equal(t, http.StatusServiceUnavailable, serve(svc, "/api/v1/days/2024-03-04").Code)
}
