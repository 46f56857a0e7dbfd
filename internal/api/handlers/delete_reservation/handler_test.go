package delete_reservation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-DeskBooking/internal/service/reservations"
	"github.com/m04kA/SMC-DeskBooking/internal/service/reservations/models"
	"github.com/m04kA/SMC-DeskBooking/pkg/types"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Remove(ctx context.Context, req *models.RemoveRequest) error {
	return m.Called(ctx, req).Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc *mockService, path string) *httptest.ResponseRecorder {
	router := mux.NewRouter().UseEncodedPath()
	router.HandleFunc("/api/v1/days/{date}/reservations/{name}", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodDelete)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, path, nil))
	return w
}

func TestHandle_RemovedTwice(t *testing.T) {
	svc := &mockService{}
	svc.On("Remove", mock.Anything, &models.RemoveRequest{Name: "Ann", Date: types.MustParseDate("2024-03-05")}).
		Return(nil).Twice()

	assert.Equal(t, http.StatusNoContent, serve(svc, "/api/v1/days/2024-03-05/reservations/Ann").Code)
	assert.Equal(t, http.StatusNoContent, serve(svc, "/api/v1/days/2024-03-05/reservations/Ann").Code)
	svc.AssertExpectations(t)
}

func TestHandle_ErrorStatuses(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{err: reservations.ErrEmptyName, status: http.StatusBadRequest},
		{err: reservations.ErrPastDate, status: http.StatusBadRequest},
		{err: reservations.ErrStoreUnavailable, status: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		svc := &mockService{}
		svc.On("Remove", mock.Anything, mock.Anything).Return(tt.err)

		assert.Equal(t, tt.status, serve(svc, "/api/v1/days/2024-03-05/reservations/Ann").Code, tt.err.Error())
	}
}
