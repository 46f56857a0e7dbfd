package get_names

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeskBooking/internal/service/reservations"
	"github.com/m04kA/SMC-DeskBooking/internal/service/reservations/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetNames(ctx context.Context, query string) (*models.NamesResponse, error) {
	args := m.Called(ctx, query)
	resp, _ := args.Get(0).(*models.NamesResponse)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func get(svc *mockService, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHandle(t *testing.T) {
	svc := &mockService{}
	svc.On("GetNames", mock.Anything, "al").Return(&models.NamesResponse{Names: []string{"Alice", "alina"}}, nil)

	w := get(svc, "/api/v1/names?q=al")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.NamesResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, []string{"Alice", "alina"}, resp.Names)
}

func TestHandle_Errors(t *testing.T) {
	svc := &mockService{}
	svc.On("GetNames", mock.Anything, "").Return(nil, reservations.ErrStoreUnavailable)

	assert.Equal(t, http.StatusServiceUnavailable, get(svc, "/api/v1/names").Code)
	assert.Equal(t, http.StatusBadRequest, get(svc, "/api/v1/names?q="+strings.Repeat("x", 101)).Code)
}
