package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name string `json:"name" validate:"max=5"`
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{name: "valid", body: `{"name":"Ann","date":"2024-03-04"}`},
		{name: "empty body", body: ``, wantErr: ErrEmptyBody},
		{name: "broken json", body: `{"name":`, wantErr: ErrInvalidJSON},
		{name: "unknown field", body: `{"name":"Ann","date":"2024-03-04","x":1}`, wantErr: ErrInvalidJSON},
		{name: "bad date", body: `{"name":"Ann","date":"04.03.2024"}`, wantErr: ErrValidation},
		{name: "missing date", body: `{"name":"Ann"}`, wantErr: ErrValidation},
		{name: "name too long", body: `{"name":"Annabelle","date":"2024-03-04"}`, wantErr: ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			var p payload
			err := DecodeJSON(r, &p)
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, "Ann", p.Name)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRespondError(t *testing.T) {
	w := httptest.NewRecorder()
	RespondConflict(w, "занято")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, http.StatusConflict, body.Code)
	assert.Equal(t, "занято", body.Message)
}

func TestPathHelpers(t *testing.T) {
	router := mux.NewRouter().UseEncodedPath()

	var (
		gotDate string
		gotName string
	)
	router.HandleFunc("/days/{date}/reservations/{name}", func(w http.ResponseWriter, r *http.Request) {
		date, err := PathDate(r, "date")
		require.NoError(t, err)
		gotDate = date.String()

		gotName, err = PathString(r, "name")
		require.NoError(t, err)

		_, err = PathString(r, "missing")
		assert.ErrorIs(t, err, ErrMissingPathParam)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/days/2024-03-04/reservations/Ann%20Lee", nil))

	assert.Equal(t, "2024-03-04", gotDate)
	assert.Equal(t, "Ann Lee", gotName)
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, ValidateVar("abc", "max=5"))
	assert.ErrorIs(t, ValidateVar("abcdef", "max=5"), ErrValidation)
}
