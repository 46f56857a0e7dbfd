package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeskBooking/pkg/types"
)

const maxBodyBytes = 1 << 20

var (
	// ErrEmptyBody возвращается, когда тело запроса отсутствует
	ErrEmptyBody = errors.New("handlers: empty request body")

	// ErrInvalidJSON возвращается при некорректном JSON
	ErrInvalidJSON = errors.New("handlers: invalid json")

	// ErrValidation возвращается, когда запрос не прошел валидацию тегов
	ErrValidation = errors.New("handlers: validation failed")

	// ErrMissingPathParam возвращается, когда в пути нет ожидаемого параметра
	ErrMissingPathParam = errors.New("handlers: missing path parameter")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// DecodeJSON декодирует тело запроса в v и проверяет теги `validate`
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return ErrEmptyBody
	}

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	return nil
}

// ValidateVar проверяет одно значение по тегу validator (например "max=100")
func ValidateVar(value interface{}, tag string) error {
	if err := validate.Var(value, tag); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

// PathDate извлекает дату YYYY-MM-DD из параметра пути
func PathDate(r *http.Request, key string) (types.Date, error) {
	raw, ok := mux.Vars(r)[key]
	if !ok {
		return types.Date{}, fmt.Errorf("%w: %s", ErrMissingPathParam, key)
	}
	return types.ParseDate(raw)
}

// PathString извлекает строковый параметр пути (с URL-декодированием)
func PathString(r *http.Request, key string) (string, error) {
	raw, ok := mux.Vars(r)[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingPathParam, key)
	}

	value, err := url.PathUnescape(raw)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}
