package create_reservation

import (
	"time"

	createReservation "github.com/m04kA/SMC-DeskBooking/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-DeskBooking/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	Name string `json:"name"`
	Date string `json:"date" validate:"required,datetime=2006-01-02"` // "2024-03-04"
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Date           string `json:"date"`
	AvailableSpots *int   `json:"availableSpots,omitempty"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	date, err := types.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		Name: r.Name,
		Date: date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	out := &ReservationResponse{
		ID:        resp.ID.String(),
		Name:      resp.Name,
		Date:      resp.Date.String(),
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}

	// -1 означает, что предварительная проверка не выполнялась
	if resp.AvailableSpots >= 0 {
		spots := resp.AvailableSpots
		out.AvailableSpots = &spots
	}

	return out
}

