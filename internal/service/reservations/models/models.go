package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DeskBooking/internal/availability"
	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	"github.com/m04kA/SMC-DeskBooking/pkg/types"
)

// Request модели

// RenameRequest запрос на смену имени в бронировании
type RenameRequest struct {
	OldName string     `json:"oldName"`
	NewName string     `json:"newName"`
	Date    types.Date `json:"date"`
}

// RemoveRequest запрос на удаление бронирования
type RemoveRequest struct {
	Name string     `json:"name"`
	Date types.Date `json:"date"`
}

// Response модели

// ReservationResponse данные бронирования
type ReservationResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Date      types.Date `json:"date"`
	Past      bool       `json:"past"` // прошедшие бронирования только для чтения
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// EvaluationResponse оценка введенного имени для выбранного дня
type EvaluationResponse struct {
	Name           string `json:"name"`
	State          string `json:"state"`
	Reason         string `json:"reason,omitempty"`
	AvailableSpots int    `json:"availableSpots"`
}

// DayResponse бронирования и свободные места на день
type DayResponse struct {
	Date           types.Date            `json:"date"`
	TotalSpots     int                   `json:"totalSpots"`
	AvailableSpots int                   `json:"availableSpots"`
	IsPast         bool                  `json:"isPast"`
	IsBookable     bool                  `json:"isBookable"`
	Reservations   []ReservationResponse `json:"reservations"`
	Evaluation     *EvaluationResponse   `json:"evaluation,omitempty"`
}

// CountResponse количество бронирований на дату
type CountResponse struct {
	Date           types.Date `json:"date"`
	Count          int        `json:"count"`
	AvailableSpots int        `json:"availableSpots"`
}

// NameReservationsResponse бронирования одного человека
type NameReservationsResponse struct {
	Name         string                `json:"name"`
	Reservations []ReservationResponse `json:"reservations"`
}

// NamesResponse уникальные имена для автодополнения
type NamesResponse struct {
	Names []string `json:"names"`
}

// FromDomainReservation конвертирует domain.Reservation в ReservationResponse
func FromDomainReservation(r *domain.Reservation, today types.Date) ReservationResponse {
	return ReservationResponse{
		ID:        r.ID,
		Name:      r.Name,
		Date:      r.Date,
		Past:      r.IsPast(today),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// FromDomainReservations конвертирует список бронирований
func FromDomainReservations(list []*domain.Reservation, today types.Date) []ReservationResponse {
	out := make([]ReservationResponse, 0, len(list))
	for _, r := range list {
		out = append(out, FromDomainReservation(r, today))
	}
	return out
}

// FromDayAvailability конвертирует domain.DayAvailability в DayResponse
func FromDayAvailability(day domain.DayAvailability, today types.Date) *DayResponse {
	return &DayResponse{
		Date:           day.Date,
		TotalSpots:     day.TotalSpots,
		AvailableSpots: day.AvailableSpots,
		IsPast:         day.IsPast,
		IsBookable:     day.IsBookable,
		Reservations:   FromDomainReservations(day.Reservations, today),
	}
}

// FromEvaluation конвертирует availability.Evaluation в EvaluationResponse
func FromEvaluation(e availability.Evaluation) *EvaluationResponse {
	return &EvaluationResponse{
		Name:           e.Name,
		State:          string(e.State),
		Reason:         string(e.Reason),
		AvailableSpots: e.AvailableSpots,
	}
}
