package get_month_availability

import (
	"fmt"

	getMonth "github.com/m04kA/SMC-DeskBooking/internal/usecase/get_month_availability"
)

// DayResponse HTTP модель дня календаря
type DayResponse struct {
	Date           string   `json:"date"`
	TotalSpots     int      `json:"totalSpots"`
	AvailableSpots int      `json:"availableSpots"`
	Reserved       int      `json:"reserved"`
	Occupancy      float64  `json:"occupancy"`
	Names          []string `json:"names"`
	Status         string   `json:"status"`
	IsPast         bool     `json:"isPast"`
	IsBookable     bool     `json:"isBookable"`
}

// MonthResponse HTTP модель календаря на месяц
type MonthResponse struct {
	Month    string        `json:"month"` // "2024-03"
	Capacity int           `json:"capacity"`
	Days     []DayResponse `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getMonth.Response) *MonthResponse {
	out := &MonthResponse{
		Month:    fmt.Sprintf("%04d-%02d", resp.Year, int(resp.Month)),
		Capacity: resp.Capacity,
		Days:     make([]DayResponse, 0, len(resp.Days)),
	}

	for _, d := range resp.Days {
		out.Days = append(out.Days, DayResponse{
			Date:           d.Date.String(),
			TotalSpots:     d.TotalSpots,
			AvailableSpots: d.AvailableSpots,
			Reserved:       d.Reserved,
			Occupancy:      d.Occupancy,
			Names:          d.Names,
			Status:         d.Status,
			IsPast:         d.IsPast,
			IsBookable:     d.IsBookable,
		})
	}

	return out
}
