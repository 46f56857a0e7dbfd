package get_month_availability

import (
	"time"

	"github.com/m04kA/SMC-DeskBooking/pkg/types"
)

// Статусы заполненности дня для раскраски календаря
const (
	DayStatusFree    = "free"
	DayStatusPartial = "partial"
	DayStatusFull    = "full"
)

// Request модель запроса календаря на месяц
type Request struct {
	Year  int
	Month time.Month
}

// Day занятость одного дня месяца
type Day struct {
	Date           types.Date
	TotalSpots     int
	AvailableSpots int
	Reserved       int
	Occupancy      float64  // Процент занятых мест
	Names          []string // Имена в порядке создания бронирований
	Status         string   // free | partial | full
	IsPast         bool
	IsBookable     bool
}

// Response модель ответа с календарем на месяц
type Response struct {
	Year     int
	Month    time.Month
	Capacity int
	Days     []Day
	Cached   bool // Данные взяты из кэша
}
