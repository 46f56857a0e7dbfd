package domain

import "github.com/m04kA/SMC-DeskBooking/pkg/types"

// DayAvailability represents the occupancy of a single calendar day
type DayAvailability struct {
	Date           types.Date
	AvailableSpots int // Remaining seats, never negative
	TotalSpots     int // Daily capacity
	Reservations   []*Reservation
	IsPast         bool // Past days are read-only
	IsBookable     bool // Not past and not excluded (weekend in weekdays-only mode)
}

// IsFull returns true if the day has no available spots
func (d *DayAvailability) IsFull() bool {
	return d.AvailableSpots <= 0
}

// IsPartiallyAvailable returns true if some but not all spots are taken
func (d *DayAvailability) IsPartiallyAvailable() bool {
	return d.AvailableSpots > 0 && d.AvailableSpots < d.TotalSpots
}

// IsFullyAvailable returns true if nobody booked the day
func (d *DayAvailability) IsFullyAvailable() bool {
	return d.AvailableSpots == d.TotalSpots
}

// ReservedCount returns the number of reservations of the day
func (d *DayAvailability) ReservedCount() int {
	return len(d.Reservations)
}

// OccupancyRate returns the occupancy rate as a percentage (0-100)
func (d *DayAvailability) OccupancyRate() float64 {
	if d.TotalSpots == 0 {
		return 0
	}
	occupied := d.TotalSpots - d.AvailableSpots
	return float64(occupied) / float64(d.TotalSpots) * 100
}

// Names returns the names of the people present on that day, in reservation order
func (d *DayAvailability) Names() []string {
	names := make([]string, 0, len(d.Reservations))
	for _, r := range d.Reservations {
		names = append(names, r.Name)
	}
	return names
}
