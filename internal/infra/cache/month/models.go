package month

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	"github.com/m04kA/SMC-DeskBooking/pkg/types"
)

// entry сериализуемое представление бронирования в кэше
type entry struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Date      types.Date `json:"date"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func toEntries(grouped domain.ReservationsByDate) map[string][]entry {
	out := make(map[string][]entry, len(grouped))
	for key, list := range grouped {
		entries := make([]entry, 0, len(list))
		for _, r := range list {
			entries = append(entries, entry{
				ID:        r.ID,
				Name:      r.Name,
				Date:      r.Date,
				CreatedAt: r.CreatedAt,
				UpdatedAt: r.UpdatedAt,
			})
		}
		out[key] = entries
	}
	return out
}

func fromEntries(payload map[string][]entry) domain.ReservationsByDate {
	grouped := make(domain.ReservationsByDate, len(payload))
	for key, entries := range payload {
		list := make([]*domain.Reservation, 0, len(entries))
		for _, e := range entries {
			list = append(list, &domain.Reservation{
				ID:        e.ID,
				Name:      e.Name,
				Date:      e.Date,
				CreatedAt: e.CreatedAt,
				UpdatedAt: e.UpdatedAt,
			})
		}
		grouped[key] = list
	}
	return grouped
}
