package create_reservation

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DeskBooking/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Name string     // Имя (свободный текст, обрезается)
	Date types.Date // Календарный день без времени
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID             uuid.UUID  // ID, выданный хранилищем
	Name           string     // Имя после обрезки пробелов
	Date           types.Date // Дата бронирования
	AvailableSpots int        // Оценка свободных мест после создания (-1, если не вычислялась)
	CreatedAt      time.Time  // Время создания
	UpdatedAt      time.Time  // Время обновления
}
