package rename_reservation

import (
	"github.com/m04kA/SMC-DeskBooking/internal/service/reservations/models"
	"github.com/m04kA/SMC-DeskBooking/pkg/types"
)

// RenameReservationRequest HTTP request model
type RenameReservationRequest struct {
	NewName string `json:"newName"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *RenameReservationRequest) ToServiceRequest(oldName string, date types.Date) *models.RenameRequest {
	return &models.RenameRequest{
		OldName: oldName,
		NewName: r.NewName,
		Date:    date,
	}
}
