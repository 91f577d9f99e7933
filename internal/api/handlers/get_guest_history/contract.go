package get_guest_history

import (
	"context"

	"github.com/hotelpms/reservation-service/internal/service/reservations/models"
)

type GuestService interface {
	History(ctx context.Context, id int64) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
