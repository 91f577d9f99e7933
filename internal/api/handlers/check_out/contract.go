package check_out

import (
	"context"

	"github.com/hotelpms/reservation-service/internal/service/reservations/models"
)

type ReservationService interface {
	CheckOut(ctx context.Context, id int64) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
