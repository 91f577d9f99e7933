package get_today_arrivals

import (
	"context"

	"github.com/hotelpms/reservation-service/internal/service/reservations/models"
)

type ReservationService interface {
	TodayArrivals(ctx context.Context) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
