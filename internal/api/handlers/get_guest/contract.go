package get_guest

import (
	"context"

	"github.com/hotelpms/reservation-service/internal/service/guests/models"
)

type GuestService interface {
	GetByID(ctx context.Context, id int64) (*models.GuestResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
