package update_room_status

import (
	"context"

	"github.com/hotelpms/reservation-service/internal/service/rooms/models"
)

type RoomService interface {
	UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
