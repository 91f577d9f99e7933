package find_available_rooms

import (
	"context"

	findAvailableRooms "github.com/hotelpms/reservation-service/internal/usecase/find_available_rooms"
)

type FindAvailableRoomsUseCase interface {
	Execute(ctx context.Context, req *findAvailableRooms.Request) (*findAvailableRooms.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
