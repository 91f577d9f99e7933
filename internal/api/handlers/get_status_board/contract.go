package get_status_board

import (
	"context"
	"time"

	"github.com/hotelpms/reservation-service/internal/service/rooms/models"
)

type RoomService interface {
	StatusBoard(ctx context.Context, date *time.Time) (*models.StatusBoardResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
