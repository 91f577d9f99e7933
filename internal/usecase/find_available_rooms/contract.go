package find_available_rooms

import (
	"context"

	"github.com/hotelpms/reservation-service/internal/domain"
	roomRepo "github.com/hotelpms/reservation-service/internal/infra/storage/room"
)

// ReservationRepository is the reservation listing surface the usecase needs.
type ReservationRepository interface {
	ListWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// RoomRepository is the room catalog surface the usecase needs.
type RoomRepository interface {
	List(ctx context.Context, filter roomRepo.Filter) ([]*domain.Room, error)
}

// Logger is the logging surface the usecase needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
