package rooms

import (
	"context"
	"time"

	"github.com/hotelpms/reservation-service/internal/domain"
	roomRepo "github.com/hotelpms/reservation-service/internal/infra/storage/room"
)

// RoomRepository is the room persistence surface the service needs.
type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	GetByNumber(ctx context.Context, roomNumber string) (*domain.Room, error)
	List(ctx context.Context, filter roomRepo.Filter) ([]*domain.Room, error)
	Update(ctx context.Context, room *domain.Room) error
	UpdateStatus(ctx context.Context, id int64, status domain.RoomStatus) error
	Delete(ctx context.Context, id int64) error
}

// ReservationRepository is the reservation listing surface the service needs.
type ReservationRepository interface {
	ListWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// TimeProvider supplies the current time (overridable in tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
