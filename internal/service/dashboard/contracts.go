package dashboard

import (
	"context"
	"time"

	"github.com/hotelpms/reservation-service/internal/domain"
	roomRepo "github.com/hotelpms/reservation-service/internal/infra/storage/room"
)

// RoomRepository is the room listing surface the service needs.
type RoomRepository interface {
	List(ctx context.Context, filter roomRepo.Filter) ([]*domain.Room, error)
}

// ReservationRepository is the reservation listing surface the service needs.
type ReservationRepository interface {
	ListWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
	GetArrivals(ctx context.Context, date time.Time) ([]*domain.Reservation, error)
	GetDepartures(ctx context.Context, date time.Time) ([]*domain.Reservation, error)
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
