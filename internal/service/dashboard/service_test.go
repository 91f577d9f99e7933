package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelpms/reservation-service/internal/domain"
	roomRepo "github.com/hotelpms/reservation-service/internal/infra/storage/room"
)

type fakeRoomRepo struct {
	rooms []*domain.Room
}

func (f *fakeRoomRepo) List(_ context.Context, _ roomRepo.Filter) ([]*domain.Room, error) {
	return f.rooms, nil
}

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	arrivals     []*domain.Reservation
	departures   []*domain.Reservation
}

func (f *fakeReservationRepo) ListWithFilter(_ context.Context, _ domain.ReservationsFilter) ([]*domain.Reservation, error) {
	return f.reservations, nil
}

func (f *fakeReservationRepo) GetArrivals(_ context.Context, _ time.Time) ([]*domain.Reservation, error) {
	return f.arrivals, nil
}

func (f *fakeReservationRepo) GetDepartures(_ context.Context, _ time.Time) ([]*domain.Reservation, error) {
	return f.departures, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStats(t *testing.T) {
	rooms := []*domain.Room{
		{ID: 1, RoomNumber: "101", Status: domain.RoomAvailable},
		{ID: 2, RoomNumber: "102", Status: domain.RoomAvailable},
		{ID: 3, RoomNumber: "103", Status: domain.RoomAvailable},
		{ID: 4, RoomNumber: "104", Status: domain.RoomMaintenance},
		{ID: 5, RoomNumber: "105", Status: domain.RoomOutOfOrder},
	}
	reservations := []*domain.Reservation{
		{ID: 1, RoomID: 1, CheckIn: date(2025, time.August, 20), CheckOut: date(2025, time.August, 23),
			Adults: 2, Children: 1, Status: domain.StatusCheckedIn},
		{ID: 2, RoomID: 2, CheckIn: date(2025, time.August, 21), CheckOut: date(2025, time.August, 24),
			Adults: 1, Status: domain.StatusConfirmed},
	}

	resRepo := &fakeReservationRepo{
		reservations: reservations,
		arrivals:     []*domain.Reservation{reservations[1]},
		departures:   nil,
	}
	svc := NewService(&fakeRoomRepo{rooms: rooms}, resRepo, nopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: date(2025, time.August, 21)}

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2025-08-21", stats.Date)
	assert.Equal(t, 5, stats.TotalRooms)
	assert.Equal(t, 1, stats.OccupiedRooms)
	assert.Equal(t, 1, stats.BookedRooms)
	assert.Equal(t, 1, stats.AvailableRooms)
	assert.Equal(t, 1, stats.MaintenanceRooms)
	assert.Equal(t, 1, stats.OutOfOrderRooms)

	// 2 of 3 sellable rooms are taken.
	assert.Equal(t, 66.7, stats.OccupancyRate)

	assert.Equal(t, 1, stats.TodayArrivals)
	assert.Equal(t, 0, stats.TodayDepartures)

	// Only checked-in stays count guests in house.
	assert.Equal(t, 3, stats.InHouseGuests)
}

func TestStats_NoSellableRooms(t *testing.T) {
	rooms := []*domain.Room{
		{ID: 1, RoomNumber: "101", Status: domain.RoomMaintenance},
	}
	svc := NewService(&fakeRoomRepo{rooms: rooms}, &fakeReservationRepo{}, nopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: date(2025, time.August, 21)}

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.0, stats.OccupancyRate)
}
