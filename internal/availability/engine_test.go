package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelpms/reservation-service/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func res(id, roomID int64, checkIn, checkOut time.Time, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:       id,
		RoomID:   roomID,
		GuestID:  1,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Status:   status,
	}
}

func TestHasConflict(t *testing.T) {
	existing := []*domain.Reservation{
		res(10, 101, date(2025, 8, 20), date(2025, 8, 22), domain.StatusConfirmed),
	}

	testCases := []struct {
		name     string
		roomID   int64
		checkIn  time.Time
		checkOut time.Time
		exclude  int64
		want     bool
	}{
		{
			name:     "back-to-back booking does not conflict (half-open boundary)",
			roomID:   101,
			checkIn:  date(2025, 8, 22),
			checkOut: date(2025, 8, 24),
			want:     false,
		},
		{
			name:     "candidate ending on existing check-in does not conflict",
			roomID:   101,
			checkIn:  date(2025, 8, 18),
			checkOut: date(2025, 8, 20),
			want:     false,
		},
		{
			name:     "overlapping by one night conflicts",
			roomID:   101,
			checkIn:  date(2025, 8, 21),
			checkOut: date(2025, 8, 23),
			want:     true,
		},
		{
			name:     "candidate fully inside existing conflicts",
			roomID:   101,
			checkIn:  date(2025, 8, 20),
			checkOut: date(2025, 8, 21),
			want:     true,
		},
		{
			name:     "existing fully inside candidate conflicts",
			roomID:   101,
			checkIn:  date(2025, 8, 19),
			checkOut: date(2025, 8, 23),
			want:     true,
		},
		{
			name:     "identical interval conflicts",
			roomID:   101,
			checkIn:  date(2025, 8, 20),
			checkOut: date(2025, 8, 22),
			want:     true,
		},
		{
			name:     "other room never conflicts",
			roomID:   102,
			checkIn:  date(2025, 8, 20),
			checkOut: date(2025, 8, 22),
			want:     false,
		},
		{
			name:     "excluding the matching reservation removes the conflict",
			roomID:   101,
			checkIn:  date(2025, 8, 20),
			checkOut: date(2025, 8, 22),
			exclude:  10,
			want:     false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := HasConflict(tc.roomID, tc.checkIn, tc.checkOut, existing, tc.exclude)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestHasConflict_InvalidInterval(t *testing.T) {
	_, err := HasConflict(101, date(2025, 8, 22), date(2025, 8, 22), nil, 0)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = HasConflict(101, date(2025, 8, 23), date(2025, 8, 22), nil, 0)
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestHasConflict_InactiveStatusesNeverBlock(t *testing.T) {
	for _, status := range domain.InactiveStatuses {
		t.Run(string(status), func(t *testing.T) {
			existing := []*domain.Reservation{
				res(10, 101, date(2025, 8, 20), date(2025, 8, 22), status),
			}
			got, err := HasConflict(101, date(2025, 8, 20), date(2025, 8, 22), existing, 0)
			require.NoError(t, err)
			assert.False(t, got)
		})
	}
}

func TestHasConflict_ActiveStatusesBlock(t *testing.T) {
	for _, status := range domain.ActiveStatuses {
		t.Run(string(status), func(t *testing.T) {
			existing := []*domain.Reservation{
				res(10, 101, date(2025, 8, 20), date(2025, 8, 22), status),
			}
			got, err := HasConflict(101, date(2025, 8, 21), date(2025, 8, 23), existing, 0)
			require.NoError(t, err)
			assert.True(t, got)
		})
	}
}

func TestConflicts_ReturnsAllConflictingIDs(t *testing.T) {
	existing := []*domain.Reservation{
		res(10, 101, date(2025, 8, 20), date(2025, 8, 22), domain.StatusConfirmed),
		res(11, 101, date(2025, 8, 23), date(2025, 8, 25), domain.StatusPending),
		res(12, 101, date(2025, 8, 25), date(2025, 8, 27), domain.StatusCancelled),
		res(13, 102, date(2025, 8, 20), date(2025, 8, 27), domain.StatusConfirmed),
	}

	ids, err := Conflicts(101, date(2025, 8, 21), date(2025, 8, 26), existing, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{10, 11}, ids)
}

func TestFindAvailableRooms(t *testing.T) {
	rooms := []*domain.Room{
		{ID: 1, RoomNumber: "101", Status: domain.RoomAvailable},
		{ID: 2, RoomNumber: "102", Status: domain.RoomMaintenance},
		{ID: 3, RoomNumber: "103", Status: domain.RoomAvailable},
		{ID: 4, RoomNumber: "104", Status: domain.RoomOutOfOrder},
		{ID: 5, RoomNumber: "105", Status: domain.RoomAvailable},
	}
	reservations := []*domain.Reservation{
		res(10, 3, date(2025, 8, 20), date(2025, 8, 22), domain.StatusConfirmed),
		res(11, 5, date(2025, 8, 22), date(2025, 8, 24), domain.StatusConfirmed), // back-to-back, no conflict
	}

	var got []string
	for room := range FindAvailableRooms(rooms, date(2025, 8, 20), date(2025, 8, 22), reservations) {
		got = append(got, room.RoomNumber)
	}

	// 102/104 dropped by intrinsic status even without reservations,
	// 103 dropped by conflict, order stable.
	assert.Equal(t, []string{"101", "105"}, got)
}

func TestFindAvailableRooms_RestartableAndLazy(t *testing.T) {
	rooms := []*domain.Room{
		{ID: 1, RoomNumber: "101", Status: domain.RoomAvailable},
		{ID: 2, RoomNumber: "102", Status: domain.RoomAvailable},
	}

	seq := FindAvailableRooms(rooms, date(2025, 8, 20), date(2025, 8, 22), nil)

	// Early break must stop iteration cleanly.
	count := 0
	for range seq {
		count++
		break
	}
	assert.Equal(t, 1, count)

	// The sequence restarts from the beginning.
	var got []int64
	for room := range seq {
		got = append(got, room.ID)
	}
	assert.Equal(t, []int64{1, 2}, got)
}

func TestFindAvailableRooms_MaintenanceExcludedWithoutReservations(t *testing.T) {
	rooms := []*domain.Room{
		{ID: 1, RoomNumber: "201", Status: domain.RoomMaintenance},
	}

	for room := range FindAvailableRooms(rooms, date(2025, 8, 1), date(2025, 12, 1), nil) {
		t.Fatalf("room %s should be excluded while in maintenance", room.RoomNumber)
	}
}

func TestEffectiveStatus(t *testing.T) {
	ref := date(2025, 8, 21)

	testCases := []struct {
		name         string
		room         *domain.Room
		reservations []*domain.Reservation
		want         domain.RoomStatus
	}{
		{
			name: "no reservations, available",
			room: &domain.Room{ID: 1, Status: domain.RoomAvailable},
			want: domain.RoomAvailable,
		},
		{
			name: "confirmed reservation covering the date, booked",
			room: &domain.Room{ID: 1, Status: domain.RoomAvailable},
			reservations: []*domain.Reservation{
				res(10, 1, date(2025, 8, 20), date(2025, 8, 22), domain.StatusConfirmed),
			},
			want: domain.RoomBooked,
		},
		{
			name: "checked-in reservation covering the date, occupied",
			room: &domain.Room{ID: 1, Status: domain.RoomAvailable},
			reservations: []*domain.Reservation{
				res(10, 1, date(2025, 8, 20), date(2025, 8, 22), domain.StatusCheckedIn),
			},
			want: domain.RoomOccupied,
		},
		{
			name: "checkout day is not covered (half-open)",
			room: &domain.Room{ID: 1, Status: domain.RoomAvailable},
			reservations: []*domain.Reservation{
				res(10, 1, date(2025, 8, 19), date(2025, 8, 21), domain.StatusCheckedIn),
			},
			want: domain.RoomAvailable,
		},
		{
			name: "maintenance dominates a checked-in stay",
			room: &domain.Room{ID: 1, Status: domain.RoomMaintenance},
			reservations: []*domain.Reservation{
				res(10, 1, date(2025, 8, 20), date(2025, 8, 22), domain.StatusCheckedIn),
			},
			want: domain.RoomMaintenance,
		},
		{
			name: "out of order dominates bookings",
			room: &domain.Room{ID: 1, Status: domain.RoomOutOfOrder},
			reservations: []*domain.Reservation{
				res(10, 1, date(2025, 8, 20), date(2025, 8, 22), domain.StatusConfirmed),
			},
			want: domain.RoomOutOfOrder,
		},
		{
			name: "cancelled reservation does not mark the room",
			room: &domain.Room{ID: 1, Status: domain.RoomAvailable},
			reservations: []*domain.Reservation{
				res(10, 1, date(2025, 8, 20), date(2025, 8, 22), domain.StatusCancelled),
			},
			want: domain.RoomAvailable,
		},
		{
			name: "double coverage tie-break: checked-in wins over confirmed",
			room: &domain.Room{ID: 1, Status: domain.RoomAvailable},
			reservations: []*domain.Reservation{
				res(10, 1, date(2025, 8, 20), date(2025, 8, 22), domain.StatusConfirmed),
				res(11, 1, date(2025, 8, 21), date(2025, 8, 23), domain.StatusCheckedIn),
			},
			want: domain.RoomOccupied,
		},
		{
			name: "double coverage tie-break holds regardless of order",
			room: &domain.Room{ID: 1, Status: domain.RoomAvailable},
			reservations: []*domain.Reservation{
				res(11, 1, date(2025, 8, 21), date(2025, 8, 23), domain.StatusCheckedIn),
				res(10, 1, date(2025, 8, 20), date(2025, 8, 22), domain.StatusConfirmed),
			},
			want: domain.RoomOccupied,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, EffectiveStatus(tc.room, ref, tc.reservations))
		})
	}
}
