package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelpms/reservation-service/internal/domain"
)

func TestValidator_ValidateBooking(t *testing.T) {
	now := date(2025, 8, 15)
	existing := []*domain.Reservation{
		res(10, 101, date(2025, 8, 20), date(2025, 8, 22), domain.StatusConfirmed),
	}

	t.Run("valid booking passes", func(t *testing.T) {
		err := Validator{}.ValidateBooking(101, date(2025, 8, 22), date(2025, 8, 24), existing, 0, now)
		assert.NoError(t, err)
	})

	t.Run("interval validity checked before conflicts", func(t *testing.T) {
		// Same-day interval over a fully booked room: must report the
		// interval error, not the conflict.
		err := Validator{}.ValidateBooking(101, date(2025, 8, 20), date(2025, 8, 20), existing, 0, now)
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})

	t.Run("past check-in rejected by default", func(t *testing.T) {
		err := Validator{}.ValidateBooking(101, date(2025, 8, 10), date(2025, 8, 12), existing, 0, now)
		assert.ErrorIs(t, err, ErrPastCheckIn)
	})

	t.Run("past check-in allowed with policy flag", func(t *testing.T) {
		v := Validator{AllowPastCheckIn: true}
		err := v.ValidateBooking(101, date(2025, 8, 10), date(2025, 8, 12), existing, 0, now)
		assert.NoError(t, err)
	})

	t.Run("check-in today is not a past date", func(t *testing.T) {
		err := Validator{}.ValidateBooking(101, date(2025, 8, 15), date(2025, 8, 17), existing, 0, now)
		assert.NoError(t, err)
	})

	t.Run("conflict reported with reservation ids", func(t *testing.T) {
		err := Validator{}.ValidateBooking(101, date(2025, 8, 21), date(2025, 8, 23), existing, 0, now)
		require.Error(t, err)

		var unavailable *RoomUnavailableError
		require.ErrorAs(t, err, &unavailable)
		assert.Equal(t, int64(101), unavailable.RoomID)
		assert.Equal(t, []int64{10}, unavailable.ConflictingIDs)
	})

	t.Run("editing a reservation does not conflict with itself", func(t *testing.T) {
		err := Validator{}.ValidateBooking(101, date(2025, 8, 20), date(2025, 8, 22), existing, 10, now)
		assert.NoError(t, err)
	})

	t.Run("idempotent for a fixed snapshot", func(t *testing.T) {
		v := Validator{}
		first := v.ValidateBooking(101, date(2025, 8, 21), date(2025, 8, 23), existing, 0, now)
		second := v.ValidateBooking(101, date(2025, 8, 21), date(2025, 8, 23), existing, 0, now)

		var e1, e2 *RoomUnavailableError
		require.ErrorAs(t, first, &e1)
		require.ErrorAs(t, second, &e2)
		assert.Equal(t, e1.ConflictingIDs, e2.ConflictingIDs)
	})

	t.Run("end-to-end scenario from the booking form", func(t *testing.T) {
		// Room 101 holds [2025-08-20, 2025-08-22) confirmed.
		// [2025-08-21, 2025-08-23) must be rejected with the conflict,
		// [2025-08-22, 2025-08-24) must succeed.
		err := Validator{}.ValidateBooking(101, date(2025, 8, 21), date(2025, 8, 23), existing, 0, now)
		var unavailable *RoomUnavailableError
		require.ErrorAs(t, err, &unavailable)
		assert.Contains(t, unavailable.ConflictingIDs, int64(10))

		assert.NoError(t, Validator{}.ValidateBooking(101, date(2025, 8, 22), date(2025, 8, 24), existing, 0, now))
	})

	t.Run("time-of-day in inputs is ignored", func(t *testing.T) {
		checkIn := time.Date(2025, 8, 22, 15, 30, 0, 0, time.UTC)
		checkOut := time.Date(2025, 8, 24, 11, 0, 0, 0, time.UTC)
		err := Validator{}.ValidateBooking(101, checkIn, checkOut, existing, 0, now)
		assert.NoError(t, err)
	})
}
