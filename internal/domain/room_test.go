package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoom_Floor(t *testing.T) {
	testCases := []struct {
		roomNumber string
		want       int
	}{
		{"101", 1},
		{"312", 3},
		{"1203", 12},
		{"105-A", 1},
		{"12", 1},  // below 100, ground floor
		{"VIP", 1}, // non-numeric, fall back
		{"", 1},
	}

	for _, tc := range testCases {
		t.Run(tc.roomNumber, func(t *testing.T) {
			r := &Room{RoomNumber: tc.roomNumber}
			assert.Equal(t, tc.want, r.Floor())
		})
	}
}

func TestRoom_IsBookable(t *testing.T) {
	assert.True(t, (&Room{Status: RoomAvailable}).IsBookable())
	assert.False(t, (&Room{Status: RoomMaintenance}).IsBookable())
	assert.False(t, (&Room{Status: RoomOutOfOrder}).IsBookable())
}

func TestValidIntrinsicStatus(t *testing.T) {
	assert.True(t, ValidIntrinsicStatus(RoomAvailable))
	assert.True(t, ValidIntrinsicStatus(RoomMaintenance))
	assert.True(t, ValidIntrinsicStatus(RoomOutOfOrder))

	// Derived statuses are never stored.
	assert.False(t, ValidIntrinsicStatus(RoomBooked))
	assert.False(t, ValidIntrinsicStatus(RoomOccupied))
}
