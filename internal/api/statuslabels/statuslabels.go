// Package statuslabels maps canonical status values to the Korean display
// labels the front desk UI shows. Labels are presentation only; the API and
// the database always carry the canonical snake_case values.
package statuslabels

import "github.com/hotelpms/reservation-service/internal/domain"

var reservationLabels = map[domain.ReservationStatus]string{
	domain.StatusPending:    "대기",
	domain.StatusConfirmed:  "확정",
	domain.StatusCheckedIn:  "체크인",
	domain.StatusCheckedOut: "체크아웃",
	domain.StatusCancelled:  "취소",
	domain.StatusNoShow:     "노쇼",
}

var roomLabels = map[domain.RoomStatus]string{
	domain.RoomAvailable:   "이용가능",
	domain.RoomBooked:      "예약됨",
	domain.RoomOccupied:    "점유중",
	domain.RoomMaintenance: "정비중",
	domain.RoomOutOfOrder:  "사용불가",
}

// Reservation returns the display label for a reservation status. Unknown
// statuses fall back to the canonical value.
func Reservation(status domain.ReservationStatus) string {
	if label, ok := reservationLabels[status]; ok {
		return label
	}
	return string(status)
}

// Room returns the display label for a room status. Unknown statuses fall
// back to the canonical value.
func Room(status domain.RoomStatus) string {
	if label, ok := roomLabels[status]; ok {
		return label
	}
	return string(status)
}
