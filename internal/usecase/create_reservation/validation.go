package create_reservation

import (
	"fmt"
	"time"

	"github.com/hotelpms/reservation-service/internal/domain"
)

// validateRequest validates the request shape. Date semantics (interval
// validity, past-date policy, conflicts) are checked by the availability
// validator inside the transaction.
func validateRequest(req *Request) error {
	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.GuestID <= 0 {
		return fmt.Errorf("%w: guestID must be positive", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() {
		return fmt.Errorf("%w: checkIn is required", ErrInvalidInput)
	}

	if req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkOut is required", ErrInvalidInput)
	}

	if req.Adults < 1 {
		return fmt.Errorf("%w: at least one adult is required", ErrInvalidInput)
	}

	if req.Children < 0 {
		return fmt.Errorf("%w: children must not be negative", ErrInvalidInput)
	}

	if req.SpecialRequests != nil && len(*req.SpecialRequests) > domain.MaxSpecialRequestsLen {
		return fmt.Errorf("%w: special requests must not exceed %d characters",
			ErrInvalidInput, domain.MaxSpecialRequestsLen)
	}

	return nil
}

// validateStayLength caps stays at the maximum number of nights.
func validateStayLength(checkIn, checkOut time.Time) error {
	nights := int(domain.DateOnly(checkOut).Sub(domain.DateOnly(checkIn)).Hours() / 24)
	if nights > domain.MaxStayNights {
		return fmt.Errorf("%w: stay of %d nights exceeds maximum of %d",
			ErrInvalidInput, nights, domain.MaxStayNights)
	}
	return nil
}

// validateCapacity checks the party fits the room.
func validateCapacity(room *domain.Room, adults, children int) error {
	if adults+children > room.Capacity {
		return fmt.Errorf("%w: party of %d exceeds capacity %d",
			ErrCapacityExceeded, adults+children, room.Capacity)
	}
	return nil
}
