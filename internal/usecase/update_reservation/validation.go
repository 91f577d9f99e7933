package update_reservation

import (
	"fmt"
	"time"

	"github.com/hotelpms/reservation-service/internal/domain"
)

// validateRequest validates the request shape. Date semantics are checked by
// the availability validator inside the transaction.
func validateRequest(req *Request) error {
	if req.ReservationID <= 0 {
		return fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}

	if req.RoomID != nil && *req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.CheckIn != nil && req.CheckIn.IsZero() {
		return fmt.Errorf("%w: checkIn must not be zero", ErrInvalidInput)
	}

	if req.CheckOut != nil && req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkOut must not be zero", ErrInvalidInput)
	}

	if req.Adults != nil && *req.Adults < 1 {
		return fmt.Errorf("%w: at least one adult is required", ErrInvalidInput)
	}

	if req.Children != nil && *req.Children < 0 {
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

// applyEdits copies the request's non-nil fields onto the reservation.
func applyEdits(res *domain.Reservation, req *Request) {
	if req.RoomID != nil {
		res.RoomID = *req.RoomID
	}
	if req.CheckIn != nil {
		res.CheckIn = domain.DateOnly(*req.CheckIn)
	}
	if req.CheckOut != nil {
		res.CheckOut = domain.DateOnly(*req.CheckOut)
	}
	if req.Adults != nil {
		res.Adults = *req.Adults
	}
	if req.Children != nil {
		res.Children = *req.Children
	}
	if req.SpecialRequests != nil {
		res.SpecialRequests = req.SpecialRequests
	}
}
