package find_available_rooms

import (
	"fmt"

	"github.com/hotelpms/reservation-service/internal/domain"
)

// validateRequest validates the query.
func validateRequest(req *Request) error {
	if req.CheckIn.IsZero() {
		return fmt.Errorf("%w: checkIn is required", ErrInvalidInput)
	}

	if req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkOut is required", ErrInvalidInput)
	}

	if !domain.DateOnly(req.CheckIn).Before(domain.DateOnly(req.CheckOut)) {
		return fmt.Errorf("%w: checkIn must be before checkOut", ErrInvalidInput)
	}

	if req.MinCapacity != nil && *req.MinCapacity < domain.MinCapacity {
		return fmt.Errorf("%w: minCapacity must be at least %d", ErrInvalidInput, domain.MinCapacity)
	}

	return nil
}
