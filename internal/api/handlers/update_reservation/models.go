package update_reservation

import (
	"time"

	"github.com/hotelpms/reservation-service/internal/api/statuslabels"
	"github.com/hotelpms/reservation-service/internal/domain"
	updateReservation "github.com/hotelpms/reservation-service/internal/usecase/update_reservation"
)

// UpdateReservationRequest HTTP request model. Omitted fields keep their
// current values.
type UpdateReservationRequest struct {
	RoomID          *int64  `json:"roomId,omitempty"`
	CheckIn         *string `json:"checkIn,omitempty"`  // "2025-10-15"
	CheckOut        *string `json:"checkOut,omitempty"` // "2025-10-18"
	Adults          *int    `json:"adults,omitempty"`
	Children        *int    `json:"children,omitempty"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID              int64   `json:"id"`
	RoomID          int64   `json:"roomId"`
	GuestID         int64   `json:"guestId"`
	CheckIn         string  `json:"checkIn"`
	CheckOut        string  `json:"checkOut"`
	Nights          int     `json:"nights"`
	Adults          int     `json:"adults"`
	Children        int     `json:"children"`
	Status          string  `json:"status"`
	StatusLabel     string  `json:"statusLabel"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request, parsing any provided dates.
func (r *UpdateReservationRequest) ToUseCaseRequest(reservationID int64) (*updateReservation.Request, error) {
	req := &updateReservation.Request{
		ReservationID:   reservationID,
		RoomID:          r.RoomID,
		Adults:          r.Adults,
		Children:        r.Children,
		SpecialRequests: r.SpecialRequests,
	}

	if r.CheckIn != nil {
		checkIn, err := time.Parse(domain.DateFormat, *r.CheckIn)
		if err != nil {
			return nil, err
		}
		req.CheckIn = &checkIn
	}

	if r.CheckOut != nil {
		checkOut, err := time.Parse(domain.DateFormat, *r.CheckOut)
		if err != nil {
			return nil, err
		}
		req.CheckOut = &checkOut
	}

	return req, nil
}

// FromUseCaseResponse converts the usecase response into the HTTP response.
func FromUseCaseResponse(resp *updateReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:              resp.ID,
		RoomID:          resp.RoomID,
		GuestID:         resp.GuestID,
		CheckIn:         resp.CheckIn.Format(domain.DateFormat),
		CheckOut:        resp.CheckOut.Format(domain.DateFormat),
		Nights:          resp.Nights,
		Adults:          resp.Adults,
		Children:        resp.Children,
		Status:          resp.Status,
		StatusLabel:     statuslabels.Reservation(domain.ReservationStatus(resp.Status)),
		SpecialRequests: resp.SpecialRequests,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
